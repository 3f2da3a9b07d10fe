package models

import "strings"

// CoinOption is an entry of the coin lookup list.
type CoinOption struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

var popularCoins = []CoinOption{
	{Name: "Bitcoin", Symbol: "BTC"},
	{Name: "Ethereum", Symbol: "ETH"},
	{Name: "Binance Coin", Symbol: "BNB"},
	{Name: "Solana", Symbol: "SOL"},
	{Name: "XRP", Symbol: "XRP"},
	{Name: "Cardano", Symbol: "ADA"},
	{Name: "Avalanche", Symbol: "AVAX"},
	{Name: "Dogecoin", Symbol: "DOGE"},
	{Name: "Polygon", Symbol: "MATIC"},
	{Name: "Chainlink", Symbol: "LINK"},
	{Name: "Polkadot", Symbol: "DOT"},
	{Name: "Litecoin", Symbol: "LTC"},
	{Name: "Uniswap", Symbol: "UNI"},
	{Name: "TRON", Symbol: "TRX"},
	{Name: "Shiba Inu", Symbol: "SHIB"},
}

// PopularCoins returns a copy of the built-in coin list.
func PopularCoins() []CoinOption {
	out := make([]CoinOption, len(popularCoins))
	copy(out, popularCoins)
	return out
}

// SearchCoins returns the coins whose name or symbol contains term,
// case-insensitively. An empty term matches everything.
func SearchCoins(term string) []CoinOption {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return PopularCoins()
	}
	out := []CoinOption{}
	for _, c := range popularCoins {
		if strings.Contains(strings.ToLower(c.Name), term) || strings.Contains(strings.ToLower(c.Symbol), term) {
			out = append(out, c)
		}
	}
	return out
}
