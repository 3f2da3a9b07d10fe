package models

import "github.com/shopspring/decimal"

// CoinSummary aggregates every Transaction sharing one Coin name.
// AveragePrice is zero when TotalQuantity is zero; see HasAveragePrice.
type CoinSummary struct {
	Coin             string          `json:"coin"`
	Symbol           string          `json:"symbol"`
	TotalQuantity    decimal.Decimal `json:"totalQuantity"`
	TotalInvested    decimal.Decimal `json:"totalInvested"`
	TransactionCount int             `json:"transactionCount"`
	AveragePrice     decimal.Decimal `json:"averagePrice"`
}

// HasAveragePrice reports whether AveragePrice is defined.
func (s *CoinSummary) HasAveragePrice() bool {
	return !s.TotalQuantity.IsZero()
}

// PortfolioOverview holds the dashboard totals.
type PortfolioOverview struct {
	TotalInvested     decimal.Decimal `json:"totalInvested"`
	TotalTransactions int             `json:"totalTransactions"`
	UniqueCoins       int             `json:"uniqueCoins"`
	Coins             []*CoinSummary  `json:"coins"`
}
