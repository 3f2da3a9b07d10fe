package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tropicaldog17/cryptofolio/internal/models"
)

// Summarize groups txs by exact Coin name and returns one CoinSummary per
// coin, sorted by TotalInvested descending. Ties keep first-seen order.
//
// Symbol comes from the first transaction of each group. A group whose
// TotalQuantity sums to zero gets a zero AveragePrice. Nil entries are skipped.
func Summarize(txs []*models.Transaction) []*models.CoinSummary {
	byCoin := make(map[string]*models.CoinSummary)
	order := make([]*models.CoinSummary, 0)

	for _, tx := range txs {
		if tx == nil {
			continue
		}
		s, ok := byCoin[tx.Coin]
		if !ok {
			s = &models.CoinSummary{
				Coin:          tx.Coin,
				Symbol:        tx.Symbol,
				TotalQuantity: decimal.Zero,
				TotalInvested: decimal.Zero,
			}
			byCoin[tx.Coin] = s
			order = append(order, s)
		}
		s.TotalQuantity = s.TotalQuantity.Add(tx.Quantity)
		s.TotalInvested = s.TotalInvested.Add(tx.InvestedValue)
		s.TransactionCount++
		s.AveragePrice = averagePrice(s.TotalInvested, s.TotalQuantity)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].TotalInvested.GreaterThan(order[j].TotalInvested)
	})
	return order
}

func averagePrice(invested, quantity decimal.Decimal) decimal.Decimal {
	if quantity.IsZero() {
		return decimal.Zero
	}
	return invested.Div(quantity)
}

// Overview computes the dashboard totals over summaries.
func Overview(summaries []*models.CoinSummary) *models.PortfolioOverview {
	o := &models.PortfolioOverview{
		TotalInvested: decimal.Zero,
		UniqueCoins:   len(summaries),
		Coins:         summaries,
	}
	if o.Coins == nil {
		o.Coins = []*models.CoinSummary{}
	}
	for _, s := range summaries {
		o.TotalInvested = o.TotalInvested.Add(s.TotalInvested)
		o.TotalTransactions += s.TransactionCount
	}
	return o
}
