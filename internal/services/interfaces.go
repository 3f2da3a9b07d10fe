package services

import (
	"context"

	"github.com/tropicaldog17/cryptofolio/internal/models"
)

// PortfolioService owns the working copy of the transaction collection and
// keeps it in sync with the store.
type PortfolioService interface {
	Transactions() []*models.Transaction
	Summary() []*models.CoinSummary
	Overview() *models.PortfolioOverview
	AddTransaction(ctx context.Context, in models.TransactionInput) (*models.Transaction, error)
	RemoveTransaction(ctx context.Context, id string) (*models.Transaction, error)
	Reload(ctx context.Context)
}
