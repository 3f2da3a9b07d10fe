package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tropicaldog17/cryptofolio/internal/models"
	"github.com/tropicaldog17/cryptofolio/internal/repositories"
)

type portfolioService struct {
	store  repositories.TransactionStore
	logger *zap.Logger
	now    func() time.Time

	// writeMu serializes store writes with the reload that follows them.
	writeMu sync.Mutex

	mu           sync.RWMutex
	transactions []*models.Transaction
}

// NewPortfolioService loads the stored collection once and returns the
// service holding it.
func NewPortfolioService(ctx context.Context, store repositories.TransactionStore, logger *zap.Logger) PortfolioService {
	return newPortfolioService(ctx, store, logger, time.Now)
}

func newPortfolioService(ctx context.Context, store repositories.TransactionStore, logger *zap.Logger, now func() time.Time) *portfolioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &portfolioService{
		store:  store,
		logger: logger.Named("portfolio"),
		now:    now,
	}
	s.Reload(ctx)
	return s
}

// Reload replaces the working copy with the stored collection.
func (s *portfolioService) Reload(ctx context.Context) {
	s.writeMu.Lock()
	n := s.reload(ctx)
	s.writeMu.Unlock()

	s.logger.Debug("transactions loaded", zap.Int("count", n))
}

// reload must be called with writeMu held.
func (s *portfolioService) reload(ctx context.Context) int {
	txs := s.store.Load(ctx)

	s.mu.Lock()
	s.transactions = txs
	s.mu.Unlock()
	return len(txs)
}

// Transactions returns the working copy, most recently created first.
func (s *portfolioService) Transactions() []*models.Transaction {
	s.mu.RLock()
	out := make([]*models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *portfolioService) Summary() []*models.CoinSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Summarize(s.transactions)
}

func (s *portfolioService) Overview() *models.PortfolioOverview {
	return Overview(s.Summary())
}

// AddTransaction validates in, persists it and refreshes the working copy.
// On a storage error the working copy is left as it was.
func (s *portfolioService) AddTransaction(ctx context.Context, in models.TransactionInput) (*models.Transaction, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("transaction validation failed: %w", err)
	}

	tx := models.NewTransaction(in, s.now())

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.store.Add(ctx, tx); err != nil {
		s.logger.Warn("failed to add transaction", zap.String("coin", tx.Coin), zap.Error(err))
		return nil, fmt.Errorf("failed to add transaction: %w", err)
	}

	s.reload(ctx)
	s.logger.Info("transaction added",
		zap.String("id", tx.ID),
		zap.String("coin", tx.Coin),
		zap.String("quantity", tx.Quantity.String()),
		zap.String("invested", tx.InvestedValue.String()))
	return tx, nil
}

// RemoveTransaction deletes the transaction with id. It returns the removed
// transaction, or nil when nothing had that id.
func (s *portfolioService) RemoveTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	removed := s.find(id)
	if err := s.store.Remove(ctx, id); err != nil {
		s.logger.Warn("failed to remove transaction", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to remove transaction: %w", err)
	}

	s.reload(ctx)
	if removed != nil {
		s.logger.Info("transaction removed", zap.String("id", id), zap.String("coin", removed.Coin))
	}
	return removed, nil
}

func (s *portfolioService) find(id string) *models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.transactions {
		if tx.ID == id {
			return tx
		}
	}
	return nil
}
