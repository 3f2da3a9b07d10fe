package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/tropicaldog17/cryptofolio/internal/errors"
	"github.com/tropicaldog17/cryptofolio/internal/models"
	"github.com/tropicaldog17/cryptofolio/internal/storage"
)

type transactionStore struct {
	kv     storage.KV
	key    string
	logger *zap.Logger

	// serializes load-modify-save in Add and Remove within this process
	mu sync.Mutex
}

// NewTransactionStore returns a TransactionStore keeping the collection under
// key in kv.
func NewTransactionStore(kv storage.KV, key string, logger *zap.Logger) TransactionStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &transactionStore{kv: kv, key: key, logger: logger.Named("transaction_store")}
}

func (s *transactionStore) Load(ctx context.Context) []*models.Transaction {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Error("error loading transactions", zap.String("key", s.key), zap.Error(err))
		}
		return []*models.Transaction{}
	}

	var txs []*models.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		s.logger.Warn("error loading transactions",
			zap.Error(apperrors.NewStorageCorrupt("decode", s.key, err)),
			zap.Int("bytes", len(raw)))
		return []*models.Transaction{}
	}
	if txs == nil {
		// "null" is a valid JSON document
		return []*models.Transaction{}
	}

	out := txs[:0]
	for _, tx := range txs {
		if tx != nil {
			out = append(out, tx)
		}
	}
	return out
}

func (s *transactionStore) Save(ctx context.Context, txs []*models.Transaction) error {
	if txs == nil {
		txs = []*models.Transaction{}
	}
	raw, err := json.Marshal(txs)
	if err != nil {
		return apperrors.NewStorageUnavailable("encode", s.key, err)
	}
	if err := s.kv.Put(ctx, s.key, raw); err != nil {
		s.logger.Error("error saving transactions", zap.String("key", s.key), zap.Int("count", len(txs)), zap.Error(err))
		return apperrors.NewStorageUnavailable("put", s.key, err)
	}
	return nil
}

// Add appends tx to the stored collection. IDs are not checked for uniqueness.
func (s *transactionStore) Add(ctx context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := s.Load(ctx)
	txs = append(txs, tx)
	return s.Save(ctx, txs)
}

// Remove drops every transaction with the given id. An unknown id still
// rewrites the unchanged collection and succeeds.
func (s *transactionStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := s.Load(ctx)
	filtered := make([]*models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.ID != id {
			filtered = append(filtered, tx)
		}
	}
	return s.Save(ctx, filtered)
}
