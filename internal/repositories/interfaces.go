package repositories

import (
	"context"

	"github.com/tropicaldog17/cryptofolio/internal/models"
)

// TransactionStore persists the full transaction collection as one record.
//
// Load never fails: a missing, unreadable or unparseable record reads as an
// empty collection. Save, Add and Remove return a *errors.StorageError
// matching errors.ErrStorageUnavailable when the medium rejects the write.
type TransactionStore interface {
	Load(ctx context.Context) []*models.Transaction
	Save(ctx context.Context, txs []*models.Transaction) error
	Add(ctx context.Context, tx *models.Transaction) error
	Remove(ctx context.Context, id string) error
}
