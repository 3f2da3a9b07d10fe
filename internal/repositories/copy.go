package repositories

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptySource is returned by Copy when the source holds no transactions.
// A missing or unreadable source loads as empty, so copying it would wipe
// the destination.
var ErrEmptySource = errors.New("source store has no transactions")

// CopyMode selects how Copy treats transactions already in the destination.
type CopyMode int

const (
	// CopyReplace overwrites the destination with the source collection.
	CopyReplace CopyMode = iota
	// CopyMerge appends source transactions whose IDs the destination lacks.
	CopyMerge
)

// Copy moves the collection from src to dst and returns how many
// transactions were written from src.
func Copy(ctx context.Context, src, dst TransactionStore, mode CopyMode) (int, error) {
	txs := src.Load(ctx)
	if len(txs) == 0 {
		return 0, ErrEmptySource
	}

	if mode == CopyReplace {
		if err := dst.Save(ctx, txs); err != nil {
			return 0, fmt.Errorf("failed to replace destination: %w", err)
		}
		return len(txs), nil
	}

	existing := dst.Load(ctx)
	seen := make(map[string]struct{}, len(existing))
	for _, tx := range existing {
		seen[tx.ID] = struct{}{}
	}
	copied := 0
	for _, tx := range txs {
		if _, ok := seen[tx.ID]; ok {
			continue
		}
		seen[tx.ID] = struct{}{}
		existing = append(existing, tx)
		copied++
	}
	if copied == 0 {
		return 0, nil
	}
	if err := dst.Save(ctx, existing); err != nil {
		return 0, fmt.Errorf("failed to merge into destination: %w", err)
	}
	return copied, nil
}
