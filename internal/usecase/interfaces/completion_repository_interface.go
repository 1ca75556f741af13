package interfaces

import (
	"context"

	"estoque_gelb/internal/domain/entities"
)

// ICompletionRepository abstracts Postgres persistence for the completion
// ledger.
//
// The backing table is created lazily: every ledger operation calls
// EnsureTable first, mirroring how the service has always bootstrapped its
// single table on first use.
type ICompletionRepository interface {
	EnsureTable(ctx context.Context) error
	ListCompleted(ctx context.Context, operadorID int64) ([]entities.CompletedPicklist, error)
	Upsert(ctx context.Context, operadorID int64, picklistID string) error
}
