package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"estoque_gelb/internal/usecase/interfaces"
)

// ErrMissingCompletionFields is the only failure this ledger surfaces to the
// caller; everything storage-related degrades silently.
var ErrMissingCompletionFields = errors.New("missing operator or picklist id")

// ICompletionUseCase records and reads per-operator picklist completion.
type ICompletionUseCase interface {
	ListCompleted(ctx context.Context, operadorID int64) ([]string, error)
	MarkCompleted(ctx context.Context, operadorID int64, picklistID string) error
}

// CompletionUseCase is best-effort by contract: completion marks are
// advisory, so the operator app is never blocked by a storage outage. Every
// swallowed failure is logged.
type CompletionUseCase struct {
	repo interfaces.ICompletionRepository
}

var _ ICompletionUseCase = (*CompletionUseCase)(nil)

func NewCompletionUseCase(repo interfaces.ICompletionRepository) *CompletionUseCase {
	return &CompletionUseCase{repo: repo}
}

func (u *CompletionUseCase) ListCompleted(ctx context.Context, operadorID int64) ([]string, error) {
	if operadorID <= 0 {
		return []string{}, nil
	}
	if err := u.repo.EnsureTable(ctx); err != nil {
		log.Printf("[completion][usecase] ensure table failed: %v", err)
		return []string{}, nil
	}
	records, err := u.repo.ListCompleted(ctx, operadorID)
	if err != nil {
		log.Printf("[completion][usecase] list failed operador_id=%d err=%v", operadorID, err)
		return []string{}, nil
	}
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.PicklistID)
	}
	return ids, nil
}

func (u *CompletionUseCase) MarkCompleted(ctx context.Context, operadorID int64, picklistID string) error {
	picklistID = strings.TrimSpace(picklistID)
	if operadorID <= 0 || picklistID == "" {
		return ErrMissingCompletionFields
	}
	if err := u.repo.EnsureTable(ctx); err != nil {
		log.Printf("[completion][usecase] ensure table failed: %v", err)
		return nil
	}
	if err := u.repo.Upsert(ctx, operadorID, picklistID); err != nil {
		log.Printf("[completion][usecase] upsert failed operador_id=%d picklist_id=%s err=%v", operadorID, picklistID, err)
	}
	return nil
}
