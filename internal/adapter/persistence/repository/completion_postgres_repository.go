package repository

import (
	"context"
	"database/sql"

	"estoque_gelb/internal/domain/entities"
	"estoque_gelb/internal/usecase/interfaces"
)

// CompletionPostgresRepository persists completion records in the
// completed_picklists table.
//
// Table requirements:
//   - UNIQUE (operador_id, picklist_id) — re-completion must update
//     completed_at, never duplicate
//   - secondary index on operador_id for the per-operator listing
type CompletionPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.ICompletionRepository = (*CompletionPostgresRepository)(nil)

func NewCompletionPostgresRepository(db *sql.DB) *CompletionPostgresRepository {
	return &CompletionPostgresRepository{db: db}
}

const createCompletedPicklistsTable = `
CREATE TABLE IF NOT EXISTS completed_picklists (
	id BIGSERIAL PRIMARY KEY,
	operador_id BIGINT NOT NULL,
	picklist_id VARCHAR(64) NOT NULL,
	completed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT uniq_operador_picklist UNIQUE (operador_id, picklist_id)
)`

const createCompletedPicklistsIndex = `
CREATE INDEX IF NOT EXISTS idx_completed_picklists_operador ON completed_picklists (operador_id)`

func (r *CompletionPostgresRepository) EnsureTable(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createCompletedPicklistsTable); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, createCompletedPicklistsIndex)
	return err
}

func (r *CompletionPostgresRepository) ListCompleted(ctx context.Context, operadorID int64) ([]entities.CompletedPicklist, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT picklist_id, completed_at FROM completed_picklists WHERE operador_id = $1`, operadorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]entities.CompletedPicklist, 0)
	for rows.Next() {
		rec := entities.CompletedPicklist{OperadorID: operadorID}
		if err := rows.Scan(&rec.PicklistID, &rec.CompletedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *CompletionPostgresRepository) Upsert(ctx context.Context, operadorID int64, picklistID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO completed_picklists (operador_id, picklist_id) VALUES ($1, $2)
		 ON CONFLICT (operador_id, picklist_id) DO UPDATE SET completed_at = NOW()`,
		operadorID, picklistID)
	return err
}
