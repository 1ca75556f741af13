package repository

import (
	"context"
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"errors"

	"estoque_gelb/internal/domain/entities"
	"estoque_gelb/internal/usecase/interfaces"
)

// OperatorPostgresRepository reads the pre-existing usuarios credentials
// table. The table stores passwords either as a legacy MD5 hex digest or
// verbatim, so the lookup matches both forms.
type OperatorPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IOperatorRepository = (*OperatorPostgresRepository)(nil)

func NewOperatorPostgresRepository(db *sql.DB) *OperatorPostgresRepository {
	return &OperatorPostgresRepository{db: db}
}

func (r *OperatorPostgresRepository) FindByCredentials(ctx context.Context, email, senha string) (entities.Operator, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT to_regclass('usuarios') IS NOT NULL`).Scan(&exists); err != nil {
		return entities.Operator{}, err
	}
	if !exists {
		return entities.Operator{}, interfaces.ErrNoCredentialsTable
	}

	var op entities.Operator
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nome, email FROM usuarios WHERE email = $1 AND senha IN ($2, $3) LIMIT 1`,
		email, legacyDigest(senha), senha,
	).Scan(&op.ID, &op.Nome, &op.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Operator{}, nil
	}
	if err != nil {
		return entities.Operator{}, err
	}
	return op, nil
}

// legacyDigest is the weak hash the original credential store was seeded
// with. Kept for backward compatibility only.
func legacyDigest(senha string) string {
	sum := md5.Sum([]byte(senha))
	return hex.EncodeToString(sum[:])
}
