package interfaces

import (
	"context"
	"errors"

	"estoque_gelb/internal/domain/entities"
)

// ErrNoCredentialsTable signals that the usuarios table does not exist in the
// configured database. That is a legitimate deployment (auth then uses the
// fixed fallback identity), not a storage failure.
var ErrNoCredentialsTable = errors.New("usuarios table not present")

// IOperatorRepository abstracts the legacy credentials store.
//
// FindByCredentials accepts both the cleartext password and its weak legacy
// digest (the pre-existing store holds either form). A zero-valued Operator
// with a nil error means no row matched.
type IOperatorRepository interface {
	FindByCredentials(ctx context.Context, email, senha string) (entities.Operator, error)
}
