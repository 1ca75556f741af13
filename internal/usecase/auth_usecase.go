package usecase

import (
	"context"
	"errors"
	"log"

	"estoque_gelb/internal/domain/entities"
	"estoque_gelb/internal/usecase/interfaces"
)

// ErrInvalidCredentials is an explicit mismatch against an existing usuarios
// table. It is the only way auth answers 401; store trouble falls back
// instead.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	fallbackOperatorID    = 1
	fallbackOperatorName  = "ESTOQUE POA"
	fallbackOperatorEmail = "estoque.poa@gelb.com.br"
)

// IAuthUseCase validates operator credentials.
type IAuthUseCase interface {
	Authenticate(ctx context.Context, email, senha string) (entities.Operator, error)
}

type AuthUseCase struct {
	repo interfaces.IOperatorRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IOperatorRepository) *AuthUseCase {
	return &AuthUseCase{repo: repo}
}

// Authenticate checks the credentials store. A missing usuarios table or any
// storage error degrades to the fixed fallback identity so the warehouse
// keeps working without its database.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, senha string) (entities.Operator, error) {
	op, err := u.repo.FindByCredentials(ctx, email, senha)
	if err != nil {
		if errors.Is(err, interfaces.ErrNoCredentialsTable) {
			log.Printf("[auth][usecase] no usuarios table, using fallback identity")
		} else {
			log.Printf("[auth][usecase] credentials store unavailable, using fallback identity: %v", err)
		}
		return fallbackOperator(email), nil
	}
	if op.ID == 0 {
		return entities.Operator{}, ErrInvalidCredentials
	}
	return op, nil
}

func fallbackOperator(email string) entities.Operator {
	if email == "" {
		email = fallbackOperatorEmail
	}
	return entities.Operator{ID: fallbackOperatorID, Nome: fallbackOperatorName, Email: email}
}
