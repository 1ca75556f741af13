package usecase

import (
	"context"
	"errors"
	"testing"

	"estoque_gelb/internal/domain/entities"
	"estoque_gelb/internal/usecase/interfaces"
	mock_interfaces "estoque_gelb/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Authenticate(t *testing.T) {
	t.Run("stored identity on match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorRepository(ctrl)
		uc := NewAuthUseCase(repo)

		repo.EXPECT().FindByCredentials(gomock.Any(), "op@gelb.com.br", "s3nh4").
			Return(entities.Operator{ID: 3, Nome: "OPERADOR", Email: "op@gelb.com.br"}, nil)

		op, err := uc.Authenticate(context.Background(), "op@gelb.com.br", "s3nh4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.ID != 3 || op.Nome != "OPERADOR" {
			t.Fatalf("unexpected operator: %+v", op)
		}
	})

	t.Run("explicit mismatch is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorRepository(ctrl)
		uc := NewAuthUseCase(repo)

		repo.EXPECT().FindByCredentials(gomock.Any(), "op@gelb.com.br", "errada").
			Return(entities.Operator{}, nil)

		_, err := uc.Authenticate(context.Background(), "op@gelb.com.br", "errada")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("missing usuarios table falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorRepository(ctrl)
		uc := NewAuthUseCase(repo)

		repo.EXPECT().FindByCredentials(gomock.Any(), "op@gelb.com.br", "x").
			Return(entities.Operator{}, interfaces.ErrNoCredentialsTable)

		op, err := uc.Authenticate(context.Background(), "op@gelb.com.br", "x")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.ID != 1 || op.Nome != "ESTOQUE POA" || op.Email != "op@gelb.com.br" {
			t.Fatalf("unexpected fallback operator: %+v", op)
		}
	})

	t.Run("storage error falls back with default email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperatorRepository(ctrl)
		uc := NewAuthUseCase(repo)

		repo.EXPECT().FindByCredentials(gomock.Any(), "", "x").
			Return(entities.Operator{}, errors.New("db down"))

		op, err := uc.Authenticate(context.Background(), "", "x")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.Email != "estoque.poa@gelb.com.br" {
			t.Fatalf("expected default fallback email, got %q", op.Email)
		}
	})
}
