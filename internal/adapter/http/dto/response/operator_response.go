package response

import "estoque_gelb/internal/domain/entities"

type OperatorResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

func FromOperator(op entities.Operator) OperatorResponse {
	return OperatorResponse{ID: op.ID, Nome: op.Nome, Email: op.Email}
}
