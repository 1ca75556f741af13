package handlers

import (
	"errors"
	"net/http"

	request "estoque_gelb/internal/adapter/http/dto/request"
	response "estoque_gelb/internal/adapter/http/dto/response"
	"estoque_gelb/internal/usecase"
	"estoque_gelb/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuthPayload  = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Dados insuficientes", http.StatusBadRequest)
	errInvalidCredentials  = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Credenciais inválidas", http.StatusUnauthorized)
	errAuthInternalFailure = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Erro inesperado", http.StatusInternalServerError)
)

// AuthHandler handles operator login. A mismatch against the credentials
// store answers 401; when the store is unreachable the usecase already fell
// back to the fixed identity, so this handler only ever sees success or the
// explicit mismatch.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Authenticate(c *gin.Context) {
	var payload request.AuthRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	op, err := h.usecase.Authenticate(c.Request.Context(), payload.ResolveEmail(), payload.Senha)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
			return
		}
		c.JSON(errAuthInternalFailure.HTTPStatus, errAuthInternalFailure.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOperator(op))
}
