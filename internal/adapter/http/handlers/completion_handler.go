package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "estoque_gelb/internal/adapter/http/dto/request"
	response "estoque_gelb/internal/adapter/http/dto/response"
	"estoque_gelb/internal/usecase"
	"estoque_gelb/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingCompletionFields = pkg.NewDomainErrorSimple("MISSING_FIELDS", "Dados insuficientes", http.StatusBadRequest)

// CompletionHandler exposes the completion ledger. The write is the only
// endpoint in this API that surfaces a 400; the read degrades to an empty
// list like the other tolerant reads.
type CompletionHandler struct {
	usecase usecase.ICompletionUseCase
}

func NewCompletionHandler(uc usecase.ICompletionUseCase) *CompletionHandler {
	return &CompletionHandler{usecase: uc}
}

func (h *CompletionHandler) ListCompleted(c *gin.Context) {
	// Unparseable operadorId behaves like 0: empty list, no query.
	operadorID, _ := strconv.ParseInt(c.Query("operadorId"), 10, 64)
	ids, err := h.usecase.ListCompleted(c.Request.Context(), operadorID)
	respondList(c, "completion", tolerate, ids, err)
}

func (h *CompletionHandler) Complete(c *gin.Context) {
	var payload request.CompletePicklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingCompletionFields.HTTPStatus, errMissingCompletionFields.ToHTTPError())
		return
	}

	err := h.usecase.MarkCompleted(c.Request.Context(), payload.ResolveOperadorID(), payload.ResolvePicklistID())
	if err != nil {
		if errors.Is(err, usecase.ErrMissingCompletionFields) {
			c.JSON(errMissingCompletionFields.HTTPStatus, errMissingCompletionFields.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Ok())
}
