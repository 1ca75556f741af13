package handlers

import (
	"estoque_gelb/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PicklistHandler lists the pending picklists of a route. Tolerant endpoint;
// a missing rota short-circuits to an empty list inside the usecase.
type PicklistHandler struct {
	usecase usecase.IPicklistUseCase
}

func NewPicklistHandler(uc usecase.IPicklistUseCase) *PicklistHandler {
	return &PicklistHandler{usecase: uc}
}

func (h *PicklistHandler) ListByRoute(c *gin.Context) {
	picklists, err := h.usecase.ListByRoute(c.Request.Context(),
		c.Query("rota"), c.Query("start_date"), c.Query("end_date"))
	respondList(c, "picklist", tolerate, picklists, err)
}
