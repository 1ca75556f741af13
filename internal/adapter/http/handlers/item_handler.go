package handlers

import (
	"estoque_gelb/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ItemHandler lists the line items of a picklist. Strict endpoint: a VMpay
// 404 (or a missing picklistId) already became an empty list in the usecase,
// everything else surfaces with its upstream status.
type ItemHandler struct {
	usecase usecase.IItemUseCase
}

func NewItemHandler(uc usecase.IItemUseCase) *ItemHandler {
	return &ItemHandler{usecase: uc}
}

func (h *ItemHandler) ListByPicklist(c *gin.Context) {
	items, err := h.usecase.ListByPicklist(c.Request.Context(), c.Query("picklistId"))
	respondList(c, "item", propagate, items, err)
}
