package handlers

import (
	"estoque_gelb/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AgendaHandler lists the routes active in a date window. Tolerant endpoint:
// any resolution failure degrades to an empty list.
type AgendaHandler struct {
	usecase usecase.IAgendaUseCase
}

func NewAgendaHandler(uc usecase.IAgendaUseCase) *AgendaHandler {
	return &AgendaHandler{usecase: uc}
}

func (h *AgendaHandler) ListRoutes(c *gin.Context) {
	routes, err := h.usecase.ListRoutes(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	respondList(c, "agenda", tolerate, routes, err)
}
