package routes

import (
	"net/http"

	"estoque_gelb/internal/adapter/http/dto/response"
	"estoque_gelb/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Ok())
	})
}

func addPicklistRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	agendaHandler *handlers.AgendaHandler,
	picklistHandler *handlers.PicklistHandler,
	itemHandler *handlers.ItemHandler,
	completionHandler *handlers.CompletionHandler,
) {
	rg.POST("/auth", authHandler.Authenticate)
	rg.GET("/agendas", agendaHandler.ListRoutes)
	rg.GET("/picklists", picklistHandler.ListByRoute)
	rg.GET("/items", itemHandler.ListByPicklist)
	rg.GET("/completedPicklists", completionHandler.ListCompleted)
	rg.POST("/completePicklist", completionHandler.Complete)
}
