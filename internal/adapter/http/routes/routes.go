package routes

import (
	"log"
	"os"

	_ "estoque_gelb/docs" // This will be auto-generated
	"estoque_gelb/internal/adapter/http/handlers"
	"estoque_gelb/internal/adapter/persistence/repository"
	"estoque_gelb/internal/infrastructure/database"
	"estoque_gelb/internal/infrastructure/vmpay"
	"estoque_gelb/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run wires every collaborator and starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	db := database.ConnectPostgres()
	vm := vmpay.NewClientFromEnv()

	completionRepo := repository.NewCompletionPostgresRepository(db)
	operatorRepo := repository.NewOperatorPostgresRepository(db)

	authHandler := handlers.NewAuthHandler(usecase.NewAuthUseCase(operatorRepo))
	agendaHandler := handlers.NewAgendaHandler(usecase.NewAgendaUseCase(vm))
	picklistHandler := handlers.NewPicklistHandler(usecase.NewPicklistUseCase(vm))
	itemHandler := handlers.NewItemHandler(usecase.NewItemUseCase(vm))
	completionHandler := handlers.NewCompletionHandler(usecase.NewCompletionUseCase(completionRepo))

	api := router.Group("/api")
	addHealthRoutes(api)
	addPicklistRoutes(api, authHandler, agendaHandler, picklistHandler, itemHandler, completionHandler)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Not Found"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(requestID())

	// The operator app is served from a different origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))
}
