package main

import (
	_ "estoque_gelb/docs"
	"estoque_gelb/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Picklist Operator API
// @version         1.0
// @description     Backend adapter for the warehouse picklist operator app (VMpay + Postgres).

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
