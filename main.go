package main

import (
	"guest-order-api/core/logger"
	"guest-order-api/core/server"
)

// @title Guest Order API
// @version 1.0
// @description Multi-tenant hotel guest ordering backend.
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
