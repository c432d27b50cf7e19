package main

import (
	"surfplan-api/core/logger"
	"surfplan-api/core/server"
)

// @title SurfPlan API
// @version 1.0
// @description Surf session planning backend: spot preferences, weekly availability and ranked session windows from hourly marine forecasts.

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
