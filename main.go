package main

import (
	"os"

	"recruit-api/core/logger"
	"recruit-api/core/server"

	_ "recruit-api/docs" // Swagger docs
)

// @title Recruit Scheduling API
// @version 1.0
// @description Availability editing and interview scheduling for recruiters, candidates and interviewers
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@recruit-api.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
		os.Exit(1)
	}
}
