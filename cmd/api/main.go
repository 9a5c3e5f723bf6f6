package main

import (
	"os"

	"github.com/yigit/placementportal/internal/pkg/logger"
	"github.com/yigit/placementportal/internal/server"
)

// @title Placement Portal API
// @version 1.0
// @description Backend for the campus placement portal: students, companies, placement sessions, notifications and login.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup functions log the details
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
