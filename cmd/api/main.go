package main

import (
	"os"

	"github.com/devang/profmatch/internal/pkg/logger"
	"github.com/devang/profmatch/internal/server"
)

// @title ProfMatch API
// @version 1.0
// @description Role-based backend for professor and student matching

// @host localhost:5000
// @BasePath /api
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
