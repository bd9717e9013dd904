package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/gourav1211/officeagent/api/server"
	"github.com/gourav1211/officeagent/config"
)

func main() {
	cfg := config.Load(os.Getenv)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("building server")
	}
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
