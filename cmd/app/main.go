package main

import (
	"context"
	"travelease/config"
	"travelease/di"
	"travelease/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()

	if err := service.Seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed the store")
	}

	service.HTTP.Serve()
}
