package main

import (
	"context"
	"log"
	"time"

	"lichess-gateway/config"
	"lichess-gateway/internal/handler"
	"lichess-gateway/internal/lichess"
	"lichess-gateway/internal/repository"
	"lichess-gateway/internal/server"
	"lichess-gateway/internal/services"
	"lichess-gateway/pkg/database"
	"lichess-gateway/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Bootstrap(context.Background(), db); err != nil {
		log.Fatalf("Failed to bootstrap schema: %v", err)
	}

	userRepo := repository.NewUserRepository(db)

	authService, err := services.NewAuthService(userRepo, cfg)
	if err != nil {
		log.Fatalf("Failed to configure auth: %v", err)
	}

	lichessClient := lichess.NewClient(cfg.LichessBaseURL, time.Duration(cfg.UpstreamTimeout)*time.Second)
	ratingService := services.NewRatingService(lichessClient, cfg, l)

	srv := server.New(cfg, l, db)
	srv.SetupRoutes(&server.Handlers{
		Auth:   handler.NewAuthHandler(authService),
		Rating: handler.NewRatingHandler(ratingService),
	}, authService)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
