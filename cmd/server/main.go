package main

import (
	"log"

	"github.com/agroview/groundtruth-backend-go/internal/api"
	"github.com/agroview/groundtruth-backend-go/internal/config"
	"github.com/agroview/groundtruth-backend-go/internal/metrics"
	"github.com/agroview/groundtruth-backend-go/internal/service"
	"github.com/agroview/groundtruth-backend-go/internal/session"
)

func main() {
	cfg := config.Load()

	metrics.Register()

	manager := session.NewManager(cfg.BatchSize, cfg.SessionTTL)
	sessionService := service.NewSessionService(manager, cfg)

	router := api.SetupRouter(cfg, sessionService)

	log.Printf("Server starting on port %s (batch size %d)", cfg.Port, cfg.BatchSize)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
