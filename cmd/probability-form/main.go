package main

import (
	"log"

	"probability-form/internal/app"
	"probability-form/internal/config"
	"probability-form/internal/logger"

	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}
	appLogger := logger.New(logger.Options{Level: level, JSON: cfg.JSONLogs})

	application, err := app.NewApplication(fyneapp.NewWithID(app.AppID), cfg, appLogger)
	if err != nil {
		appLogger.Error("main", err, nil)
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		appLogger.Error("main", err, nil)
		log.Fatalf("Application execution failed: %v", err)
	}
}
