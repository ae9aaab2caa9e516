package main

import (
	"fmt"
	"log"

	"refile/internal/config"
	"refile/internal/handler"
	"refile/internal/reader/pdftext"
	"refile/internal/router"
	"refile/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize document reader
	pdfReader := pdftext.NewReader()

	// Initialize services
	renameSvc := service.NewRenameService(pdfReader, &cfg.Upload, &cfg.Rename)

	// Initialize handlers
	renameH := handler.NewRenameHandler(renameSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, renameH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
