package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/eventapp/event-platform-api/internal/config"
	"github.com/eventapp/event-platform-api/internal/database"
	"github.com/eventapp/event-platform-api/internal/handlers"
	"github.com/eventapp/event-platform-api/internal/uploader"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Flyer Uploader. The API stays up without it; creating
	// an event with a flyer then fails with an upload error.
	var flyerUploader uploader.Uploader
	if cld, err := uploader.NewCloudinaryUploader(cfg); err != nil {
		log.Warn().Err(err).Msg("Flyer uploader not initialized")
	} else {
		flyerUploader = cld
	}

	// Initialize Handlers
	eventHandler := handlers.NewEventHandler(db, flyerUploader)
	rsvpHandler := handlers.NewRSVPHandler(db)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, eventHandler, rsvpHandler)

	// Start Server
	log.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
