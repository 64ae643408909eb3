package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/eventapp/event-platform-api/internal/config"
)

const apiVersion = "1.0.0"

type RootOutput struct {
	Body struct {
		Message string `json:"message"`
		Version string `json:"version"`
	}
}

func RegisterRoutes(r *chi.Mux, cfg *config.Config, eventHandler *EventHandler, rsvpHandler *RSVPHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}))
	}

	// Initialize Huma API
	api := humachi.New(r, huma.DefaultConfig("Event Platform API", apiVersion))

	huma.Get(api, "/", handleRoot)

	// Event routes
	huma.Post(api, "/events/", eventHandler.HandleCreate)
	huma.Get(api, "/events/", eventHandler.HandleList)
	huma.Get(api, "/events/{event_id}", eventHandler.HandleGet)
	huma.Post(api, "/events/{event_id}/rsvp/deadline", eventHandler.HandleSetDeadline)

	// RSVP routes
	huma.Post(api, "/events/{event_id}/rsvp", rsvpHandler.HandleCreate)
	huma.Get(api, "/events/{event_id}/rsvps", rsvpHandler.HandleList)
	huma.Get(api, "/events/{event_id}/rsvp/status", rsvpHandler.HandleStatus)
	huma.Delete(api, "/events/{event_id}/rsvp", rsvpHandler.HandleCancel)
}

func handleRoot(ctx context.Context, input *struct{}) (*RootOutput, error) {
	res := &RootOutput{}
	res.Body.Message = "Event Platform API"
	res.Body.Version = apiVersion
	return res, nil
}
