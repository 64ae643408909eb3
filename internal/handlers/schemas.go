package handlers

import (
	"time"

	"github.com/eventapp/event-platform-api/internal/models"
)

// Response projections are kept separate from the gorm models so the
// wire shape does not drift with storage changes.

type RSVPResponse struct {
	ID        uint      `json:"id"`
	EventID   uint      `json:"event_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type EventResponse struct {
	ID           uint           `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Date         time.Time      `json:"date"`
	Location     string         `json:"location"`
	FlyerURL     *string        `json:"flyer_url"`
	RSVPDeadline *time.Time     `json:"rsvp_deadline"`
	CreatedAt    time.Time      `json:"created_at"`
	RSVPs        []RSVPResponse `json:"rsvps"`
}

func newRSVPResponse(rsvp models.RSVP) RSVPResponse {
	return RSVPResponse{
		ID:        rsvp.ID,
		EventID:   rsvp.EventID,
		Name:      rsvp.Name,
		Email:     rsvp.Email,
		CreatedAt: rsvp.CreatedAt,
	}
}

func newEventResponse(event models.Event) EventResponse {
	// rsvps must marshal as [], never null.
	rsvps := make([]RSVPResponse, 0, len(event.RSVPs))
	for _, rsvp := range event.RSVPs {
		rsvps = append(rsvps, newRSVPResponse(rsvp))
	}

	return EventResponse{
		ID:           event.ID,
		Title:        event.Title,
		Description:  event.Description,
		Date:         event.Date,
		Location:     event.Location,
		FlyerURL:     event.FlyerURL,
		RSVPDeadline: event.RSVPDeadline,
		CreatedAt:    event.CreatedAt,
		RSVPs:        rsvps,
	}
}
