package handlers

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"

	"github.com/eventapp/event-platform-api/internal/models"
)

type RSVPHandler struct {
	db *gorm.DB
}

func NewRSVPHandler(db *gorm.DB) *RSVPHandler {
	return &RSVPHandler{db: db}
}

type CreateRSVPRequest struct {
	EventID int64 `path:"event_id" doc:"ID of the event"`
	Body    struct {
		Name  string `json:"name" doc:"Attendee name"`
		Email string `json:"email" doc:"Attendee email, unique per event"`
	}
}

type RSVPOutput struct {
	Body RSVPResponse
}

type RSVPListOutput struct {
	Body []RSVPResponse
}

func (h *RSVPHandler) HandleCreate(ctx context.Context, input *CreateRSVPRequest) (*RSVPOutput, error) {
	name := strings.TrimSpace(input.Body.Name)
	email := strings.TrimSpace(input.Body.Email)
	if name == "" || email == "" {
		return nil, huma.Error400BadRequest("name and email are required")
	}

	var rsvp models.RSVP
	err := h.db.Transaction(func(tx *gorm.DB) error {
		// 1. The event must exist before anything else is checked.
		var event models.Event
		if err := tx.First(&event, input.EventID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return huma.Error404NotFound("Event not found")
			}
			return err
		}

		// 2. One RSVP per email per event. The unique index on
		// (event_id, email) backs this check under concurrent requests.
		var existing models.RSVP
		err := tx.Where("event_id = ? AND email = ?", event.ID, email).First(&existing).Error
		if err == nil {
			return huma.Error400BadRequest("Already RSVP'd with this email for this event")
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		// 3. Create the RSVP.
		rsvp = models.RSVP{EventID: event.ID, Name: name, Email: email}
		return tx.Create(&rsvp).Error
	})
	if err != nil {
		return nil, transactionError(err, "Failed to create RSVP")
	}

	res := &RSVPOutput{}
	res.Body = newRSVPResponse(rsvp)
	return res, nil
}

type ListRSVPsRequest struct {
	EventID int64 `path:"event_id" doc:"ID of the event"`
}

func (h *RSVPHandler) HandleList(ctx context.Context, input *ListRSVPsRequest) (*RSVPListOutput, error) {
	var event models.Event
	if err := h.db.First(&event, input.EventID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, huma.Error404NotFound("Event not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load event: " + err.Error())
	}

	var rsvps []models.RSVP
	if err := h.db.Where("event_id = ?", event.ID).Order("id asc").Find(&rsvps).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list RSVPs: " + err.Error())
	}

	res := &RSVPListOutput{Body: make([]RSVPResponse, 0, len(rsvps))}
	for _, rsvp := range rsvps {
		res.Body = append(res.Body, newRSVPResponse(rsvp))
	}
	return res, nil
}

type RSVPByEmailRequest struct {
	EventID int64  `path:"event_id" doc:"ID of the event"`
	Email   string `query:"email" required:"true" doc:"Email the RSVP was made with"`
}

// findRSVP resolves the (event, email) pair shared by the status and
// cancel operations, checking event existence first.
func (h *RSVPHandler) findRSVP(db *gorm.DB, eventID int64, email string) (models.RSVP, error) {
	var rsvp models.RSVP

	var event models.Event
	if err := db.First(&event, eventID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return rsvp, huma.Error404NotFound("Event not found")
		}
		return rsvp, err
	}

	err := db.Where("event_id = ? AND email = ?", event.ID, email).First(&rsvp).Error
	if err == gorm.ErrRecordNotFound {
		return rsvp, huma.Error404NotFound("RSVP not found")
	}
	return rsvp, err
}

func (h *RSVPHandler) HandleStatus(ctx context.Context, input *RSVPByEmailRequest) (*RSVPOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, huma.Error400BadRequest("email is required")
	}

	rsvp, err := h.findRSVP(h.db, input.EventID, email)
	if err != nil {
		return nil, transactionError(err, "Failed to look up RSVP")
	}

	res := &RSVPOutput{}
	res.Body = newRSVPResponse(rsvp)
	return res, nil
}

// HandleCancel hard-deletes the RSVP so the same email can RSVP again
// later, and returns the deleted row's data.
func (h *RSVPHandler) HandleCancel(ctx context.Context, input *RSVPByEmailRequest) (*RSVPOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, huma.Error400BadRequest("email is required")
	}

	var rsvp models.RSVP
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var err error
		rsvp, err = h.findRSVP(tx, input.EventID, email)
		if err != nil {
			return err
		}
		return tx.Delete(&rsvp).Error
	})
	if err != nil {
		return nil, transactionError(err, "Failed to cancel RSVP")
	}

	res := &RSVPOutput{}
	res.Body = newRSVPResponse(rsvp)
	return res, nil
}
