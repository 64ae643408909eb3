package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"

	"github.com/eventapp/event-platform-api/internal/models"
	"github.com/eventapp/event-platform-api/internal/uploader"
)

// dateLayout is the only accepted format for event dates and RSVP
// deadlines: YYYY-MM-DD HH:MM.
const dateLayout = "2006-01-02 15:04"

type EventHandler struct {
	db       *gorm.DB
	uploader uploader.Uploader
}

func NewEventHandler(db *gorm.DB, uploader uploader.Uploader) *EventHandler {
	return &EventHandler{db: db, uploader: uploader}
}

type CreateEventRequest struct {
	RawBody multipart.Form
}

type EventOutput struct {
	Body EventResponse
}

type EventListOutput struct {
	Body []EventResponse
}

func (h *EventHandler) HandleCreate(ctx context.Context, input *CreateEventRequest) (*EventOutput, error) {
	form := &input.RawBody

	title := formValue(form, "title")
	description := formValue(form, "description")
	dateStr := formValue(form, "date")
	location := formValue(form, "location")
	if title == "" || description == "" || dateStr == "" || location == "" {
		return nil, huma.Error400BadRequest("title, description, date and location are required")
	}

	eventDate, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid date format. Use YYYY-MM-DD HH:MM")
	}

	// Upload before touching the store so a failed upload leaves no row.
	var flyerURL *string
	if fh := formFile(form, "flyer"); fh != nil {
		url, err := h.uploadFlyer(ctx, fh)
		if err != nil {
			return nil, huma.Error400BadRequest("Failed to upload flyer: " + err.Error())
		}
		flyerURL = &url
	}

	event := models.Event{
		Title:       title,
		Description: description,
		Date:        eventDate,
		Location:    location,
		FlyerURL:    flyerURL,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&event).Error
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to create event: " + err.Error())
	}

	res := &EventOutput{}
	res.Body = newEventResponse(event)
	return res, nil
}

func (h *EventHandler) HandleList(ctx context.Context, input *struct{}) (*EventListOutput, error) {
	var events []models.Event
	if err := h.db.Preload("RSVPs").Order("date desc").Find(&events).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list events: " + err.Error())
	}

	res := &EventListOutput{Body: make([]EventResponse, 0, len(events))}
	for _, event := range events {
		res.Body = append(res.Body, newEventResponse(event))
	}
	return res, nil
}

type GetEventRequest struct {
	EventID int64 `path:"event_id" doc:"ID of the event"`
}

func (h *EventHandler) HandleGet(ctx context.Context, input *GetEventRequest) (*EventOutput, error) {
	var event models.Event
	if err := h.db.Preload("RSVPs").First(&event, input.EventID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, huma.Error404NotFound("Event not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load event: " + err.Error())
	}

	res := &EventOutput{}
	res.Body = newEventResponse(event)
	return res, nil
}

type SetDeadlineRequest struct {
	EventID int64 `path:"event_id" doc:"ID of the event"`
	Body    struct {
		Deadline string `json:"deadline" doc:"Last moment RSVPs should be accepted, in YYYY-MM-DD HH:MM format"`
	}
}

// HandleSetDeadline stores an advisory RSVP cutoff on the event. The
// deadline is not enforced when RSVPs are created.
func (h *EventHandler) HandleSetDeadline(ctx context.Context, input *SetDeadlineRequest) (*EventOutput, error) {
	deadline, err := time.Parse(dateLayout, strings.TrimSpace(input.Body.Deadline))
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid date format. Use YYYY-MM-DD HH:MM")
	}

	var event models.Event
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, input.EventID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return huma.Error404NotFound("Event not found")
			}
			return err
		}

		event.RSVPDeadline = &deadline
		if err := tx.Model(&event).Update("rsvp_deadline", deadline).Error; err != nil {
			return err
		}

		return tx.Where("event_id = ?", event.ID).Find(&event.RSVPs).Error
	})
	if err != nil {
		return nil, transactionError(err, "Failed to set RSVP deadline")
	}

	res := &EventOutput{}
	res.Body = newEventResponse(event)
	return res, nil
}

func (h *EventHandler) uploadFlyer(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if h.uploader == nil {
		return "", errors.New("media uploader is not configured")
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return h.uploader.Upload(ctx, f)
}

func formValue(form *multipart.Form, key string) string {
	if vs := form.Value[key]; len(vs) > 0 {
		return strings.TrimSpace(vs[0])
	}
	return ""
}

func formFile(form *multipart.Form, key string) *multipart.FileHeader {
	if fhs := form.File[key]; len(fhs) > 0 && fhs[0].Filename != "" {
		return fhs[0]
	}
	return nil
}

// transactionError keeps typed API errors raised inside a transaction
// intact and wraps everything else as a store failure.
func transactionError(err error, msg string) error {
	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return err
	}
	return huma.Error500InternalServerError(msg + ": " + err.Error())
}
