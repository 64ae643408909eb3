package models

import (
	"time"
)

// RSVP records one attendee's intent to attend one event. The composite
// unique index is what makes "one RSVP per email per event" hold under
// concurrent submissions; the handler-level check only provides the
// friendly error message.
type RSVP struct {
	ID        uint      `gorm:"primarykey"`
	EventID   uint      `gorm:"not null;uniqueIndex:idx_event_email"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:100;not null;uniqueIndex:idx_event_email"`
	CreatedAt time.Time
}
