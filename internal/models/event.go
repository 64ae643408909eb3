package models

import (
	"time"
)

// Event is an organized occurrence attendees can RSVP to. Rows are
// write-once except RSVPDeadline, which has its own update endpoint.
type Event struct {
	ID           uint       `gorm:"primarykey"`
	Title        string     `gorm:"size:255;not null"`
	Description  string     `gorm:"type:text;not null"`
	Date         time.Time  `gorm:"not null"`
	Location     string     `gorm:"size:255;not null"`
	FlyerURL     *string    `gorm:"type:text"`
	RSVPDeadline *time.Time
	CreatedAt    time.Time

	// Deleting an event deletes its RSVPs at the schema level. No
	// delete endpoint exists yet, so this only matters for migrations
	// and future endpoints.
	RSVPs []RSVP `gorm:"constraint:OnDelete:CASCADE"`
}
