package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/eventapp/event-platform-api/internal/config"
	"github.com/eventapp/event-platform-api/internal/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{DatabasePath: filepath.Join(t.TempDir(), "events.db")}
}

func TestConnectMigratesSchema(t *testing.T) {
	db := Connect(testConfig(t))

	event := models.Event{Title: "Meetup", Description: "desc", Date: time.Now(), Location: "Hall"}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("failed to insert event: %v", err)
	}
	if err := db.Create(&models.RSVP{EventID: event.ID, Name: "Ada", Email: "ada@example.com"}).Error; err != nil {
		t.Fatalf("failed to insert RSVP: %v", err)
	}

	var loaded models.Event
	if err := db.Preload("RSVPs").First(&loaded, event.ID).Error; err != nil {
		t.Fatalf("failed to load event: %v", err)
	}
	if len(loaded.RSVPs) != 1 {
		t.Errorf("expected 1 RSVP on event, got %d", len(loaded.RSVPs))
	}
}

func TestUniqueRSVPPerEventAndEmail(t *testing.T) {
	db := Connect(testConfig(t))

	event := models.Event{Title: "Meetup", Description: "desc", Date: time.Now(), Location: "Hall"}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("failed to insert event: %v", err)
	}

	if err := db.Create(&models.RSVP{EventID: event.ID, Name: "Ada", Email: "ada@example.com"}).Error; err != nil {
		t.Fatalf("first RSVP insert failed: %v", err)
	}
	if err := db.Create(&models.RSVP{EventID: event.ID, Name: "Dup", Email: "ada@example.com"}).Error; err == nil {
		t.Fatal("expected duplicate (event_id, email) insert to fail")
	}

	// The same email is fine on a different event.
	other := models.Event{Title: "Other", Description: "desc", Date: time.Now(), Location: "Hall"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("failed to insert second event: %v", err)
	}
	if err := db.Create(&models.RSVP{EventID: other.ID, Name: "Ada", Email: "ada@example.com"}).Error; err != nil {
		t.Fatalf("RSVP to second event failed: %v", err)
	}
}

// No delete endpoint exists yet; the cascade is a schema-level guarantee
// for when one is added.
func TestDeletingEventCascadesToRSVPs(t *testing.T) {
	db := Connect(testConfig(t))

	event := models.Event{Title: "Meetup", Description: "desc", Date: time.Now(), Location: "Hall"}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("failed to insert event: %v", err)
	}
	for _, email := range []string{"a@example.com", "b@example.com"} {
		if err := db.Create(&models.RSVP{EventID: event.ID, Name: "Guest", Email: email}).Error; err != nil {
			t.Fatalf("failed to insert RSVP: %v", err)
		}
	}

	if err := db.Delete(&models.Event{}, event.ID).Error; err != nil {
		t.Fatalf("failed to delete event: %v", err)
	}

	var count int64
	db.Model(&models.RSVP{}).Where("event_id = ?", event.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected RSVPs to be cascade-deleted, got %d remaining", count)
	}
}
