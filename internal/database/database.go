package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/eventapp/event-platform-api/internal/config"
	"github.com/eventapp/event-platform-api/internal/models"
)

// Connect opens the store and migrates the schema. A DATABASE_URL picks
// Postgres; otherwise a local sqlite file is used. The sqlite DSN turns
// foreign keys on so the RSVP cascade actually fires.
func Connect(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open("file:" + cfg.DatabasePath + "?_foreign_keys=on")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Auto Migrate
	if err := db.AutoMigrate(&models.Event{}, &models.RSVP{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to auto migrate")
	}

	return db
}
