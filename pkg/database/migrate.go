package database

import (
	"fmt"
	"time"

	"cinema-tickets/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every persisted entity in dependency order.
func Models() []any {
	return []any{
		&entity.Genre{},
		&entity.Actor{},
		&entity.Movie{},
		&entity.MovieGenre{},
		&entity.MovieActor{},
		&entity.CinemaHall{},
		&entity.Seat{},
		&entity.MovieScreening{},
		&entity.Ticket{},
		&entity.User{},
	}
}

// Migrate creates or updates the schema, including foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// gormConfig logs failed and slow statements through log, and every
// statement when debug is set.
func gormConfig(debug bool, log *zap.Logger) *gorm.Config {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return &gorm.Config{
		Logger:         newGormLogger(log, level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}
