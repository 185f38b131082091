package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Repository struct {
	db  *gorm.DB
	log *zap.Logger

	User           UserRepository
	Genre          GenreRepository
	Actor          ActorRepository
	Movie          MovieRepository
	MovieGenre     MovieLinkRepository
	MovieActor     MovieLinkRepository
	CinemaHall     CinemaHallRepository
	Seat           SeatRepository
	MovieScreening MovieScreeningRepository
	Ticket         TicketRepository
	Deleter        Deleter
}

func NewRepository(db *gorm.DB, log *zap.Logger) *Repository {
	return &Repository{
		db:             db,
		log:            log,
		User:           NewUserRepository(db, log),
		Genre:          NewGenreRepository(db, log),
		Actor:          NewActorRepository(db, log),
		Movie:          NewMovieRepository(db, log),
		MovieGenre:     NewMovieGenreRepository(db, log),
		MovieActor:     NewMovieActorRepository(db, log),
		CinemaHall:     NewCinemaHallRepository(db, log),
		Seat:           NewSeatRepository(db, log),
		MovieScreening: NewMovieScreeningRepository(db, log),
		Ticket:         NewTicketRepository(db, log),
		Deleter:        NewDeleter(db, DefaultRegistry(), log),
	}
}

// Transaction runs fn with every repository bound to one transaction.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx, r.log))
	})
}

// ReferenceExists reports whether table holds a row with id and keeps it
// locked against deletion until the surrounding transaction ends.
func (r *Repository) ReferenceExists(ctx context.Context, table string, id uuid.UUID) (bool, error) {
	found, err := lockRow(r.db.WithContext(ctx), table, id, lockShare)
	if err != nil {
		r.log.Error("Failed to check reference",
			zap.Error(err),
			zap.String("table", table),
			zap.String("id", id.String()),
		)
		return false, err
	}
	return found, nil
}

// Ping checks the underlying connection.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
