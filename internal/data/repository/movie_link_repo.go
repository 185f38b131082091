package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MovieLinkRepository manages one many-to-many table hanging off movies.
type MovieLinkRepository interface {
	// Replace makes linkedIDs the complete link set of movieID, in order.
	Replace(ctx context.Context, movieID uuid.UUID, linkedIDs []uuid.UUID) error
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]uuid.UUID, error)
	// FindAll groups every link by movie.
	FindAll(ctx context.Context) (map[uuid.UUID][]uuid.UUID, error)
}

type movieLinkRepository struct {
	db        *gorm.DB
	log       *zap.Logger
	table     string
	linkedCol string
}

func NewMovieGenreRepository(db *gorm.DB, log *zap.Logger) MovieLinkRepository {
	return &movieLinkRepository{
		db:        db,
		log:       log.With(zap.String("repository", "movie_genre")),
		table:     entity.TableMovieGenres,
		linkedCol: "genre_id",
	}
}

func NewMovieActorRepository(db *gorm.DB, log *zap.Logger) MovieLinkRepository {
	return &movieLinkRepository{
		db:        db,
		log:       log.With(zap.String("repository", "movie_actor")),
		table:     entity.TableMovieActors,
		linkedCol: "actor_id",
	}
}

func (r *movieLinkRepository) Replace(ctx context.Context, movieID uuid.UUID, linkedIDs []uuid.UUID) error {
	db := r.db.WithContext(ctx)

	query := fmt.Sprintf("DELETE FROM %s WHERE movie_id = ?", r.table)
	if err := db.Exec(query, movieID).Error; err != nil {
		r.log.Error("Failed to clear movie links",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("clear %s for movie %s: %w", r.table, movieID, err)
	}

	query = fmt.Sprintf("INSERT INTO %s (movie_id, %s, position, created_at) VALUES (?, ?, ?, ?)", r.table, r.linkedCol)
	now := time.Now().UTC()
	seen := make(map[uuid.UUID]bool, len(linkedIDs))
	for _, linkedID := range linkedIDs {
		if seen[linkedID] {
			continue
		}
		position := len(seen)
		seen[linkedID] = true

		if err := db.Exec(query, movieID, linkedID, position, now).Error; err != nil {
			r.log.Error("Failed to link movie",
				zap.Error(err),
				zap.String("movie_id", movieID.String()),
				zap.String(r.linkedCol, linkedID.String()),
			)
			return fmt.Errorf("link movie %s to %s: %w", movieID, linkedID, err)
		}
	}

	return nil
}

func (r *movieLinkRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]uuid.UUID, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE movie_id = ? ORDER BY position", r.linkedCol, r.table)

	rows, err := r.db.WithContext(ctx).Raw(query, movieID).Rows()
	if err != nil {
		r.log.Error("Failed to find movie links",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find %s by movie id: %w", r.table, err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			r.log.Error("Failed to scan movie link row", zap.Error(err))
			return nil, fmt.Errorf("scan %s row: %w", r.table, err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *movieLinkRepository) FindAll(ctx context.Context) (map[uuid.UUID][]uuid.UUID, error) {
	query := fmt.Sprintf("SELECT movie_id, %s FROM %s ORDER BY movie_id, position", r.linkedCol, r.table)

	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		r.log.Error("Failed to list movie links", zap.Error(err))
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()

	links := make(map[uuid.UUID][]uuid.UUID)
	for rows.Next() {
		var movieID, linkedID uuid.UUID
		if err := rows.Scan(&movieID, &linkedID); err != nil {
			r.log.Error("Failed to scan movie link row", zap.Error(err))
			return nil, fmt.Errorf("scan %s row: %w", r.table, err)
		}
		links[movieID] = append(links[movieID], linkedID)
	}

	return links, rows.Err()
}
