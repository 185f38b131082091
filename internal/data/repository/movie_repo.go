package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MovieRepository stores the movies table only; links live in MovieLinkRepository.
type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
}

type movieRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMovieRepository(db *gorm.DB, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	if err := r.db.WithContext(ctx).Create(movie).Error; err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}
	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	var movie entity.Movie
	err := r.db.WithContext(ctx).First(&movie, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by id: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&movies).Error; err != nil {
		r.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Movie{}).
		Where("id = ?", movie.ID).
		Updates(map[string]any{
			"title":      movie.Title,
			"duration":   movie.Duration,
			"updated_at": movie.UpdatedAt,
		})
	if result.Error != nil {
		r.log.Error("Failed to update movie",
			zap.Error(result.Error),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update movie %s: %w", movie.ID, ErrNotFound)
	}
	return nil
}
