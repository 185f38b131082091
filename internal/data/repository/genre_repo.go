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

type GenreRepository interface {
	Create(ctx context.Context, genre *entity.Genre) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error)
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	Update(ctx context.Context, genre *entity.Genre) error
}

type genreRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewGenreRepository(db *gorm.DB, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	if err := r.db.WithContext(ctx).Create(genre).Error; err != nil {
		r.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return fmt.Errorf("create genre %s: %w", genre.Name, err)
	}
	return nil
}

func (r *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	var genre entity.Genre
	err := r.db.WithContext(ctx).First(&genre, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return nil, fmt.Errorf("find genre by id: %w", err)
	}

	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	var genres []*entity.Genre
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&genres).Error; err != nil {
		r.log.Error("Failed to list genres", zap.Error(err))
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

func (r *genreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Genre{}).
		Where("id = ?", genre.ID).
		Updates(map[string]any{
			"name":          genre.Name,
			"is_for_adults": genre.IsForAdults,
			"updated_at":    genre.UpdatedAt,
		})
	if result.Error != nil {
		r.log.Error("Failed to update genre",
			zap.Error(result.Error),
			zap.String("genre_id", genre.ID.String()),
		)
		return fmt.Errorf("update genre %s: %w", genre.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update genre %s: %w", genre.ID, ErrNotFound)
	}
	return nil
}
