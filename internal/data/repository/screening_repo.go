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

type MovieScreeningRepository interface {
	Create(ctx context.Context, screening *entity.MovieScreening) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieScreening, error)
	FindAll(ctx context.Context) ([]*entity.MovieScreening, error)
	Update(ctx context.Context, screening *entity.MovieScreening) error
}

type movieScreeningRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMovieScreeningRepository(db *gorm.DB, log *zap.Logger) MovieScreeningRepository {
	return &movieScreeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_screening")),
	}
}

func (r *movieScreeningRepository) Create(ctx context.Context, screening *entity.MovieScreening) error {
	if err := r.db.WithContext(ctx).Create(screening).Error; err != nil {
		r.log.Error("Failed to create movie screening",
			zap.Error(err),
			zap.String("movie_id", screening.MovieID.String()),
			zap.String("hall_id", screening.HallID.String()),
			zap.Time("date", screening.Date),
		)
		return fmt.Errorf("create screening for movie %s hall %s: %w",
			screening.MovieID, screening.HallID, err)
	}
	return nil
}

func (r *movieScreeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieScreening, error) {
	var screening entity.MovieScreening
	err := r.db.WithContext(ctx).First(&screening, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie screening by ID",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening by id: %w", err)
	}

	return &screening, nil
}

func (r *movieScreeningRepository) FindAll(ctx context.Context) ([]*entity.MovieScreening, error) {
	var screenings []*entity.MovieScreening
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&screenings).Error; err != nil {
		r.log.Error("Failed to list movie screenings", zap.Error(err))
		return nil, fmt.Errorf("list screenings: %w", err)
	}
	return screenings, nil
}

func (r *movieScreeningRepository) Update(ctx context.Context, screening *entity.MovieScreening) error {
	result := r.db.WithContext(ctx).
		Model(&entity.MovieScreening{}).
		Where("id = ?", screening.ID).
		Updates(map[string]any{
			"movie_id":   screening.MovieID,
			"hall_id":    screening.HallID,
			"date":       screening.Date,
			"updated_at": screening.UpdatedAt,
		})
	if result.Error != nil {
		r.log.Error("Failed to update movie screening",
			zap.Error(result.Error),
			zap.String("screening_id", screening.ID.String()),
		)
		return fmt.Errorf("update screening %s: %w", screening.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update screening %s: %w", screening.ID, ErrNotFound)
	}
	return nil
}
