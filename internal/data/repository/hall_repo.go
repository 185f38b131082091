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

type CinemaHallRepository interface {
	Create(ctx context.Context, hall *entity.CinemaHall) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CinemaHall, error)
	FindAll(ctx context.Context) ([]*entity.CinemaHall, error)
	Update(ctx context.Context, hall *entity.CinemaHall) error
}

type cinemaHallRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCinemaHallRepository(db *gorm.DB, log *zap.Logger) CinemaHallRepository {
	return &cinemaHallRepository{
		db:  db,
		log: log.With(zap.String("repository", "cinema_hall")),
	}
}

func (r *cinemaHallRepository) Create(ctx context.Context, hall *entity.CinemaHall) error {
	if err := r.db.WithContext(ctx).Create(hall).Error; err != nil {
		r.log.Error("Failed to create cinema hall",
			zap.Error(err),
			zap.String("name", hall.Name),
		)
		return fmt.Errorf("create cinema hall %s: %w", hall.Name, err)
	}
	return nil
}

func (r *cinemaHallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CinemaHall, error) {
	var hall entity.CinemaHall
	err := r.db.WithContext(ctx).First(&hall, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cinema hall by ID",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return nil, fmt.Errorf("find cinema hall by ID %s: %w", id, err)
	}

	return &hall, nil
}

func (r *cinemaHallRepository) FindAll(ctx context.Context) ([]*entity.CinemaHall, error) {
	var halls []*entity.CinemaHall
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&halls).Error; err != nil {
		r.log.Error("Failed to list cinema halls", zap.Error(err))
		return nil, fmt.Errorf("list cinema halls: %w", err)
	}
	return halls, nil
}

func (r *cinemaHallRepository) Update(ctx context.Context, hall *entity.CinemaHall) error {
	result := r.db.WithContext(ctx).
		Model(&entity.CinemaHall{}).
		Where("id = ?", hall.ID).
		Updates(map[string]any{
			"name":       hall.Name,
			"updated_at": hall.UpdatedAt,
		})
	if result.Error != nil {
		r.log.Error("Failed to update cinema hall",
			zap.Error(result.Error),
			zap.String("hall_id", hall.ID.String()),
		)
		return fmt.Errorf("update cinema hall %s: %w", hall.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update cinema hall %s: %w", hall.ID, ErrNotFound)
	}
	return nil
}
