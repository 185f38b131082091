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

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindAll(ctx context.Context) ([]*entity.Seat, error)
	Update(ctx context.Context, seat *entity.Seat) error
}

type seatRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSeatRepository(db *gorm.DB, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	if err := r.db.WithContext(ctx).Create(seat).Error; err != nil {
		r.log.Error("Failed to create seat",
			zap.Error(err),
			zap.String("hall_id", seat.HallID.String()),
			zap.Int("row", seat.Row),
			zap.Int("number", seat.Number),
		)
		return fmt.Errorf("create seat in hall %s: %w", seat.HallID, err)
	}
	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	var seat entity.Seat
	err := r.db.WithContext(ctx).First(&seat, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return nil, fmt.Errorf("find seat by id: %w", err)
	}

	return &seat, nil
}

func (r *seatRepository) FindAll(ctx context.Context) ([]*entity.Seat, error) {
	var seats []*entity.Seat
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&seats).Error; err != nil {
		r.log.Error("Failed to list seats", zap.Error(err))
		return nil, fmt.Errorf("list seats: %w", err)
	}
	return seats, nil
}

func (r *seatRepository) Update(ctx context.Context, seat *entity.Seat) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Seat{}).
		Where("id = ?", seat.ID).
		Updates(map[string]any{
			"row":        seat.Row,
			"number":     seat.Number,
			"hall_id":    seat.HallID,
			"updated_at": seat.UpdatedAt,
		})
	if result.Error != nil {
		r.log.Error("Failed to update seat",
			zap.Error(result.Error),
			zap.String("seat_id", seat.ID.String()),
		)
		return fmt.Errorf("update seat %s: %w", seat.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update seat %s: %w", seat.ID, ErrNotFound)
	}
	return nil
}
