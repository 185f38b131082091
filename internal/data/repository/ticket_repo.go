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

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindAll(ctx context.Context) ([]*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
}

type ticketRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTicketRepository(db *gorm.DB, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	if err := r.db.WithContext(ctx).Create(ticket).Error; err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("screening_id", ticket.MovieScreeningID.String()),
		)
		return fmt.Errorf("create ticket for screening %s: %w", ticket.MovieScreeningID, err)
	}
	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find ticket by id: %w", err)
	}

	return &ticket, nil
}

func (r *ticketRepository) FindAll(ctx context.Context) ([]*entity.Ticket, error) {
	var tickets []*entity.Ticket
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&tickets).Error; err != nil {
		r.log.Error("Failed to list tickets", zap.Error(err))
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *entity.Ticket) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Ticket{}).
		Where("id = ?", ticket.ID).
		Updates(map[string]any{
			"movie_screening_id": ticket.MovieScreeningID,
			"seat_id":            ticket.SeatID,
			"price":              ticket.Price,
			"updated_at":         ticket.UpdatedAt,
		})
	if result.Error != nil {
		r.log.Error("Failed to update ticket",
			zap.Error(result.Error),
			zap.String("ticket_id", ticket.ID.String()),
		)
		return fmt.Errorf("update ticket %s: %w", ticket.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update ticket %s: %w", ticket.ID, ErrNotFound)
	}
	return nil
}
