package usecase

import (
	"context"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatService interface {
	GetSeats(ctx context.Context) ([]response.SeatResponse, error)
	GetSeatByID(ctx context.Context, seatID string) (*response.SeatResponse, error)
	CreateSeat(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error)
	UpdateSeat(ctx context.Context, seatID string, req *request.SeatRequest) (*response.SeatResponse, error)
	DeleteSeat(ctx context.Context, seatID string) error
}

type seatService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeatService(repo *repository.Repository, log *zap.Logger) SeatService {
	return &seatService{
		repo: repo,
		log:  log.With(zap.String("service", "seat")),
	}
}

func validateSeat(ctx context.Context, tx *repository.Repository, req *request.SeatRequest) error {
	return validate(ctx, tx, req,
		reference{field: "hall", table: entity.TableCinemaHalls, value: req.Hall},
	)
}

func (s *seatService) GetSeats(ctx context.Context) ([]response.SeatResponse, error) {
	seats, err := s.repo.Seat.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.SeatResponse, len(seats))
	for i, seat := range seats {
		resp[i] = response.SeatToResponse(seat)
	}
	return resp, nil
}

func (s *seatService) GetSeatByID(ctx context.Context, seatID string) (*response.SeatResponse, error) {
	id, err := parseID("seat", seatID)
	if err != nil {
		return nil, err
	}

	seat, err := s.repo.Seat.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seat == nil {
		return nil, notFound("seat", seatID)
	}

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *seatService) CreateSeat(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error) {
	var seat *entity.Seat
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := validateSeat(ctx, tx, req); err != nil {
			return err
		}

		seat = &entity.Seat{
			Base:   entity.NewBase(),
			Row:    *req.Row,
			Number: *req.Number,
			HallID: uuid.MustParse(*req.Hall),
		}
		return tx.Seat.Create(ctx, seat)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Seat created",
		zap.String("seat_id", seat.ID.String()),
		zap.String("hall_id", seat.HallID.String()),
	)

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *seatService) UpdateSeat(ctx context.Context, seatID string, req *request.SeatRequest) (*response.SeatResponse, error) {
	id, err := parseID("seat", seatID)
	if err != nil {
		return nil, err
	}

	var seat *entity.Seat
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		found, err := tx.Seat.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if found == nil {
			return notFound("seat", seatID)
		}
		if err := validateSeat(ctx, tx, req); err != nil {
			return err
		}

		found.Row = *req.Row
		found.Number = *req.Number
		found.HallID = uuid.MustParse(*req.Hall)
		found.UpdatedAt = time.Now().UTC()
		seat = found
		return tx.Seat.Update(ctx, seat)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Seat updated", zap.String("seat_id", seatID))

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

// DeleteSeat keeps tickets for the seat and clears their seat.
func (s *seatService) DeleteSeat(ctx context.Context, seatID string) error {
	id, err := parseID("seat", seatID)
	if err != nil {
		return err
	}
	return s.repo.Deleter.Delete(ctx, entity.TableSeats, id)
}
