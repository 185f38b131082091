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

type TicketService interface {
	GetTickets(ctx context.Context) ([]response.TicketResponse, error)
	GetTicketByID(ctx context.Context, ticketID string) (*response.TicketResponse, error)
	CreateTicket(ctx context.Context, req *request.TicketRequest) (*response.TicketResponse, error)
	UpdateTicket(ctx context.Context, ticketID string, req *request.TicketRequest) (*response.TicketResponse, error)
	DeleteTicket(ctx context.Context, ticketID string) error
}

type ticketService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTicketService(repo *repository.Repository, log *zap.Logger) TicketService {
	return &ticketService{
		repo: repo,
		log:  log.With(zap.String("service", "ticket")),
	}
}

func validateTicket(ctx context.Context, tx *repository.Repository, req *request.TicketRequest) error {
	return validate(ctx, tx, req,
		reference{field: "movie_screening", table: entity.TableMovieScreenings, value: req.MovieScreening},
		reference{field: "seat", table: entity.TableSeats, value: req.Seat},
	)
}

func ticketSeat(seat *string) *uuid.UUID {
	if seat == nil {
		return nil
	}
	id := uuid.MustParse(*seat)
	return &id
}

func (s *ticketService) GetTickets(ctx context.Context) ([]response.TicketResponse, error) {
	tickets, err := s.repo.Ticket.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		resp[i] = response.TicketToResponse(ticket)
	}
	return resp, nil
}

func (s *ticketService) GetTicketByID(ctx context.Context, ticketID string) (*response.TicketResponse, error) {
	id, err := parseID("ticket", ticketID)
	if err != nil {
		return nil, err
	}

	ticket, err := s.repo.Ticket.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, notFound("ticket", ticketID)
	}

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *ticketService) CreateTicket(ctx context.Context, req *request.TicketRequest) (*response.TicketResponse, error) {
	var ticket *entity.Ticket
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := validateTicket(ctx, tx, req); err != nil {
			return err
		}

		ticket = &entity.Ticket{
			Base:             entity.NewBase(),
			MovieScreeningID: uuid.MustParse(*req.MovieScreening),
			SeatID:           ticketSeat(req.Seat),
			Price:            *req.Price,
		}
		return tx.Ticket.Create(ctx, ticket)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Ticket created",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("screening_id", ticket.MovieScreeningID.String()),
		zap.Int("price", ticket.Price),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *ticketService) UpdateTicket(ctx context.Context, ticketID string, req *request.TicketRequest) (*response.TicketResponse, error) {
	id, err := parseID("ticket", ticketID)
	if err != nil {
		return nil, err
	}

	var ticket *entity.Ticket
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		found, err := tx.Ticket.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if found == nil {
			return notFound("ticket", ticketID)
		}
		if err := validateTicket(ctx, tx, req); err != nil {
			return err
		}

		found.MovieScreeningID = uuid.MustParse(*req.MovieScreening)
		found.SeatID = ticketSeat(req.Seat)
		found.Price = *req.Price
		found.UpdatedAt = time.Now().UTC()
		ticket = found
		return tx.Ticket.Update(ctx, ticket)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Ticket updated", zap.String("ticket_id", ticketID))

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *ticketService) DeleteTicket(ctx context.Context, ticketID string) error {
	id, err := parseID("ticket", ticketID)
	if err != nil {
		return err
	}
	return s.repo.Deleter.Delete(ctx, entity.TableTickets, id)
}
