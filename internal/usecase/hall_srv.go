package usecase

import (
	"context"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"

	"go.uber.org/zap"
)

type CinemaHallService interface {
	GetCinemaHalls(ctx context.Context) ([]response.CinemaHallResponse, error)
	GetCinemaHallByID(ctx context.Context, hallID string) (*response.CinemaHallResponse, error)
	CreateCinemaHall(ctx context.Context, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error)
	UpdateCinemaHall(ctx context.Context, hallID string, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error)
	DeleteCinemaHall(ctx context.Context, hallID string) error
}

type cinemaHallService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCinemaHallService(repo *repository.Repository, log *zap.Logger) CinemaHallService {
	return &cinemaHallService{
		repo: repo,
		log:  log.With(zap.String("service", "cinema_hall")),
	}
}

func (s *cinemaHallService) GetCinemaHalls(ctx context.Context) ([]response.CinemaHallResponse, error) {
	halls, err := s.repo.CinemaHall.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.CinemaHallResponse, len(halls))
	for i, hall := range halls {
		if resp[i], err = response.CinemaHallToResponse(hall); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (s *cinemaHallService) GetCinemaHallByID(ctx context.Context, hallID string) (*response.CinemaHallResponse, error) {
	id, err := parseID("cinema hall", hallID)
	if err != nil {
		return nil, err
	}

	hall, err := s.repo.CinemaHall.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, notFound("cinema hall", hallID)
	}

	resp, err := response.CinemaHallToResponse(hall)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *cinemaHallService) CreateCinemaHall(ctx context.Context, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error) {
	var hall *entity.CinemaHall
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := validate(ctx, tx, req); err != nil {
			return err
		}

		hall = &entity.CinemaHall{
			Base: entity.NewBase(),
			Name: *req.Name,
		}
		return tx.CinemaHall.Create(ctx, hall)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Cinema hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.String("name", hall.Name),
	)

	resp, err := response.CinemaHallToResponse(hall)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *cinemaHallService) UpdateCinemaHall(ctx context.Context, hallID string, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error) {
	id, err := parseID("cinema hall", hallID)
	if err != nil {
		return nil, err
	}

	var hall *entity.CinemaHall
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		found, err := tx.CinemaHall.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if found == nil {
			return notFound("cinema hall", hallID)
		}
		if err := validate(ctx, tx, req); err != nil {
			return err
		}

		found.Name = *req.Name
		found.UpdatedAt = time.Now().UTC()
		hall = found
		return tx.CinemaHall.Update(ctx, hall)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Cinema hall updated", zap.String("hall_id", hallID))

	resp, err := response.CinemaHallToResponse(hall)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteCinemaHall is refused while seats or screenings use the hall.
func (s *cinemaHallService) DeleteCinemaHall(ctx context.Context, hallID string) error {
	id, err := parseID("cinema hall", hallID)
	if err != nil {
		return err
	}
	return s.repo.Deleter.Delete(ctx, entity.TableCinemaHalls, id)
}
