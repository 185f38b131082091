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

type MovieScreeningService interface {
	GetMovieScreenings(ctx context.Context) ([]response.MovieScreeningResponse, error)
	GetMovieScreeningByID(ctx context.Context, screeningID string) (*response.MovieScreeningResponse, error)
	CreateMovieScreening(ctx context.Context, req *request.MovieScreeningRequest) (*response.MovieScreeningResponse, error)
	UpdateMovieScreening(ctx context.Context, screeningID string, req *request.MovieScreeningRequest) (*response.MovieScreeningResponse, error)
	DeleteMovieScreening(ctx context.Context, screeningID string) error
}

type movieScreeningService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieScreeningService(repo *repository.Repository, log *zap.Logger) MovieScreeningService {
	return &movieScreeningService{
		repo: repo,
		log:  log.With(zap.String("service", "movie_screening")),
	}
}

func validateMovieScreening(ctx context.Context, tx *repository.Repository, req *request.MovieScreeningRequest) error {
	return validate(ctx, tx, req,
		reference{field: "movie", table: entity.TableMovies, value: req.Movie},
		reference{field: "hall", table: entity.TableCinemaHalls, value: req.Hall},
	)
}

// screeningDate parses a date that already passed validation, keeping the
// microsecond precision the store supports.
func screeningDate(value string) time.Time {
	date, _ := time.Parse(time.RFC3339, value)
	return date.UTC().Truncate(time.Microsecond)
}

func (s *movieScreeningService) GetMovieScreenings(ctx context.Context) ([]response.MovieScreeningResponse, error) {
	screenings, err := s.repo.MovieScreening.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.MovieScreeningResponse, len(screenings))
	for i, screening := range screenings {
		resp[i] = response.MovieScreeningToResponse(screening)
	}
	return resp, nil
}

func (s *movieScreeningService) GetMovieScreeningByID(ctx context.Context, screeningID string) (*response.MovieScreeningResponse, error) {
	id, err := parseID("movie screening", screeningID)
	if err != nil {
		return nil, err
	}

	screening, err := s.repo.MovieScreening.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if screening == nil {
		return nil, notFound("movie screening", screeningID)
	}

	resp := response.MovieScreeningToResponse(screening)
	return &resp, nil
}

func (s *movieScreeningService) CreateMovieScreening(ctx context.Context, req *request.MovieScreeningRequest) (*response.MovieScreeningResponse, error) {
	var screening *entity.MovieScreening
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := validateMovieScreening(ctx, tx, req); err != nil {
			return err
		}

		screening = &entity.MovieScreening{
			Base:    entity.NewBase(),
			MovieID: uuid.MustParse(*req.Movie),
			HallID:  uuid.MustParse(*req.Hall),
			Date:    screeningDate(*req.Date),
		}
		return tx.MovieScreening.Create(ctx, screening)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Movie screening created",
		zap.String("screening_id", screening.ID.String()),
		zap.String("movie_id", screening.MovieID.String()),
		zap.String("hall_id", screening.HallID.String()),
		zap.Time("date", screening.Date),
	)

	resp := response.MovieScreeningToResponse(screening)
	return &resp, nil
}

func (s *movieScreeningService) UpdateMovieScreening(ctx context.Context, screeningID string, req *request.MovieScreeningRequest) (*response.MovieScreeningResponse, error) {
	id, err := parseID("movie screening", screeningID)
	if err != nil {
		return nil, err
	}

	var screening *entity.MovieScreening
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		found, err := tx.MovieScreening.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if found == nil {
			return notFound("movie screening", screeningID)
		}
		if err := validateMovieScreening(ctx, tx, req); err != nil {
			return err
		}

		found.MovieID = uuid.MustParse(*req.Movie)
		found.HallID = uuid.MustParse(*req.Hall)
		found.Date = screeningDate(*req.Date)
		found.UpdatedAt = time.Now().UTC()
		screening = found
		return tx.MovieScreening.Update(ctx, screening)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Movie screening updated", zap.String("screening_id", screeningID))

	resp := response.MovieScreeningToResponse(screening)
	return &resp, nil
}

// DeleteMovieScreening also deletes the screening's tickets.
func (s *movieScreeningService) DeleteMovieScreening(ctx context.Context, screeningID string) error {
	id, err := parseID("movie screening", screeningID)
	if err != nil {
		return err
	}
	return s.repo.Deleter.Delete(ctx, entity.TableMovieScreenings, id)
}
