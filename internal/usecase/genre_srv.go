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

type GenreService interface {
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	UpdateGenre(ctx context.Context, genreID string, req *request.GenreRequest) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, genreID string) error
}

type genreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		if resp[i], err = response.GenreToResponse(genre); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (s *genreService) GetGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error) {
	id, err := parseID("genre", genreID)
	if err != nil {
		return nil, err
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, notFound("genre", genreID)
	}

	resp, err := response.GenreToResponse(genre)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	var genre *entity.Genre
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := validate(ctx, tx, req); err != nil {
			return err
		}

		genre = &entity.Genre{
			Base: entity.NewBase(),
			Name: *req.Name,
		}
		if req.IsForAdults != nil {
			genre.IsForAdults = *req.IsForAdults
		}
		return tx.Genre.Create(ctx, genre)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Genre created",
		zap.String("genre_id", genre.ID.String()),
		zap.String("name", genre.Name),
	)

	resp, err := response.GenreToResponse(genre)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *genreService) UpdateGenre(ctx context.Context, genreID string, req *request.GenreRequest) (*response.GenreResponse, error) {
	id, err := parseID("genre", genreID)
	if err != nil {
		return nil, err
	}

	var genre *entity.Genre
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		found, err := tx.Genre.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if found == nil {
			return notFound("genre", genreID)
		}
		genre = found
		if err := validate(ctx, tx, req); err != nil {
			return err
		}

		genre.Name = *req.Name
		genre.IsForAdults = req.IsForAdults != nil && *req.IsForAdults
		genre.UpdatedAt = time.Now().UTC()
		return tx.Genre.Update(ctx, genre)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Genre updated", zap.String("genre_id", genreID))

	resp, err := response.GenreToResponse(genre)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, genreID string) error {
	id, err := parseID("genre", genreID)
	if err != nil {
		return err
	}
	return s.repo.Deleter.Delete(ctx, entity.TableGenres, id)
}
