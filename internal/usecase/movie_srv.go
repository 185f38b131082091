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

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func validateMovie(ctx context.Context, tx *repository.Repository, req *request.MovieRequest) error {
	refs := referencesOf("genres", entity.TableGenres, req.Genres)
	refs = append(refs, referencesOf("actors", entity.TableActors, req.Actors)...)
	return validate(ctx, tx, req, refs...)
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	genres, err := s.repo.MovieGenre.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	actors, err := s.repo.MovieActor.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movie.GenreIDs = genres[movie.ID]
		movie.ActorIDs = actors[movie.ID]
		if resp[i], err = response.MovieToResponse(movie); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := parseID("movie", movieID)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, notFound("movie", movieID)
	}

	if err := s.loadLinks(ctx, s.repo, movie); err != nil {
		return nil, err
	}

	resp, err := response.MovieToResponse(movie)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	var movie *entity.Movie
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := validateMovie(ctx, tx, req); err != nil {
			return err
		}

		movie = &entity.Movie{
			Base:     entity.NewBase(),
			Title:    *req.Title,
			Duration: *req.Duration,
			GenreIDs: parseIDs(req.Genres),
			ActorIDs: parseIDs(req.Actors),
		}
		if err := tx.Movie.Create(ctx, movie); err != nil {
			return err
		}
		return s.saveLinks(ctx, tx, movie)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Int("genre_count", len(movie.GenreIDs)),
		zap.Int("actor_count", len(movie.ActorIDs)),
	)

	resp, err := response.MovieToResponse(movie)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateMovie replaces every field, including the genre and actor sets.
func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error) {
	id, err := parseID("movie", movieID)
	if err != nil {
		return nil, err
	}

	var movie *entity.Movie
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		found, err := tx.Movie.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if found == nil {
			return notFound("movie", movieID)
		}
		if err := validateMovie(ctx, tx, req); err != nil {
			return err
		}

		found.Title = *req.Title
		found.Duration = *req.Duration
		found.GenreIDs = parseIDs(req.Genres)
		found.ActorIDs = parseIDs(req.Actors)
		found.UpdatedAt = time.Now().UTC()
		movie = found
		if err := tx.Movie.Update(ctx, movie); err != nil {
			return err
		}
		return s.saveLinks(ctx, tx, movie)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Movie updated", zap.String("movie_id", movieID))

	resp, err := response.MovieToResponse(movie)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteMovie is refused while screenings show the movie. Genre and actor
// links are dropped with it.
func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := parseID("movie", movieID)
	if err != nil {
		return err
	}
	return s.repo.Deleter.Delete(ctx, entity.TableMovies, id)
}

func (s *movieService) saveLinks(ctx context.Context, tx *repository.Repository, movie *entity.Movie) error {
	if err := tx.MovieGenre.Replace(ctx, movie.ID, movie.GenreIDs); err != nil {
		return err
	}
	return tx.MovieActor.Replace(ctx, movie.ID, movie.ActorIDs)
}

func (s *movieService) loadLinks(ctx context.Context, repo *repository.Repository, movie *entity.Movie) error {
	var err error
	if movie.GenreIDs, err = repo.MovieGenre.FindByMovieID(ctx, movie.ID); err != nil {
		return err
	}
	if movie.ActorIDs, err = repo.MovieActor.FindByMovieID(ctx, movie.ID); err != nil {
		return err
	}
	return nil
}
