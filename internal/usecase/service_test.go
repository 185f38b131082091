package usecase

import (
	"context"
	"testing"

	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"
	"cinema-tickets/pkg/database"
	"cinema-tickets/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()

	db, err := database.OpenSQLite(":memory:", false, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })

	repo := repository.NewRepository(db, zap.NewNop())
	return NewService(repo, zap.NewNop()), repo
}

func ptr[T any](v T) *T { return &v }

// requireFieldErrors asserts err is a ValidationError and returns its fields.
func requireFieldErrors(t *testing.T, err error) utils.FieldErrors {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

// world creates rows through the services, failing the test on any error.
type world struct {
	t   *testing.T
	ctx context.Context
	svc *Service
}

func newWorld(t *testing.T) (*world, *repository.Repository) {
	svc, repo := newTestService(t)
	return &world{t: t, ctx: context.Background(), svc: svc}, repo
}

func (w *world) genre(name string) *response.GenreResponse {
	g, err := w.svc.Genre.CreateGenre(w.ctx, &request.GenreRequest{Name: ptr(name)})
	require.NoError(w.t, err)
	return g
}

func (w *world) actor(name string) *response.ActorResponse {
	a, err := w.svc.Actor.CreateActor(w.ctx, &request.ActorRequest{
		Name:        ptr(name),
		Age:         ptr(50),
		Nationality: ptr("American"),
	})
	require.NoError(w.t, err)
	return a
}

func (w *world) movie(title string, genres, actors []string) *response.MovieResponse {
	m, err := w.svc.Movie.CreateMovie(w.ctx, &request.MovieRequest{
		Title:    ptr(title),
		Duration: ptr(117),
		Genres:   genres,
		Actors:   actors,
	})
	require.NoError(w.t, err)
	return m
}

func (w *world) hall(name string) *response.CinemaHallResponse {
	h, err := w.svc.CinemaHall.CreateCinemaHall(w.ctx, &request.CinemaHallRequest{Name: ptr(name)})
	require.NoError(w.t, err)
	return h
}

func (w *world) seat(hall string) *response.SeatResponse {
	s, err := w.svc.Seat.CreateSeat(w.ctx, &request.SeatRequest{Row: ptr(1), Number: ptr(7), Hall: ptr(hall)})
	require.NoError(w.t, err)
	return s
}

func (w *world) screening(movie, hall string) *response.MovieScreeningResponse {
	s, err := w.svc.MovieScreening.CreateMovieScreening(w.ctx, &request.MovieScreeningRequest{
		Movie: ptr(movie),
		Date:  ptr("2024-05-01T20:00:00+02:00"),
		Hall:  ptr(hall),
	})
	require.NoError(w.t, err)
	return s
}

func (w *world) ticket(screening string, seat *string) *response.TicketResponse {
	tk, err := w.svc.Ticket.CreateTicket(w.ctx, &request.TicketRequest{
		MovieScreening: ptr(screening),
		Seat:           seat,
		Price:          ptr(12),
	})
	require.NoError(w.t, err)
	return tk
}
