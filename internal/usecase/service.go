package usecase

import (
	"cinema-tickets/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	User           UserService
	Genre          GenreService
	Actor          ActorService
	Movie          MovieService
	CinemaHall     CinemaHallService
	Seat           SeatService
	MovieScreening MovieScreeningService
	Ticket         TicketService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		User:           NewUserService(repo.User, log),
		Genre:          NewGenreService(repo, log),
		Actor:          NewActorService(repo, log),
		Movie:          NewMovieService(repo, log),
		CinemaHall:     NewCinemaHallService(repo, log),
		Seat:           NewSeatService(repo, log),
		MovieScreening: NewMovieScreeningService(repo, log),
		Ticket:         NewTicketService(repo, log),
	}
}
