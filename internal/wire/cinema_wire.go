package wire

import (
	"cinema-tickets/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCinema mounts halls, seats, screenings and tickets.
func wireCinema(r chi.Router, handler *adaptor.Handler) {
	r.Route("/api/cinema-halls", func(r chi.Router) {
		r.Get("/", handler.CinemaHall.GetCinemaHalls)
		r.Post("/", handler.CinemaHall.CreateCinemaHall)
		r.Get("/{id}", handler.CinemaHall.GetCinemaHallByID)
		r.Put("/{id}", handler.CinemaHall.UpdateCinemaHall)
		r.Delete("/{id}", handler.CinemaHall.DeleteCinemaHall)
	})

	r.Route("/api/seats", func(r chi.Router) {
		r.Get("/", handler.Seat.GetSeats)
		r.Post("/", handler.Seat.CreateSeat)
		r.Get("/{id}", handler.Seat.GetSeatByID)
		r.Put("/{id}", handler.Seat.UpdateSeat)
		r.Delete("/{id}", handler.Seat.DeleteSeat)
	})

	r.Route("/api/screenings", func(r chi.Router) {
		r.Get("/", handler.MovieScreening.GetMovieScreenings)
		r.Post("/", handler.MovieScreening.CreateMovieScreening)
		r.Get("/{id}", handler.MovieScreening.GetMovieScreeningByID)
		r.Put("/{id}", handler.MovieScreening.UpdateMovieScreening)
		r.Delete("/{id}", handler.MovieScreening.DeleteMovieScreening)
	})

	r.Route("/api/tickets", func(r chi.Router) {
		r.Get("/", handler.Ticket.GetTickets)
		r.Post("/", handler.Ticket.CreateTicket)
		r.Get("/{id}", handler.Ticket.GetTicketByID)
		r.Put("/{id}", handler.Ticket.UpdateTicket)
		r.Delete("/{id}", handler.Ticket.DeleteTicket)
	})
}
