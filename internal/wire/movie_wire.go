package wire

import (
	"cinema-tickets/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireMovie mounts genres, actors and movies.
func wireMovie(r chi.Router, handler *adaptor.Handler) {
	r.Route("/api/genres", func(r chi.Router) {
		r.Get("/", handler.Genre.GetGenres)
		r.Post("/", handler.Genre.CreateGenre)
		r.Get("/{id}", handler.Genre.GetGenreByID)
		r.Put("/{id}", handler.Genre.UpdateGenre)
		r.Delete("/{id}", handler.Genre.DeleteGenre)
	})

	r.Route("/api/actors", func(r chi.Router) {
		r.Get("/", handler.Actor.GetActors)
		r.Post("/", handler.Actor.CreateActor)
		r.Get("/{id}", handler.Actor.GetActorByID)
		r.Put("/{id}", handler.Actor.UpdateActor)
		r.Delete("/{id}", handler.Actor.DeleteActor)
	})

	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", handler.Movie.GetMovies)
		r.Post("/", handler.Movie.CreateMovie)
		r.Get("/{id}", handler.Movie.GetMovieByID)
		r.Put("/{id}", handler.Movie.UpdateMovie)
		r.Delete("/{id}", handler.Movie.DeleteMovie)
	})
}
