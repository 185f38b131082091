package repository

import (
	"testing"

	"cinema-tickets/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_IncomingOrdersProtectFirst(t *testing.T) {
	registry := NewRegistry(
		Relation{Source: "a", Column: "x_id", Target: "x", OnDelete: Detach},
		Relation{Source: "b", Column: "x_id", Target: "x", OnDelete: SetNull},
		Relation{Source: "c", Column: "x_id", Target: "x", OnDelete: Protect},
		Relation{Source: "d", Column: "x_id", Target: "x", OnDelete: Cascade},
		Relation{Source: "e", Column: "x_id", Target: "x", OnDelete: Protect},
	)

	var sources []string
	for _, rel := range registry.Incoming("x") {
		sources = append(sources, rel.Source)
	}
	assert.Equal(t, []string{"c", "e", "d", "b", "a"}, sources)
	assert.Len(t, registry.AllRelations(), 5)
	assert.Empty(t, registry.Incoming("y"))
}

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()

	tests := []struct {
		target string
		want   []string
	}{
		{entity.TableCinemaHalls, []string{"seats.hall_id", "movie_screenings.hall_id"}},
		{entity.TableMovies, []string{"movie_screenings.movie_id", "movie_genres.movie_id", "movie_actors.movie_id"}},
		{entity.TableMovieScreenings, []string{"tickets.movie_screening_id"}},
		{entity.TableSeats, []string{"tickets.seat_id"}},
		{entity.TableGenres, []string{"movie_genres.genre_id"}},
		{entity.TableActors, []string{"movie_actors.actor_id"}},
		{entity.TableTickets, nil},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			var got []string
			for _, rel := range registry.Incoming(tt.target) {
				got = append(got, rel.Name())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOnDelete_String(t *testing.T) {
	assert.Equal(t, "protect", Protect.String())
	assert.Equal(t, "cascade", Cascade.String())
	assert.Equal(t, "set_null", SetNull.String())
	assert.Equal(t, "detach", Detach.String())
	assert.Equal(t, "unknown", OnDelete(42).String())
}
