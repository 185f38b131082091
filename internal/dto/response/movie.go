package response

import (
	"fmt"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MovieResponse struct {
	ID       uuid.UUID   `json:"id"`
	Title    string      `json:"title"`
	Duration int         `json:"duration"`
	Genres   []uuid.UUID `json:"genres"`
	Actors   []uuid.UUID `json:"actors"`
}

// MovieToResponse expects GenreIDs and ActorIDs to be loaded.
func MovieToResponse(movie *entity.Movie) (MovieResponse, error) {
	var resp MovieResponse
	if err := copier.Copy(&resp, movie); err != nil {
		return MovieResponse{}, fmt.Errorf("copy movie response: %w", err)
	}

	resp.Genres = nonNil(movie.GenreIDs)
	resp.Actors = nonNil(movie.ActorIDs)
	return resp, nil
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
