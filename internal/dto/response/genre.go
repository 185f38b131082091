package response

import (
	"fmt"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GenreResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	IsForAdults bool      `json:"is_for_adults"`
}

type ActorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Nationality string    `json:"nationality"`
}

// Helper converters
func GenreToResponse(genre *entity.Genre) (GenreResponse, error) {
	var resp GenreResponse
	if err := copier.Copy(&resp, genre); err != nil {
		return GenreResponse{}, fmt.Errorf("copy genre response: %w", err)
	}
	return resp, nil
}

func ActorToResponse(actor *entity.Actor) (ActorResponse, error) {
	var resp ActorResponse
	if err := copier.Copy(&resp, actor); err != nil {
		return ActorResponse{}, fmt.Errorf("copy actor response: %w", err)
	}
	return resp, nil
}
