package response

import (
	"fmt"
	"time"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CinemaHallResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SeatResponse struct {
	ID     uuid.UUID `json:"id"`
	Row    int       `json:"row"`
	Number int       `json:"number"`
	Hall   uuid.UUID `json:"hall"`
}

type MovieScreeningResponse struct {
	ID    uuid.UUID `json:"id"`
	Movie uuid.UUID `json:"movie"`
	Date  string    `json:"date"`
	Hall  uuid.UUID `json:"hall"`
}

type TicketResponse struct {
	ID             uuid.UUID  `json:"id"`
	MovieScreening uuid.UUID  `json:"movie_screening"`
	Seat           *uuid.UUID `json:"seat"`
	Price          int        `json:"price"`
}

// Helper converters
func CinemaHallToResponse(hall *entity.CinemaHall) (CinemaHallResponse, error) {
	var resp CinemaHallResponse
	if err := copier.Copy(&resp, hall); err != nil {
		return CinemaHallResponse{}, fmt.Errorf("copy cinema hall response: %w", err)
	}
	return resp, nil
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:     seat.ID,
		Row:    seat.Row,
		Number: seat.Number,
		Hall:   seat.HallID,
	}
}

// microsecondTime is RFC 3339 with the six-digit fraction the store keeps.
const microsecondTime = "2006-01-02T15:04:05.000000Z07:00"

// FormatDate writes t in UTC, with microseconds only when it has any.
func FormatDate(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond() == 0 {
		return t.Format(time.RFC3339)
	}
	return t.Format(microsecondTime)
}

func MovieScreeningToResponse(screening *entity.MovieScreening) MovieScreeningResponse {
	return MovieScreeningResponse{
		ID:    screening.ID,
		Movie: screening.MovieID,
		Date:  FormatDate(screening.Date),
		Hall:  screening.HallID,
	}
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:             ticket.ID,
		MovieScreening: ticket.MovieScreeningID,
		Seat:           ticket.SeatID,
		Price:          ticket.Price,
	}
}
