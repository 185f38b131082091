package request

type CinemaHallRequest struct {
	Decoded

	Name *string `json:"name" validate:"required,notblank,max=20"`
}

type SeatRequest struct {
	Decoded

	Row    *int    `json:"row" validate:"required,min=0,max=2147483647"`
	Number *int    `json:"number" validate:"required,min=0,max=2147483647"`
	Hall   *string `json:"hall" validate:"required,uuid"`
}

type MovieScreeningRequest struct {
	Decoded

	Movie *string `json:"movie" validate:"required,uuid"`
	Date  *string `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Hall  *string `json:"hall" validate:"required,uuid"`
}

// TicketRequest leaves the ticket without a seat when seat is null or omitted.
type TicketRequest struct {
	Decoded

	MovieScreening *string `json:"movie_screening" validate:"required,uuid"`
	Seat           *string `json:"seat" validate:"omitempty,uuid"`
	Price          *int    `json:"price" validate:"required,min=0,max=2147483647"`
}
