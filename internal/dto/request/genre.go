package request

// Pointer fields let validation tell a missing field from a zero value.

type GenreRequest struct {
	Decoded

	Name        *string `json:"name" validate:"required,notblank,max=50"`
	IsForAdults *bool   `json:"is_for_adults"`
}

type ActorRequest struct {
	Decoded

	Name        *string `json:"name" validate:"required,notblank,max=80"`
	Age         *int    `json:"age" validate:"required,min=0,max=2147483647"`
	Nationality *string `json:"nationality" validate:"required,notblank,max=54"`
}
