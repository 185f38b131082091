package request

// MovieRequest replaces the whole movie on update; omitted genres or actors
// clear the corresponding links.
type MovieRequest struct {
	Decoded

	Title    *string  `json:"title" validate:"required,notblank,max=185"`
	Duration *int     `json:"duration" validate:"required,min=0,max=2147483647"`
	Genres   []string `json:"genres" validate:"dive,uuid"`
	Actors   []string `json:"actors" validate:"dive,uuid"`
}
