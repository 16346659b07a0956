package request

// MovieRequest covers both create and update: the operation overwrites all
// four fields.
type MovieRequest struct {
	Title       string  `json:"title" validate:"required"`
	Genre       *string `json:"genre"`
	Duration    *int    `json:"duration" validate:"omitempty,gte=0"`
	ReleaseDate *string `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
}
