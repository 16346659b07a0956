package request

type ShowtimeRequest struct {
	MovieID  int64  `json:"movie_id" validate:"required"`
	RoomID   int64  `json:"room_id" validate:"required"`
	ShowDate string `json:"show_date" validate:"required,datetime=2006-01-02"`
	ShowTime string `json:"show_time" validate:"required,datetime=15:04"`
}

// ShowtimeBatchRequest is the bulk ingest payload for external loaders.
type ShowtimeBatchRequest struct {
	Showtimes []ShowtimeRequest `json:"showtimes" validate:"required,min=1,dive"`
}
