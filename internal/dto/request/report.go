package request

type ReportRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	RoomID    *int64 `json:"room_id"`
	MovieID   *int64 `json:"movie_id"`
}
