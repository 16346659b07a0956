package response

import (
	"theater-admin/internal/data/entity"
)

type ShowtimeResponse struct {
	ID       int64  `json:"id"`
	MovieID  int64  `json:"movie_id"`
	RoomID   int64  `json:"room_id"`
	ShowDate string `json:"show_date"`
	ShowTime string `json:"show_time"`
}

func ShowtimesToResponse(showtimes []*entity.Showtime) []ShowtimeResponse {
	responses := make([]ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		responses[i] = ShowtimeResponse{
			ID:       showtime.ID,
			MovieID:  showtime.MovieID,
			RoomID:   showtime.RoomID,
			ShowDate: showtime.ShowDate.Format("2006-01-02"),
			ShowTime: showtime.ShowTime,
		}
	}
	return responses
}
