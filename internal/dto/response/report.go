package response

import (
	"theater-admin/internal/data/entity"
)

type ReportRowResponse struct {
	MovieTitle string `json:"movie_title"`
	ShowDate   string `json:"show_date"`
	ShowTime   string `json:"show_time"`
	RoomNumber int    `json:"room_number"`
	Duration   *int   `json:"duration,omitempty"`
}

func ReportToResponse(report []*entity.ReportRow) []ReportRowResponse {
	responses := make([]ReportRowResponse, len(report))
	for i, row := range report {
		responses[i] = ReportRowResponse{
			MovieTitle: row.MovieTitle,
			ShowDate:   row.ShowDate.Format("2006-01-02"),
			ShowTime:   row.ShowTime,
			RoomNumber: row.RoomNumber,
			Duration:   row.Duration,
		}
	}
	return responses
}
