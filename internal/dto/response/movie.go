package response

import (
	"theater-admin/internal/data/entity"
)

type MovieResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Genre       *string `json:"genre,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	ReleaseDate *string `json:"release_date,omitempty"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	resp := MovieResponse{
		ID:       movie.ID,
		Title:    movie.Title,
		Genre:    movie.Genre,
		Duration: movie.Duration,
	}
	if movie.ReleaseDate != nil {
		date := movie.ReleaseDate.Format("2006-01-02")
		resp.ReleaseDate = &date
	}
	return resp
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	responses := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = MovieToResponse(movie)
	}
	return responses
}
