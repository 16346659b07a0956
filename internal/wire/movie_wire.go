package wire

import (
	"theater-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)
		r.Post("/", movieHandler.CreateMovie)
		r.Put("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)

		// Movie-room associations, replaced as a complete set
		r.Get("/{id}/rooms", movieHandler.GetMovieRooms)
		r.Put("/{id}/rooms", movieHandler.ReplaceMovieRooms)
	})
}
