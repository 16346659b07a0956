package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"theater-admin/internal/dto/request"
	"theater-admin/internal/usecase"
	"theater-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// CreateMovie handles POST /api/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovie handles PUT /api/movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.Update(r.Context(), movieID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// DeleteMovie handles DELETE /api/movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), movieID); err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

// GetMovieRooms handles GET /api/movies/{id}/rooms
func (h *MovieHandler) GetMovieRooms(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	rooms, err := h.service.Rooms(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// ReplaceMovieRooms handles PUT /api/movies/{id}/rooms
func (h *MovieHandler) ReplaceMovieRooms(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req request.AssociationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ReplaceRooms(r.Context(), movieID, req.RoomIDs); err != nil {
		handleServiceError(w, h.log, err, "replace movie rooms")
		return
	}

	utils.ResponseSuccess(w, "Movie rooms updated successfully", nil)
}

func (h *MovieHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return 0, false
	}
	return id, true
}
