package adaptor

import (
	"encoding/json"
	"net/http"

	"theater-admin/internal/dto/request"
	"theater-admin/internal/usecase"
	"theater-admin/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// GetShowtimes handles GET /api/showtimes
func (h *ShowtimeHandler) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// LoadShowtimes handles POST /api/showtimes (bulk ingest)
func (h *ShowtimeHandler) LoadShowtimes(w http.ResponseWriter, r *http.Request) {
	var req request.ShowtimeBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtimes, err := h.service.Load(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "load showtimes")
		return
	}

	utils.ResponseCreated(w, "Showtimes loaded successfully", showtimes)
}
