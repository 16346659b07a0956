package adaptor

import (
	"errors"
	"net/http"

	"theater-admin/internal/usecase"
	"theater-admin/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie    *MovieHandler
	Room     *RoomHandler
	Report   *ReportHandler
	Seed     *SeedHandler
	Showtime *ShowtimeHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:    NewMovieHandler(service.Movie, log),
		Room:     NewRoomHandler(service.Room, log),
		Report:   NewReportHandler(service.Report, log),
		Seed:     NewSeedHandler(service.Seed, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
	}
}

// handleServiceError maps service error kinds to HTTP responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, utils.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, utils.ErrReferential):
		log.Warn(operation+" failed - referential integrity", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
