package adaptor

import (
	"net/http"
	"strconv"

	"theater-admin/internal/dto/request"
	"theater-admin/internal/usecase"
	"theater-admin/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// GetReport handles GET /api/report
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.ReportRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	if raw := query.Get("room_id"); raw != "" {
		roomID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid room_id filter", nil)
			return
		}
		req.RoomID = &roomID
	}

	if raw := query.Get("movie_id"); raw != "" {
		movieID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid movie_id filter", nil)
			return
		}
		req.MovieID = &movieID
	}

	report, err := h.service.Generate(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "generate report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}
