package adaptor

import (
	"net/http"

	"theater-admin/internal/usecase"
	"theater-admin/pkg/utils"

	"go.uber.org/zap"
)

type SeedHandler struct {
	service usecase.SeedService
	log     *zap.Logger
}

func NewSeedHandler(service usecase.SeedService, log *zap.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		log:     log.With(zap.String("handler", "seed")),
	}
}

// SeedDemoData handles POST /api/seed
func (h *SeedHandler) SeedDemoData(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SeedIfEmpty(r.Context()); err != nil {
		handleServiceError(w, h.log, err, "seed demo data")
		return
	}

	utils.ResponseSuccess(w, "Demo data seeded", nil)
}
