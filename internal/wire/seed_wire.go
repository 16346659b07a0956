package wire

import (
	"theater-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeed(r chi.Router, seedHandler *adaptor.SeedHandler) {
	r.Post("/api/seed", seedHandler.SeedDemoData)
}
