package wire

import (
	"theater-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler) {
	// Rooms are read-only: they originate from seeding
	r.Get("/api/rooms", roomHandler.GetRooms)
}
