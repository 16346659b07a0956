package response

import (
	"theater-admin/internal/data/entity"
)

type RoomResponse struct {
	ID          int64 `json:"id"`
	RoomNumber  int   `json:"room_number"`
	MaxCapacity *int  `json:"max_capacity,omitempty"`
}

func RoomsToResponse(rooms []*entity.Room) []RoomResponse {
	responses := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = RoomResponse{
			ID:          room.ID,
			RoomNumber:  room.RoomNumber,
			MaxCapacity: room.MaxCapacity,
		}
	}
	return responses
}
