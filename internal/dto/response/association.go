package response

import (
	"theater-admin/internal/data/entity"
)

type RoomLinkResponse struct {
	RoomID     int64 `json:"room_id"`
	RoomNumber int   `json:"room_number"`
}

func RoomLinksToResponse(links []*entity.RoomLink) []RoomLinkResponse {
	responses := make([]RoomLinkResponse, len(links))
	for i, link := range links {
		responses[i] = RoomLinkResponse{
			RoomID:     link.RoomID,
			RoomNumber: link.RoomNumber,
		}
	}
	return responses
}
