package request

// AssociationRequest sets the complete room list for a movie.
type AssociationRequest struct {
	RoomIDs []int64 `json:"room_ids"`
}
