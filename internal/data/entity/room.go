package entity

type Room struct {
	ID          int64 `db:"room_id"`
	RoomNumber  int   `db:"room_number"`
	MaxCapacity *int  `db:"max_capacity"`
}
