package entity

// MovieRoom is one row of the movie_room_association bridge table.
type MovieRoom struct {
	MovieID int64 `db:"movie_id"`
	RoomID  int64 `db:"room_id"`
}

// RoomLink is a (room id, room number) pair linked to a movie.
type RoomLink struct {
	RoomID     int64 `db:"room_id"`
	RoomNumber int   `db:"room_number"`
}
