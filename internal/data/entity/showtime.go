package entity

import (
	"time"
)

type Showtime struct {
	ID       int64     `db:"showtime_id"`
	MovieID  int64     `db:"movie_id"`
	RoomID   int64     `db:"room_id"`
	ShowDate time.Time `db:"show_date"`
	ShowTime string    `db:"show_time"` // HH:MM, time of day
}
