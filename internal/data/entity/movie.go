package entity

import (
	"time"
)

type Movie struct {
	ID          int64      `db:"movie_id"`
	Title       string     `db:"title"`
	Genre       *string    `db:"genre"`
	Duration    *int       `db:"duration"`
	ReleaseDate *time.Time `db:"release_date"`
}
