package repository

import (
	"context"
	"testing"
	"time"

	"theater-admin/internal/data/entity"
	"theater-admin/pkg/database"

	"go.uber.org/zap"
)

// newTestDB opens a fresh in-memory store with the full schema.
func newTestDB(t *testing.T) database.DBIface {
	t.Helper()

	db, err := database.InitDB(":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func newTestRepository(t *testing.T) (*Repository, database.DBIface) {
	t.Helper()

	db := newTestDB(t)
	return NewRepository(db, zap.NewNop()), db
}

func insertRoom(t *testing.T, db database.DBIface, roomNumber, maxCapacity int) int64 {
	t.Helper()

	result, err := db.Exec(context.Background(),
		`INSERT INTO rooms (room_number, max_capacity) VALUES (?, ?)`,
		roomNumber, maxCapacity,
	)
	if err != nil {
		t.Fatalf("insert room %d: %v", roomNumber, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("room id: %v", err)
	}
	return id
}

func insertMovie(t *testing.T, db database.DBIface, title string) int64 {
	t.Helper()

	result, err := db.Exec(context.Background(),
		`INSERT INTO movies (title, genre, duration, release_date) VALUES (?, ?, ?, ?)`,
		title, "Drama", 120, "2020-01-01",
	)
	if err != nil {
		t.Fatalf("insert movie %q: %v", title, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("movie id: %v", err)
	}
	return id
}

func insertShowtime(t *testing.T, db database.DBIface, movieID, roomID int64, date, clock string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO showtimes (movie_id, room_id, show_date, show_time) VALUES (?, ?, ?, ?)`,
		movieID, roomID, date, clock,
	)
	if err != nil {
		t.Fatalf("insert showtime %s %s: %v", date, clock, err)
	}
}

func date(t *testing.T, s string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return parsed
}

func roomIDsOf(links []*entity.RoomLink) []int64 {
	ids := make([]int64, len(links))
	for i, link := range links {
		ids[i] = link.RoomID
	}
	return ids
}
