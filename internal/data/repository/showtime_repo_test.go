package repository

import (
	"context"
	"errors"
	"testing"

	"theater-admin/internal/data/entity"
	"theater-admin/pkg/utils"
)

func TestShowtimeBatchLoad(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()

	movieID := insertMovie(t, db, "Inception")
	roomID := insertRoom(t, db, 1, 3)

	batch := []*entity.Showtime{
		{MovieID: movieID, RoomID: roomID, ShowDate: date(t, "2024-06-02"), ShowTime: "20:00"},
		{MovieID: movieID, RoomID: roomID, ShowDate: date(t, "2024-06-01"), ShowTime: "18:00"},
	}
	if err := repo.Showtime.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("CreateBatch() error = %v", err)
	}
	for _, showtime := range batch {
		if showtime.ID == 0 {
			t.Error("CreateBatch() did not set a generated id")
		}
	}

	showtimes, err := repo.Showtime.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(showtimes) != 2 {
		t.Fatalf("FindAll() returned %d showtimes, want 2", len(showtimes))
	}
	// Listing is ordered by show date then time
	if showtimes[0].ShowDate.Format("2006-01-02") != "2024-06-01" {
		t.Errorf("first showtime date = %v, want 2024-06-01", showtimes[0].ShowDate)
	}
}

func TestShowtimeBatchUnknownMovieRollsBack(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()

	movieID := insertMovie(t, db, "Inception")
	roomID := insertRoom(t, db, 1, 3)

	batch := []*entity.Showtime{
		{MovieID: movieID, RoomID: roomID, ShowDate: date(t, "2024-06-01"), ShowTime: "18:00"},
		{MovieID: 999, RoomID: roomID, ShowDate: date(t, "2024-06-02"), ShowTime: "20:00"},
	}
	err := repo.Showtime.CreateBatch(ctx, batch)
	if !errors.Is(err, utils.ErrReferential) {
		t.Fatalf("CreateBatch(unknown movie) error = %v, want ErrReferential", err)
	}

	// The whole batch fails, nothing is inserted
	showtimes, err := repo.Showtime.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(showtimes) != 0 {
		t.Errorf("partial batch survived: %d showtimes, want 0", len(showtimes))
	}
}

func TestShowtimeBatchUnknownRoom(t *testing.T) {
	repo, db := newTestRepository(t)

	movieID := insertMovie(t, db, "Inception")

	err := repo.Showtime.CreateBatch(context.Background(), []*entity.Showtime{
		{MovieID: movieID, RoomID: 999, ShowDate: date(t, "2024-06-01"), ShowTime: "18:00"},
	})
	if !errors.Is(err, utils.ErrReferential) {
		t.Errorf("CreateBatch(unknown room) error = %v, want ErrReferential", err)
	}
}

func TestShowtimeEmptyBatch(t *testing.T) {
	repo, _ := newTestRepository(t)

	if err := repo.Showtime.CreateBatch(context.Background(), nil); err != nil {
		t.Errorf("CreateBatch(nil) error = %v, want nil", err)
	}
}
