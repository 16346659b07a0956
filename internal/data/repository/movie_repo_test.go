package repository

import (
	"context"
	"errors"
	"testing"

	"theater-admin/internal/data/entity"
	"theater-admin/pkg/utils"
)

func TestMovieCreateAndList(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	genre := "Sci-Fi"
	duration := 155
	releaseDate := date(t, "2021-10-22")
	movie := &entity.Movie{
		Title:       "Dune",
		Genre:       &genre,
		Duration:    &duration,
		ReleaseDate: &releaseDate,
	}

	if err := repo.Movie.Create(ctx, movie); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if movie.ID == 0 {
		t.Fatal("Create() did not set a generated id")
	}

	movies, err := repo.Movie.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("FindAll() returned %d movies, want 1", len(movies))
	}

	got := movies[0]
	if got.ID != movie.ID {
		t.Errorf("ID = %d, want %d", got.ID, movie.ID)
	}
	if got.Title != "Dune" {
		t.Errorf("Title = %q, want %q", got.Title, "Dune")
	}
	if got.Genre == nil || *got.Genre != "Sci-Fi" {
		t.Errorf("Genre = %v, want Sci-Fi", got.Genre)
	}
	if got.Duration == nil || *got.Duration != 155 {
		t.Errorf("Duration = %v, want 155", got.Duration)
	}
	if got.ReleaseDate == nil || !got.ReleaseDate.Equal(releaseDate) {
		t.Errorf("ReleaseDate = %v, want %v", got.ReleaseDate, releaseDate)
	}
}

func TestMovieGeneratedIDsDistinct(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	seen := make(map[int64]bool)
	for _, title := range []string{"First", "Second", "Third"} {
		movie := &entity.Movie{Title: title}
		if err := repo.Movie.Create(ctx, movie); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
		if seen[movie.ID] {
			t.Errorf("generated id %d repeated", movie.ID)
		}
		seen[movie.ID] = true
	}
}

func TestMovieOptionalFieldsNull(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	movie := &entity.Movie{Title: "Bare"}
	if err := repo.Movie.Create(ctx, movie); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.Movie.FindByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got == nil {
		t.Fatal("FindByID() returned nil for existing movie")
	}
	if got.Genre != nil || got.Duration != nil || got.ReleaseDate != nil {
		t.Errorf("optional fields should be nil, got genre=%v duration=%v release=%v",
			got.Genre, got.Duration, got.ReleaseDate)
	}
}

func TestMovieListOrderedByInsertion(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	titles := []string{"Zeta", "Alpha", "Mid"}
	for _, title := range titles {
		if err := repo.Movie.Create(ctx, &entity.Movie{Title: title}); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
	}

	movies, err := repo.Movie.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(movies) != len(titles) {
		t.Fatalf("FindAll() returned %d movies, want %d", len(movies), len(titles))
	}
	for i, title := range titles {
		if movies[i].Title != title {
			t.Errorf("movies[%d].Title = %q, want %q", i, movies[i].Title, title)
		}
	}
}

func TestMovieUpdate(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	genre := "Sci-Fi"
	duration := 155
	releaseDate := date(t, "2021-10-22")
	movie := &entity.Movie{Title: "Dune", Genre: &genre, Duration: &duration, ReleaseDate: &releaseDate}
	if err := repo.Movie.Create(ctx, movie); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	movie.Title = "Dune: Part One"
	if err := repo.Movie.Update(ctx, movie); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	movies, err := repo.Movie.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("FindAll() returned %d movies after update, want 1", len(movies))
	}
	if movies[0].Title != "Dune: Part One" {
		t.Errorf("Title after update = %q, want %q", movies[0].Title, "Dune: Part One")
	}
}

func TestMovieUpdateNotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	err := repo.Movie.Update(context.Background(), &entity.Movie{ID: 999, Title: "Ghost"})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMovieDeleteNotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	err := repo.Movie.Delete(context.Background(), 999)
	if !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMovieDeleteRemovesAssociations(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()

	movieID := insertMovie(t, db, "Linked")
	roomID := insertRoom(t, db, 1, 3)
	otherRoomID := insertRoom(t, db, 2, 2)

	if err := repo.MovieRoom.ReplaceForMovie(ctx, movieID, []int64{roomID, otherRoomID}); err != nil {
		t.Fatalf("ReplaceForMovie() error = %v", err)
	}

	if err := repo.Movie.Delete(ctx, movieID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	links, err := repo.MovieRoom.FindRoomsByMovieID(ctx, movieID)
	if err != nil {
		t.Fatalf("FindRoomsByMovieID() error = %v", err)
	}
	if len(links) != 0 {
		t.Errorf("associations survived delete: %v", roomIDsOf(links))
	}

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM movie_room_association`).Scan(&count); err != nil {
		t.Fatalf("count associations: %v", err)
	}
	if count != 0 {
		t.Errorf("association table has %d orphaned rows, want 0", count)
	}
}
