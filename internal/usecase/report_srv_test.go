package usecase

import (
	"context"
	"errors"
	"testing"

	"theater-admin/internal/dto/request"
	"theater-admin/pkg/utils"
)

func TestReportRequiresValidDates(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  request.ReportRequest
	}{
		{"missing start", request.ReportRequest{EndDate: "2024-12-31"}},
		{"missing end", request.ReportRequest{StartDate: "2024-01-01"}},
		{"bad format", request.ReportRequest{StartDate: "01/01/2024", EndDate: "2024-12-31"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Report.Generate(ctx, &tt.req)
			if !errors.Is(err, utils.ErrValidation) {
				t.Errorf("Generate() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestReportEmptyStoreReturnsEmpty(t *testing.T) {
	service := newTestService(t)

	report, err := service.Report.Generate(context.Background(), &request.ReportRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
	})
	if err != nil {
		t.Fatalf("Generate() on empty store error = %v", err)
	}
	if len(report) != 0 {
		t.Errorf("Generate() on empty store returned %d rows, want 0", len(report))
	}
}

func TestReportReversedRangeExecutes(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	if err := service.Seed.SeedIfEmpty(ctx); err != nil {
		t.Fatalf("SeedIfEmpty() error = %v", err)
	}

	// Reversed ranges are not validation failures, they just match nothing
	report, err := service.Report.Generate(ctx, &request.ReportRequest{
		StartDate: "2024-12-31",
		EndDate:   "2024-01-01",
	})
	if err != nil {
		t.Fatalf("Generate() with reversed range error = %v", err)
	}
	if len(report) != 0 {
		t.Errorf("reversed range returned %d rows, want 0", len(report))
	}
}

func TestReportEndToEnd(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	if err := service.Seed.SeedIfEmpty(ctx); err != nil {
		t.Fatalf("SeedIfEmpty() error = %v", err)
	}
	movies, err := service.Movie.List(ctx)
	if err != nil {
		t.Fatalf("List movies error = %v", err)
	}
	rooms, err := service.Room.List(ctx)
	if err != nil {
		t.Fatalf("List rooms error = %v", err)
	}

	if _, err := service.Showtime.Load(ctx, &request.ShowtimeBatchRequest{
		Showtimes: []request.ShowtimeRequest{
			{MovieID: movies[0].ID, RoomID: rooms[0].ID, ShowDate: "2024-06-01", ShowTime: "18:00"},
			{MovieID: movies[1].ID, RoomID: rooms[1].ID, ShowDate: "2024-06-02", ShowTime: "20:30"},
		},
	}); err != nil {
		t.Fatalf("Load showtimes error = %v", err)
	}

	report, err := service.Report.Generate(ctx, &request.ReportRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
		MovieID:   &movies[0].ID,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(report) != 1 {
		t.Fatalf("rows = %d, want 1", len(report))
	}
	row := report[0]
	if row.MovieTitle != "Inception" {
		t.Errorf("MovieTitle = %q, want Inception", row.MovieTitle)
	}
	if row.ShowDate != "2024-06-01" || row.ShowTime != "18:00" {
		t.Errorf("show = %s %s, want 2024-06-01 18:00", row.ShowDate, row.ShowTime)
	}
	if row.RoomNumber != 1 {
		t.Errorf("RoomNumber = %d, want 1", row.RoomNumber)
	}
	if row.Duration == nil || *row.Duration != 148 {
		t.Errorf("Duration = %v, want 148", row.Duration)
	}
}
