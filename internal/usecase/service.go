package usecase

import (
	"theater-admin/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Room     RoomService
	Report   ReportService
	Seed     SeedService
	Showtime ShowtimeService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:    NewMovieService(repo, log),
		Room:     NewRoomService(repo.Room, log),
		Report:   NewReportService(repo.Report, log),
		Seed:     NewSeedService(repo.Seed, log),
		Showtime: NewShowtimeService(repo.Showtime, log),
	}
}
