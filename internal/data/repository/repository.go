package repository

import (
	"theater-admin/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie     MovieRepository
	Room      RoomRepository
	MovieRoom MovieRoomRepository
	Showtime  ShowtimeRepository
	Report    ReportRepository
	Seed      SeedRepository
}

func NewRepository(db database.DBIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:     NewMovieRepository(db, log),
		Room:      NewRoomRepository(db, log),
		MovieRoom: NewMovieRoomRepository(db, log),
		Showtime:  NewShowtimeRepository(db, log),
		Report:    NewReportRepository(db, log),
		Seed:      NewSeedRepository(db, log),
	}
}
