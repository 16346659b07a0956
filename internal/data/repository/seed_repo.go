package repository

import (
	"context"
	"fmt"

	"theater-admin/pkg/database"

	"go.uber.org/zap"
)

// SeedRepository inserts the fixed demonstration data, gated on table
// emptiness so repeat calls are no-ops.
type SeedRepository interface {
	SeedIfEmpty(ctx context.Context) error
}

type seedRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewSeedRepository(db database.DBIface, log *zap.Logger) SeedRepository {
	return &seedRepository{
		db:  db,
		log: log.With(zap.String("repository", "seed")),
	}
}

func (r *seedRepository) SeedIfEmpty(ctx context.Context) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin seed transaction", zap.Error(err))
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	var roomCount int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&roomCount); err != nil {
		return fmt.Errorf("count rooms: %w", err)
	}

	var firstRoomID int64
	roomsSeeded := false
	if roomCount == 0 {
		result, err := tx.ExecContext(ctx, `INSERT INTO rooms (room_number, max_capacity) VALUES (?, ?)`, 1, 3)
		if err != nil {
			return fmt.Errorf("seed room 1: %w", err)
		}
		if firstRoomID, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("read seeded room id: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO rooms (room_number, max_capacity) VALUES (?, ?)`, 2, 2); err != nil {
			return fmt.Errorf("seed room 2: %w", err)
		}
		roomsSeeded = true
	}

	var movieCount int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&movieCount); err != nil {
		return fmt.Errorf("count movies: %w", err)
	}

	var firstMovieID int64
	moviesSeeded := false
	if movieCount == 0 {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO movies (title, genre, duration, release_date) VALUES (?, ?, ?, ?)`,
			"Inception", "Sci-Fi", 148, "2010-07-16",
		)
		if err != nil {
			return fmt.Errorf("seed movie Inception: %w", err)
		}
		if firstMovieID, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("read seeded movie id: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO movies (title, genre, duration, release_date) VALUES (?, ?, ?, ?)`,
			"The Godfather", "Crime", 175, "1972-03-24",
		)
		if err != nil {
			return fmt.Errorf("seed movie The Godfather: %w", err)
		}
		moviesSeeded = true
	}

	// Link the first demo movie to the first demo room, but only when both
	// were inserted just now
	if roomsSeeded && moviesSeeded {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO movie_room_association (movie_id, room_id) VALUES (?, ?)`,
			firstMovieID, firstRoomID,
		)
		if err != nil {
			return fmt.Errorf("seed association: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	if roomsSeeded || moviesSeeded {
		r.log.Info("Demo data seeded",
			zap.Bool("rooms", roomsSeeded),
			zap.Bool("movies", moviesSeeded),
		)
	} else {
		r.log.Debug("Seed skipped, store already populated")
	}

	return nil
}
