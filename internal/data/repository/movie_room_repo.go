package repository

import (
	"context"
	"database/sql"
	"fmt"

	"theater-admin/internal/data/entity"
	"theater-admin/pkg/database"
	"theater-admin/pkg/utils"

	"go.uber.org/zap"
)

type MovieRoomRepository interface {
	// FindRoomsByMovieID returns the (room id, room number) pairs currently
	// linked to the movie, ordered by room id.
	FindRoomsByMovieID(ctx context.Context, movieID int64) ([]*entity.RoomLink, error)

	// ReplaceForMovie swaps the complete room set for a movie: every existing
	// association row is deleted and one row per given room id is inserted,
	// all in one transaction.
	ReplaceForMovie(ctx context.Context, movieID int64, roomIDs []int64) error
}

type movieRoomRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewMovieRoomRepository(db database.DBIface, log *zap.Logger) MovieRoomRepository {
	return &movieRoomRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_room")),
	}
}

func (r *movieRoomRepository) FindRoomsByMovieID(ctx context.Context, movieID int64) ([]*entity.RoomLink, error) {
	query := `
		SELECT rooms.room_id, rooms.room_number
		FROM rooms
		JOIN movie_room_association
		ON rooms.room_id = movie_room_association.room_id
		WHERE movie_room_association.movie_id = ?
		ORDER BY rooms.room_id
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find rooms by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find rooms for movie %d: %w", movieID, err)
	}
	defer rows.Close()

	var links []*entity.RoomLink
	for rows.Next() {
		var link entity.RoomLink
		if err := rows.Scan(&link.RoomID, &link.RoomNumber); err != nil {
			r.log.Error("Failed to scan room link row", zap.Error(err))
			return nil, fmt.Errorf("scan room link row: %w", err)
		}
		links = append(links, &link)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate room link rows: %w", err)
	}

	return links, nil
}

func (r *movieRoomRepository) ReplaceForMovie(ctx context.Context, movieID int64, roomIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin replace transaction", zap.Error(err))
		return fmt.Errorf("begin replace rooms for movie %d: %w", movieID, err)
	}
	// Rollback on any failure leaves the previous association set intact
	defer tx.Rollback()

	// Every room id must reference an existing room before anything changes
	for _, roomID := range roomIDs {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM rooms WHERE room_id = ?`, roomID).Scan(&exists)
		if err == sql.ErrNoRows {
			r.log.Warn("Replace rejected, unknown room",
				zap.Int64("movie_id", movieID),
				zap.Int64("room_id", roomID),
			)
			return fmt.Errorf("room %d: %w", roomID, utils.ErrReferential)
		}
		if err != nil {
			return fmt.Errorf("check room %d: %w", roomID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM movie_room_association WHERE movie_id = ?`, movieID); err != nil {
		r.log.Error("Failed to delete associations",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("delete associations for movie %d: %w", movieID, err)
	}

	for _, roomID := range roomIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO movie_room_association (movie_id, room_id) VALUES (?, ?)`,
			movieID, roomID,
		)
		if err != nil {
			r.log.Error("Failed to insert association",
				zap.Error(err),
				zap.Int64("movie_id", movieID),
				zap.Int64("room_id", roomID),
			)
			return fmt.Errorf("insert association movie %d room %d: %w", movieID, roomID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace rooms for movie %d: %w", movieID, err)
	}

	r.log.Info("Movie rooms replaced",
		zap.Int64("movie_id", movieID),
		zap.Int("room_count", len(roomIDs)),
	)

	return nil
}
