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

// ShowtimeRepository is the external data-loading channel for showtimes. The
// admin surface itself never edits showtime rows, it only reports over them.
type ShowtimeRepository interface {
	FindAll(ctx context.Context) ([]*entity.Showtime, error)
	CreateBatch(ctx context.Context, showtimes []*entity.Showtime) error
}

type showtimeRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.DBIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) FindAll(ctx context.Context) ([]*entity.Showtime, error) {
	query := `
		SELECT showtime_id, movie_id, room_id, show_date, show_time
		FROM showtimes
		ORDER BY show_date, show_time
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all showtimes", zap.Error(err))
		return nil, fmt.Errorf("find showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		var (
			showtime entity.Showtime
			showDate string
		)
		if err := rows.Scan(&showtime.ID, &showtime.MovieID, &showtime.RoomID, &showDate, &showtime.ShowTime); err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtime.ShowDate, err = parseDateRequired(showDate)
		if err != nil {
			return nil, err
		}
		showtimes = append(showtimes, &showtime)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate showtime rows: %w", err)
	}

	return showtimes, nil
}

// CreateBatch loads showtime rows in one transaction. Movie and room ids are
// checked first so a bad batch fails whole, not halfway.
func (r *showtimeRepository) CreateBatch(ctx context.Context, showtimes []*entity.Showtime) error {
	if len(showtimes) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin showtime batch transaction", zap.Error(err))
		return fmt.Errorf("begin showtime batch: %w", err)
	}
	defer tx.Rollback()

	for _, showtime := range showtimes {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM movies WHERE movie_id = ?`, showtime.MovieID).Scan(&exists)
		if err == sql.ErrNoRows {
			return fmt.Errorf("movie %d: %w", showtime.MovieID, utils.ErrReferential)
		}
		if err != nil {
			return fmt.Errorf("check movie %d: %w", showtime.MovieID, err)
		}

		err = tx.QueryRowContext(ctx, `SELECT 1 FROM rooms WHERE room_id = ?`, showtime.RoomID).Scan(&exists)
		if err == sql.ErrNoRows {
			return fmt.Errorf("room %d: %w", showtime.RoomID, utils.ErrReferential)
		}
		if err != nil {
			return fmt.Errorf("check room %d: %w", showtime.RoomID, err)
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO showtimes (movie_id, room_id, show_date, show_time) VALUES (?, ?, ?, ?)`,
			showtime.MovieID,
			showtime.RoomID,
			showtime.ShowDate.Format(dateLayout),
			showtime.ShowTime,
		)
		if err != nil {
			r.log.Error("Failed to insert showtime",
				zap.Error(err),
				zap.Int64("movie_id", showtime.MovieID),
				zap.Int64("room_id", showtime.RoomID),
			)
			return fmt.Errorf("insert showtime movie %d room %d: %w", showtime.MovieID, showtime.RoomID, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("read generated showtime id: %w", err)
		}
		showtime.ID = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit showtime batch: %w", err)
	}

	r.log.Info("Showtimes loaded", zap.Int("count", len(showtimes)))
	return nil
}
