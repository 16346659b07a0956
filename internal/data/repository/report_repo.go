package repository

import (
	"context"
	"database/sql"
	"fmt"

	"theater-admin/internal/data/entity"
	"theater-admin/pkg/database"

	"go.uber.org/zap"
)

type ReportRepository interface {
	// Generate lists every showtime in the inclusive show-date range,
	// optionally narrowed to a room and/or a movie, ordered by show date then
	// show time. An empty result is a valid report, not an error.
	Generate(ctx context.Context, filter entity.ReportFilter) ([]*entity.ReportRow, error)
}

type reportRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewReportRepository(db database.DBIface, log *zap.Logger) ReportRepository {
	return &reportRepository{
		db:  db,
		log: log.With(zap.String("repository", "report")),
	}
}

// One fixed statement per filter combination, so the query text never embeds
// user input.
const (
	reportBase = `
		SELECT movies.title, showtimes.show_date, showtimes.show_time,
		       rooms.room_number, movies.duration
		FROM showtimes
		JOIN movies ON showtimes.movie_id = movies.movie_id
		JOIN rooms ON showtimes.room_id = rooms.room_id
		WHERE showtimes.show_date BETWEEN ? AND ?
	`
	reportOrder = ` ORDER BY showtimes.show_date, showtimes.show_time`

	reportQueryAll         = reportBase + reportOrder
	reportQueryByRoom      = reportBase + ` AND rooms.room_id = ?` + reportOrder
	reportQueryByMovie     = reportBase + ` AND movies.movie_id = ?` + reportOrder
	reportQueryByRoomMovie = reportBase + ` AND rooms.room_id = ? AND movies.movie_id = ?` + reportOrder
)

func (r *reportRepository) Generate(ctx context.Context, filter entity.ReportFilter) ([]*entity.ReportRow, error) {
	start := filter.StartDate.Format(dateLayout)
	end := filter.EndDate.Format(dateLayout)

	var (
		query string
		args  []any
	)
	switch {
	case filter.RoomID != nil && filter.MovieID != nil:
		query = reportQueryByRoomMovie
		args = []any{start, end, *filter.RoomID, *filter.MovieID}
	case filter.RoomID != nil:
		query = reportQueryByRoom
		args = []any{start, end, *filter.RoomID}
	case filter.MovieID != nil:
		query = reportQueryByMovie
		args = []any{start, end, *filter.MovieID}
	default:
		query = reportQueryAll
		args = []any{start, end}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to generate report",
			zap.Error(err),
			zap.String("start_date", start),
			zap.String("end_date", end),
		)
		return nil, fmt.Errorf("generate report %s..%s: %w", start, end, err)
	}
	defer rows.Close()

	var report []*entity.ReportRow
	for rows.Next() {
		var (
			row      entity.ReportRow
			showDate string
			duration sql.NullInt64
		)
		if err := rows.Scan(&row.MovieTitle, &showDate, &row.ShowTime, &row.RoomNumber, &duration); err != nil {
			r.log.Error("Failed to scan report row", zap.Error(err))
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		row.ShowDate, err = parseDateRequired(showDate)
		if err != nil {
			return nil, err
		}
		row.Duration = intPtr(duration)
		report = append(report, &row)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate report rows: %w", err)
	}

	r.log.Debug("Report generated",
		zap.Int("rows", len(report)),
		zap.String("start_date", start),
		zap.String("end_date", end),
	)

	return report, nil
}
