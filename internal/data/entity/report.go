package entity

import (
	"time"
)

// ReportRow is one line of the showtime report: a showtime joined with its
// movie and room.
type ReportRow struct {
	MovieTitle string
	ShowDate   time.Time
	ShowTime   string
	RoomNumber int
	Duration   *int
}

// ReportFilter narrows the report to a date range plus optional room and
// movie. Nil filters are not applied; both together combine with AND.
type ReportFilter struct {
	StartDate time.Time
	EndDate   time.Time
	RoomID    *int64
	MovieID   *int64
}
