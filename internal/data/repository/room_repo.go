package repository

import (
	"context"
	"database/sql"
	"fmt"

	"theater-admin/internal/data/entity"
	"theater-admin/pkg/database"

	"go.uber.org/zap"
)

// RoomRepository is read-only: rooms originate from seeding and are never
// edited through the exposed surface.
type RoomRepository interface {
	FindAll(ctx context.Context) ([]*entity.Room, error)
	FindByID(ctx context.Context, id int64) (*entity.Room, error)
}

type roomRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewRoomRepository(db database.DBIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT room_id, room_number, max_capacity
		FROM rooms
		ORDER BY room_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all rooms", zap.Error(err))
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var (
			room        entity.Room
			maxCapacity sql.NullInt64
		)
		if err := rows.Scan(&room.ID, &room.RoomNumber, &maxCapacity); err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		room.MaxCapacity = intPtr(maxCapacity)
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate room rows: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	query := `
		SELECT room_id, room_number, max_capacity
		FROM rooms
		WHERE room_id = ?
	`

	var (
		room        entity.Room
		maxCapacity sql.NullInt64
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&room.ID, &room.RoomNumber, &maxCapacity)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return nil, fmt.Errorf("find room by ID %d: %w", id, err)
	}

	room.MaxCapacity = intPtr(maxCapacity)
	return &room, nil
}
