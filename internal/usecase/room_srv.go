package usecase

import (
	"context"
	"fmt"

	"theater-admin/internal/data/repository"
	"theater-admin/internal/dto/response"

	"go.uber.org/zap"
)

type RoomService interface {
	List(ctx context.Context) ([]response.RoomResponse, error)
}

type roomService struct {
	rooms repository.RoomRepository
	log   *zap.Logger
}

func NewRoomService(rooms repository.RoomRepository, log *zap.Logger) RoomService {
	return &roomService{
		rooms: rooms,
		log:   log.With(zap.String("service", "room")),
	}
}

func (s *roomService) List(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	return response.RoomsToResponse(rooms), nil
}
