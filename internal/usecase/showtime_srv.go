package usecase

import (
	"context"
	"fmt"
	"time"

	"theater-admin/internal/data/entity"
	"theater-admin/internal/data/repository"
	"theater-admin/internal/dto/request"
	"theater-admin/internal/dto/response"
	"theater-admin/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	List(ctx context.Context) ([]response.ShowtimeResponse, error)
	Load(ctx context.Context, req *request.ShowtimeBatchRequest) ([]response.ShowtimeResponse, error)
}

type showtimeService struct {
	showtimes repository.ShowtimeRepository
	log       *zap.Logger
}

func NewShowtimeService(showtimes repository.ShowtimeRepository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		showtimes: showtimes,
		log:       log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) List(ctx context.Context) ([]response.ShowtimeResponse, error) {
	showtimes, err := s.showtimes.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list showtimes", zap.Error(err))
		return nil, fmt.Errorf("list showtimes: %w", err)
	}

	return response.ShowtimesToResponse(showtimes), nil
}

func (s *showtimeService) Load(ctx context.Context, req *request.ShowtimeBatchRequest) ([]response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Showtime batch validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrValidation)
	}

	showtimes := make([]*entity.Showtime, len(req.Showtimes))
	for i, item := range req.Showtimes {
		showDate, err := time.Parse("2006-01-02", item.ShowDate)
		if err != nil {
			return nil, fmt.Errorf("invalid show date: %w", utils.ErrValidation)
		}
		showtimes[i] = &entity.Showtime{
			MovieID:  item.MovieID,
			RoomID:   item.RoomID,
			ShowDate: showDate,
			ShowTime: item.ShowTime,
		}
	}

	if err := s.showtimes.CreateBatch(ctx, showtimes); err != nil {
		s.log.Error("Failed to load showtimes",
			zap.Error(err),
			zap.Int("count", len(showtimes)),
		)
		return nil, fmt.Errorf("load showtimes: %w", err)
	}

	s.log.Info("Showtimes loaded", zap.Int("count", len(showtimes)))

	return response.ShowtimesToResponse(showtimes), nil
}
