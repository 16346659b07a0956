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

type ReportService interface {
	Generate(ctx context.Context, req *request.ReportRequest) ([]response.ReportRowResponse, error)
}

type reportService struct {
	reports repository.ReportRepository
	log     *zap.Logger
}

func NewReportService(reports repository.ReportRepository, log *zap.Logger) ReportService {
	return &reportService{
		reports: reports,
		log:     log.With(zap.String("service", "report")),
	}
}

func (s *reportService) Generate(ctx context.Context, req *request.ReportRequest) ([]response.ReportRowResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Report validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrValidation)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", utils.ErrValidation)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", utils.ErrValidation)
	}

	// A reversed range is not rejected, it just matches nothing

	filter := entity.ReportFilter{
		StartDate: startDate,
		EndDate:   endDate,
		RoomID:    req.RoomID,
		MovieID:   req.MovieID,
	}

	report, err := s.reports.Generate(ctx, filter)
	if err != nil {
		s.log.Error("Failed to generate report",
			zap.Error(err),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return nil, fmt.Errorf("generate report: %w", err)
	}

	s.log.Info("Report generated",
		zap.Int("rows", len(report)),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	return response.ReportToResponse(report), nil
}
