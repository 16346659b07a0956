package usecase

import (
	"context"
	"fmt"

	"theater-admin/internal/data/repository"

	"go.uber.org/zap"
)

type SeedService interface {
	SeedIfEmpty(ctx context.Context) error
}

type seedService struct {
	seed repository.SeedRepository
	log  *zap.Logger
}

func NewSeedService(seed repository.SeedRepository, log *zap.Logger) SeedService {
	return &seedService{
		seed: seed,
		log:  log.With(zap.String("service", "seed")),
	}
}

func (s *seedService) SeedIfEmpty(ctx context.Context) error {
	if err := s.seed.SeedIfEmpty(ctx); err != nil {
		s.log.Error("Failed to seed demo data", zap.Error(err))
		return fmt.Errorf("seed demo data: %w", err)
	}
	return nil
}
