package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"theater-admin/internal/data/entity"
	"theater-admin/internal/data/repository"
	"theater-admin/internal/dto/request"
	"theater-admin/internal/dto/response"
	"theater-admin/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	List(ctx context.Context) ([]response.MovieResponse, error)
	Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	Update(ctx context.Context, movieID int64, req *request.MovieRequest) (*response.MovieResponse, error)
	Delete(ctx context.Context, movieID int64) error

	Rooms(ctx context.Context, movieID int64) ([]response.RoomLinkResponse, error)
	ReplaceRooms(ctx context.Context, movieID int64, roomIDs []int64) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) List(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie, err := s.movieFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) Update(ctx context.Context, movieID int64, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie, err := s.movieFromRequest(req)
	if err != nil {
		return nil, err
	}
	movie.ID = movieID

	// All four fields are overwritten with the given values
	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) Delete(ctx context.Context, movieID int64) error {
	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", movieID))
	return nil
}

func (s *movieService) Rooms(ctx context.Context, movieID int64) ([]response.RoomLinkResponse, error) {
	links, err := s.repo.MovieRoom.FindRoomsByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get rooms for movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("rooms for movie: %w", err)
	}

	return response.RoomLinksToResponse(links), nil
}

func (s *movieService) ReplaceRooms(ctx context.Context, movieID int64, roomIDs []int64) error {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return fmt.Errorf("movie %d: %w", movieID, utils.ErrNotFound)
	}

	// Duplicate ids in the request collapse to one association row
	seen := make(map[int64]bool, len(roomIDs))
	unique := make([]int64, 0, len(roomIDs))
	for _, roomID := range roomIDs {
		if !seen[roomID] {
			seen[roomID] = true
			unique = append(unique, roomID)
		}
	}

	if err := s.repo.MovieRoom.ReplaceForMovie(ctx, movieID, unique); err != nil {
		s.log.Error("Failed to replace rooms for movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("replace rooms: %w", err)
	}

	return nil
}

func (s *movieService) movieFromRequest(req *request.MovieRequest) (*entity.Movie, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), utils.ErrValidation)
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("title must not be empty: %w", utils.ErrValidation)
	}

	movie := &entity.Movie{
		Title:    req.Title,
		Genre:    req.Genre,
		Duration: req.Duration,
	}

	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			s.log.Warn("Invalid release date format",
				zap.String("release_date", *req.ReleaseDate),
				zap.Error(err),
			)
			return nil, fmt.Errorf("invalid release date: %w", utils.ErrValidation)
		}
		movie.ReleaseDate = &releaseDate
	}

	return movie, nil
}
