package usecase

import (
	"context"
	"fmt"
	"time"

	"popcorn-palace/internal/data/entity"
	"popcorn-palace/internal/data/repository"
	"popcorn-palace/internal/dto/request"
	"popcorn-palace/pkg/apperror"

	"go.uber.org/zap"
)

const (
	minShowtimeDuration = 30 * time.Minute
	maxShowtimeDuration = 5 * time.Hour
)

type ShowtimeService interface {
	GetShowtime(ctx context.Context, id int64) (*entity.Showtime, error)
	AddShowtime(ctx context.Context, req *request.ShowtimeRequest) (*entity.Showtime, error)
	UpdateShowtime(ctx context.Context, id int64, req *request.ShowtimeRequest) error
	DeleteShowtime(ctx context.Context, id int64) error
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
		now:  time.Now,
	}
}

func (s *showtimeService) GetShowtime(ctx context.Context, id int64) (*entity.Showtime, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, apperror.NotFoundID("Showtime", id)
	}

	return showtime, nil
}

func (s *showtimeService) AddShowtime(ctx context.Context, req *request.ShowtimeRequest) (*entity.Showtime, error) {
	if err := s.validateShowtime(ctx, req, nil); err != nil {
		s.log.Warn("Add showtime validation failed", zap.Error(err))
		return nil, err
	}

	showtime := &entity.Showtime{
		Price:     req.Price,
		MovieID:   req.MovieID,
		Theater:   req.Theater,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		s.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.Int64("movie_id", req.MovieID),
			zap.String("theater", req.Theater),
		)
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.Int64("showtime_id", showtime.ID),
		zap.Int64("movie_id", showtime.MovieID),
		zap.String("theater", showtime.Theater),
		zap.Time("start_time", showtime.StartTime),
	)

	return showtime, nil
}

func (s *showtimeService) UpdateShowtime(ctx context.Context, id int64, req *request.ShowtimeRequest) error {
	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return apperror.NotFoundID("Showtime", id)
	}

	if err := s.validateShowtime(ctx, req, &id); err != nil {
		s.log.Warn("Update showtime validation failed",
			zap.Error(err),
			zap.Int64("showtime_id", id),
		)
		return err
	}

	showtime.Theater = req.Theater
	showtime.StartTime = req.StartTime
	showtime.EndTime = req.EndTime
	showtime.MovieID = req.MovieID
	showtime.Price = req.Price

	if err := s.repo.Showtime.Update(ctx, showtime); err != nil {
		s.log.Error("Failed to update showtime",
			zap.Error(err),
			zap.Int64("showtime_id", id),
		)
		return fmt.Errorf("update showtime: %w", err)
	}

	s.log.Info("Showtime updated",
		zap.Int64("showtime_id", id),
		zap.String("theater", showtime.Theater),
	)

	return nil
}

func (s *showtimeService) DeleteShowtime(ctx context.Context, id int64) error {
	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return apperror.NotFoundID("Showtime", id)
	}

	if !showtime.StartTime.After(s.now()) {
		return apperror.BusinessRule("Cannot delete showtime that has already started or is in the past")
	}

	if err := s.repo.Showtime.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.Int64("showtime_id", id),
		)
		return fmt.Errorf("delete showtime: %w", err)
	}

	s.log.Info("Showtime deleted", zap.Int64("showtime_id", id))
	return nil
}

// validateShowtime runs the scheduling checks in order; the first failure
// wins. excludeID removes the record being updated from the overlap search.
func (s *showtimeService) validateShowtime(ctx context.Context, req *request.ShowtimeRequest, excludeID *int64) error {
	if req == nil {
		return apperror.InvalidResource("Showtime cannot be null")
	}

	if req.MovieID <= 0 {
		return apperror.InvalidField("movieId", "must be a positive number")
	}

	if req.Theater == "" {
		return apperror.InvalidField("theater", "must not be empty")
	}

	if req.StartTime.IsZero() {
		return apperror.InvalidField("startTime", "must not be null")
	}

	if req.EndTime.IsZero() {
		return apperror.InvalidField("endTime", "must not be null")
	}

	if req.Price <= 0 {
		return apperror.InvalidField("price", "must be positive")
	}

	movieExists, err := s.repo.Movie.ExistsByID(ctx, req.MovieID)
	if err != nil {
		return fmt.Errorf("check movie: %w", err)
	}
	if !movieExists {
		return apperror.NotFoundID("Movie", req.MovieID)
	}

	if !req.StartTime.Before(req.EndTime) {
		return apperror.InvalidField("startTime", "must be before end time")
	}

	if !req.StartTime.After(s.now()) {
		return apperror.InvalidField("startTime", "must be in the future")
	}

	duration := req.EndTime.Sub(req.StartTime)
	if duration < minShowtimeDuration {
		return apperror.InvalidField("showtime duration", "must be at least 30 minutes")
	}
	if duration > maxShowtimeDuration {
		return apperror.InvalidField("showtime duration", "must not exceed 5 hours")
	}

	overlapping, err := s.repo.Showtime.FindOverlapping(ctx, req.Theater, req.StartTime, req.EndTime, excludeID)
	if err != nil {
		return fmt.Errorf("check overlapping showtimes: %w", err)
	}
	if len(overlapping) > 0 {
		return apperror.BusinessRule(fmt.Sprintf(
			"Showtime overlaps with existing showtime in theater '%s'. Cannot schedule overlapping showtimes.",
			req.Theater))
	}

	return nil
}
