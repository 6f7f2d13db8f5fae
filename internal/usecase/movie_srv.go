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

type MovieService interface {
	ListMovies(ctx context.Context) ([]*entity.Movie, error)
	AddMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error)
	UpdateMovie(ctx context.Context, title string, req *request.MovieRequest) error
	DeleteMovie(ctx context.Context, title string) error
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

func (s *movieService) ListMovies(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	return movies, nil
}

func (s *movieService) AddMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error) {
	if err := validateMovie(req); err != nil {
		s.log.Warn("Add movie validation failed", zap.Error(err))
		return nil, err
	}

	exists, err := s.repo.Movie.ExistsByTitle(ctx, req.Title)
	if err != nil {
		return nil, fmt.Errorf("check movie title: %w", err)
	}
	if exists {
		return nil, apperror.AlreadyExists("Movie", req.Title)
	}

	movie := &entity.Movie{
		Title:       req.Title,
		Genre:       req.Genre,
		Duration:    req.Duration,
		Rating:      req.Rating,
		ReleaseYear: req.ReleaseYear,
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

	return movie, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, title string, req *request.MovieRequest) error {
	if err := validateMovie(req); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err))
		return err
	}

	movie, err := s.repo.Movie.FindByTitle(ctx, title)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return apperror.NotFound("Movie", title)
	}

	// A renamed movie must not collide with another title.
	if req.Title != title {
		exists, err := s.repo.Movie.ExistsByTitle(ctx, req.Title)
		if err != nil {
			return fmt.Errorf("check movie title: %w", err)
		}
		if exists {
			return apperror.AlreadyExists("Movie", req.Title)
		}
	}

	movie.Title = req.Title
	movie.Genre = req.Genre
	movie.Duration = req.Duration
	movie.Rating = req.Rating
	movie.ReleaseYear = req.ReleaseYear

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("title", title),
		)
		return fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, title string) error {
	movie, err := s.repo.Movie.FindByTitle(ctx, title)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return apperror.NotFound("Movie", title)
	}

	hasShowtimes, err := s.repo.Showtime.ExistsByMovieID(ctx, movie.ID)
	if err != nil {
		return fmt.Errorf("check showtimes: %w", err)
	}
	if hasShowtimes {
		future, err := s.repo.Showtime.FindFutureByMovieID(ctx, movie.ID, time.Now())
		if err != nil {
			s.log.Warn("Failed to count future showtimes for movie",
				zap.Error(err),
				zap.Int64("movie_id", movie.ID),
			)
		}
		s.log.Warn("Movie delete blocked by showtimes",
			zap.Int64("movie_id", movie.ID),
			zap.String("title", title),
			zap.Int("future_showtimes", len(future)),
		)
		return apperror.BusinessRule("Cannot delete movie with existing showtimes. Remove all showtimes for this movie first.")
	}

	if err := s.repo.Movie.Delete(ctx, movie.ID); err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("title", title),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", title),
	)

	return nil
}

// validateMovie runs the field checks in order; the first failure wins.
func validateMovie(req *request.MovieRequest) error {
	if req == nil {
		return apperror.InvalidResource("Movie cannot be null")
	}

	if req.Title == "" {
		return apperror.InvalidField("title", "must not be empty")
	}

	if req.Genre == "" {
		return apperror.InvalidField("genre", "must not be empty")
	}

	if req.Duration <= 0 {
		return apperror.InvalidField("duration", "must be positive")
	}

	if req.Rating < 0 || req.Rating > 10 {
		return apperror.InvalidField("rating", "must be between 0 and 10")
	}

	if req.ReleaseYear < 1900 || req.ReleaseYear > 2100 {
		return apperror.InvalidField("releaseYear", "must be between 1900 and 2100")
	}

	return nil
}
