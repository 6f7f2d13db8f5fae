package usecase

import (
	"popcorn-palace/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Showtime ShowtimeService
	Booking  BookingService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:    NewMovieService(repo, log),
		Showtime: NewShowtimeService(repo, log),
		Booking:  NewBookingService(repo, log),
	}
}
