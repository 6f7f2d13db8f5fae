package repository

import (
	"popcorn-palace/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie    MovieRepository
	Showtime ShowtimeRepository
	Booking  BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieRepository(db, log),
		Showtime: NewShowtimeRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
