package repository

import (
	"context"
	"errors"
	"fmt"

	"popcorn-palace/internal/data/entity"
	"popcorn-palace/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrSeatTaken is returned when an insert loses the race for a seat: the
// bookings table carries UNIQUE(showtime_id, seat_number), so two concurrent
// requests for the same seat cannot both commit.
var ErrSeatTaken = errors.New("seat already booked for this showtime")

const uniqueViolationCode = "23505"

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	ExistsByShowtimeAndSeat(ctx context.Context, showtimeID int64, seatNumber int) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (booking_id, showtime_id, seat_number, user_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		booking.BookingID,
		booking.ShowtimeID,
		booking.SeatNumber,
		booking.UserID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			r.log.Warn("Seat already booked",
				zap.Int64("showtime_id", booking.ShowtimeID),
				zap.Int("seat_number", booking.SeatNumber),
			)
			return ErrSeatTaken
		}

		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("showtime_id", booking.ShowtimeID),
			zap.Int("seat_number", booking.SeatNumber),
		)
		return fmt.Errorf("create booking for showtime %d seat %d: %w",
			booking.ShowtimeID, booking.SeatNumber, err)
	}

	return nil
}

func (r *bookingRepository) ExistsByShowtimeAndSeat(ctx context.Context, showtimeID int64, seatNumber int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE showtime_id = $1 AND seat_number = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, showtimeID, seatNumber).Scan(&exists); err != nil {
		r.log.Error("Failed to check seat booking",
			zap.Error(err),
			zap.Int64("showtime_id", showtimeID),
			zap.Int("seat_number", seatNumber),
		)
		return false, fmt.Errorf("check seat %d for showtime %d: %w", seatNumber, showtimeID, err)
	}

	return exists, nil
}
