package entity

import (
	"github.com/google/uuid"
)

type Booking struct {
	BookingID  uuid.UUID `db:"booking_id" json:"bookingId"`
	ShowtimeID int64     `db:"showtime_id" json:"showtimeId"`
	SeatNumber int       `db:"seat_number" json:"seatNumber"`
	UserID     uuid.UUID `db:"user_id" json:"userId"`
}
