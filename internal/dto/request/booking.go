package request

import (
	"github.com/google/uuid"
)

type BookingRequest struct {
	ShowtimeID int64     `json:"showtimeId" validate:"required,gt=0"`
	SeatNumber int       `json:"seatNumber" validate:"required,gt=0"`
	UserID     uuid.UUID `json:"userId" validate:"required"`
}
