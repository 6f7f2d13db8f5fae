package request

import (
	"time"
)

type ShowtimeRequest struct {
	MovieID   int64     `json:"movieId" validate:"required,gt=0"`
	Theater   string    `json:"theater" validate:"required"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
	Price     float64   `json:"price" validate:"required,gt=0"`
}
