package entity

import (
	"time"
)

// Showtime is one screening of a movie in a named theater. The theater is an
// opaque venue label, not a reference to another record.
type Showtime struct {
	ID        int64     `db:"id" json:"id"`
	Price     float64   `db:"price" json:"price"`
	MovieID   int64     `db:"movie_id" json:"movieId"`
	Theater   string    `db:"theater" json:"theater"`
	StartTime time.Time `db:"start_time" json:"startTime"`
	EndTime   time.Time `db:"end_time" json:"endTime"`
}
