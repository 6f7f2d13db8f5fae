package entity

type Movie struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Genre       string  `db:"genre" json:"genre"`
	Duration    int     `db:"duration" json:"duration"`
	Rating      float64 `db:"rating" json:"rating"`
	ReleaseYear int     `db:"release_year" json:"releaseYear"`
}
