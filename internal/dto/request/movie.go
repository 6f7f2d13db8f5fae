package request

type MovieRequest struct {
	Title       string  `json:"title" validate:"required"`
	Genre       string  `json:"genre" validate:"required"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	Rating      float64 `json:"rating" validate:"min=0,max=10"`
	ReleaseYear int     `json:"releaseYear" validate:"min=1900,max=2100"`
}
