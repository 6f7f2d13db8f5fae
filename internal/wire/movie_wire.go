package wire

import (
	"popcorn-palace/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		// GET /movies/all - list the whole catalog
		r.Get("/all", movieHandler.ListMovies)

		// POST /movies - add a movie
		r.Post("/", movieHandler.AddMovie)

		// POST /movies/update/{title} - replace a movie's fields
		r.Post("/update/{title}", movieHandler.UpdateMovie)

		// DELETE /movies/{title} - delete a movie without showtimes
		r.Delete("/{title}", movieHandler.DeleteMovie)
	})
}
