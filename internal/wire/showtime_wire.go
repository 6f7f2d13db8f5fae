package wire

import (
	"popcorn-palace/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	r.Route("/showtime", func(r chi.Router) {
		// GET /showtime/{showtimeId} - fetch one showtime
		r.Get("/{showtimeId}", showtimeHandler.GetShowtime)

		// POST /showtime - schedule a showtime
		r.Post("/", showtimeHandler.AddShowtime)

		// POST /showtime/update/{showtimeId} - reschedule a showtime
		r.Post("/update/{showtimeId}", showtimeHandler.UpdateShowtime)

		// DELETE /showtime/{showtimeId} - delete a future showtime
		r.Delete("/{showtimeId}", showtimeHandler.DeleteShowtime)
	})
}
