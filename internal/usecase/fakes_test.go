package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"popcorn-palace/internal/data/entity"
	"popcorn-palace/internal/data/repository"

	"go.uber.org/zap"
)

// In-memory stand-ins for the pgx repositories. The overlap predicate in
// fakeShowtimeRepo mirrors the SQL one, inclusive boundaries included.

type fakeMovieRepo struct {
	movies map[int64]*entity.Movie
	nextID int64
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[int64]*entity.Movie), nextID: 1}
}

func (f *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	movie.ID = f.nextID
	f.nextID++
	stored := *movie
	f.movies[movie.ID] = &stored
	return nil
}

func (f *fakeMovieRepo) FindAll(_ context.Context) ([]*entity.Movie, error) {
	ids := make([]int64, 0, len(f.movies))
	for id := range f.movies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var movies []*entity.Movie
	for _, id := range ids {
		stored := *f.movies[id]
		movies = append(movies, &stored)
	}
	return movies, nil
}

func (f *fakeMovieRepo) FindByID(_ context.Context, id int64) (*entity.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	stored := *movie
	return &stored, nil
}

func (f *fakeMovieRepo) FindByTitle(_ context.Context, title string) (*entity.Movie, error) {
	for _, movie := range f.movies {
		if movie.Title == title {
			stored := *movie
			return &stored, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	movie, _ := f.FindByTitle(ctx, title)
	return movie != nil, nil
}

func (f *fakeMovieRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.movies[id]
	return ok, nil
}

func (f *fakeMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	if _, ok := f.movies[movie.ID]; !ok {
		return fmt.Errorf("movie %d not found", movie.ID)
	}
	stored := *movie
	f.movies[movie.ID] = &stored
	return nil
}

func (f *fakeMovieRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.movies[id]; !ok {
		return fmt.Errorf("movie %d not found", id)
	}
	delete(f.movies, id)
	return nil
}

type fakeShowtimeRepo struct {
	showtimes map[int64]*entity.Showtime
	nextID    int64
}

func newFakeShowtimeRepo() *fakeShowtimeRepo {
	return &fakeShowtimeRepo{showtimes: make(map[int64]*entity.Showtime), nextID: 1}
}

func (f *fakeShowtimeRepo) Create(_ context.Context, showtime *entity.Showtime) error {
	showtime.ID = f.nextID
	f.nextID++
	stored := *showtime
	f.showtimes[showtime.ID] = &stored
	return nil
}

func (f *fakeShowtimeRepo) FindByID(_ context.Context, id int64) (*entity.Showtime, error) {
	showtime, ok := f.showtimes[id]
	if !ok {
		return nil, nil
	}
	stored := *showtime
	return &stored, nil
}

func (f *fakeShowtimeRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.showtimes[id]
	return ok, nil
}

func (f *fakeShowtimeRepo) Update(_ context.Context, showtime *entity.Showtime) error {
	if _, ok := f.showtimes[showtime.ID]; !ok {
		return fmt.Errorf("showtime %d not found", showtime.ID)
	}
	stored := *showtime
	f.showtimes[showtime.ID] = &stored
	return nil
}

func (f *fakeShowtimeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.showtimes[id]; !ok {
		return fmt.Errorf("showtime %d not found", id)
	}
	delete(f.showtimes, id)
	return nil
}

func (f *fakeShowtimeRepo) FindOverlapping(_ context.Context, theater string, start, end time.Time, excludeID *int64) ([]*entity.Showtime, error) {
	var overlapping []*entity.Showtime
	for _, s := range f.showtimes {
		if s.Theater != theater {
			continue
		}
		if excludeID != nil && s.ID == *excludeID {
			continue
		}
		// Same inclusive predicate as the SQL query: touching boundaries count.
		first := !s.StartTime.After(end) && !s.EndTime.Before(start)
		second := !s.StartTime.Before(start) && !s.StartTime.After(end)
		if first || second {
			stored := *s
			overlapping = append(overlapping, &stored)
		}
	}
	return overlapping, nil
}

func (f *fakeShowtimeRepo) ExistsByMovieID(_ context.Context, movieID int64) (bool, error) {
	for _, s := range f.showtimes {
		if s.MovieID == movieID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeShowtimeRepo) FindFutureByMovieID(_ context.Context, movieID int64, now time.Time) ([]*entity.Showtime, error) {
	var future []*entity.Showtime
	for _, s := range f.showtimes {
		if s.MovieID == movieID && s.StartTime.After(now) {
			stored := *s
			future = append(future, &stored)
		}
	}
	return future, nil
}

type seatKey struct {
	showtimeID int64
	seatNumber int
}

type fakeBookingRepo struct {
	bookings map[seatKey]*entity.Booking

	// hidePrecheck makes ExistsByShowtimeAndSeat lie, so the unique-violation
	// path in Create can be exercised the way a lost race would hit it.
	hidePrecheck bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[seatKey]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	key := seatKey{booking.ShowtimeID, booking.SeatNumber}
	if _, ok := f.bookings[key]; ok {
		return repository.ErrSeatTaken
	}
	stored := *booking
	f.bookings[key] = &stored
	return nil
}

func (f *fakeBookingRepo) ExistsByShowtimeAndSeat(_ context.Context, showtimeID int64, seatNumber int) (bool, error) {
	if f.hidePrecheck {
		return false, nil
	}
	_, ok := f.bookings[seatKey{showtimeID, seatNumber}]
	return ok, nil
}

func newTestRepo() (*repository.Repository, *fakeMovieRepo, *fakeShowtimeRepo, *fakeBookingRepo) {
	movies := newFakeMovieRepo()
	showtimes := newFakeShowtimeRepo()
	bookings := newFakeBookingRepo()

	return &repository.Repository{
		Movie:    movies,
		Showtime: showtimes,
		Booking:  bookings,
	}, movies, showtimes, bookings
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
