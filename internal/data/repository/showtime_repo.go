package repository

import (
	"context"
	"fmt"
	"time"

	"popcorn-palace/internal/data/entity"
	"popcorn-palace/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id int64) (*entity.Showtime, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, showtime *entity.Showtime) error
	Delete(ctx context.Context, id int64) error

	// Business queries
	FindOverlapping(ctx context.Context, theater string, start, end time.Time, excludeID *int64) ([]*entity.Showtime, error)
	ExistsByMovieID(ctx context.Context, movieID int64) (bool, error)
	FindFutureByMovieID(ctx context.Context, movieID int64, now time.Time) ([]*entity.Showtime, error)
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (price, movie_id, theater, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		showtime.Price,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartTime,
		showtime.EndTime,
	).Scan(&showtime.ID)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.Int64("movie_id", showtime.MovieID),
			zap.String("theater", showtime.Theater),
		)
		return fmt.Errorf("create showtime for movie %d in theater %q: %w",
			showtime.MovieID, showtime.Theater, err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id int64) (*entity.Showtime, error) {
	query := `
		SELECT id, price, movie_id, theater, start_time, end_time
		FROM showtimes
		WHERE id = $1
	`

	var showtime entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.Price,
		&showtime.MovieID,
		&showtime.Theater,
		&showtime.StartTime,
		&showtime.EndTime,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.Int64("showtime_id", id),
		)
		return nil, fmt.Errorf("find showtime by ID %d: %w", id, err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM showtimes WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check showtime existence",
			zap.Error(err),
			zap.Int64("showtime_id", id),
		)
		return false, fmt.Errorf("check showtime %d: %w", id, err)
	}

	return exists, nil
}

func (r *showtimeRepository) Update(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		UPDATE showtimes
		SET price = $2, movie_id = $3, theater = $4, start_time = $5, end_time = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.Price,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartTime,
		showtime.EndTime,
	)

	if err != nil {
		r.log.Error("Failed to update showtime",
			zap.Error(err),
			zap.Int64("showtime_id", showtime.ID),
		)
		return fmt.Errorf("update showtime %d: %w", showtime.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %d not found", showtime.ID)
	}

	return nil
}

func (r *showtimeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM showtimes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.Int64("showtime_id", id),
		)
		return fmt.Errorf("delete showtime %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %d not found", id)
	}

	r.log.Info("Showtime deleted", zap.Int64("showtime_id", id))
	return nil
}

// FindOverlapping returns every showtime in the theater whose interval shares
// an instant with [start, end]. Boundaries are inclusive: a showtime ending
// exactly when another starts counts as overlapping. excludeID, when non-nil,
// removes the record being updated from the search.
func (r *showtimeRepository) FindOverlapping(ctx context.Context, theater string, start, end time.Time, excludeID *int64) ([]*entity.Showtime, error) {
	query := `
		SELECT id, price, movie_id, theater, start_time, end_time
		FROM showtimes
		WHERE theater = $1
		  AND ((start_time <= $3 AND end_time >= $2) OR
		       (start_time >= $2 AND start_time <= $3))
		  AND ($4::bigint IS NULL OR id <> $4)
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, theater, start, end, excludeID)
	if err != nil {
		r.log.Error("Failed to find overlapping showtimes",
			zap.Error(err),
			zap.String("theater", theater),
			zap.Time("start_time", start),
			zap.Time("end_time", end),
		)
		return nil, fmt.Errorf("find overlapping showtimes in theater %q: %w", theater, err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		err := rows.Scan(
			&showtime.ID,
			&showtime.Price,
			&showtime.MovieID,
			&showtime.Theater,
			&showtime.StartTime,
			&showtime.EndTime,
		)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate showtime rows: %w", err)
	}

	return showtimes, nil
}

func (r *showtimeRepository) ExistsByMovieID(ctx context.Context, movieID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM showtimes WHERE movie_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, movieID).Scan(&exists); err != nil {
		r.log.Error("Failed to check showtimes by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return false, fmt.Errorf("check showtimes for movie %d: %w", movieID, err)
	}

	return exists, nil
}

func (r *showtimeRepository) FindFutureByMovieID(ctx context.Context, movieID int64, now time.Time) ([]*entity.Showtime, error) {
	query := `
		SELECT id, price, movie_id, theater, start_time, end_time
		FROM showtimes
		WHERE movie_id = $1 AND start_time > $2
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, movieID, now)
	if err != nil {
		r.log.Error("Failed to find future showtimes by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find future showtimes for movie %d: %w", movieID, err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		err := rows.Scan(
			&showtime.ID,
			&showtime.Price,
			&showtime.MovieID,
			&showtime.Theater,
			&showtime.StartTime,
			&showtime.EndTime,
		)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate showtime rows: %w", err)
	}

	return showtimes, nil
}
