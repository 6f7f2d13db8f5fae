package repository

import (
	"context"
	"fmt"

	"popcorn-palace/internal/data/entity"
	"popcorn-palace/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindByTitle(ctx context.Context, title string) (*entity.Movie, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, genre, duration, rating, release_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Rating,
		movie.ReleaseYear,
	).Scan(&movie.ID)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %q: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, genre, duration, rating, release_year
		FROM movies
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.Duration,
			&movie.Rating,
			&movie.ReleaseYear,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, genre, duration, rating, release_year
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Duration,
		&movie.Rating,
		&movie.ReleaseYear,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %d: %w", id, err)
	}

	return &movie, nil
}

func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	query := `
		SELECT id, title, genre, duration, rating, release_year
		FROM movies
		WHERE title = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, title).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Duration,
		&movie.Rating,
		&movie.ReleaseYear,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by title",
			zap.Error(err),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("find movie by title %q: %w", title, err)
	}

	return &movie, nil
}

func (r *movieRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM movies WHERE title = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, title).Scan(&exists); err != nil {
		r.log.Error("Failed to check movie title existence",
			zap.Error(err),
			zap.String("title", title),
		)
		return false, fmt.Errorf("check movie title %q: %w", title, err)
	}

	return exists, nil
}

func (r *movieRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM movies WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check movie existence",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return false, fmt.Errorf("check movie %d: %w", id, err)
	}

	return exists, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, genre = $3, duration = $4, rating = $5, release_year = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Rating,
		movie.ReleaseYear,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d not found", movie.ID)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d not found", id)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}
