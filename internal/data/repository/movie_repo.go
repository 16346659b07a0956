package repository

import (
	"context"
	"database/sql"
	"fmt"

	"theater-admin/internal/data/entity"
	"theater-admin/pkg/database"
	"theater-admin/pkg/utils"

	"go.uber.org/zap"
)

type MovieRepository interface {
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie) error
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewMovieRepository(db database.DBIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT movie_id, title, genre, duration, release_date
		FROM movies
		ORDER BY movie_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT movie_id, title, genre, duration, release_date
		FROM movies
		WHERE movie_id = ?
	`

	var (
		movie       entity.Movie
		genre       sql.NullString
		duration    sql.NullInt64
		releaseDate sql.NullString
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&genre,
		&duration,
		&releaseDate,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %d: %w", id, err)
	}

	if genre.Valid {
		movie.Genre = &genre.String
	}
	movie.Duration = intPtr(duration)
	movie.ReleaseDate, err = parseDate(releaseDate)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, genre, duration, release_date)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(ctx, query,
		movie.Title,
		movie.Genre,
		nullInt(movie.Duration),
		formatDate(movie.ReleaseDate),
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %q: %w", movie.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("read generated movie id: %w", err)
	}
	movie.ID = id

	return nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = ?, genre = ?, duration = ?, release_date = ?
		WHERE movie_id = ?
	`

	result, err := r.db.Exec(ctx, query,
		movie.Title,
		movie.Genre,
		nullInt(movie.Duration),
		formatDate(movie.ReleaseDate),
		movie.ID,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("movie %d: %w", movie.ID, utils.ErrNotFound)
	}

	return nil
}

// Delete removes the movie and its association rows in one transaction so a
// deleted movie never leaves orphaned links behind.
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin delete transaction", zap.Error(err))
		return fmt.Errorf("begin delete movie %d: %w", id, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM movie_room_association WHERE movie_id = ?`, id); err != nil {
		r.log.Error("Failed to delete movie associations",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete associations for movie %d: %w", id, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM movies WHERE movie_id = ?`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("movie %d: %w", id, utils.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete movie %d: %w", id, err)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func scanMovie(rows *sql.Rows) (*entity.Movie, error) {
	var (
		movie       entity.Movie
		genre       sql.NullString
		duration    sql.NullInt64
		releaseDate sql.NullString
	)
	if err := rows.Scan(&movie.ID, &movie.Title, &genre, &duration, &releaseDate); err != nil {
		return nil, err
	}

	if genre.Valid {
		movie.Genre = &genre.String
	}
	movie.Duration = intPtr(duration)

	var err error
	movie.ReleaseDate, err = parseDate(releaseDate)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}
