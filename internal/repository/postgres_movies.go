package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-theatre/internal/domain"
	"github.com/shopspring/decimal"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

// GetAll returns every movie in insertion order.
func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT id, title, year, country, release_at, genres, duration, rating, director, star_actors
		FROM movies
		ORDER BY position`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var (
			params    domain.MovieParams
			releaseAt pgtype.Date
			rating    pgtype.Numeric
		)

		err := rows.Scan(
			&params.ID,
			&params.Title,
			&params.Year,
			&params.Country,
			&releaseAt,
			&params.Genres,
			&params.Duration,
			&rating,
			&params.Director,
			&params.StarActors,
		)
		if err != nil {
			return nil, err
		}

		if releaseAt.Valid {
			params.ReleaseAt = releaseAt.Time
		}
		if rating.Valid {
			params.Rating = decimal.NewFromBigInt(rating.Int, rating.Exp)
		}

		movie, err := domain.NewMovie(params)
		if err != nil {
			return nil, fmt.Errorf("stored movie %s: %w", params.ID, err)
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (id, title, year, country, release_at, genres, duration, rating, director, star_actors)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9, $10)`

	releaseAt := pgtype.Date{Time: movie.ReleaseAt, Valid: !movie.ReleaseAt.IsZero()}

	_, err := p.db.Exec(
		ctx,
		query,
		movie.ID,
		movie.Title,
		movie.Year,
		movie.Country,
		releaseAt,
		movie.Genres,
		movie.Duration,
		movie.Rating.String(),
		movie.Director,
		movie.StarActors,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateTitle
		}

		return err
	}

	return nil
}
