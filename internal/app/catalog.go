package app

import (
	"context"
	"log/slog"

	"github.com/metinatakli/movie-theatre/internal/catalog"
	"github.com/metinatakli/movie-theatre/internal/domain"
)

// loadMovies reads the catalog once at startup, from PostgreSQL when a DSN is
// configured and from the movie file otherwise.
func loadMovies(ctx context.Context, cfg Config, logger *slog.Logger) (*domain.MovieCollection, error) {
	if cfg.DB.DSN == "" {
		movies, err := catalog.LoadFile(cfg.MoviesFile)
		if err != nil {
			return nil, err
		}

		logger.Info("loaded movies", "source", movies.SourceIdentifier(), "count", movies.Len())

		return movies, nil
	}

	repo, closeDB, err := NewMovieRepository(cfg)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	movies, err := catalog.LoadRepository(ctx, repo, "postgres")
	if err != nil {
		return nil, err
	}

	logger.Info("loaded movies", "source", movies.SourceIdentifier(), "count", movies.Len())

	return movies, nil
}
