package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/metinatakli/movie-theatre/internal/domain"
)

// LoadRepository reads every stored movie into a collection identified by
// source.
func LoadRepository(ctx context.Context, repo domain.MovieRepository, source string) (*domain.MovieCollection, error) {
	movies, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load movies from %s: %w", source, err)
	}

	return domain.NewMovieCollection(source, movies), nil
}

type ImportResult struct {
	Imported int
	Skipped  []string
}

// Import stores movies in order. Titles that already exist are skipped and
// reported; any other failure stops the import.
func Import(ctx context.Context, repo domain.MovieRepository, movies []*domain.Movie) (ImportResult, error) {
	var result ImportResult

	for _, m := range movies {
		err := repo.Create(ctx, m)
		switch {
		case err == nil:
			result.Imported++
		case errors.Is(err, domain.ErrDuplicateTitle):
			result.Skipped = append(result.Skipped, m.Title)
		default:
			return result, fmt.Errorf("import %q: %w", m.Title, err)
		}
	}

	return result, nil
}
