package mocks

import (
	"context"

	"github.com/metinatakli/movie-theatre/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc func(ctx context.Context) ([]*domain.Movie, error)
	CreateFunc func(ctx context.Context, movie *domain.Movie) error
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}
