package integration_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/metinatakli/movie-theatre/internal/app"
	"github.com/metinatakli/movie-theatre/internal/catalog"
	"github.com/metinatakli/movie-theatre/internal/theatre"
	appvalidator "github.com/metinatakli/movie-theatre/internal/validator"
)

// newTestApp loads the catalog currently stored in the database and serves it
// under the default theatre configuration at a fixed clock.
func (s *BaseSuite) newTestApp(ctx context.Context) (*app.Application, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	movies, err := catalog.LoadRepository(ctx, s.repo, "postgres")
	if err != nil {
		return nil, err
	}

	config, err := theatre.NewConfig(nil)
	if err != nil {
		return nil, err
	}

	return app.NewApp(
		s.cfg,
		logger,
		appvalidator.NewValidator(),
		theatre.New(movies, config),
		func() time.Time { return testNow },
	), nil
}
