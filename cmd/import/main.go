// Command import loads a pipe-delimited movie file into PostgreSQL. Titles
// already stored are skipped.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/metinatakli/movie-theatre/internal/app"
	"github.com/metinatakli/movie-theatre/internal/catalog"
)

func main() {
	_ = godotenv.Load()

	var cfg app.Config

	flag.StringVar(&cfg.MoviesFile, "file", os.Getenv("MOVIES_FILE"), "Pipe-delimited movie file")
	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("MOVIE_DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 5, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", time.Minute, "PostgreSQL max idle time for connections")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(cfg, logger); err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg app.Config, logger *slog.Logger) error {
	movies, err := catalog.LoadFile(cfg.MoviesFile)
	if err != nil {
		return err
	}

	repo, closeDB, err := app.NewMovieRepository(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	result, err := catalog.Import(context.Background(), repo, movies.All())
	if err != nil {
		return err
	}

	for _, title := range result.Skipped {
		logger.Warn("movie already stored", "title", title)
	}

	logger.Info("import finished",
		"source", movies.SourceIdentifier(),
		"imported", result.Imported,
		"skipped", len(result.Skipped),
	)

	return nil
}
