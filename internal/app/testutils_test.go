package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/movie-theatre/api"
	"github.com/metinatakli/movie-theatre/internal/domain"
	"github.com/metinatakli/movie-theatre/internal/theatre"
	"github.com/metinatakli/movie-theatre/internal/validator"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2024, time.May, 10, 10, 30, 0, 0, time.UTC)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config:    Config{Env: "test"},
		validator: validator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		theatre:   theatre.New(newTestMovies(), nil),
		now:       func() time.Time { return testNow },
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func withMovies(movies *domain.MovieCollection) func(*Application) {
	return func(app *Application) {
		app.theatre = theatre.New(movies, nil)
	}
}

func newTestMovies(only ...string) *domain.MovieCollection {
	params := []domain.MovieParams{
		{
			Title:      "Ancient Crime",
			Year:       1932,
			Country:    "USA",
			ReleaseAt:  time.Date(1932, time.March, 3, 0, 0, 0, 0, time.UTC),
			Genres:     []string{"Crime"},
			Duration:   142,
			Rating:     decimal.RequireFromString("8.5"),
			Director:   "Howard Hawks",
			StarActors: []string{"Paul Muni"},
		},
		{
			Title:      "Classic Drama",
			Year:       1957,
			Country:    "USA",
			ReleaseAt:  time.Date(1957, time.April, 10, 0, 0, 0, 0, time.UTC),
			Genres:     []string{"Drama"},
			Duration:   96,
			Rating:     decimal.RequireFromString("8.9"),
			Director:   "Sidney Lumet",
			StarActors: []string{"Henry Fonda"},
		},
		{
			Title:      "New Action",
			Year:       2008,
			Country:    "UK",
			ReleaseAt:  time.Date(2008, time.July, 18, 0, 0, 0, 0, time.UTC),
			Genres:     []string{"Action", "Crime"},
			Duration:   152,
			Rating:     decimal.RequireFromString("9.0"),
			Director:   "Christopher Nolan",
			StarActors: []string{"Christian Bale", "Heath Ledger"},
		},
		{
			Title:    "Unknown Year",
			Genres:   []string{"Drama"},
			Duration: 90,
		},
	}

	keep := make(map[string]bool, len(only))
	for _, title := range only {
		keep[title] = true
	}

	movies := []*domain.Movie{}
	for _, p := range params {
		if len(only) > 0 && !keep[p.Title] {
			continue
		}

		m, err := domain.NewMovie(p)
		if err != nil {
			panic(err)
		}
		movies = append(movies, m)
	}

	return domain.NewMovieCollection("test", movies)
}

// newTitledMovies builds a collection of recent dramas with the given titles.
func newTitledMovies(titles ...string) *domain.MovieCollection {
	movies := make([]*domain.Movie, 0, len(titles))

	for _, title := range titles {
		m, err := domain.NewMovie(domain.MovieParams{
			Title:    title,
			Year:     2008,
			Country:  "USA",
			Genres:   []string{"Drama"},
			Duration: 90,
			Rating:   decimal.RequireFromString("7.5"),
		})
		if err != nil {
			panic(err)
		}
		movies = append(movies, m)
	}

	return domain.NewMovieCollection("titled", movies)
}

func executeRequest(t *testing.T, app *Application, method, url string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, url, nil)
	w := httptest.NewRecorder()

	app.Routes().ServeHTTP(w, r)

	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	return v
}

// checkErrorResponse accepts both validation responses, matched on any issue,
// and plain error responses, matched on the message.
func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	if w.Code != wantStatus {
		t.Fatalf("Status = %d, want %d; body: %s", w.Code, wantStatus, w.Body.String())
	}

	if wantStatus == http.StatusUnprocessableEntity {
		resp := decodeJSON[api.ValidationErrorResponse](t, w)

		if len(resp.ValidationErrors) == 0 {
			if resp.Message != wantErrMessage {
				t.Errorf("Error message = %v, want %v", resp.Message, wantErrMessage)
			}
			return
		}

		for _, vErr := range resp.ValidationErrors {
			if vErr.Issue == wantErrMessage {
				return
			}
		}

		t.Errorf("Expected validation error message '%s' not found in response", wantErrMessage)
		return
	}

	resp := decodeJSON[api.ErrorResponse](t, w)
	if wantErrMessage != "" && resp.Message != wantErrMessage {
		t.Errorf("Error message = %v, want %v", resp.Message, wantErrMessage)
	}
}
