package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/movie-theatre/internal/validator"
	"github.com/shopspring/decimal"
)

const ReleaseDateLayout = "2006-01-02"

var movieValidator = validator.NewValidator()

// Movie is a single catalog entry. Its era is fixed by NewMovie and drives
// only how the movie is rendered and which period it is shown in.
type Movie struct {
	ID         uuid.UUID
	Title      string
	Year       int
	Country    string
	ReleaseAt  time.Time
	Genres     []string
	Duration   int
	Rating     decimal.Decimal
	Director   string
	StarActors []string

	era Era
}

type MovieParams struct {
	ID         uuid.UUID
	Title      string          `validate:"required"`
	Year       int             `validate:"gte=0"`
	Country    string
	ReleaseAt  time.Time
	Genres     []string        `validate:"min=1,unique,dive,required"`
	Duration   int             `validate:"gte=0"`
	Rating     decimal.Decimal `validate:"rating"`
	Director   string
	StarActors []string        `validate:"omitempty,dive,required"`
}

func NewMovie(params MovieParams) (*Movie, error) {
	if err := movieValidator.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid movie %q: %w", params.Title, err)
	}

	id := params.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Movie{
		ID:         id,
		Title:      params.Title,
		Year:       params.Year,
		Country:    params.Country,
		ReleaseAt:  params.ReleaseAt,
		Genres:     append([]string(nil), params.Genres...),
		Duration:   params.Duration,
		Rating:     params.Rating,
		Director:   params.Director,
		StarActors: append([]string(nil), params.StarActors...),
		era:        Classify(params.Year),
	}, nil
}

func (m *Movie) Era() Era {
	return m.era
}

// Period is the schedule slot the movie's era is eligible for.
func (m *Movie) Period() PeriodKey {
	return m.era.Period()
}

// Month returns the full English month name of the release date.
func (m *Movie) Month() string {
	return m.ReleaseAt.Month().String()
}

// Render formats the movie for display. now is only consulted by eras whose
// rendering depends on the current date.
func (m *Movie) Render(now time.Time) string {
	render, ok := renderers[m.era]
	if !ok {
		render = renderBase
	}

	return render(m, now)
}

func (m *Movie) String() string {
	return m.Render(time.Now())
}

func renderBase(m *Movie, _ time.Time) string {
	return fmt.Sprintf("%s (%s; %s) - %d min",
		m.Title,
		m.ReleaseAt.Format(ReleaseDateLayout),
		strings.Join(m.Genres, "/"),
		m.Duration,
	)
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	Create(ctx context.Context, movie *Movie) error
}
