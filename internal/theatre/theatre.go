package theatre

import (
	"fmt"
	"time"

	"github.com/metinatakli/movie-theatre/internal/domain"
)

// Theatre answers "what's showing" questions for a movie collection under a
// fixed configuration. It holds no mutable state and is safe for concurrent
// use.
type Theatre struct {
	movies *domain.MovieCollection
	config *Config
	now    func() time.Time
}

type Option func(*Theatre)

// WithClock overrides the clock used by NowShowing.
func WithClock(now func() time.Time) Option {
	return func(t *Theatre) {
		t.now = now
	}
}

// New returns a theatre for movies. A nil config selects DefaultConfig.
func New(movies *domain.MovieCollection, config *Config, opts ...Option) *Theatre {
	if config == nil {
		config = DefaultConfig()
	}

	t := &Theatre{
		movies: movies,
		config: config,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Theatre) Config() *Config {
	return t.config
}

func (t *Theatre) Movies() *domain.MovieCollection {
	return t.movies
}

// ResolvePeriod returns the key of the period containing now's time of day.
func (t *Theatre) ResolvePeriod(now time.Time) (domain.PeriodKey, error) {
	p, err := t.periodAt(now)
	if err != nil {
		return "", err
	}

	return p.Key, nil
}

func (t *Theatre) periodAt(now time.Time) (Period, error) {
	tod := TimeOfDayOf(now)

	for _, p := range t.config.Periods() {
		if p.Contains(tod) {
			return p, nil
		}
	}

	return Period{}, fmt.Errorf("%w for %s", domain.ErrNoPeriodMatch, tod)
}

// Scheduled picks the movie for period key: the first movie in collection
// order declared for that period, else the first movie eligible for any
// period.
func (t *Theatre) Scheduled(key domain.PeriodKey) (*domain.Movie, error) {
	var fallback *domain.Movie

	for _, m := range t.movies.All() {
		switch m.Period() {
		case key:
			return m, nil
		case domain.PeriodAny:
			if fallback == nil {
				fallback = m
			}
		}
	}

	if fallback == nil {
		return nil, fmt.Errorf("%w for period %q", domain.ErrNoMovieScheduled, key)
	}

	return fallback, nil
}

// Show renders the movie playing at now together with its session window in
// the period's hall.
func (t *Theatre) Show(now time.Time) (string, error) {
	p, err := t.periodAt(now)
	if err != nil {
		return "", err
	}

	movie, err := t.Scheduled(p.Key)
	if err != nil {
		return "", err
	}

	hall, ok := t.config.Hall(p.Hall)
	if !ok {
		return "", fmt.Errorf("%w %q for period %q", domain.ErrUnknownHall, p.Hall, p.Key)
	}

	return fmt.Sprintf("Now showing: %s %s", movie.Render(now), hall.Window(movie.Duration)), nil
}

// NowShowing is Show at the theatre's clock time.
func (t *Theatre) NowShowing() (string, error) {
	return t.Show(t.now())
}

// When returns the period the titled movie is eligible for.
func (t *Theatre) When(title string) (domain.PeriodKey, error) {
	movie, err := t.movies.FindByTitle(title)
	if err != nil {
		return "", err
	}

	return movie.Period(), nil
}
