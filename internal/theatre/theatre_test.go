package theatre

import (
	"testing"
	"time"

	"github.com/metinatakli/movie-theatre/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TheatreTestSuite struct {
	suite.Suite
	movies  *domain.MovieCollection
	theatre *Theatre
}

func TestTheatreSuite(t *testing.T) {
	suite.Run(t, new(TheatreTestSuite))
}

func (s *TheatreTestSuite) newMovie(title string, year, duration int, actors ...string) *domain.Movie {
	m, err := domain.NewMovie(domain.MovieParams{
		Title:      title,
		Year:       year,
		Country:    "USA",
		ReleaseAt:  time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC),
		Genres:     []string{"Crime"},
		Duration:   duration,
		Rating:     decimal.NewFromFloat(8.1),
		Director:   "Someone",
		StarActors: actors,
	})
	s.Require().NoError(err)

	return m
}

func (s *TheatreTestSuite) SetupTest() {
	s.movies = domain.NewMovieCollection("theatre_movies.txt", []*domain.Movie{
		s.newMovie("Ancient Crime", 1932, 142),
		s.newMovie("Modern Comedy", 1985, 96, "Henry Fonda", "Lee J. Cobb"),
		s.newMovie("New Film", 2005, 142),
	})
	s.theatre = New(s.movies, nil)
}

func at(hour, minute int) time.Time {
	return time.Date(2011, time.January, 15, hour, minute, 0, 0, time.UTC)
}

func (s *TheatreTestSuite) TestResolvePeriod() {
	tests := []struct {
		name string
		now  time.Time
		want domain.PeriodKey
	}{
		{name: "late morning", now: at(11, 59), want: domain.PeriodMorning},
		{name: "late day", now: at(15, 59), want: domain.PeriodDay},
		{name: "evening", now: at(19, 0), want: domain.PeriodEvening},
		{name: "after midnight", now: at(2, 0), want: domain.PeriodEvening},
		{name: "evening end", now: at(4, 0), want: domain.PeriodMorning},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.theatre.ResolvePeriod(tt.now)

			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *TheatreTestSuite) TestResolvePeriodGap() {
	config, err := NewConfig(func(b *Builder) error {
		if err := b.AddHall(Hall{Name: "red", Start: Clock(15, 0)}); err != nil {
			return err
		}
		return b.AddPeriod(domain.PeriodMorning, Clock(4, 0), Clock(12, 0), "red")
	})
	s.Require().NoError(err)

	_, err = New(s.movies, config).ResolvePeriod(at(13, 0))

	s.ErrorIs(err, domain.ErrNoPeriodMatch)
}

func (s *TheatreTestSuite) TestShow() {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "morning",
			now:  at(11, 59),
			want: "Now showing: Ancient Crime - old movie (1932 year) 15:00-17:22",
		},
		{
			name: "day",
			now:  at(15, 59),
			want: "Now showing: Modern Comedy - modern movie (1985 year): stars Henry Fonda, Lee J. Cobb 15:00-16:36",
		},
		{
			name: "evening",
			now:  at(19, 0),
			want: "Now showing: New Film - new movie, released 6 years ago! 15:00-17:22",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.theatre.Show(tt.now)

			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *TheatreTestSuite) TestNowShowingUsesClock() {
	th := New(s.movies, nil, WithClock(func() time.Time { return at(19, 0) }))

	got, err := th.NowShowing()

	s.Require().NoError(err)
	s.Equal("Now showing: New Film - new movie, released 6 years ago! 15:00-17:22", got)
}

func (s *TheatreTestSuite) TestShowFallsBackToAnyPeriod() {
	movies := domain.NewMovieCollection("theatre_movies.txt", []*domain.Movie{
		s.newMovie("New Film", 2005, 142),
		s.newMovie("Undated", 0, 90),
	})

	got, err := New(movies, nil).Show(at(9, 0))

	s.Require().NoError(err)
	s.Contains(got, "Now showing: Undated (0000-03-01; Crime) - 90 min")
}

func (s *TheatreTestSuite) TestShowNoMovieScheduled() {
	movies := domain.NewMovieCollection("theatre_movies.txt", []*domain.Movie{
		s.newMovie("New Film", 2005, 142),
	})

	_, err := New(movies, nil).Show(at(9, 0))

	s.ErrorIs(err, domain.ErrNoMovieScheduled)
}

func (s *TheatreTestSuite) TestWhen() {
	tests := []struct {
		title string
		want  domain.PeriodKey
	}{
		{title: "New Film", want: domain.PeriodEvening},
		{title: "Modern Comedy", want: domain.PeriodDay},
		{title: "Ancient Crime", want: domain.PeriodMorning},
	}

	for _, tt := range tests {
		s.Run(tt.title, func() {
			got, err := s.theatre.When(tt.title)

			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *TheatreTestSuite) TestWhenNotFound() {
	_, err := s.theatre.When("Not existing movie")

	s.ErrorIs(err, domain.ErrMovieNotFound)
	s.EqualError(err, `there is no "Not existing movie" found`)
}
