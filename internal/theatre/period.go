package theatre

import (
	"fmt"
	"time"

	"github.com/metinatakli/movie-theatre/internal/domain"
	"github.com/metinatakli/movie-theatre/internal/validator"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed in minutes since midnight.
type TimeOfDay int

func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseClock parses "HH:MM".
func ParseClock(s string) (TimeOfDay, error) {
	t, err := time.Parse(validator.ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}

	return Clock(t.Hour(), t.Minute()), nil
}

func MustParseClock(s string) TimeOfDay {
	t, err := ParseClock(s)
	if err != nil {
		panic(err)
	}

	return t
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return Clock(t.Hour(), t.Minute())
}

// Add returns the time of day d after t, wrapping past midnight.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	m := (int(t) + int(d/time.Minute)) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}

	return TimeOfDay(m)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

type span struct {
	from TimeOfDay
	to   TimeOfDay // exclusive
}

func (s span) overlaps(o span) bool {
	return s.from < o.to && o.from < s.to
}

// Period is a named time-of-day window [Start, End). When End is before Start
// the window wraps through midnight.
type Period struct {
	Key   domain.PeriodKey
	Start TimeOfDay
	End   TimeOfDay
	Hall  string
}

func (p Period) Description() string {
	name := cases.Title(language.English).String(p.Key.String())
	return fmt.Sprintf("%s (%s-%s)", name, p.Start, p.End)
}

func (p Period) Wraps() bool {
	return p.End < p.Start
}

// spans projects the period onto a single 24-hour clock.
func (p Period) spans() []span {
	if !p.Wraps() {
		return []span{{from: p.Start, to: p.End}}
	}

	spans := []span{{from: p.Start, to: minutesPerDay}}
	if p.End > 0 {
		spans = append(spans, span{from: 0, to: p.End})
	}

	return spans
}

func (p Period) Contains(t TimeOfDay) bool {
	for _, s := range p.spans() {
		if t >= s.from && t < s.to {
			return true
		}
	}

	return false
}

func (p Period) Intersects(o Period) bool {
	for _, a := range p.spans() {
		for _, b := range o.spans() {
			if a.overlaps(b) {
				return true
			}
		}
	}

	return false
}
