package theatre

import (
	"testing"
	"time"

	"github.com/metinatakli/movie-theatre/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "04:00", want: 240},
		{in: "23:59", want: 1439},
		{in: "12:60", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestTimeOfDayAdd(t *testing.T) {
	assert.Equal(t, "17:22", Clock(15, 0).Add(142*time.Minute).String())
	assert.Equal(t, "01:30", Clock(23, 0).Add(150*time.Minute).String())
	assert.Equal(t, "23:00", Clock(1, 0).Add(-2*time.Hour).String())
}

func TestPeriodContains(t *testing.T) {
	evening := Period{Key: domain.PeriodEvening, Start: Clock(16, 0), End: Clock(4, 0)}
	morning := Period{Key: domain.PeriodMorning, Start: Clock(4, 0), End: Clock(12, 0)}

	tests := []struct {
		name   string
		period Period
		at     TimeOfDay
		want   bool
	}{
		{name: "morning start inclusive", period: morning, at: Clock(4, 0), want: true},
		{name: "morning last minute", period: morning, at: Clock(11, 59), want: true},
		{name: "morning end exclusive", period: morning, at: Clock(12, 0), want: false},
		{name: "evening before midnight", period: evening, at: Clock(19, 0), want: true},
		{name: "evening at midnight", period: evening, at: Clock(0, 0), want: true},
		{name: "evening after midnight", period: evening, at: Clock(2, 0), want: true},
		{name: "evening end exclusive", period: evening, at: Clock(4, 0), want: false},
		{name: "evening misses afternoon", period: evening, at: Clock(15, 59), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.Contains(tt.at))
		})
	}
}

func TestPeriodIntersects(t *testing.T) {
	p := func(start, end string) Period {
		return Period{Key: "p", Start: MustParseClock(start), End: MustParseClock(end)}
	}

	tests := []struct {
		name string
		a, b Period
		want bool
	}{
		{name: "adjacent", a: p("04:00", "12:00"), b: p("12:00", "16:00"), want: false},
		{name: "overlapping", a: p("04:00", "12:00"), b: p("11:00", "13:00"), want: true},
		{name: "nested", a: p("04:00", "12:00"), b: p("05:00", "06:00"), want: true},
		{name: "wrap touches both ends", a: p("16:00", "04:00"), b: p("04:00", "16:00"), want: false},
		{name: "wrap overlaps early morning", a: p("16:00", "04:00"), b: p("03:00", "05:00"), want: true},
		{name: "wrap overlaps late evening", a: p("22:00", "02:00"), b: p("23:00", "23:30"), want: true},
		{name: "two wraps always overlap at midnight", a: p("22:00", "01:00"), b: p("23:30", "00:30"), want: true},
		{name: "wrap ending at midnight", a: p("20:00", "00:00"), b: p("00:00", "04:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
		})
	}
}

func TestPeriodDescription(t *testing.T) {
	p := Period{Key: domain.PeriodEvening, Start: Clock(16, 0), End: Clock(4, 0)}

	assert.Equal(t, "Evening (16:00-04:00)", p.Description())
	assert.True(t, p.Wraps())
}
