package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/metinatakli/movie-theatre/internal/domain"
	"github.com/shopspring/decimal"
)

// Partial dates keep the precision the source provides.
var releaseLayouts = []string{domain.ReleaseDateLayout, "2006-01", "2006"}

// Record is one raw movie line, every field as it appears in the source.
type Record struct {
	Link       string
	Title      string
	Year       string
	Country    string
	ReleaseAt  string
	Genre      string // comma-separated
	Duration   string // "142 min"
	Rate       string
	Director   string
	StarActors string // comma-separated
}

// ParseRecord converts a raw record into typed movie parameters. It does not
// validate them; domain.NewMovie does.
func ParseRecord(r Record) (domain.MovieParams, error) {
	year, err := parseInt(r.Year)
	if err != nil {
		return domain.MovieParams{}, fmt.Errorf("year: %w", err)
	}

	releaseAt, err := parseReleaseDate(r.ReleaseAt)
	if err != nil {
		return domain.MovieParams{}, fmt.Errorf("release_at: %w", err)
	}

	duration, err := parseInt(strings.TrimSuffix(strings.TrimSpace(r.Duration), "min"))
	if err != nil {
		return domain.MovieParams{}, fmt.Errorf("duration: %w", err)
	}

	rating := decimal.Zero
	if s := strings.TrimSpace(r.Rate); s != "" {
		rating, err = decimal.NewFromString(s)
		if err != nil {
			return domain.MovieParams{}, fmt.Errorf("rate: %w", err)
		}
	}

	return domain.MovieParams{
		Title:      strings.TrimSpace(r.Title),
		Year:       year,
		Country:    strings.TrimSpace(r.Country),
		ReleaseAt:  releaseAt,
		Genres:     splitList(r.Genre),
		Duration:   duration,
		Rating:     rating,
		Director:   strings.TrimSpace(r.Director),
		StarActors: splitList(r.StarActors),
	}, nil
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	return strconv.Atoi(s)
}

func parseReleaseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	var err error
	for _, layout := range releaseLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
