package domain

import (
	"fmt"
	"strings"
	"time"
)

type PeriodKey string

const (
	PeriodAny     PeriodKey = "any"
	PeriodMorning PeriodKey = "morning"
	PeriodDay     PeriodKey = "day"
	PeriodEvening PeriodKey = "evening"
)

func (k PeriodKey) String() string {
	return string(k)
}

type Era int

const (
	EraUnclassified Era = iota
	EraAncient
	EraClassic
	EraModern
	EraNew
)

type eraBoundary struct {
	from int
	to   int // exclusive, 0 means unbounded
	era  Era
}

// Evaluated in order, first match wins.
var eraBoundaries = []eraBoundary{
	{from: 1900, to: 1945, era: EraAncient},
	{from: 1945, to: 1968, era: EraClassic},
	{from: 1968, to: 2000, era: EraModern},
	{from: 2000, era: EraNew},
}

var eraPeriods = map[Era]PeriodKey{
	EraAncient: PeriodMorning,
	EraClassic: PeriodDay,
	EraModern:  PeriodDay,
	EraNew:     PeriodEvening,
}

var renderers = map[Era]func(*Movie, time.Time) string{
	EraUnclassified: renderBase,
	EraAncient: func(m *Movie, _ time.Time) string {
		return fmt.Sprintf("%s - old movie (%d year)", m.Title, m.Year)
	},
	EraClassic: func(m *Movie, _ time.Time) string {
		return fmt.Sprintf("%s - classic movie, director %s (%d year)", m.Title, m.Director, m.Year)
	},
	EraModern: func(m *Movie, _ time.Time) string {
		return fmt.Sprintf("%s - modern movie (%d year): stars %s", m.Title, m.Year, strings.Join(m.StarActors, ", "))
	},
	EraNew: func(m *Movie, now time.Time) string {
		return fmt.Sprintf("%s - new movie, released %d years ago!", m.Title, now.Year()-m.Year)
	},
}

// Classify maps a release year to its era. Years outside every boundary,
// including an unset year, are unclassified.
func Classify(year int) Era {
	for _, b := range eraBoundaries {
		if year >= b.from && (b.to == 0 || year < b.to) {
			return b.era
		}
	}

	return EraUnclassified
}

func (e Era) Period() PeriodKey {
	if key, ok := eraPeriods[e]; ok {
		return key
	}

	return PeriodAny
}

func (e Era) String() string {
	switch e {
	case EraAncient:
		return "ancient"
	case EraClassic:
		return "classic"
	case EraModern:
		return "modern"
	case EraNew:
		return "new"
	default:
		return "unclassified"
	}
}
