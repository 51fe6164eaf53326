package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const FieldExcludeCountry = "exclude_country"

// GenreRegistry is the set of genres known to a movie source.
type GenreRegistry interface {
	KnownGenre(genre string) bool
	SourceIdentifier() string
}

type fieldKind int

const (
	kindText fieldKind = iota
	kindList
	kindDate
	kindNumber
)

type fieldValue struct {
	kind   fieldKind
	text   string
	list   []string
	date   time.Time
	number decimal.Decimal
}

var fieldAccessors = map[string]func(*Movie) fieldValue{
	"title":       func(m *Movie) fieldValue { return fieldValue{kind: kindText, text: m.Title} },
	"country":     func(m *Movie) fieldValue { return fieldValue{kind: kindText, text: m.Country} },
	"director":    func(m *Movie) fieldValue { return fieldValue{kind: kindText, text: m.Director} },
	"month":       func(m *Movie) fieldValue { return fieldValue{kind: kindText, text: m.Month()} },
	"genre":       func(m *Movie) fieldValue { return fieldValue{kind: kindList, list: m.Genres} },
	"star_actors": func(m *Movie) fieldValue { return fieldValue{kind: kindList, list: m.StarActors} },
	"release_at":  func(m *Movie) fieldValue { return fieldValue{kind: kindDate, date: m.ReleaseAt} },
	"year":        func(m *Movie) fieldValue { return fieldValue{kind: kindNumber, number: decimal.NewFromInt(int64(m.Year))} },
	"duration":    func(m *Movie) fieldValue { return fieldValue{kind: kindNumber, number: decimal.NewFromInt(int64(m.Duration))} },
	"rate":        func(m *Movie) fieldValue { return fieldValue{kind: kindNumber, number: m.Rating} },
}

var fieldAliases = map[string]string{
	"genres": "genre",
	"actors": "star_actors",
	"rating": "rate",
}

// Fields returns the names accepted by Matcher.Matches.
func Fields() []string {
	names := make([]string, 0, len(fieldAccessors)+1)
	for name := range fieldAccessors {
		names = append(names, name)
	}
	names = append(names, FieldExcludeCountry)
	slices.Sort(names)

	return names
}

// NumericField reports whether the named field holds a number.
func NumericField(field string) bool {
	return fieldKindOf(field) == kindNumber
}

// DateField reports whether the named field holds a date.
func DateField(field string) bool {
	return fieldKindOf(field) == kindDate
}

func fieldKindOf(field string) fieldKind {
	access, ok := fieldAccessors[canonicalField(field)]
	if !ok {
		return kindText
	}

	return access(&Movie{}).kind
}

func canonicalField(field string) string {
	if alias, ok := fieldAliases[field]; ok {
		return alias
	}

	return field
}

// Matcher evaluates one movie field against one comparator. Genre lookups are
// checked against the registry it was built with.
type Matcher struct {
	genres GenreRegistry
}

func NewMatcher(genres GenreRegistry) *Matcher {
	return &Matcher{genres: genres}
}

// HasGenre reports whether the movie is tagged with genre. The genre must be
// known to the registry, otherwise an *UnknownGenreError is returned.
func (mt *Matcher) HasGenre(movie *Movie, genre string) (bool, error) {
	if err := mt.checkGenre(genre); err != nil {
		return false, err
	}

	return slices.Contains(movie.Genres, genre), nil
}

// Matches evaluates one field of movie against c. Unknown fields, unknown
// genres and comparators the field cannot be compared with are errors, never
// a non-match.
func (mt *Matcher) Matches(movie *Movie, field string, c Comparator) (bool, error) {
	field, access, err := mt.resolve(field, c)
	if err != nil {
		return false, err
	}

	if field == FieldExcludeCountry {
		return movie.Country != string(c.(Literal)), nil
	}

	v := access(movie)

	switch c := c.(type) {
	case Literal:
		return v.equalsText(string(c)), nil
	case Pattern:
		return v.matchesPattern(c), nil
	case Temporal:
		return civilDay(v.date).Equal(civilDay(c.At)), nil
	case DateRange:
		day := civilDay(v.date)
		return !day.Before(civilDay(c.From)) && !day.After(civilDay(c.To)), nil
	case Numeric:
		return v.number.Equal(c.Value), nil
	case NumericRange:
		return v.number.GreaterThanOrEqual(c.Low) && v.number.LessThanOrEqual(c.High), nil
	default:
		return false, &UnsupportedComparatorError{Field: field, Comparator: c}
	}
}

// Check reports the error Matches would return for field and c on any movie.
func (mt *Matcher) Check(field string, c Comparator) error {
	_, _, err := mt.resolve(field, c)
	return err
}

func (mt *Matcher) resolve(field string, c Comparator) (string, func(*Movie) fieldValue, error) {
	field = canonicalField(field)
	unsupported := &UnsupportedComparatorError{Field: field, Comparator: c}

	if field == FieldExcludeCountry {
		if _, ok := c.(Literal); !ok {
			return field, nil, unsupported
		}
		return field, nil, nil
	}

	access, ok := fieldAccessors[field]
	if !ok {
		return field, nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	kind := fieldKindOf(field)

	switch c := c.(type) {
	case Literal:
		if field == "genre" {
			if err := mt.checkGenre(string(c)); err != nil {
				return field, nil, err
			}
		}
	case Pattern:
		if c.re == nil {
			return field, nil, unsupported
		}
	case Temporal, DateRange:
		if kind != kindDate {
			return field, nil, unsupported
		}
	case Numeric, NumericRange:
		if kind != kindNumber {
			return field, nil, unsupported
		}
	default:
		return field, nil, unsupported
	}

	return field, access, nil
}

func (mt *Matcher) checkGenre(genre string) error {
	if genre != "" && mt.genres.KnownGenre(genre) {
		return nil
	}

	return &UnknownGenreError{Genre: genre, Source: mt.genres.SourceIdentifier()}
}

// equalsText compares a literal against a text field, or against each element
// of a list field. Dates and numbers never equal a literal.
func (v fieldValue) equalsText(s string) bool {
	switch v.kind {
	case kindText:
		return v.text == s
	case kindList:
		return slices.Contains(v.list, s)
	default:
		return false
	}
}

func (v fieldValue) matchesPattern(p Pattern) bool {
	switch v.kind {
	case kindList:
		return slices.ContainsFunc(v.list, p.re.MatchString)
	case kindDate:
		return p.re.MatchString(v.date.Format(ReleaseDateLayout))
	case kindNumber:
		return p.re.MatchString(v.number.String())
	default:
		return p.re.MatchString(v.text)
	}
}

func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

