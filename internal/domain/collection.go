package domain

import (
	"maps"
	"slices"
)

// Filter is one field/comparator pair passed to MovieCollection.Filter.
type Filter struct {
	Field      string
	Comparator Comparator
}

// MovieCollection is an ordered, read-only set of movies keyed by title. It is
// safe for concurrent reads once constructed.
type MovieCollection struct {
	source  string
	movies  []*Movie
	byTitle map[string]*Movie
	genres  map[string]struct{}
	matcher *Matcher
}

// NewMovieCollection builds a collection from movies in the given order. The
// genre registry is derived from the movies themselves. When two movies share
// a title, lookups resolve to the first one.
func NewMovieCollection(source string, movies []*Movie) *MovieCollection {
	c := &MovieCollection{
		source:  source,
		movies:  slices.Clone(movies),
		byTitle: make(map[string]*Movie, len(movies)),
		genres:  make(map[string]struct{}),
	}

	for _, m := range c.movies {
		if _, ok := c.byTitle[m.Title]; !ok {
			c.byTitle[m.Title] = m
		}
		for _, g := range m.Genres {
			c.genres[g] = struct{}{}
		}
	}

	c.matcher = NewMatcher(c)

	return c
}

func (c *MovieCollection) KnownGenre(genre string) bool {
	_, ok := c.genres[genre]
	return ok
}

func (c *MovieCollection) ExistingGenres() map[string]struct{} {
	return maps.Clone(c.genres)
}

// Genres returns the registry's genres sorted by name.
func (c *MovieCollection) Genres() []string {
	return slices.Sorted(maps.Keys(c.genres))
}

func (c *MovieCollection) SourceIdentifier() string {
	return c.source
}

func (c *MovieCollection) All() []*Movie {
	return slices.Clone(c.movies)
}

func (c *MovieCollection) Len() int {
	return len(c.movies)
}

func (c *MovieCollection) Matcher() *Matcher {
	return c.matcher
}

func (c *MovieCollection) FindByTitle(title string) (*Movie, error) {
	m, ok := c.byTitle[title]
	if !ok {
		return nil, &MovieNotFoundError{Title: title}
	}

	return m, nil
}

func (c *MovieCollection) HasGenre(movie *Movie, genre string) (bool, error) {
	return c.matcher.HasGenre(movie, genre)
}

// Filter returns the movies, in collection order, that satisfy every filter.
// Every filter is checked before any movie is, so an invalid filter fails
// even when an earlier filter matches nothing or the collection is empty.
func (c *MovieCollection) Filter(filters ...Filter) ([]*Movie, error) {
	for _, f := range filters {
		if err := c.matcher.Check(f.Field, f.Comparator); err != nil {
			return nil, err
		}
	}

	result := []*Movie{}

	for _, m := range c.movies {
		ok, err := c.matchesAll(m, filters)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, m)
		}
	}

	return result, nil
}

func (c *MovieCollection) matchesAll(m *Movie, filters []Filter) (bool, error) {
	for _, f := range filters {
		ok, err := c.matcher.Matches(m, f.Field, f.Comparator)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}
