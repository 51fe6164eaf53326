package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateTitle        = errors.New("movie with the same title already exists")
	ErrUnknownGenre          = errors.New("unknown genre")
	ErrUnknownField          = errors.New("unknown movie field")
	ErrUnsupportedComparator = errors.New("unsupported comparator")
	ErrMovieNotFound         = errors.New("movie not found")
	ErrPeriodConflict        = errors.New("period conflict")
	ErrNoPeriodMatch         = errors.New("no period matches")
	ErrNoMovieScheduled      = errors.New("no movie scheduled")
	ErrUnknownHall           = errors.New("unknown hall")
)

// UnknownGenreError is returned when a genre lookup names a genre that the
// collection has never seen. Source identifies where the collection came from.
type UnknownGenreError struct {
	Genre  string
	Source string
}

func (e *UnknownGenreError) Error() string {
	return fmt.Sprintf("there is no genre %q in %s", e.Genre, e.Source)
}

func (e *UnknownGenreError) Unwrap() error {
	return ErrUnknownGenre
}

type MovieNotFoundError struct {
	Title string
}

func (e *MovieNotFoundError) Error() string {
	return fmt.Sprintf("there is no %q found", e.Title)
}

func (e *MovieNotFoundError) Unwrap() error {
	return ErrMovieNotFound
}

// PeriodConflictError names the already registered period and the one whose
// registration was rejected.
type PeriodConflictError struct {
	Existing string
	Added    string
}

func (e *PeriodConflictError) Error() string {
	return fmt.Sprintf("period '%s' conflicts with '%s'", e.Existing, e.Added)
}

func (e *PeriodConflictError) Unwrap() error {
	return ErrPeriodConflict
}

// UnsupportedComparatorError describes a field/comparator pair the matcher
// cannot evaluate.
type UnsupportedComparatorError struct {
	Field      string
	Comparator Comparator
}

func (e *UnsupportedComparatorError) Error() string {
	return fmt.Sprintf("cannot match field %q against %T", e.Field, e.Comparator)
}

func (e *UnsupportedComparatorError) Unwrap() error {
	return ErrUnsupportedComparator
}
