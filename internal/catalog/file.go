package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/metinatakli/movie-theatre/internal/domain"
)

const fieldsPerLine = 10

// ParseError reports the line a record failed on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadFile reads a pipe-delimited movie file. The collection's source
// identifier is the file's base name.
func LoadFile(path string) (*domain.MovieCollection, error) {
	f, err := os.Open(filepath.Clean(path))
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("file does not exist: %s", path)
	case errors.Is(err, os.ErrPermission):
		return nil, fmt.Errorf("not enough permissions to open file: %s", path)
	default:
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	movies, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return domain.NewMovieCollection(filepath.Base(path), movies), nil
}

// Read parses every line of r as
// link|title|year|country|release_at|genre|duration|rate|director|star_actors.
func Read(r io.Reader) ([]*domain.Movie, error) {
	reader := csv.NewReader(r)
	reader.Comma = '|'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = fieldsPerLine
	reader.ReuseRecord = true

	movies := []*domain.Movie{}

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return movies, nil
		}

		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)

		params, err := ParseRecord(Record{
			Link:       fields[0],
			Title:      fields[1],
			Year:       fields[2],
			Country:    fields[3],
			ReleaseAt:  fields[4],
			Genre:      fields[5],
			Duration:   fields[6],
			Rate:       fields[7],
			Director:   fields[8],
			StarActors: fields[9],
		})
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}

		movie, err := domain.NewMovie(params)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}

		movies = append(movies, movie)
	}
}
