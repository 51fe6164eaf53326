package app

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/metinatakli/movie-theatre/api"
	"github.com/metinatakli/movie-theatre/internal/domain"
	appvalidator "github.com/metinatakli/movie-theatre/internal/validator"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10

	rangeSeparator = ".."
)

var (
	errInvalidFilter = errors.New("invalid filter")

	sortRule = func() string {
		values := []string{}
		for _, col := range domain.SortColumns() {
			values = append(values, col, "-"+col)
		}
		return "omitempty,oneof=" + strings.Join(values, " ")
	}()

	pagingParams = map[string]struct{}{"page": {}, "pageSize": {}, "sort": {}}
)

// GetMovies lists the catalog. Every query parameter other than page,
// pageSize and sort is a field filter; filters combine with AND.
func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}
	if params.Sort != nil {
		pagination.Sort = *params.Sort
	}

	if err := app.validator.Var(pagination.Sort, sortRule); err != nil {
		app.fieldValidationResponse(w, r, "Sort", appvalidator.ErrSortColumn)
		return
	}

	filters, err := toMovieFilters(r.URL.Query())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movies, err := app.theatre.Movies().Filter(filters...)
	if err != nil {
		app.theatreErrorResponse(w, r, err)
		return
	}

	page, metadata := domain.Paginate(movies, pagination)

	resp := api.MovieListResponse{
		Movies:   toMovieSummaries(page, app.now()),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// toMovieFilters turns the remaining query parameters into filters, in field
// name order. A repeated parameter yields one filter per value.
func toMovieFilters(query map[string][]string) ([]domain.Filter, error) {
	filters := []domain.Filter{}

	for _, field := range slices.Sorted(maps.Keys(query)) {
		if _, ok := pagingParams[field]; ok {
			continue
		}

		for _, raw := range query[field] {
			c, err := parseComparator(field, raw)
			if err != nil {
				return nil, err
			}

			filters = append(filters, domain.Filter{Field: field, Comparator: c})
		}
	}

	return filters, nil
}

// parseComparator reads one filter expression:
//
//	/expr/   regular expression
//	a..b     inclusive range of numbers or dates
//	value    number, YYYY-MM-DD date or literal, by field kind
func parseComparator(field, raw string) (domain.Comparator, error) {
	if len(raw) >= 2 && strings.HasPrefix(raw, "/") && strings.HasSuffix(raw, "/") {
		p, err := domain.NewPattern(raw[1 : len(raw)-1])
		if err != nil {
			return nil, fmt.Errorf("%w %s=%s: %v", errInvalidFilter, field, raw, err)
		}
		return p, nil
	}

	if low, high, ok := strings.Cut(raw, rangeSeparator); ok {
		switch {
		case domain.NumericField(field):
			lo, err1 := decimal.NewFromString(low)
			hi, err2 := decimal.NewFromString(high)
			if err := errors.Join(err1, err2); err != nil {
				return nil, fmt.Errorf("%w %s=%s: %v", errInvalidFilter, field, raw, err)
			}
			return domain.NumericRange{Low: lo, High: hi}, nil
		case domain.DateField(field):
			from, err1 := time.Parse(domain.ReleaseDateLayout, low)
			to, err2 := time.Parse(domain.ReleaseDateLayout, high)
			if err := errors.Join(err1, err2); err != nil {
				return nil, fmt.Errorf("%w %s=%s: %v", errInvalidFilter, field, raw, err)
			}
			return domain.Dates(from, to), nil
		}
	}

	switch {
	case domain.NumericField(field):
		n, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w %s=%s: not a number", errInvalidFilter, field, raw)
		}
		return domain.Numeric{Value: n}, nil
	case domain.DateField(field):
		day, err := time.Parse(domain.ReleaseDateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("%w %s=%s: not a date", errInvalidFilter, field, raw)
		}
		return domain.Day(day), nil
	default:
		return domain.Literal(raw), nil
	}
}

func toMovieSummaries(movies []*domain.Movie, now time.Time) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = toMovieSummary(movie, now)
	}

	return summaries
}

func toMovieSummary(movie *domain.Movie, now time.Time) api.MovieSummary {
	if movie == nil {
		return api.MovieSummary{}
	}

	summary := api.MovieSummary{
		Id:          movie.ID,
		Title:       movie.Title,
		Year:        movie.Year,
		Country:     movie.Country,
		Month:       movie.Month(),
		Genres:      movie.Genres,
		Duration:    movie.Duration,
		Rating:      movie.Rating.StringFixed(1),
		Director:    movie.Director,
		StarActors:  movie.StarActors,
		Era:         movie.Era().String(),
		Period:      movie.Period().String(),
		Description: movie.Render(now),
	}

	if !movie.ReleaseAt.IsZero() {
		summary.ReleaseDate = &openapi_types.Date{Time: movie.ReleaseAt}
	}

	return summary
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
