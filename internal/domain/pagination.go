package domain

import (
	"cmp"
	"slices"
	"strings"
)

// Metadata describes one page of a movie listing.
type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

// pageMetadata describes the page f selects from total movies.
func pageMetadata(total int, f Pagination) *Metadata {
	lastPage := total / f.PageSize
	if total%f.PageSize != 0 {
		lastPage++
	}

	return &Metadata{
		CurrentPage:  f.Page,
		FirstPage:    1,
		LastPage:     lastPage,
		PageSize:     f.PageSize,
		TotalRecords: total,
	}
}

type Pagination struct {
	Page     int
	PageSize int
	Sort     string
}

func (f Pagination) SortColumn() string {
	return strings.TrimPrefix(f.Sort, "-")
}

func (f Pagination) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

func (f Pagination) Limit() int {
	return f.PageSize
}

func (f Pagination) Offset() int {
	return (f.Page - 1) * f.PageSize
}

var movieSorters = map[string]func(a, b *Movie) int{
	"title":      func(a, b *Movie) int { return cmp.Compare(a.Title, b.Title) },
	"year":       func(a, b *Movie) int { return cmp.Compare(a.Year, b.Year) },
	"duration":   func(a, b *Movie) int { return cmp.Compare(a.Duration, b.Duration) },
	"rate":       func(a, b *Movie) int { return a.Rating.Cmp(b.Rating) },
	"release_at": func(a, b *Movie) int { return a.ReleaseAt.Compare(b.ReleaseAt) },
}

// SortColumns lists the values accepted by Pagination.Sort, without the
// descending prefix.
func SortColumns() []string {
	cols := make([]string, 0, len(movieSorters))
	for col := range movieSorters {
		cols = append(cols, col)
	}
	slices.Sort(cols)

	return cols
}

// Paginate sorts a copy of movies by f.Sort (stable, so collection order
// breaks ties) and returns the requested page with its metadata. An unknown
// sort column keeps the input order.
func Paginate(movies []*Movie, f Pagination) ([]*Movie, *Metadata) {
	f.Page = max(f.Page, 1)
	if f.PageSize < 1 {
		f.PageSize = max(len(movies), 1)
	}

	sorted := slices.Clone(movies)

	if less, ok := movieSorters[f.SortColumn()]; ok {
		slices.SortStableFunc(sorted, func(a, b *Movie) int {
			if f.SortDirection() == "DESC" {
				return less(b, a)
			}
			return less(a, b)
		})
	}

	// Offset is only computed once the page is known to start inside the
	// slice; (Page-1)*PageSize overflows for pages far past the end.
	start := len(sorted)
	if f.Page-1 <= len(sorted)/f.PageSize {
		start = min(f.Offset(), len(sorted))
	}
	end := start + min(f.Limit(), len(sorted)-start)

	return sorted[start:end], pageMetadata(len(sorted), f)
}
