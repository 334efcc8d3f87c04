package listview

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/larder/internal/viewstate"
)

// Page is one rendered slice of a filtered and sorted list.
type Page[T any] struct {
	Rows          []T
	TotalFiltered int
	TotalPages    int
	Page          int
	PageSize      int
	// RangeStart and RangeEnd are 1-based positions of the first and last
	// row within the filtered list. Only meaningful when HasRange is true.
	RangeStart int
	RangeEnd   int
}

// HasRange reports whether RangeStart..RangeEnd describes visible rows. It is
// false for an empty result and for pages past the end.
func (p Page[T]) HasRange() bool {
	return len(p.Rows) > 0
}

// CanNext reports whether a "next page" action is allowed.
func (p Page[T]) CanNext() bool {
	return CanNext(p.Page, p.TotalPages)
}

// CanPrev reports whether a "previous page" action is allowed.
func (p Page[T]) CanPrev() bool {
	return CanPrev(p.Page)
}

// CanNext is false on the last page and when there are no pages at all.
func CanNext(page, totalPages int) bool {
	return totalPages > 0 && page < totalPages
}

// CanPrev is false on the first page.
func CanPrev(page int) bool {
	return page > 1
}

// Apply runs filter, sort and paginate over items. It never modifies items and
// returns the same result for the same inputs.
func Apply[T any](items []T, nameOf func(T) string, st viewstate.State, locale language.Tag) Page[T] {
	filtered := Filter(items, nameOf, st.Search)
	Sort(filtered, nameOf, st.Descending(), locale)
	return Paginate(filtered, st.Page, st.PageSize)
}

// Filter keeps items whose lower-cased name contains the lower-cased search
// text. An empty search keeps everything. The result is always a new slice.
func Filter[T any](items []T, nameOf func(T) string, search string) []T {
	out := make([]T, 0, len(items))
	if search == "" {
		return append(out, items...)
	}
	needle := strings.ToLower(search)
	for _, item := range items {
		if strings.Contains(strings.ToLower(nameOf(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Sort orders items in place by name using the collation rules of locale.
// Equal names keep their relative order in both directions.
func Sort[T any](items []T, nameOf func(T) string, descending bool, locale language.Tag) {
	if len(items) < 2 {
		return
	}
	// Collators keep internal buffers and are not safe to share.
	c := collate.New(locale)
	slices.SortStableFunc(items, func(a, b T) int {
		cmp := c.CompareString(nameOf(a), nameOf(b))
		if descending {
			return -cmp
		}
		return cmp
	})
}

// Paginate slices out one page. Pages before 1 are treated as 1 and page
// sizes below 1 fall back to the default; pages past the end yield no rows.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = viewstate.DefaultPageSize
	}

	total := len(items)
	result := Page[T]{
		Rows:          []T{},
		TotalFiltered: total,
		TotalPages:    (total + pageSize - 1) / pageSize,
		Page:          page,
		PageSize:      pageSize,
		RangeStart:    (page-1)*pageSize + 1,
		RangeEnd:      min(page*pageSize, total),
	}

	start := (page - 1) * pageSize
	if start >= total {
		return result
	}
	end := min(start+pageSize, total)
	result.Rows = append(result.Rows, items[start:end]...)
	return result
}
