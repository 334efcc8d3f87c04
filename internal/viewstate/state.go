package viewstate

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// SortOrder is the direction of the name sort.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// SortName is the only sortable field today.
const SortName = "name"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageSizes lists the selectable page sizes in display order.
var PageSizes = []int{10, 30, 50}

// State is the per-list UI state. The JSON shape is the persisted blob.
type State struct {
	Page      int       `json:"page"`
	PageSize  int       `json:"pageSize"`
	Search    string    `json:"search"`
	SortBy    string    `json:"sortBy"`
	SortOrder SortOrder `json:"sortOrder"`
}

// Default returns the reset state.
func Default() State {
	return State{
		Page:      DefaultPage,
		PageSize:  DefaultPageSize,
		Search:    "",
		SortBy:    SortName,
		SortOrder: Asc,
	}
}

// Descending reports whether the sort is inverted.
func (s State) Descending() bool {
	return s.SortOrder == Desc
}

// Normalize forces every field back into its domain. It is applied to state
// restored from disk, which may predate the current rules.
func (s State) Normalize() State {
	if s.Page < 1 {
		s.Page = DefaultPage
	}
	if !ValidPageSize(s.PageSize) {
		s.PageSize = DefaultPageSize
		s.Page = DefaultPage
	}
	if s.SortBy != SortName {
		s.SortBy = SortName
	}
	if s.SortOrder != Desc {
		s.SortOrder = Asc
	}
	return s
}

// ValidPageSize reports whether size is one of PageSizes.
func ValidPageSize(size int) bool {
	return slices.Contains(PageSizes, size)
}

// ValidationError reports a rejected setter value.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// Store holds one list's view state. Every setter is synchronous.
type Store struct {
	mu    sync.RWMutex
	state State

	listenerMu sync.Mutex
	listeners  map[int]func(State)
	nextSub    int
}

// NewStore returns a store holding the default state.
func NewStore() *Store {
	return &Store{state: Default()}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == (State{}) {
		return Default()
	}
	return s.state
}

// SetPage stores page as-is except that values below 1 become 1; the pipeline
// handles pages past the end.
func (s *Store) SetPage(page int) {
	s.apply(func(st *State) {
		if page < 1 {
			page = DefaultPage
		}
		st.Page = page
	})
}

// SetPageSize changes the page size and returns to page 1.
func (s *Store) SetPageSize(size int) error {
	if !ValidPageSize(size) {
		return &ValidationError{Field: "pageSize", Value: strconv.Itoa(size)}
	}
	s.apply(func(st *State) {
		st.PageSize = size
		st.Page = DefaultPage
	})
	return nil
}

// CyclePageSize advances to the next allowed page size.
func (s *Store) CyclePageSize() int {
	var next int
	s.apply(func(st *State) {
		idx := slices.Index(PageSizes, st.PageSize)
		next = PageSizes[(idx+1)%len(PageSizes)]
		st.PageSize = next
		st.Page = DefaultPage
	})
	return next
}

// SetSearch changes the search text and returns to page 1.
func (s *Store) SetSearch(search string) {
	s.apply(func(st *State) {
		st.Search = search
		st.Page = DefaultPage
	})
}

// SetSortBy selects the sort field.
func (s *Store) SetSortBy(field string) error {
	if strings.TrimSpace(field) != SortName {
		return &ValidationError{Field: "sortBy", Value: field}
	}
	s.apply(func(st *State) { st.SortBy = SortName })
	return nil
}

// SetSortOrder selects the sort direction.
func (s *Store) SetSortOrder(order SortOrder) error {
	if order != Asc && order != Desc {
		return &ValidationError{Field: "sortOrder", Value: string(order)}
	}
	s.apply(func(st *State) { st.SortOrder = order })
	return nil
}

// ToggleSortOrder flips between ascending and descending.
func (s *Store) ToggleSortOrder() SortOrder {
	var order SortOrder
	s.apply(func(st *State) {
		if st.SortOrder == Desc {
			st.SortOrder = Asc
		} else {
			st.SortOrder = Desc
		}
		order = st.SortOrder
	})
	return order
}

// NextPage advances one page unless already on the last page or the result
// set is empty. It reports whether the page changed.
func (s *Store) NextPage(totalPages int) bool {
	moved := false
	s.apply(func(st *State) {
		if totalPages == 0 || st.Page >= totalPages {
			return
		}
		st.Page++
		moved = true
	})
	return moved
}

// PrevPage goes back one page unless already on the first.
func (s *Store) PrevPage() bool {
	moved := false
	s.apply(func(st *State) {
		if st.Page <= 1 {
			return
		}
		st.Page--
		moved = true
	})
	return moved
}

// Reset restores the defaults.
func (s *Store) Reset() {
	s.apply(func(st *State) { *st = Default() })
}

// Restore replaces the whole state with a persisted one, normalized.
func (s *Store) Restore(st State) {
	s.apply(func(cur *State) { *cur = st.Normalize() })
}

// Subscribe registers fn to receive the state after every change.
func (s *Store) Subscribe(fn func(State)) func() {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	if s.listeners == nil {
		s.listeners = make(map[int]func(State))
	}
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	return func() {
		s.listenerMu.Lock()
		delete(s.listeners, id)
		s.listenerMu.Unlock()
	}
}

func (s *Store) apply(mutate func(*State)) {
	s.mu.Lock()
	if s.state == (State{}) {
		s.state = Default()
	}
	before := s.state
	mutate(&s.state)
	after := s.state
	s.mu.Unlock()

	if before == after {
		return
	}

	s.listenerMu.Lock()
	fns := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenerMu.Unlock()

	for _, fn := range fns {
		fn(after)
	}
}
