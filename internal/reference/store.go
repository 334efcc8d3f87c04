package reference

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/five82/larder/internal/remote"
)

// DefaultLimit is the page size requested from the berry listing.
const DefaultLimit = 100

// Snapshot represents the latest berry listing available to the UI.
type Snapshot struct {
	Berries             []remote.BerryRef
	Count               int
	Loading             bool
	Loaded              bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the listing failed more than once in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the berry listing and the detail
// lookup session.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	detail   Detail
	session  uint64
}

// BeginLoad marks the listing as loading.
func (s *Store) BeginLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Loading = true
}

// NeedsLoad reports whether the listing has never been fetched successfully
// and no fetch is in flight.
func (s *Store) NeedsLoad() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.snapshot.Loaded && !s.snapshot.Loading
}

// Update records the result of a listing fetch. When err is non-nil the
// previous data is kept but the error is recorded for visibility. The loading
// flag is cleared either way.
func (s *Store) Update(page *remote.BerryPage, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Loading = false
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if page != nil {
		s.snapshot.Berries = cloneRefs(page.Results)
		s.snapshot.Count = page.Count
	} else {
		s.snapshot.Berries = nil
		s.snapshot.Count = 0
	}
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current listing.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Berries = cloneRefs(s.snapshot.Berries)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Detail is the state of one detail viewing session.
type Detail struct {
	Open     bool
	Name     string
	Loading  bool
	Berry    *remote.BerryDetail
	Err      error
	Session  uint64
	LookedUp time.Time
}

// Found reports whether the session holds a detail result.
func (d Detail) Found() bool {
	return d.Berry != nil
}

// OpenDetail starts a new viewing session preselecting name. Any earlier
// session is discarded.
func (s *Store) OpenDetail(name string) Detail {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session++
	s.detail = Detail{Open: true, Name: strings.TrimSpace(name), Session: s.session}
	return s.detail
}

// Select changes the selected name without starting a lookup.
func (s *Store) Select(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.detail.Open {
		return
	}
	s.detail.Name = strings.TrimSpace(name)
}

// BeginLookup marks the session as loading, clears the previous result and
// returns the session token the caller hands back to FinishLookup. Lookups
// are not deduplicated.
func (s *Store) BeginLookup(name string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.detail.Open {
		return 0, fmt.Errorf("no detail session open")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("berry name required")
	}
	s.detail.Name = name
	s.detail.Loading = true
	s.detail.Berry = nil
	s.detail.Err = nil
	return s.session, nil
}

// FinishLookup records a lookup result. Within a session the last response to
// arrive wins; responses for a closed session are dropped. A failed lookup
// clears any earlier detail. It reports whether the result was applied.
func (s *Store) FinishLookup(session uint64, detail *remote.BerryDetail, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.detail.Open || session != s.session {
		return false
	}
	s.detail.Loading = false
	s.detail.LookedUp = time.Now()
	if err != nil {
		s.detail.Berry = nil
		s.detail.Err = err
		return true
	}
	if detail != nil {
		dup := *detail
		dup.Flavors = append([]remote.BerryFlavor(nil), detail.Flavors...)
		s.detail.Berry = &dup
	} else {
		s.detail.Berry = nil
	}
	s.detail.Err = nil
	return true
}

// CloseDetail ends the viewing session and discards its result.
func (s *Store) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session++
	s.detail = Detail{}
}

// Detail returns a copy of the current detail session.
func (s *Store) Detail() Detail {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := s.detail
	if s.detail.Berry != nil {
		dup := *s.detail.Berry
		dup.Flavors = append([]remote.BerryFlavor(nil), s.detail.Berry.Flavors...)
		d.Berry = &dup
	}
	return d
}

func cloneRefs(items []remote.BerryRef) []remote.BerryRef {
	if len(items) == 0 {
		return nil
	}
	dup := make([]remote.BerryRef, len(items))
	copy(dup, items)
	return dup
}
