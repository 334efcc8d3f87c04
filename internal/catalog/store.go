package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound is returned when no product matches the requested ID.
var ErrNotFound = errors.New("product not found")

// SeedFetcher supplies the initial product collection.
type SeedFetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Snapshot is a point-in-time copy of the store.
type Snapshot struct {
	Products   []Product
	Loading    bool
	LastError  error
	LastLoaded time.Time
}

// ErrorMessage returns the recorded load failure in display form.
func (s Snapshot) ErrorMessage() string {
	if s.LastError == nil {
		return ""
	}
	return s.LastError.Error()
}

// Store owns the product collection. Mutations are applied atomically under the
// lock and listeners are notified after the lock is released.
type Store struct {
	mu         sync.RWMutex
	products   []Product
	loading    bool
	lastErr    error
	lastLoaded time.Time
	lastID     int64
	now        func() time.Time

	listenerMu sync.Mutex
	listeners  map[int]func()
	nextSub    int
}

// NewStore returns an empty store using the wall clock for ID assignment.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Load fetches the seed collection when the store is empty. A failed fetch
// leaves the collection empty and records the error; nothing is retried.
func (s *Store) Load(ctx context.Context, fetcher SeedFetcher) error {
	if fetcher == nil {
		return fmt.Errorf("seed fetcher is nil")
	}

	s.mu.Lock()
	if len(s.products) > 0 {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()
	s.notify()

	products, err := fetcher.FetchProducts(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = fmt.Errorf("load products: %w", err)
	} else {
		s.products = cloneProducts(products)
		s.lastErr = nil
		s.lastLoaded = s.clock()
		s.trackIDsLocked(s.products)
	}
	s.mu.Unlock()
	s.notify()

	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	return nil
}

// Replace swaps the whole collection, e.g. when restoring persisted state.
func (s *Store) Replace(products []Product) {
	s.mu.Lock()
	s.products = cloneProducts(products)
	s.trackIDsLocked(s.products)
	s.mu.Unlock()
	s.notify()
}

// Create assigns a fresh ID and prepends the product.
func (s *Store) Create(p Product) Product {
	s.mu.Lock()
	p.ID = s.nextIDLocked()
	next := make([]Product, 0, len(s.products)+1)
	next = append(next, p)
	next = append(next, s.products...)
	s.products = next
	s.mu.Unlock()
	s.notify()
	return p
}

// Update replaces the product with the given ID, keeping the ID.
func (s *Store) Update(id int64, p Product) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	p.ID = id
	next := cloneProducts(s.products)
	next[idx] = p
	s.products = next
	s.mu.Unlock()
	s.notify()
	return nil
}

// Delete removes the product with the given ID. It reports whether anything
// was removed; a missing ID leaves the collection untouched.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	next := make([]Product, 0, len(s.products)-1)
	next = append(next, s.products[:idx]...)
	next = append(next, s.products[idx+1:]...)
	s.products = next
	s.mu.Unlock()
	s.notify()
	return true
}

// Get returns the product with the given ID.
func (s *Store) Get(id int64) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return Product{}, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}
	return s.products[idx], nil
}

// Products returns a copy of the collection in display order.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.products)
}

// Len reports the collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Products:   cloneProducts(s.products),
		Loading:    s.loading,
		LastLoaded: s.lastLoaded,
	}
	if s.lastErr != nil {
		snap.LastError = fmt.Errorf("%w", s.lastErr)
	}
	return snap
}

// Subscribe registers fn to run after every change. The returned func removes it.
func (s *Store) Subscribe(fn func()) func() {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	if s.listeners == nil {
		s.listeners = make(map[int]func())
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

func (s *Store) notify() {
	s.listenerMu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenerMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (s *Store) indexLocked(id int64) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// nextIDLocked derives IDs from the clock in milliseconds but never hands out
// a value at or below one already seen.
func (s *Store) nextIDLocked() int64 {
	id := s.clock().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) trackIDsLocked(products []Product) {
	for _, p := range products {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
}

func (s *Store) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
