package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Blob names used by the console.
const (
	ProductBlob     = "product-storage"
	ProductViewBlob = "table-storage"
	BerryViewBlob   = "berry-storage"
)

// ErrNoBlob is returned by Load when nothing has been saved under a name.
var ErrNoBlob = errors.New("blob not found")

// ErrCorrupt is returned by LoadJSON when a stored blob does not decode.
var ErrCorrupt = errors.New("blob corrupt")

// Backend stores opaque named blobs.
type Backend interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, blob []byte) error
	Delete(ctx context.Context, name string) error
	Close() error
}

// SaveJSON marshals v and stores it under name.
func SaveJSON(ctx context.Context, b Backend, name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := b.Save(ctx, name, payload); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// LoadJSON reads the blob stored under name into v. It returns ErrNoBlob
// (wrapped) when the blob is absent and ErrCorrupt (wrapped) when it does not
// decode, so callers can fall back to defaults.
func LoadJSON(ctx context.Context, b Backend, name string, v any) error {
	payload, err := b.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decode %s: %w: %w", name, ErrCorrupt, err)
	}
	return nil
}

// Memory is an in-process Backend.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.blobs[name]
	if !ok {
		return nil, ErrNoBlob
	}
	return append([]byte(nil), blob...), nil
}

func (m *Memory) Save(_ context.Context, name string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blobs == nil {
		m.blobs = make(map[string][]byte)
	}
	m.blobs[name] = append([]byte(nil), blob...)
	return nil
}

func (m *Memory) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, name)
	return nil
}

func (m *Memory) Close() error { return nil }
