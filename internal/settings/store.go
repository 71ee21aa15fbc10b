package settings

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
)

// ErrReadOnly is returned by stores that refuse writes.
var ErrReadOnly = errors.New("settings store is read-only")

// Store is the option storage collaborator.
type Store interface {
	// String returns the option as a string.
	String(key string) (string, bool)
	// Int returns the option as an integer.
	Int(key string) (int, bool)
	// SetInt stores an integer option.
	SetInt(key string, value int) error
}

// MemoryStore is a Store over an in-memory map.
type MemoryStore struct {
	values   map[string]any
	readOnly bool
}

// NewMemoryStore creates a store seeded with values.
func NewMemoryStore(values map[string]any) *MemoryStore {
	s := &MemoryStore{values: make(map[string]any, len(values))}
	maps.Copy(s.values, values)

	return s
}

// ReadOnly makes every later SetInt fail with ErrReadOnly.
func (s *MemoryStore) ReadOnly() *MemoryStore {
	s.readOnly = true
	return s
}

// String implements Store.
func (s *MemoryStore) String(key string) (string, bool) {
	return stringValue(s.values, key)
}

// Int implements Store.
func (s *MemoryStore) Int(key string) (int, bool) {
	return intValue(s.values, key)
}

// SetInt implements Store.
func (s *MemoryStore) SetInt(key string, value int) error {
	if s.readOnly {
		return fmt.Errorf("set %s: %w", key, ErrReadOnly)
	}

	s.values[key] = int64(value)

	return nil
}

func stringValue(values map[string]any, key string) (string, bool) {
	v, ok := values[key]
	if !ok {
		return "", false
	}

	switch tv := v.(type) {
	case string:
		return tv, true
	case int64:
		return strconv.FormatInt(tv, 10), true
	case int:
		return strconv.Itoa(tv), true
	case bool:
		return strconv.FormatBool(tv), true
	default:
		return fmt.Sprint(tv), true
	}
}

func intValue(values map[string]any, key string) (int, bool) {
	v, ok := values[key]
	if !ok {
		return 0, false
	}

	switch tv := v.(type) {
	case int64:
		return int(tv), true
	case int:
		return tv, true
	case string:
		n, err := strconv.Atoi(tv)
		if err != nil {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}
