package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileStore is a Store persisted as a flat TOML table. Every SetInt rewrites
// the file.
type FileStore struct {
	path   string
	values map[string]any
}

// OpenFileStore loads options from path. A missing file yields an empty
// store that is created on the first write.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]any)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}

		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// String implements Store.
func (s *FileStore) String(key string) (string, bool) {
	return stringValue(s.values, key)
}

// Int implements Store.
func (s *FileStore) Int(key string) (int, bool) {
	return intValue(s.values, key)
}

// SetInt implements Store.
func (s *FileStore) SetInt(key string, value int) error {
	prev, had := s.values[key]
	s.values[key] = int64(value)

	if err := s.save(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}

		return err
	}

	return nil
}

func (s *FileStore) save() error {
	data, err := toml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings dir %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", s.path, err)
	}

	return nil
}
