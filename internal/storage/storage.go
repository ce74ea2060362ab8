package storage

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hamcare-app/hamcare/internal/constants"
)

// rawStore is the per-backend contract: string values in, string values out.
// The typed KV methods live on kvStore so every backend encodes scalars the
// same way.
type rawStore interface {
	read(key string) (string, bool)
	write(key, value string) error
	has(key string) bool
	erase(key string) error
	close() error
}

// Open creates a KV store for the configured backend rooted at path.
func Open(backend, path string) (KV, error) {
	switch backend {
	case constants.BackendDiskv, "":
		return NewDiskvStore(path)
	case constants.BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

type kvStore struct {
	raw rawStore
}

func (s *kvStore) Has(key string) bool {
	return s.raw.has(key)
}

func (s *kvStore) GetString(key string) (string, bool) {
	return s.raw.read(key)
}

func (s *kvStore) SetString(key, value string) error {
	return s.raw.write(key, value)
}

func (s *kvStore) GetBool(key string) (bool, bool) {
	v, ok := s.raw.read(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

func (s *kvStore) SetBool(key string, value bool) error {
	return s.raw.write(key, strconv.FormatBool(value))
}

func (s *kvStore) GetInt(key string) (int, bool) {
	v, ok := s.raw.read(key)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return i, true
}

func (s *kvStore) SetInt(key string, value int) error {
	return s.raw.write(key, strconv.Itoa(value))
}

func (s *kvStore) GetTime(key string) (time.Time, bool) {
	v, ok := s.raw.read(key)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (s *kvStore) SetTime(key string, value time.Time) error {
	return s.raw.write(key, value.Format(time.RFC3339))
}

func (s *kvStore) GetData(key string) ([]byte, bool) {
	v, ok := s.raw.read(key)
	if !ok {
		return nil, false
	}
	return []byte(v), true
}

func (s *kvStore) SetData(key string, value []byte) error {
	return s.raw.write(key, string(value))
}

func (s *kvStore) Delete(key string) error {
	return s.raw.erase(key)
}

func (s *kvStore) Close() error {
	return s.raw.close()
}
