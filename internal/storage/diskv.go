package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

const diskvCacheSizeMax = 1024 * 1024 // 1MB

// DiskvStore persists each key as its own small file under basePath. It is
// the default backend: crash-safe enough for single-user writes and trivially
// inspectable on disk.
type diskvStore struct {
	d *diskv.Diskv
}

// NewDiskvStore opens (creating if needed) a diskv-backed KV store rooted at
// the given directory.
func NewDiskvStore(basePath string) (KV, error) {
	if basePath == "" {
		return nil, fmt.Errorf("diskv store requires a base path")
	}
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	d := diskv.New(diskv.Options{
		BasePath: filepath.Clean(basePath),
		// Flat layout: the key space is small and keys already carry their
		// own "Prefix.name" structure.
		Transform:    func(string) []string { return nil },
		CacheSizeMax: diskvCacheSizeMax,
	})
	return &kvStore{raw: &diskvStore{d: d}}, nil
}

func (s *diskvStore) read(key string) (string, bool) {
	val, err := s.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (s *diskvStore) write(key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *diskvStore) has(key string) bool {
	return s.d.Has(key)
}

func (s *diskvStore) erase(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

func (s *diskvStore) close() error {
	return nil
}
