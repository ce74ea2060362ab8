package storage

import "time"

// KV is the key-value capability every screen-facing component depends on.
// Getters report presence with their second return; a value that exists but
// fails to decode reads as absent so corrupted state degrades to defaults
// instead of failing the caller.
type KV interface {
	Has(key string) bool

	GetString(key string) (string, bool)
	SetString(key, value string) error

	GetBool(key string) (bool, bool)
	SetBool(key string, value bool) error

	GetInt(key string) (int, bool)
	SetInt(key string, value int) error

	GetTime(key string) (time.Time, bool)
	SetTime(key string, value time.Time) error

	GetData(key string) ([]byte, bool)
	SetData(key string, value []byte) error

	// Delete removes a key. Deleting a key that does not exist is a no-op.
	Delete(key string) error

	Close() error
}
