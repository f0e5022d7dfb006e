package kvstore

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key does not exist or has expired.
var ErrNotFound = errors.New("kvstore: key not found")

type KVStore interface {
	Get(key string) (string, error)
	// Set stores value under key. A zero ttl keeps the key until deleted.
	Set(key string, value interface{}, ttl time.Duration) error
	Delete(key string) error
	Ping() error
}
