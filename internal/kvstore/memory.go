package kvstore

import (
	"bytes"
	"errors"
	"sync"

	"github.com/sikapp/devicetrust/internal/model"
)

// ErrNoSuchKey indicates that there's no value for the given key.
var ErrNoSuchKey = errors.New("no such key")

// Memory is an in-memory key-value store. The zero value is ready to use.
type Memory struct {
	// m is the underlying map.
	m map[string][]byte

	// mu provides mutual exclusion
	mu sync.Mutex
}

var _ model.KeyValueStore = &Memory{}

// NewMemory creates a [*Memory] initialized with a copy of the given values.
func NewMemory(values map[string][]byte) *Memory {
	kvs := &Memory{}
	for key, value := range values {
		_ = kvs.Set(key, value) // cannot fail
	}
	return kvs
}

// Get returns a copy of the specified key's value. In case of error, the
// error type is such that errors.Is(err, ErrNoSuchKey).
func (kvs *Memory) Get(key string) ([]byte, error) {
	kvs.mu.Lock()
	defer kvs.mu.Unlock()
	value, ok := kvs.m[key]
	if !ok {
		return nil, ErrNoSuchKey
	}
	return bytes.Clone(value), nil
}

// Set sets a copy of value as the value of key.
func (kvs *Memory) Set(key string, value []byte) error {
	kvs.mu.Lock()
	defer kvs.mu.Unlock()
	if kvs.m == nil {
		kvs.m = make(map[string][]byte)
	}
	kvs.m[key] = bytes.Clone(value)
	return nil
}
