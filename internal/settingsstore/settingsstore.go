// Package settingsstore implements [model.SettingsReader] on top
// of a [model.KeyValueStore].
//
// Each setting lives at key "settings/<namespace>/<name>" and its
// value is a decimal integer, optionally surrounded by whitespace.
package settingsstore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sikapp/devicetrust/internal/kvstore"
	"github.com/sikapp/devicetrust/internal/model"
	"github.com/sikapp/devicetrust/internal/runtimex"
)

// Store reads and writes integer settings.
type Store struct {
	kvs model.KeyValueStore
}

var _ model.SettingsReader = &Store{}

// New creates a new [*Store] using the given key-value store.
func New(kvs model.KeyValueStore) *Store {
	runtimex.PanicIfNil(kvs, "passed nil key-value store")
	return &Store{kvs: kvs}
}

// Key returns the key-value store key for a setting.
func Key(namespace, name string) string {
	return fmt.Sprintf("settings/%s/%s", namespace, name)
}

// GetInt implements model.SettingsReader.
func (s *Store) GetInt(namespace, name string) (int64, error) {
	data, err := s.kvs.Get(Key(namespace, name))
	if errors.Is(err, kvstore.ErrNoSuchKey) {
		return 0, fmt.Errorf("%s/%s: %w", namespace, name, model.ErrSettingNotFound)
	}
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s/%s: %w", namespace, name, err)
	}
	return value, nil
}

// SetInt writes an integer setting.
func (s *Store) SetInt(namespace, name string, value int64) error {
	return s.kvs.Set(Key(namespace, name), []byte(strconv.FormatInt(value, 10)))
}
