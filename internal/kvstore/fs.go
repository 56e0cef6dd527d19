package kvstore

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rogpeppe/go-internal/lockedfile"
	"github.com/sikapp/devicetrust/internal/model"
)

// ErrInvalidKey indicates that a key cannot be mapped to a file
// inside the store directory.
var ErrInvalidKey = errors.New("invalid key")

// FS is a file-system based KVStore. Keys may contain slashes, which
// map to subdirectories of the base directory.
type FS struct {
	basedir string
	mkdir   osMkdirAll
}

var _ model.KeyValueStore = &FS{}

// NewFS creates a new kvstore.FS.
func NewFS(basedir string) (kvs *FS, err error) {
	return newFileSystem(basedir, os.MkdirAll)
}

// osMkdirAll is the type of os.MkdirAll.
type osMkdirAll func(path string, perm fs.FileMode) error

// newFileSystem is like NewFS with a customizable
// osMkdirAll function for creating the kvstore dir.
func newFileSystem(basedir string, mkdir osMkdirAll) (*FS, error) {
	if err := mkdir(basedir, 0700); err != nil {
		return nil, err
	}
	return &FS{basedir: basedir, mkdir: mkdir}, nil
}

// filename returns the filename for a given key.
func (kvs *FS) filename(key string) (string, error) {
	if key == "" || !fs.ValidPath(key) || strings.Contains(key, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(kvs.basedir, filepath.FromSlash(key)), nil
}

// Get returns the specified key's value. In case of error, the
// error type is such that errors.Is(err, ErrNoSuchKey).
func (kvs *FS) Get(key string) ([]byte, error) {
	filename, err := kvs.filename(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchKey, err.Error())
	}
	data, err := lockedfile.Read(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchKey, err.Error())
	}
	return data, nil
}

// Set sets the value of a specific key.
func (kvs *FS) Set(key string, value []byte) error {
	filename, err := kvs.filename(key)
	if err != nil {
		return err
	}
	if err := kvs.mkdir(filepath.Dir(filename), 0700); err != nil {
		return err
	}
	return lockedfile.Write(filename, bytes.NewReader(value), 0600)
}
