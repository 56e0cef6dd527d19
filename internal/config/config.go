// Package config contains the configuration of the trustprobe command.
package config

import (
	"errors"
	"net"
	"os"
	"path/filepath"

	"github.com/apex/log"
	pkgerrors "github.com/pkg/errors"
	"github.com/sikapp/devicetrust/internal/hujsonx"
)

// Version is the current config file version.
const Version = 1

// Defaults.
const (
	DefaultHTTPAddress = "127.0.0.1:8765"
	DefaultLogLevel    = "info"
	homeDirName        = ".devicetrust"
)

// ErrInvalidLogLevel indicates that the log level is not valid.
var ErrInvalidLogLevel = errors.New("invalid log level")

// HTTP contains the settings of the local HTTP bridge.
type HTTP struct {
	// Address is the address where to listen.
	Address string `json:"address"`
}

// Config for the trustprobe command.
type Config struct {
	// Private settings
	Comment string `json:"_"`
	Version int64  `json:"_version"`

	// DeviceSnapshot is the OPTIONAL path of a device snapshot
	// file. When empty, we load it from StateDir.
	DeviceSnapshot string `json:"device_snapshot"`

	// StateDir is the directory containing the key-value store.
	StateDir string `json:"state_dir"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `json:"log_level"`

	// HTTP configures the local HTTP bridge.
	HTTP HTTP `json:"http"`

	path string
}

// HomeDir returns the path of the trustprobe home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeDirName), nil
}

// DefaultPath returns the path of the default config file.
func DefaultPath() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.json"), nil
}

// ReadConfig reads the configuration from the path
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := ParseConfig(b)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "parsing config")
	}
	c.path = path
	return c, nil
}

// ReadDefaultConfig reads the config from the default path, if it
// exists, and otherwise returns the default config.
func ReadDefaultConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	c, err := ReadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debugf("config: %s does not exist, using defaults", path)
		c = &Config{Version: Version}
		err = c.Default()
	}
	return c, err
}

// ParseConfig returns config from (human-friendly) JSON bytes.
func ParseConfig(b []byte) (*Config, error) {
	var c Config

	if err := hujsonx.Unmarshal(b, &c); err != nil {
		return nil, pkgerrors.Wrap(err, "parsing json")
	}

	if err := c.Default(); err != nil {
		return nil, pkgerrors.Wrap(err, "defaulting")
	}

	if err := c.Validate(); err != nil {
		return nil, pkgerrors.Wrap(err, "validating")
	}

	return &c, nil
}

// Path returns the path from which we read the config, if any.
func (c *Config) Path() string {
	return c.path
}

// Default fills in the missing settings.
func (c *Config) Default() error {
	if c.StateDir == "" {
		home, err := HomeDir()
		if err != nil {
			return err
		}
		c.StateDir = filepath.Join(home, "state")
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.HTTP.Address == "" {
		c.HTTP.Address = DefaultHTTPAddress
	}
	return nil
}

// Validate the config file
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return pkgerrors.Wrapf(ErrInvalidLogLevel, "%q", c.LogLevel)
	}
	if _, _, err := net.SplitHostPort(c.HTTP.Address); err != nil {
		return pkgerrors.Wrap(err, "http.address")
	}
	return nil
}
