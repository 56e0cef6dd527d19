package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestReadConfig(t *testing.T) {
	path := filepath.Join("testdata", "valid-config.json")
	config, err := ReadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	expect := &Config{
		Version:        1,
		DeviceSnapshot: "device.jsonc",
		StateDir:       "/tmp/devicetrust",
		LogLevel:       "debug",
		HTTP:           HTTP{Address: "127.0.0.1:9000"},
	}
	if diff := cmp.Diff(expect, config, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Fatal(diff)
	}
	if config.Path() != path {
		t.Fatal("unexpected path", config.Path())
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(filepath.Join("testdata", "nonexistent.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatal("not the error we expected", err)
	}
}

func TestParseConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		config, err := ParseConfig([]byte(`{"_version": 1}`))
		if err != nil {
			t.Fatal(err)
		}
		if config.LogLevel != DefaultLogLevel || config.HTTP.Address != DefaultHTTPAddress {
			t.Fatal("defaults not applied", config)
		}
		if config.StateDir == "" {
			t.Fatal("expected a state dir")
		}
	})

	t.Run("with invalid log level", func(t *testing.T) {
		_, err := ParseConfig([]byte(`{"log_level": "chatty"}`))
		if !errors.Is(err, ErrInvalidLogLevel) {
			t.Fatal("not the error we expected", err)
		}
	})

	t.Run("with invalid address", func(t *testing.T) {
		_, err := ParseConfig([]byte(`{"http": {"address": "localhost"}}`))
		if err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("with invalid JSON", func(t *testing.T) {
		if _, err := ParseConfig([]byte(`{`)); err == nil {
			t.Fatal("expected an error")
		}
	})
}
