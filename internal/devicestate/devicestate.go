// Package devicestate describes the state of a device using a static,
// human-editable JSON snapshot.
//
// A [*Snapshot] implements all the capabilities the trust probe needs,
// which allows running the probe from the command line, serving it over
// the local HTTP bridge and writing tests without a real device.
package devicestate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/sikapp/devicetrust/internal/hujsonx"
	"github.com/sikapp/devicetrust/internal/model"
)

// Version is the current version of the snapshot document.
const Version = 1

// Key is the key-value store key containing a snapshot.
const Key = "device.json"

// ErrWrongVersion means that the snapshot document has the wrong version number.
var ErrWrongVersion = errors.New("wrong device snapshot version")

// ErrNoSuchProvider means that a provider does not exist.
var ErrNoSuchProvider = errors.New("no such provider")

// providerErrorDenied is the Provider.Error value mapping to model.ErrPermissionDenied.
const providerErrorDenied = "denied"

// Fix is a cached location fix.
type Fix struct {
	// Latitude is the OPTIONAL latitude.
	Latitude float64 `json:"latitude,omitempty"`

	// Longitude is the OPTIONAL longitude.
	Longitude float64 `json:"longitude,omitempty"`

	// Mock is true when the platform flagged the fix as mocked.
	Mock bool `json:"mock"`
}

// Provider describes a location provider.
type Provider struct {
	// Name is the provider name (e.g., "gps").
	Name string `json:"name"`

	// Enabled tells whether the provider is enabled.
	Enabled bool `json:"enabled"`

	// LastKnown is the OPTIONAL last known fix.
	LastKnown *Fix `json:"last_known,omitempty"`

	// Error is the OPTIONAL error returned when reading the last
	// known fix. The "denied" value means permission denied.
	Error string `json:"error,omitempty"`
}

// Snapshot is a snapshot of the device state.
type Snapshot struct {
	// Version is the document version.
	Version int `json:"version"`

	// Platform is the OPTIONAL platform name.
	Platform string `json:"platform,omitempty"`

	// FineLocationGranted tells whether the app has fine location access.
	FineLocationGranted bool `json:"fine_location_granted"`

	// MockFlagSupported tells whether fixes carry a mock flag.
	MockFlagSupported bool `json:"supports_mock_flag"`

	// LocationProviders contains the location providers.
	LocationProviders []*Provider `json:"providers"`

	// Settings maps a namespace to its integer settings.
	Settings map[string]map[string]int64 `json:"settings"`
}

var (
	_ model.LocationAuthorizer = &Snapshot{}
	_ model.LocationProviders  = &Snapshot{}
	_ model.SettingsReader     = &Snapshot{}
)

// Parse parses a snapshot from human-friendly JSON.
func Parse(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := hujsonx.Unmarshal(data, &snap); err != nil {
		return nil, pkgerrors.Wrap(err, "parsing device snapshot")
	}
	if snap.Version != Version {
		return nil, fmt.Errorf("%w: expected=%d got=%d", ErrWrongVersion, Version, snap.Version)
	}
	return &snap, nil
}

// ReadFile reads a snapshot from the given file.
func ReadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "reading device snapshot")
	}
	return Parse(data)
}

// Load loads the snapshot stored at [Key] inside kvs.
func Load(kvs model.KeyValueStore) (*Snapshot, error) {
	data, err := kvs.Get(Key)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "loading device snapshot")
	}
	return Parse(data)
}

// Store serializes the snapshot and saves it at [Key] inside kvs.
func (s *Snapshot) Store(kvs model.KeyValueStore) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return kvs.Set(Key, data)
}

// HasFineLocation implements model.LocationAuthorizer.
func (s *Snapshot) HasFineLocation() bool {
	return s.FineLocationGranted
}

// Providers implements model.LocationProviders.
func (s *Snapshot) Providers(includeDisabled bool) (model.ProviderList, error) {
	out := model.ProviderList{}
	for _, p := range s.LocationProviders {
		if p.Enabled || includeDisabled {
			out = append(out, p.Name)
		}
	}
	return out, nil
}

// LastKnownLocation implements model.LocationProviders.
func (s *Snapshot) LastKnownLocation(provider string) (*model.LocationSample, error) {
	for _, p := range s.LocationProviders {
		if p.Name != provider {
			continue
		}
		switch {
		case p.Error == providerErrorDenied:
			return nil, fmt.Errorf("%s: %w", provider, model.ErrPermissionDenied)
		case p.Error != "":
			return nil, fmt.Errorf("%s: %s", provider, p.Error)
		case p.LastKnown == nil:
			return nil, nil
		default:
			return &model.LocationSample{Provider: provider, IsMock: p.LastKnown.Mock}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoSuchProvider, provider)
}

// SupportsMockFlag implements model.LocationProviders.
func (s *Snapshot) SupportsMockFlag() bool {
	return s.MockFlagSupported
}

// GetInt implements model.SettingsReader.
func (s *Snapshot) GetInt(namespace, key string) (int64, error) {
	value, found := s.Settings[namespace][key]
	if !found {
		return 0, fmt.Errorf("%s/%s: %w", namespace, key, model.ErrSettingNotFound)
	}
	return value, nil
}
