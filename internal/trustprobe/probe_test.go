package trustprobe

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sikapp/devicetrust/internal/model"
	"github.com/sikapp/devicetrust/internal/model/mocks"
)

// fakeProvider describes how a fake provider behaves.
type fakeProvider struct {
	sample *model.LocationSample
	err    error
	panics bool
}

// fakeDevice builds mocked capabilities for a device.
type fakeDevice struct {
	granted      bool
	supportsFlag bool
	listErr      error
	providers    map[string]fakeProvider
	settings     map[string]int64
	settingsErr  error

	// lastKnownCalls counts LastKnownLocation calls.
	lastKnownCalls int
}

func (fd *fakeDevice) config() *Config {
	return &Config{
		Authorizer: &mocks.LocationAuthorizer{
			MockHasFineLocation: func() bool {
				return fd.granted
			},
		},
		Locations: &mocks.LocationProviders{
			MockProviders: func(includeDisabled bool) (model.ProviderList, error) {
				if !includeDisabled {
					panic("expected to also list disabled providers")
				}
				if fd.listErr != nil {
					return nil, fd.listErr
				}
				var out model.ProviderList
				for name := range fd.providers {
					out = append(out, name)
				}
				return out, nil
			},
			MockLastKnownLocation: func(provider string) (*model.LocationSample, error) {
				fd.lastKnownCalls++
				fp := fd.providers[provider]
				if fp.panics {
					panic("mocked panic")
				}
				return fp.sample, fp.err
			},
			MockSupportsMockFlag: func() bool {
				return fd.supportsFlag
			},
		},
		Settings: &mocks.SettingsReader{
			MockGetInt: func(namespace, key string) (int64, error) {
				if fd.settingsErr != nil {
					return 0, fd.settingsErr
				}
				value, found := fd.settings[namespace+"/"+key]
				if !found {
					return 0, model.ErrSettingNotFound
				}
				return value, nil
			},
		},
	}
}

func mocked(provider string) fakeProvider {
	return fakeProvider{sample: &model.LocationSample{Provider: provider, IsMock: true}}
}

func genuine(provider string) fakeProvider {
	return fakeProvider{sample: &model.LocationSample{Provider: provider}}
}

const legacyKey = model.SettingsNamespaceSecure + "/" + SettingAllowMockLocation

const developerKey = model.SettingsNamespaceGlobal + "/" + SettingDevelopmentEnabled

func TestIsMockLocation(t *testing.T) {
	type testcase struct {
		name   string
		device *fakeDevice
		expect bool
	}

	testcases := []testcase{{
		name: "gps genuine and network mocked",
		device: &fakeDevice{
			granted:      true,
			supportsFlag: true,
			providers: map[string]fakeProvider{
				"gps":     genuine("gps"),
				"network": mocked("network"),
			},
		},
		expect: true,
	}, {
		name: "no providers and legacy setting enabled",
		device: &fakeDevice{
			granted:      true,
			supportsFlag: true,
			settings:     map[string]int64{legacyKey: 1},
		},
		expect: true,
	}, {
		name: "gps genuine and legacy setting absent",
		device: &fakeDevice{
			granted:      true,
			supportsFlag: true,
			providers:    map[string]fakeProvider{"gps": genuine("gps")},
		},
		expect: false,
	}, {
		name: "gps genuine and legacy setting zero",
		device: &fakeDevice{
			granted:      true,
			supportsFlag: true,
			providers:    map[string]fakeProvider{"gps": genuine("gps")},
			settings:     map[string]int64{legacyKey: 0},
		},
		expect: false,
	}, {
		name: "gps genuine and legacy setting enabled",
		device: &fakeDevice{
			granted:      true,
			supportsFlag: true,
			providers:    map[string]fakeProvider{"gps": genuine("gps")},
			settings:     map[string]int64{legacyKey: 1},
		},
		expect: true,
	}, {
		name: "not authorized even with mocked sample and legacy setting",
		device: &fakeDevice{
			granted:      false,
			supportsFlag: true,
			providers:    map[string]fakeProvider{"gps": mocked("gps")},
			settings:     map[string]int64{legacyKey: 1},
		},
		expect: false,
	}, {
		name: "mock flag not supported ignores samples",
		device: &fakeDevice{
			granted:      true,
			supportsFlag: false,
			providers:    map[string]fakeProvider{"gps": mocked("gps")},
		},
		expect: false,
	}, {
		name: "mock flag not supported keeps legacy fallback",
		device: &fakeDevice{
			granted:      true,
			supportsFlag: false,
			providers:    map[string]fakeProvider{"gps": mocked("gps")},
			settings:     map[string]int64{legacyKey: 7},
		},
		expect: true,
	}, {
		name: "denied and failing providers are skipped",
		device: &fakeDevice{
			granted:      true,
			supportsFlag: true,
			providers: map[string]fakeProvider{
				"gps":     {err: fmt.Errorf("gps: %w", model.ErrPermissionDenied)},
				"network": {err: errors.New("mocked error")},
				"passive": {panics: true},
				"fused":   {},
				"test":    mocked("test"),
			},
		},
		expect: true,
	}, {
		name: "denied and failing providers without any mock",
		device: &fakeDevice{
			granted:      true,
			supportsFlag: true,
			providers: map[string]fakeProvider{
				"gps":     {err: model.ErrPermissionDenied},
				"passive": {panics: true},
			},
		},
		expect: false,
	}, {
		name: "listing providers fails and legacy setting enabled",
		device: &fakeDevice{
			granted:      true,
			supportsFlag: true,
			listErr:      errors.New("mocked error"),
			settings:     map[string]int64{legacyKey: 1},
		},
		expect: true,
	}, {
		name: "settings fail",
		device: &fakeDevice{
			granted:      true,
			supportsFlag: true,
			providers:    map[string]fakeProvider{"gps": genuine("gps")},
			settingsErr:  errors.New("mocked error"),
		},
		expect: false,
	}}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			probe := New(tc.device.config())
			if got := probe.IsMockLocation(); got != tc.expect {
				t.Fatal("expected", tc.expect, "got", got)
			}
		})
	}
}

func TestIsMockLocationShortCircuits(t *testing.T) {
	t.Run("when not authorized", func(t *testing.T) {
		device := &fakeDevice{
			granted:   false,
			providers: map[string]fakeProvider{"gps": mocked("gps")},
		}
		New(device.config()).IsMockLocation()
		if device.lastKnownCalls != 0 {
			t.Fatal("expected no provider reads")
		}
	})

	t.Run("on the first mocked sample", func(t *testing.T) {
		device := &fakeDevice{
			granted:      true,
			supportsFlag: true,
			providers: map[string]fakeProvider{
				"gps":     mocked("gps"),
				"network": mocked("network"),
			},
		}
		if !New(device.config()).IsMockLocation() {
			t.Fatal("expected true")
		}
		if device.lastKnownCalls != 1 {
			t.Fatal("expected a single provider read", device.lastKnownCalls)
		}
	})
}

func TestIsDeveloperModeEnabled(t *testing.T) {
	type testcase struct {
		name   string
		device *fakeDevice
		expect bool
	}

	testcases := []testcase{{
		name:   "key absent",
		device: &fakeDevice{},
		expect: false,
	}, {
		name:   "key zero",
		device: &fakeDevice{settings: map[string]int64{developerKey: 0}},
		expect: false,
	}, {
		name:   "key one",
		device: &fakeDevice{settings: map[string]int64{developerKey: 1}},
		expect: true,
	}, {
		name:   "key negative",
		device: &fakeDevice{settings: map[string]int64{developerKey: -1}},
		expect: true,
	}, {
		name:   "read failure",
		device: &fakeDevice{settingsErr: errors.New("mocked error")},
		expect: false,
	}}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			probe := New(tc.device.config())
			if got := probe.IsDeveloperModeEnabled(); got != tc.expect {
				t.Fatal("expected", tc.expect, "got", got)
			}
		})
	}

	t.Run("with a panicking settings reader", func(t *testing.T) {
		probe := New(&Config{
			Settings: &mocks.SettingsReader{
				MockGetInt: func(namespace, key string) (int64, error) {
					panic("mocked panic")
				},
			},
		})
		if probe.IsDeveloperModeEnabled() {
			t.Fatal("expected false")
		}
	})
}

func TestProbeWithoutCapabilities(t *testing.T) {
	probe := New(&Config{})
	if probe.IsMockLocation() {
		t.Fatal("expected false")
	}
	if probe.IsDeveloperModeEnabled() {
		t.Fatal("expected false")
	}
	report := probe.Report()
	if report.MockLocation || report.DeveloperMode || report.FineLocation {
		t.Fatal("unexpected report", report)
	}
}

func TestProbeWithPanickingAuthorizer(t *testing.T) {
	probe := New(&Config{
		Authorizer: &mocks.LocationAuthorizer{
			MockHasFineLocation: func() bool {
				panic("mocked panic")
			},
		},
	})
	if probe.IsMockLocation() {
		t.Fatal("expected false")
	}
}

func TestProbeLogsSkippedProviders(t *testing.T) {
	var count int
	logger := &mocks.Logger{
		MockDebug: func(message string) {},
		MockDebugf: func(format string, v ...interface{}) {
			count++
		},
		MockInfof: func(format string, v ...interface{}) {},
	}
	device := &fakeDevice{
		granted:      true,
		supportsFlag: true,
		providers:    map[string]fakeProvider{"gps": {err: model.ErrPermissionDenied}},
	}
	config := device.config()
	config.Logger = logger
	New(config).IsMockLocation()
	// one for the skipped provider and one for the missing legacy setting
	if count != 2 {
		t.Fatal("unexpected number of debug logs", count)
	}
}
