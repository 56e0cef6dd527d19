package trustprobe

import (
	"github.com/sikapp/devicetrust/internal/model"
	"github.com/sikapp/devicetrust/internal/runtimex"
)

// Names of the system settings we read.
const (
	// SettingDevelopmentEnabled is the global setting telling whether
	// developer options are enabled.
	SettingDevelopmentEnabled = "development_settings_enabled"

	// SettingAllowMockLocation is the legacy secure setting that, on older
	// platform versions, allows any app to provide mock locations.
	SettingAllowMockLocation = "mock_location"
)

// Config contains the capabilities used by a [*Probe]. Any of the
// capabilities may be nil, in which case the corresponding signal is
// considered unavailable.
type Config struct {
	// Authorizer tells whether we have fine location access.
	Authorizer model.LocationAuthorizer

	// Locations gives access to location providers.
	Locations model.LocationProviders

	// Settings reads system settings.
	Settings model.SettingsReader

	// Logger is the OPTIONAL logger. When nil, we discard logs.
	Logger model.Logger
}

// Probe computes trust signals. The zero value is not valid; use [New].
// A Probe has no mutable state and is safe for concurrent use as long
// as the underlying capabilities are.
type Probe struct {
	authorizer model.LocationAuthorizer
	locations  model.LocationProviders
	logger     model.Logger
	settings   model.SettingsReader
}

// New creates a new [*Probe] from the given config.
func New(config *Config) *Probe {
	runtimex.PanicIfNil(config, "passed nil config")
	return &Probe{
		authorizer: config.Authorizer,
		locations:  config.Locations,
		logger:     model.ValidLoggerOrDefault(config.Logger),
		settings:   config.Settings,
	}
}

// IsMockLocation returns true when either any provider's last known
// location is flagged as mocked or the legacy global setting allowing
// mock locations is enabled. It returns false when fine location access
// has not been granted. This function never fails.
func (p *Probe) IsMockLocation() bool {
	if !p.hasFineLocation() {
		p.logger.Debug("trustprobe: no fine location access")
		return false
	}
	providers := p.providers()
	supported := p.supportsMockFlag()
	for _, provider := range providers {
		if p.readSample(provider).IsMock(supported) {
			p.logger.Infof("trustprobe: %s: last known location is mocked", provider)
			return true
		}
	}
	return p.allowMockLocation()
}

// IsDeveloperModeEnabled returns whether developer options are enabled. It
// returns false when the setting cannot be read. This function never fails.
func (p *Probe) IsDeveloperModeEnabled() bool {
	value, err := p.getInt(model.SettingsNamespaceGlobal, SettingDevelopmentEnabled)
	if err != nil {
		p.logger.Debugf("trustprobe: %s: %s", SettingDevelopmentEnabled, err.Error())
		return false
	}
	return value != 0
}

func (p *Probe) hasFineLocation() (granted bool) {
	if p.authorizer == nil {
		return false
	}
	err := runtimex.Try(func() error {
		granted = p.authorizer.HasFineLocation()
		return nil
	})
	return err == nil && granted
}

func (p *Probe) providers() (list model.ProviderList) {
	if p.locations == nil {
		return nil
	}
	err := runtimex.Try(func() (err error) {
		list, err = p.locations.Providers(true)
		return
	})
	if err != nil {
		p.logger.Debugf("trustprobe: cannot list providers: %s", err.Error())
		return nil
	}
	return list
}

func (p *Probe) supportsMockFlag() (supported bool) {
	if p.locations == nil {
		return false
	}
	err := runtimex.Try(func() error {
		supported = p.locations.SupportsMockFlag()
		return nil
	})
	return err == nil && supported
}

func (p *Probe) readSample(provider string) *SampleResult {
	result := readSample(p.locations, provider)
	if result.Kind != SampleFound {
		p.logger.Debugf("trustprobe: skipping %s", result.describe())
	}
	return result
}

func (p *Probe) allowMockLocation() bool {
	value, err := p.getInt(model.SettingsNamespaceSecure, SettingAllowMockLocation)
	if err != nil {
		p.logger.Debugf("trustprobe: %s: %s", SettingAllowMockLocation, err.Error())
		return false
	}
	return value != 0
}

func (p *Probe) getInt(namespace, key string) (value int64, err error) {
	if p.settings == nil {
		return 0, model.ErrSettingNotFound
	}
	err = runtimex.Try(func() (err error) {
		value, err = p.settings.GetInt(namespace, key)
		return
	})
	return
}
