package mocks

import "github.com/sikapp/devicetrust/internal/model"

// LocationAuthorizer is a mockable model.LocationAuthorizer.
type LocationAuthorizer struct {
	MockHasFineLocation func() bool
}

var _ model.LocationAuthorizer = &LocationAuthorizer{}

// HasFineLocation calls MockHasFineLocation.
func (a *LocationAuthorizer) HasFineLocation() bool {
	return a.MockHasFineLocation()
}

// LocationProviders is a mockable model.LocationProviders.
type LocationProviders struct {
	MockProviders         func(includeDisabled bool) (model.ProviderList, error)
	MockLastKnownLocation func(provider string) (*model.LocationSample, error)
	MockSupportsMockFlag  func() bool
}

var _ model.LocationProviders = &LocationProviders{}

// Providers calls MockProviders.
func (lp *LocationProviders) Providers(includeDisabled bool) (model.ProviderList, error) {
	return lp.MockProviders(includeDisabled)
}

// LastKnownLocation calls MockLastKnownLocation.
func (lp *LocationProviders) LastKnownLocation(provider string) (*model.LocationSample, error) {
	return lp.MockLastKnownLocation(provider)
}

// SupportsMockFlag calls MockSupportsMockFlag.
func (lp *LocationProviders) SupportsMockFlag() bool {
	return lp.MockSupportsMockFlag()
}

// SettingsReader is a mockable model.SettingsReader.
type SettingsReader struct {
	MockGetInt func(namespace, key string) (int64, error)
}

var _ model.SettingsReader = &SettingsReader{}

// GetInt calls MockGetInt.
func (sr *SettingsReader) GetInt(namespace, key string) (int64, error) {
	return sr.MockGetInt(namespace, key)
}
