package model

//
// Device capabilities
//

import "errors"

// ErrPermissionDenied indicates that the host refused to give us
// access to a resource (e.g., a provider's last known location).
var ErrPermissionDenied = errors.New("permission denied")

// ErrSettingNotFound indicates that a system setting does not exist.
var ErrSettingNotFound = errors.New("setting not found")

// LocationSample is a last known fix read from a location provider. We
// only retain the fields the trust probe needs to reason about.
type LocationSample struct {
	// Provider is the name of the provider that produced the fix.
	Provider string

	// IsMock is true when the platform flagged the fix as coming
	// from a mock or test provider.
	IsMock bool
}

// ProviderList is the set of location provider names registered on
// a device. The order is not significant.
type ProviderList []string

// LocationAuthorizer tells us whether we have been granted fine
// location access by the user. We never ask for it ourselves.
type LocationAuthorizer interface {
	HasFineLocation() bool
}

// LocationProviders gives access to the device location subsystem.
type LocationProviders interface {
	// Providers returns the registered providers. When includeDisabled
	// is true, the list also contains disabled providers.
	Providers(includeDisabled bool) (ProviderList, error)

	// LastKnownLocation returns the cached fix of the given provider
	// without triggering a new fix. A nil sample with a nil error
	// means the provider has no cached fix. Implementations should
	// wrap ErrPermissionDenied when access is refused.
	LastKnownLocation(provider string) (*LocationSample, error)

	// SupportsMockFlag returns whether the platform is able to flag
	// individual samples as mocked. When false, LocationSample.IsMock
	// carries no information.
	SupportsMockFlag() bool
}

// Namespaces of system settings.
const (
	// SettingsNamespaceGlobal contains device-wide settings.
	SettingsNamespaceGlobal = "global"

	// SettingsNamespaceSecure contains secure (system-writable) settings.
	SettingsNamespaceSecure = "secure"
)

// SettingsReader reads integer system settings.
type SettingsReader interface {
	// GetInt returns the value of key inside namespace. Implementations
	// should wrap ErrSettingNotFound when the key does not exist.
	GetInt(namespace, key string) (int64, error)
}
