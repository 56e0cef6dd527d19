package trustkall

import (
	"fmt"
	"strings"

	"github.com/sikapp/devicetrust/internal/model"
)

// Location is the last known location of a provider.
type Location struct {
	// IsFromMockProvider is true when the platform flagged the
	// location as coming from a mock provider.
	IsFromMockProvider bool
}

// Device is the interface the app implements using platform APIs.
type Device interface {
	// HasFineLocationPermission returns whether the app was granted
	// fine location access.
	HasFineLocationPermission() bool

	// ProviderCount returns the number of registered location
	// providers, including the disabled ones.
	ProviderCount() int64

	// ProviderAt returns the name of the idx-th provider.
	ProviderAt(idx int64) string

	// LastKnownLocation returns the cached location of provider or nil
	// if there is none. An error whose message starts with one of the
	// PermissionDenied prefixes is treated as permission denied.
	LastKnownLocation(provider string) (*Location, error)

	// SupportsMockFlag returns whether Location.IsFromMockProvider
	// is meaningful on this platform version.
	SupportsMockFlag() bool

	// GetGlobalInt reads an integer from the global settings.
	GetGlobalInt(key string) (int64, error)

	// GetSecureInt reads an integer from the secure settings.
	GetSecureInt(key string) (int64, error)
}

// Error message prefixes mapping to permission denied.
const (
	PermissionDeniedPrefix  = "permission denied"
	SecurityExceptionPrefix = "java.lang.SecurityException"
)

// deviceAdapter adapts a Device to the model capabilities.
type deviceAdapter struct {
	d Device
}

var (
	_ model.LocationAuthorizer = &deviceAdapter{}
	_ model.LocationProviders  = &deviceAdapter{}
	_ model.SettingsReader     = &deviceAdapter{}
)

func (a *deviceAdapter) HasFineLocation() bool {
	return a.d.HasFineLocationPermission()
}

// Providers ignores includeDisabled because Device always lists every provider.
func (a *deviceAdapter) Providers(includeDisabled bool) (model.ProviderList, error) {
	count := a.d.ProviderCount()
	out := make(model.ProviderList, 0, count)
	for idx := int64(0); idx < count; idx++ {
		out = append(out, a.d.ProviderAt(idx))
	}
	return out, nil
}

func (a *deviceAdapter) LastKnownLocation(provider string) (*model.LocationSample, error) {
	loc, err := a.d.LastKnownLocation(provider)
	if err != nil {
		return nil, classifyError(err)
	}
	if loc == nil {
		return nil, nil
	}
	return &model.LocationSample{Provider: provider, IsMock: loc.IsFromMockProvider}, nil
}

func (a *deviceAdapter) SupportsMockFlag() bool {
	return a.d.SupportsMockFlag()
}

func (a *deviceAdapter) GetInt(namespace, key string) (int64, error) {
	switch namespace {
	case model.SettingsNamespaceGlobal:
		return a.d.GetGlobalInt(key)
	case model.SettingsNamespaceSecure:
		return a.d.GetSecureInt(key)
	default:
		return 0, fmt.Errorf("%s/%s: %w", namespace, key, model.ErrSettingNotFound)
	}
}

// classifyError maps host errors to our errors. Errors crossing the
// gomobile boundary only retain their message.
func classifyError(err error) error {
	message := err.Error()
	if strings.HasPrefix(message, PermissionDeniedPrefix) ||
		strings.HasPrefix(message, SecurityExceptionPrefix) {
		return fmt.Errorf("%w: %s", model.ErrPermissionDenied, message)
	}
	return err
}
