package trustprobe

import (
	"errors"
	"fmt"

	"github.com/sikapp/devicetrust/internal/model"
	"github.com/sikapp/devicetrust/internal/runtimex"
)

// SampleKind classifies the outcome of reading a provider's last known location.
type SampleKind int

const (
	// SampleUnavailable means the provider has no cached fix or failed.
	SampleUnavailable = SampleKind(iota)

	// SampleDenied means the host refused access to the provider.
	SampleDenied

	// SampleFound means we read a cached fix.
	SampleFound
)

// String implements fmt.Stringer.
func (k SampleKind) String() string {
	switch k {
	case SampleFound:
		return "found"
	case SampleDenied:
		return "denied"
	default:
		return "unavailable"
	}
}

// SampleResult is the result of reading a single provider.
type SampleResult struct {
	// Provider is the provider name.
	Provider string

	// Kind is the outcome.
	Kind SampleKind

	// Sample is only set when Kind is SampleFound.
	Sample *model.LocationSample

	// Err is the error that caused a SampleDenied or
	// SampleUnavailable outcome, if any.
	Err error
}

// IsMock returns whether this result is evidence of a mocked location. The
// flag is only trusted when the platform supports per-sample flagging.
func (sr *SampleResult) IsMock(supportsMockFlag bool) bool {
	return supportsMockFlag && sr.Kind == SampleFound && sr.Sample.IsMock
}

// readSample reads the last known location of provider and classifies
// the outcome. This function never panics.
func readSample(locations model.LocationProviders, provider string) *SampleResult {
	var sample *model.LocationSample
	err := runtimex.Try(func() (err error) {
		sample, err = locations.LastKnownLocation(provider)
		return
	})
	switch {
	case errors.Is(err, model.ErrPermissionDenied):
		return &SampleResult{Provider: provider, Kind: SampleDenied, Err: err}
	case err != nil:
		return &SampleResult{Provider: provider, Kind: SampleUnavailable, Err: err}
	case sample == nil:
		return &SampleResult{Provider: provider, Kind: SampleUnavailable}
	default:
		return &SampleResult{Provider: provider, Kind: SampleFound, Sample: sample}
	}
}

// describe returns a short human readable description of the result.
func (sr *SampleResult) describe() string {
	switch sr.Kind {
	case SampleFound:
		return fmt.Sprintf("%s: %s (mock=%v)", sr.Provider, sr.Kind, sr.Sample.IsMock)
	default:
		return fmt.Sprintf("%s: %s (%s)", sr.Provider, sr.Kind, model.ErrorToStringOrOK(sr.Err))
	}
}
