package trustprobe

// Report is a diagnostic snapshot of all the signals. Unlike
// IsMockLocation, building a report reads every provider.
type Report struct {
	// FineLocation tells whether fine location access was granted.
	FineLocation bool

	// SupportsMockFlag tells whether samples carry a mock flag.
	SupportsMockFlag bool

	// Samples contains one result per provider. It is empty
	// when FineLocation is false.
	Samples []*SampleResult

	// LegacyMockSetting tells whether the legacy setting
	// allowing mock locations is enabled.
	LegacyMockSetting bool

	// MockLocation is the same value IsMockLocation returns.
	MockLocation bool

	// DeveloperMode is the same value IsDeveloperModeEnabled returns.
	DeveloperMode bool
}

// Report builds a [*Report]. Like the other methods, it never fails.
func (p *Probe) Report() *Report {
	r := &Report{
		FineLocation:  p.hasFineLocation(),
		DeveloperMode: p.IsDeveloperModeEnabled(),
	}
	if !r.FineLocation {
		return r
	}
	r.SupportsMockFlag = p.supportsMockFlag()
	for _, provider := range p.providers() {
		result := p.readSample(provider)
		r.Samples = append(r.Samples, result)
		r.MockLocation = r.MockLocation || result.IsMock(r.SupportsMockFlag)
	}
	r.LegacyMockSetting = p.allowMockLocation()
	r.MockLocation = r.MockLocation || r.LegacyMockSetting
	return r
}
