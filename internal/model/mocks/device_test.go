package mocks

import (
	"errors"
	"testing"

	"github.com/sikapp/devicetrust/internal/model"
)

func TestLocationAuthorizer(t *testing.T) {
	t.Run("HasFineLocation", func(t *testing.T) {
		a := &LocationAuthorizer{
			MockHasFineLocation: func() bool {
				return true
			},
		}
		if !a.HasFineLocation() {
			t.Fatal("unexpected result")
		}
	})
}

func TestLocationProviders(t *testing.T) {
	t.Run("Providers", func(t *testing.T) {
		expected := errors.New("mocked error")
		lp := &LocationProviders{
			MockProviders: func(includeDisabled bool) (model.ProviderList, error) {
				if !includeDisabled {
					t.Fatal("expected includeDisabled")
				}
				return nil, expected
			},
		}
		list, err := lp.Providers(true)
		if !errors.Is(err, expected) {
			t.Fatal("unexpected err", err)
		}
		if len(list) != 0 {
			t.Fatal("expected empty list")
		}
	})

	t.Run("LastKnownLocation", func(t *testing.T) {
		lp := &LocationProviders{
			MockLastKnownLocation: func(provider string) (*model.LocationSample, error) {
				return &model.LocationSample{Provider: provider, IsMock: true}, nil
			},
		}
		sample, err := lp.LastKnownLocation("gps")
		if err != nil {
			t.Fatal(err)
		}
		if sample.Provider != "gps" || !sample.IsMock {
			t.Fatal("unexpected sample", sample)
		}
	})

	t.Run("SupportsMockFlag", func(t *testing.T) {
		lp := &LocationProviders{
			MockSupportsMockFlag: func() bool {
				return true
			},
		}
		if !lp.SupportsMockFlag() {
			t.Fatal("unexpected result")
		}
	})
}

func TestSettingsReader(t *testing.T) {
	t.Run("GetInt", func(t *testing.T) {
		sr := &SettingsReader{
			MockGetInt: func(namespace, key string) (int64, error) {
				return 0, model.ErrSettingNotFound
			},
		}
		value, err := sr.GetInt(model.SettingsNamespaceGlobal, "antani")
		if !errors.Is(err, model.ErrSettingNotFound) {
			t.Fatal("unexpected err", err)
		}
		if value != 0 {
			t.Fatal("unexpected value", value)
		}
	})
}
