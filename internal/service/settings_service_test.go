package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }
func b(v bool) *bool         { return &v }

func TestSettingsUpdateMergesPartialPatch(t *testing.T) {
	store := new(mockSettingsStore)
	svc := NewSettingsService(store)

	current := models.DefaultPricingSettings()
	store.On("GetOrCreate").Return(&current, nil)
	store.On("Update", mock.AnythingOfType("*models.PricingSettings")).Return(nil)

	merged, err := svc.Update(models.PricingSettingsPatch{
		MetreFiyat: f64(12500),
		CNC:        &models.AddOnPatch{Acik: b(false)},
	})
	require.NoError(t, err)

	assert.Equal(t, 12500.0, merged.MetreFiyat)
	assert.False(t, merged.CNC.Acik)
	// Untouched fields keep their prior values.
	assert.Equal(t, models.DefaultCNCFiyat, merged.CNC.Fiyat)
	assert.Equal(t, models.DefaultCekmeceUcretsizLimit, merged.CekmeceUcretsizLimit)
	assert.Equal(t, models.DefaultAynaFiyat, merged.Ayna.Fiyat)
	assert.True(t, merged.Ayna.Acik)

	store.AssertExpectations(t)
}

func TestSettingsUpdateEmptyPatchIsNoOp(t *testing.T) {
	store := new(mockSettingsStore)
	svc := NewSettingsService(store)

	current := models.DefaultPricingSettings()
	store.On("GetOrCreate").Return(&current, nil)
	store.On("Update", mock.AnythingOfType("*models.PricingSettings")).Return(nil)

	merged, err := svc.Update(models.PricingSettingsPatch{})
	require.NoError(t, err)
	assert.Equal(t, current.MetreFiyat, merged.MetreFiyat)
	assert.Equal(t, current.CNC, merged.CNC)
}

func TestSettingsUpdateValidation(t *testing.T) {
	cases := []struct {
		name  string
		patch models.PricingSettingsPatch
	}{
		{"zero metre fiyat", models.PricingSettingsPatch{MetreFiyat: f64(0)}},
		{"negative metre fiyat", models.PricingSettingsPatch{MetreFiyat: f64(-1)}},
		{"negative drawer limit", models.PricingSettingsPatch{CekmeceUcretsizLimit: i(-1)}},
		{"drawer limit above cap", models.PricingSettingsPatch{CekmeceUcretsizLimit: i(21)}},
		{"negative drawer price", models.PricingSettingsPatch{CekmeceBirimFiyat: f64(-5)}},
		{"negative cnc price", models.PricingSettingsPatch{CNC: &models.AddOnPatch{Fiyat: f64(-1)}}},
		{"negative ayna price", models.PricingSettingsPatch{Ayna: &models.AddOnPatch{Fiyat: f64(-1)}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(mockSettingsStore)
			svc := NewSettingsService(store)

			_, err := svc.Update(tc.patch)
			var ve utils.ValidationErrors
			assert.ErrorAs(t, err, &ve)
			store.AssertNotCalled(t, "Update", mock.Anything)
		})
	}
}

func TestSettingsGetDelegatesToStore(t *testing.T) {
	store := new(mockSettingsStore)
	svc := NewSettingsService(store)

	current := models.DefaultPricingSettings()
	store.On("GetOrCreate").Return(&current, nil)

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, &current, got)
}
