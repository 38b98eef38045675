package service

import (
	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// SettingsStore provides access to the singleton pricing configuration. The
// quote intake path and the settings endpoints both go through this interface
// instead of shared mutable state.
type SettingsStore interface {
	GetOrCreate() (*models.PricingSettings, error)
	Update(*models.PricingSettings) error
}

// SettingsService manages the pricing configuration record.
type SettingsService struct {
	repo SettingsStore
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo SettingsStore) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the current settings, creating the default row when none
// exists yet.
func (s *SettingsService) Get() (*models.PricingSettings, error) {
	return s.repo.GetOrCreate()
}

// Update applies a partial patch on top of the current settings. Fields
// absent from the patch keep their prior value; add-on sub-fields merge the
// same way. Updates are last-writer-wins.
func (s *SettingsService) Update(patch models.PricingSettingsPatch) (*models.PricingSettings, error) {
	if errs := validatePatch(patch); len(errs) > 0 {
		return nil, errs
	}

	current, err := s.repo.GetOrCreate()
	if err != nil {
		return nil, err
	}

	merged := *current
	if patch.MetreFiyat != nil {
		merged.MetreFiyat = *patch.MetreFiyat
	}
	if patch.CekmeceUcretsizLimit != nil {
		merged.CekmeceUcretsizLimit = *patch.CekmeceUcretsizLimit
	}
	if patch.CekmeceBirimFiyat != nil {
		merged.CekmeceBirimFiyat = *patch.CekmeceBirimFiyat
	}
	mergeAddOn(&merged.CNC, patch.CNC)
	mergeAddOn(&merged.Ayna, patch.Ayna)

	if err := s.repo.Update(&merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

func mergeAddOn(dst *models.AddOnSetting, patch *models.AddOnPatch) {
	if patch == nil {
		return
	}
	if patch.Acik != nil {
		dst.Acik = *patch.Acik
	}
	if patch.Fiyat != nil {
		dst.Fiyat = *patch.Fiyat
	}
}

func validatePatch(patch models.PricingSettingsPatch) utils.ValidationErrors {
	var errs utils.ValidationErrors
	if patch.MetreFiyat != nil && *patch.MetreFiyat <= 0 {
		errs = errs.Add("metreFiyat", "Metre fiyat 0'dan büyük olmalıdır")
	}
	if patch.CekmeceUcretsizLimit != nil {
		if *patch.CekmeceUcretsizLimit < 0 {
			errs = errs.Add("cekmeceUcretsizLimit", "Ücretsiz çekmece limiti 0'dan küçük olamaz")
		} else if *patch.CekmeceUcretsizLimit > 20 {
			errs = errs.Add("cekmeceUcretsizLimit", "Ücretsiz çekmece limiti en fazla 20 olabilir")
		}
	}
	if patch.CekmeceBirimFiyat != nil && *patch.CekmeceBirimFiyat < 0 {
		errs = errs.Add("cekmeceBirimFiyat", "Çekmece birim fiyat 0'dan küçük olamaz")
	}
	if patch.CNC != nil && patch.CNC.Fiyat != nil && *patch.CNC.Fiyat < 0 {
		errs = errs.Add("cnc.fiyat", "CNC fiyat 0'dan küçük olamaz")
	}
	if patch.Ayna != nil && patch.Ayna.Fiyat != nil && *patch.Ayna.Fiyat < 0 {
		errs = errs.Add("ayna.fiyat", "Ayna fiyat 0'dan küçük olamaz")
	}
	return errs
}
