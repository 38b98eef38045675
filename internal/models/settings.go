package models

import "time"

// Default pricing parameters used when the settings row is created lazily.
const (
	DefaultMetreFiyat           = 11000.0
	DefaultCekmeceUcretsizLimit = 3
	DefaultCekmeceBirimFiyat    = 1000.0
	DefaultCNCFiyat             = 5000.0
	DefaultAynaFiyat            = 4000.0
)

// Add-on identifiers customers may select on a quote.
const (
	AddOnCNC  = "cnc"
	AddOnAyna = "ayna"
)

// AddOnSetting is the price switch for a single optional extra.
type AddOnSetting struct {
	Acik  bool    `db:"acik" json:"acik"`
	Fiyat float64 `db:"fiyat" json:"fiyat"`
}

// PricingSettings is the singleton record governing all quote pricing math.
// Exactly one row exists; the schema enforces it.
type PricingSettings struct {
	ID                   int          `db:"id" json:"id"`
	MetreFiyat           float64      `db:"metre_fiyat" json:"metreFiyat"`
	CekmeceUcretsizLimit int          `db:"cekmece_ucretsiz_limit" json:"cekmeceUcretsizLimit"`
	CekmeceBirimFiyat    float64      `db:"cekmece_birim_fiyat" json:"cekmeceBirimFiyat"`
	CNC                  AddOnSetting `db:"cnc" json:"cnc"`
	Ayna                 AddOnSetting `db:"ayna" json:"ayna"`
	CreatedAt            time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time    `db:"updated_at" json:"updatedAt"`
}

// DefaultPricingSettings returns the hard-coded defaults for lazy creation.
func DefaultPricingSettings() PricingSettings {
	return PricingSettings{
		MetreFiyat:           DefaultMetreFiyat,
		CekmeceUcretsizLimit: DefaultCekmeceUcretsizLimit,
		CekmeceBirimFiyat:    DefaultCekmeceBirimFiyat,
		CNC:                  AddOnSetting{Acik: true, Fiyat: DefaultCNCFiyat},
		Ayna:                 AddOnSetting{Acik: true, Fiyat: DefaultAynaFiyat},
	}
}

// AddOn returns the configured setting for an add-on id. Unknown ids report
// a disabled zero-price add-on.
func (s *PricingSettings) AddOn(id string) AddOnSetting {
	switch id {
	case AddOnCNC:
		return s.CNC
	case AddOnAyna:
		return s.Ayna
	}
	return AddOnSetting{}
}

// PricingSettingsPatch is a partial update. Nil fields keep their prior value;
// nested add-on sub-fields merge the same way.
type PricingSettingsPatch struct {
	MetreFiyat           *float64    `json:"metreFiyat"`
	CekmeceUcretsizLimit *int        `json:"cekmeceUcretsizLimit"`
	CekmeceBirimFiyat    *float64    `json:"cekmeceBirimFiyat"`
	CNC                  *AddOnPatch `json:"cnc"`
	Ayna                 *AddOnPatch `json:"ayna"`
}

// AddOnPatch is a partial update of one add-on setting.
type AddOnPatch struct {
	Acik  *bool    `json:"acik"`
	Fiyat *float64 `json:"fiyat"`
}
