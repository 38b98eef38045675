// Package pricing holds the quote price engine and the normalization of raw
// intake payloads into its canonical input. The engine is the single source
// of truth for quote prices: previews and authoritative submissions both run
// through Calculate, so the two can never drift.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/atolyemobilya/mobilya-api/internal/models"
)

// Calculate computes the price breakdown for a normalized quote under the
// given settings. It is pure and deterministic: same input and settings,
// same breakdown. Each component is rounded half-up to whole currency units
// independently, then the already-rounded parts are summed.
//
// Inputs must have passed ValidateAndNormalize; a non-positive dimension is a
// caller bug and panics.
func Calculate(q NormalizedQuote, s models.PricingSettings) models.PriceBreakdown {
	if q.Genislik <= 0 || q.Yukseklik <= 0 || q.Derinlik <= 0 {
		panic(fmt.Sprintf("pricing: non-positive dimension %g x %g x %g", q.Genislik, q.Yukseklik, q.Derinlik))
	}

	// 1. Base price: volume (m³) times the configured rate.
	volume := decimal.NewFromFloat(q.Genislik).
		Mul(decimal.NewFromFloat(q.Yukseklik)).
		Mul(decimal.NewFromFloat(q.Derinlik))
	temel := roundHalfUp(volume.Mul(decimal.NewFromFloat(s.MetreFiyat)))

	// 2. Material surcharge: currently always zero, field retained so
	// material-based pricing can land without a wire format change.
	var malzeme int64

	// 3. Add-ons: selected ids contribute their configured price when the
	// add-on is enabled; a selected-but-disabled add-on contributes nothing.
	ekToplam := decimal.Zero
	for _, id := range q.EkOzellikler {
		if ayar := s.AddOn(id); ayar.Acik {
			ekToplam = ekToplam.Add(decimal.NewFromFloat(ayar.Fiyat))
		}
	}
	ek := roundHalfUp(ekToplam)

	// 4. Drawers beyond the free limit.
	var cekmece int64
	if q.CekmeceAdedi > s.CekmeceUcretsizLimit {
		ucretli := int64(q.CekmeceAdedi - s.CekmeceUcretsizLimit)
		cekmece = roundHalfUp(decimal.NewFromInt(ucretli).Mul(decimal.NewFromFloat(s.CekmeceBirimFiyat)))
	}

	return models.PriceBreakdown{
		TemelFiyat:        temel,
		MalzemeFiyat:      malzeme,
		EkOzelliklerFiyat: ek,
		CekmeceFiyat:      cekmece,
		ToplamFiyat:       temel + malzeme + ek + cekmece,
	}
}

// roundHalfUp rounds to the nearest whole currency unit, halves away from
// zero. All engine inputs are non-negative, so this is round-half-up.
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
