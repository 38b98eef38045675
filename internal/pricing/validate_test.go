package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func num(v float64) Number {
	return Number{Value: v, Valid: true, Set: true}
}

func validRaw() RawRequest {
	return RawRequest{
		AdSoyad:      "Ayşe Yılmaz",
		Email:        "ayse@example.com",
		Telefon:      "+90 (555) 123-45-67",
		Adres:        "Atatürk Cad. No:5, İstanbul",
		Hizmet:       "Mutfak Dolabı",
		Genislik:     num(200),
		Yukseklik:    num(80),
		Derinlik:     num(60),
		Malzeme:      "MDF",
		EkOzellikler: []string{"cnc"},
		CekmeceAdedi: num(3),
		Notlar:       "Kapı rengi beyaz olsun",
	}
}

func TestValidateAndNormalizeHappyPath(t *testing.T) {
	q, errs := ValidateAndNormalize(validRaw())
	assert.Empty(t, errs)

	assert.Equal(t, "mutfak", q.Hizmet)
	assert.Equal(t, "mdf", q.Malzeme)
	assert.Equal(t, "5551234567", q.Telefon)
	assert.InDelta(t, 2.0, q.Genislik, 1e-9)
	assert.InDelta(t, 0.8, q.Yukseklik, 1e-9)
	assert.InDelta(t, 0.6, q.Derinlik, 1e-9)
	assert.Equal(t, 3, q.CekmeceAdedi)
	assert.Equal(t, []string{"cnc"}, q.EkOzellikler)
}

func TestValidateAndNormalizeCollectsAllViolations(t *testing.T) {
	raw := validRaw()
	raw.AdSoyad = "A"
	raw.Email = "not-an-email"
	raw.Telefon = "555"
	raw.Malzeme = "ahsap"

	_, errs := ValidateAndNormalize(raw)
	assert.Len(t, errs, 4)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"adSoyad", "email", "telefon", "malzeme"}, fields)
}

func TestValidateAndNormalizeDimensionRange(t *testing.T) {
	// 5 cm normalizes to 0.05 m, below the 0.1 m floor.
	raw := validRaw()
	raw.Genislik = num(5)
	_, errs := ValidateAndNormalize(raw)
	assert.Len(t, errs, 1)
	assert.Equal(t, "genislik", errs[0].Field)

	// 5001 cm exceeds the 50 m ceiling.
	raw = validRaw()
	raw.Yukseklik = num(5001)
	_, errs = ValidateAndNormalize(raw)
	assert.Len(t, errs, 1)
	assert.Equal(t, "yukseklik", errs[0].Field)
}

func TestValidateAndNormalizeNonNumericDimension(t *testing.T) {
	raw := validRaw()
	raw.Derinlik = Number{Set: true} // present but unparsable

	_, errs := ValidateAndNormalize(raw)
	assert.Len(t, errs, 1)
	assert.Equal(t, "derinlik", errs[0].Field)
}

func TestValidateAndNormalizeMissingDimension(t *testing.T) {
	raw := validRaw()
	raw.Genislik = Number{}

	_, errs := ValidateAndNormalize(raw)
	assert.Len(t, errs, 1)
	assert.Equal(t, "genislik", errs[0].Field)
}

func TestValidateAndNormalizeRejectsUnknownService(t *testing.T) {
	raw := validRaw()
	raw.Hizmet = "Banyo Dolabı"

	_, errs := ValidateAndNormalize(raw)
	assert.Len(t, errs, 1)
	assert.Equal(t, "hizmet", errs[0].Field)
}

func TestValidateAndNormalizeRejectsUnknownAddOn(t *testing.T) {
	raw := validRaw()
	raw.EkOzellikler = []string{"cnc", "led"}

	_, errs := ValidateAndNormalize(raw)
	assert.Len(t, errs, 1)
	assert.Equal(t, "ekOzellikler", errs[0].Field)
}

func TestValidateAndNormalizeDrawerBounds(t *testing.T) {
	raw := validRaw()
	raw.CekmeceAdedi = num(21)
	_, errs := ValidateAndNormalize(raw)
	assert.Len(t, errs, 1)
	assert.Equal(t, "cekmeceAdedi", errs[0].Field)

	raw.CekmeceAdedi = num(2.5)
	_, errs = ValidateAndNormalize(raw)
	assert.Len(t, errs, 1)

	raw.CekmeceAdedi = Number{} // absent defaults to zero
	q, errs := ValidateAndNormalize(raw)
	assert.Empty(t, errs)
	assert.Equal(t, 0, q.CekmeceAdedi)
}

func TestValidateAndNormalizeShortPhoneNotPadded(t *testing.T) {
	raw := validRaw()
	raw.Telefon = "555 123"

	_, errs := ValidateAndNormalize(raw)
	assert.Len(t, errs, 1)
	assert.Equal(t, "telefon", errs[0].Field)
}
