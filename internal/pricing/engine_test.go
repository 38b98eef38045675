package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atolyemobilya/mobilya-api/internal/models"
)

func testSettings() models.PricingSettings {
	return models.DefaultPricingSettings()
}

func baseQuote() NormalizedQuote {
	return NormalizedQuote{
		Genislik:     2.0,
		Yukseklik:    0.8,
		Derinlik:     0.6,
		EkOzellikler: []string{},
		CekmeceAdedi: 3,
	}
}

func TestCalculateBasePrice(t *testing.T) {
	// 200x80x60 cm, rate 11000: volume 0.96 m³ → 10560.
	b := Calculate(baseQuote(), testSettings())

	assert.Equal(t, int64(10560), b.TemelFiyat)
	assert.Equal(t, int64(0), b.MalzemeFiyat)
	assert.Equal(t, int64(0), b.EkOzelliklerFiyat)
	assert.Equal(t, int64(0), b.CekmeceFiyat)
	assert.Equal(t, int64(10560), b.ToplamFiyat)
}

func TestCalculateDrawerThreshold(t *testing.T) {
	s := testSettings()

	for adet := 0; adet <= s.CekmeceUcretsizLimit; adet++ {
		q := baseQuote()
		q.CekmeceAdedi = adet
		assert.Equal(t, int64(0), Calculate(q, s).CekmeceFiyat, "adet=%d", adet)
	}

	q := baseQuote()
	q.CekmeceAdedi = 5
	b := Calculate(q, s)
	assert.Equal(t, int64(2000), b.CekmeceFiyat)
	assert.Equal(t, int64(12560), b.ToplamFiyat)

	q.CekmeceAdedi = 10
	assert.Equal(t, int64(7000), Calculate(q, s).CekmeceFiyat)
}

func TestCalculateAddOns(t *testing.T) {
	s := testSettings()
	q := baseQuote()
	q.EkOzellikler = []string{models.AddOnCNC}

	assert.Equal(t, int64(5000), Calculate(q, s).EkOzelliklerFiyat)

	q.EkOzellikler = []string{models.AddOnCNC, models.AddOnAyna}
	assert.Equal(t, int64(9000), Calculate(q, s).EkOzelliklerFiyat)
}

func TestCalculateDisabledAddOnContributesNothing(t *testing.T) {
	s := testSettings()
	s.CNC.Acik = false

	q := baseQuote()
	q.EkOzellikler = []string{models.AddOnCNC, models.AddOnAyna}

	b := Calculate(q, s)
	assert.Equal(t, int64(4000), b.EkOzelliklerFiyat)
}

func TestCalculateTotalConsistency(t *testing.T) {
	s := testSettings()
	q := baseQuote()
	q.EkOzellikler = []string{models.AddOnCNC, models.AddOnAyna}
	q.CekmeceAdedi = 7

	b := Calculate(q, s)
	assert.Equal(t, b.TemelFiyat+b.MalzemeFiyat+b.EkOzelliklerFiyat+b.CekmeceFiyat, b.ToplamFiyat)
}

func TestCalculateDeterministic(t *testing.T) {
	s := testSettings()
	q := baseQuote()
	q.EkOzellikler = []string{models.AddOnAyna}
	q.CekmeceAdedi = 6

	first := Calculate(q, s)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Calculate(q, s))
	}
}

func TestCalculateBaseMonotonicInDimensions(t *testing.T) {
	s := testSettings()
	q := baseQuote()
	prev := Calculate(q, s).TemelFiyat

	for w := 2.1; w < 5.0; w += 0.3 {
		q.Genislik = w
		cur := Calculate(q, s).TemelFiyat
		assert.GreaterOrEqual(t, cur, prev, "width=%g", w)
		prev = cur
	}
}

func TestCalculateRoundsHalfUpPerComponent(t *testing.T) {
	s := testSettings()
	s.MetreFiyat = 10000
	// 0.25 x 0.5 x 0.37 = 0.04625 m³ → 462.5 → 463.
	q := baseQuote()
	q.Genislik, q.Yukseklik, q.Derinlik = 0.25, 0.5, 0.37

	b := Calculate(q, s)
	assert.Equal(t, int64(463), b.TemelFiyat)
	assert.Equal(t, int64(463), b.ToplamFiyat)
}

func TestCalculatePanicsOnNonPositiveDimension(t *testing.T) {
	q := baseQuote()
	q.Derinlik = -0.5

	assert.Panics(t, func() { Calculate(q, testSettings()) })
}
