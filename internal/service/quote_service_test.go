package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/pricing"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

type mockQuoteStore struct {
	mock.Mock
}

func (m *mockQuoteStore) Create(q *models.Quote) error {
	args := m.Called(q)
	return args.Error(0)
}

func (m *mockQuoteStore) GetAll(durum models.QuoteStatus, limit int) ([]models.Quote, error) {
	args := m.Called(durum, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Quote), args.Error(1)
}

func (m *mockQuoteStore) GetByID(id int) (*models.Quote, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quote), args.Error(1)
}

func (m *mockQuoteStore) UpdateStatus(id int, durum models.QuoteStatus) error {
	args := m.Called(id, durum)
	return args.Error(0)
}

func (m *mockQuoteStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockSettingsStore struct {
	mock.Mock
}

func (m *mockSettingsStore) GetOrCreate() (*models.PricingSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PricingSettings), args.Error(1)
}

func (m *mockSettingsStore) Update(s *models.PricingSettings) error {
	args := m.Called(s)
	return args.Error(0)
}

func num(v float64) pricing.Number {
	return pricing.Number{Value: v, Valid: true, Set: true}
}

func validRawRequest() pricing.RawRequest {
	return pricing.RawRequest{
		AdSoyad:      "Ayşe Yılmaz",
		Email:        "ayse@example.com",
		Telefon:      "0555 123 45 67",
		Adres:        "Çankaya, Ankara",
		Hizmet:       "Mutfak Dolabı",
		Genislik:     num(200),
		Yukseklik:    num(80),
		Derinlik:     num(60),
		Malzeme:      "MDF",
		EkOzellikler: []string{"cnc"},
		CekmeceAdedi: num(5),
	}
}

func TestQuoteCreatePersistsNormalizedQuote(t *testing.T) {
	quotes := new(mockQuoteStore)
	settings := new(mockSettingsStore)
	svc := NewQuoteService(quotes, settings)

	cfg := models.DefaultPricingSettings()
	settings.On("GetOrCreate").Return(&cfg, nil)
	quotes.On("Create", mock.AnythingOfType("*models.Quote")).Return(nil)

	quote, err := svc.Create(validRawRequest())
	require.NoError(t, err)

	// Normalized at the boundary: slugs, meters, bare digits.
	assert.Equal(t, "mutfak", quote.Hizmet)
	assert.Equal(t, "mdf", quote.Malzeme)
	assert.Equal(t, "5551234567", quote.Telefon)
	assert.InDelta(t, 2.0, quote.Genislik, 1e-9)
	assert.Equal(t, models.QuoteStatusPending, quote.Durum)

	// 0.96 m3 at 11000/m3, 2 paid drawers at 1000, CNC at 5000.
	assert.Equal(t, int64(10560), quote.FiyatDetay.TemelFiyat)
	assert.Equal(t, int64(2000), quote.FiyatDetay.CekmeceFiyat)
	assert.Equal(t, int64(5000), quote.FiyatDetay.EkOzelliklerFiyat)
	assert.Equal(t,
		quote.FiyatDetay.TemelFiyat+quote.FiyatDetay.MalzemeFiyat+
			quote.FiyatDetay.EkOzelliklerFiyat+quote.FiyatDetay.CekmeceFiyat,
		quote.FiyatDetay.ToplamFiyat)

	quotes.AssertExpectations(t)
	settings.AssertExpectations(t)
}

func TestQuoteCreateInvalidRequestPersistsNothing(t *testing.T) {
	quotes := new(mockQuoteStore)
	settings := new(mockSettingsStore)
	svc := NewQuoteService(quotes, settings)

	raw := validRawRequest()
	raw.Email = "not-an-email"
	raw.Genislik = pricing.Number{Set: true} // present but unparsable

	_, err := svc.Create(raw)
	require.Error(t, err)

	var ve utils.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.GreaterOrEqual(t, len(ve), 2)
	quotes.AssertNotCalled(t, "Create", mock.Anything)
	settings.AssertNotCalled(t, "GetOrCreate")
}

func TestQuotePreviewDoesNotPersist(t *testing.T) {
	quotes := new(mockQuoteStore)
	settings := new(mockSettingsStore)
	svc := NewQuoteService(quotes, settings)

	cfg := models.DefaultPricingSettings()
	settings.On("GetOrCreate").Return(&cfg, nil)

	breakdown, err := svc.Preview(validRawRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(10560), breakdown.TemelFiyat)
	quotes.AssertNotCalled(t, "Create", mock.Anything)
}

func TestQuoteCreateSettingsFailure(t *testing.T) {
	quotes := new(mockQuoteStore)
	settings := new(mockSettingsStore)
	svc := NewQuoteService(quotes, settings)

	settings.On("GetOrCreate").Return(nil, errors.New("db down"))

	_, err := svc.Create(validRawRequest())
	require.Error(t, err)
	quotes.AssertNotCalled(t, "Create", mock.Anything)
}

func TestQuoteUpdateStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    models.QuoteStatus
		to      models.QuoteStatus
		allowed bool
	}{
		{"one step forward", models.QuoteStatusPending, models.QuoteStatusReviewing, true},
		{"skip a step", models.QuoteStatusPending, models.QuoteStatusSent, false},
		{"reject from pending", models.QuoteStatusPending, models.QuoteStatusRejected, true},
		{"reject from sent", models.QuoteStatusSent, models.QuoteStatusRejected, true},
		{"approve from sent", models.QuoteStatusSent, models.QuoteStatusApproved, true},
		{"leave approved", models.QuoteStatusApproved, models.QuoteStatusRejected, false},
		{"leave rejected", models.QuoteStatusRejected, models.QuoteStatusReviewing, false},
		{"backwards", models.QuoteStatusSent, models.QuoteStatusReviewing, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quotes := new(mockQuoteStore)
			svc := NewQuoteService(quotes, new(mockSettingsStore))

			quotes.On("GetByID", 7).Return(&models.Quote{ID: 7, Durum: tc.from}, nil)
			if tc.allowed {
				quotes.On("UpdateStatus", 7, tc.to).Return(nil)
			}

			quote, err := svc.UpdateStatus(7, tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, quote.Durum)
			} else {
				assert.ErrorIs(t, err, utils.ErrInvalidTransition)
				quotes.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestQuoteUpdateStatusUnknownValue(t *testing.T) {
	svc := NewQuoteService(new(mockQuoteStore), new(mockSettingsStore))

	_, err := svc.UpdateStatus(1, "tamamlandi")
	var ve utils.ValidationErrors
	assert.ErrorAs(t, err, &ve)
}

func TestQuoteListRejectsUnknownStatusFilter(t *testing.T) {
	svc := NewQuoteService(new(mockQuoteStore), new(mockSettingsStore))

	_, err := svc.List("bilinmeyen", 0)
	var ve utils.ValidationErrors
	assert.ErrorAs(t, err, &ve)
}
