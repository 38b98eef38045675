package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/service"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// In-memory stores backing the handler tests.
type stubQuoteStore struct {
	quotes []models.Quote
}

func (s *stubQuoteStore) Create(q *models.Quote) error {
	q.ID = len(s.quotes) + 1
	s.quotes = append(s.quotes, *q)
	return nil
}

func (s *stubQuoteStore) GetAll(durum models.QuoteStatus, limit int) ([]models.Quote, error) {
	out := []models.Quote{}
	for _, q := range s.quotes {
		if durum == "" || q.Durum == durum {
			out = append(out, q)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubQuoteStore) GetByID(id int) (*models.Quote, error) {
	for _, q := range s.quotes {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (s *stubQuoteStore) UpdateStatus(id int, durum models.QuoteStatus) error {
	for i := range s.quotes {
		if s.quotes[i].ID == id {
			s.quotes[i].Durum = durum
			return nil
		}
	}
	return utils.ErrNotFound
}

func (s *stubQuoteStore) Delete(id int) error {
	for i := range s.quotes {
		if s.quotes[i].ID == id {
			s.quotes = append(s.quotes[:i], s.quotes[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

type stubSettingsStore struct {
	settings models.PricingSettings
}

func (s *stubSettingsStore) GetOrCreate() (*models.PricingSettings, error) {
	cp := s.settings
	return &cp, nil
}

func (s *stubSettingsStore) Update(next *models.PricingSettings) error {
	s.settings = *next
	return nil
}

func setupQuoteRouter(t *testing.T) (*gin.Engine, *stubQuoteStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &stubQuoteStore{}
	svc := service.NewQuoteService(store, &stubSettingsStore{settings: models.DefaultPricingSettings()})
	h := NewQuoteHandler(svc)

	router := gin.New()
	router.POST("/api/teklif", h.Create)
	router.POST("/api/teklif/hesapla", h.Calculate)
	router.GET("/api/teklif", h.List)
	router.PUT("/api/teklif/:id/durum", h.UpdateStatus)
	return router, store
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestQuoteIntakeEndpoint(t *testing.T) {
	router, store := setupQuoteRouter(t)

	// Dimensions as strings, the form has always sent them that way.
	w := performJSON(router, http.MethodPost, "/api/teklif", gin.H{
		"adSoyad":      "Mehmet Demir",
		"email":        "mehmet@example.com",
		"telefon":      "+90 (555) 123-45-67",
		"adres":        "Kadıköy, İstanbul",
		"hizmet":       "Mutfak Dolabı",
		"genislik":     "200",
		"yukseklik":    "80",
		"derinlik":     "60",
		"malzeme":      "sunta",
		"ekOzellikler": []string{"ayna"},
		"cekmeceAdedi": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	require.Len(t, store.quotes, 1)
	q := store.quotes[0]
	assert.Equal(t, "mutfak", q.Hizmet)
	assert.Equal(t, "5551234567", q.Telefon)
	assert.Equal(t, int64(10560), q.FiyatDetay.TemelFiyat)
	assert.Equal(t, int64(4000), q.FiyatDetay.EkOzelliklerFiyat)
	assert.Equal(t, int64(0), q.FiyatDetay.CekmeceFiyat)
	assert.Equal(t, models.QuoteStatusPending, q.Durum)
}

func TestQuoteIntakeValidationErrorsAreCollected(t *testing.T) {
	router, store := setupQuoteRouter(t)

	w := performJSON(router, http.MethodPost, "/api/teklif", gin.H{
		"adSoyad":  "M",
		"email":    "broken",
		"telefon":  "123",
		"hizmet":   "Banyo Dolabı",
		"genislik": "200",
		"derinlik": "abc",
		"malzeme":  "sunta",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	// Every violation is reported, not just the first.
	assert.GreaterOrEqual(t, len(resp.Errors), 4)
	assert.Empty(t, store.quotes)
}

func TestQuotePreviewEndpointDoesNotPersist(t *testing.T) {
	router, store := setupQuoteRouter(t)

	w := performJSON(router, http.MethodPost, "/api/teklif/hesapla", gin.H{
		"adSoyad":   "Mehmet Demir",
		"email":     "mehmet@example.com",
		"telefon":   "05551234567",
		"adres":     "Kadıköy, İstanbul",
		"hizmet":    "Mutfak Dolabı",
		"genislik":  200,
		"yukseklik": 80,
		"derinlik":  60,
		"malzeme":   "mdf",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			FiyatDetay models.PriceBreakdown `json:"fiyatDetay"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10560), resp.Data.FiyatDetay.ToplamFiyat)
	assert.Empty(t, store.quotes)
}

func TestQuoteStatusEndpointRejectsInvalidTransition(t *testing.T) {
	router, store := setupQuoteRouter(t)
	store.quotes = []models.Quote{{ID: 1, Durum: models.QuoteStatusPending}}

	w := performJSON(router, http.MethodPut, "/api/teklif/1/durum", gin.H{"durum": "onaylandi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.QuoteStatusPending, store.quotes[0].Durum)

	w = performJSON(router, http.MethodPut, "/api/teklif/1/durum", gin.H{"durum": "inceleniyor"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.QuoteStatusReviewing, store.quotes[0].Durum)
}
