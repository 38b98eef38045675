package service

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/pricing"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// QuoteStore is the persistence boundary for quotes.
type QuoteStore interface {
	Create(*models.Quote) error
	GetAll(durum models.QuoteStatus, limit int) ([]models.Quote, error)
	GetByID(id int) (*models.Quote, error)
	UpdateStatus(id int, durum models.QuoteStatus) error
	Delete(id int) error
}

// QuoteService orchestrates quote intake: validate, normalize, price under
// the configuration current at that instant, persist atomically.
type QuoteService struct {
	quotes   QuoteStore
	settings SettingsStore
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(quotes QuoteStore, settings SettingsStore) *QuoteService {
	return &QuoteService{quotes: quotes, settings: settings}
}

// Create validates and normalizes a raw submission, computes the breakdown
// and persists the quote with status beklemede. On validation failure the
// full violation list is returned and nothing is persisted.
func (s *QuoteService) Create(raw pricing.RawRequest) (*models.Quote, error) {
	q, breakdown, err := s.price(raw)
	if err != nil {
		return nil, err
	}

	quote := &models.Quote{
		AdSoyad:      q.AdSoyad,
		Email:        q.Email,
		Telefon:      q.Telefon,
		Adres:        q.Adres,
		Hizmet:       q.Hizmet,
		Genislik:     q.Genislik,
		Yukseklik:    q.Yukseklik,
		Derinlik:     q.Derinlik,
		Malzeme:      q.Malzeme,
		EkOzellikler: pq.StringArray(q.EkOzellikler),
		CekmeceAdedi: q.CekmeceAdedi,
		Notlar:       q.Notlar,
		FiyatDetay:   breakdown,
		Durum:        models.QuoteStatusPending,
	}
	if err := s.quotes.Create(quote); err != nil {
		log.Error().Err(err).Msg("quote insert failed")
		return nil, err
	}

	log.Info().
		Int("quote_id", quote.ID).
		Str("hizmet", quote.Hizmet).
		Int64("toplam_fiyat", quote.FiyatDetay.ToplamFiyat).
		Msg("quote created")
	return quote, nil
}

// Preview runs the same validation, normalization and pricing as Create
// without persisting anything. Client-side estimates call this endpoint so
// the preview can never drift from the authoritative computation.
func (s *QuoteService) Preview(raw pricing.RawRequest) (*models.PriceBreakdown, error) {
	_, breakdown, err := s.price(raw)
	if err != nil {
		return nil, err
	}
	return &breakdown, nil
}

func (s *QuoteService) price(raw pricing.RawRequest) (pricing.NormalizedQuote, models.PriceBreakdown, error) {
	q, errs := pricing.ValidateAndNormalize(raw)
	if len(errs) > 0 {
		return q, models.PriceBreakdown{}, errs
	}

	cfg, err := s.settings.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("pricing settings read failed")
		return q, models.PriceBreakdown{}, err
	}
	return q, pricing.Calculate(q, *cfg), nil
}

// List returns quotes, optionally filtered by status and capped at limit.
func (s *QuoteService) List(durum models.QuoteStatus, limit int) ([]models.Quote, error) {
	if durum != "" && !models.ValidQuoteStatus(durum) {
		return nil, utils.ValidationErrors{}.Add("durum", "Geçerli bir durum değeri değil")
	}
	return s.quotes.GetAll(durum, limit)
}

// Get returns one quote by id.
func (s *QuoteService) Get(id int) (*models.Quote, error) {
	q, err := s.quotes.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	return q, err
}

// UpdateStatus moves a quote through its status machine: one step forward
// along the chain, or to reddedildi from any non-terminal state.
func (s *QuoteService) UpdateStatus(id int, durum models.QuoteStatus) (*models.Quote, error) {
	if !models.ValidQuoteStatus(durum) {
		return nil, utils.ValidationErrors{}.Add("durum", "Geçerli bir durum değeri değil")
	}

	quote, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !quote.Durum.CanTransitionTo(durum) {
		return nil, utils.ErrInvalidTransition
	}
	if err := s.quotes.UpdateStatus(id, durum); err != nil {
		return nil, err
	}
	quote.Durum = durum
	return quote, nil
}

// Delete removes a quote.
func (s *QuoteService) Delete(id int) error {
	err := s.quotes.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrNotFound
	}
	return err
}
