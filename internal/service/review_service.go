package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/repository"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// ReviewRequest is the payload for submitting a customer review.
type ReviewRequest struct {
	MusteriAdi   string   `json:"musteriAdi"`
	MusteriResim string   `json:"musteriResim"`
	Yildiz       int      `json:"yildiz"`
	Yorum        string   `json:"yorum"`
	Hizmet       string   `json:"hizmet"`
	Fotograflar  []string `json:"fotograflar"`
}

// ReviewService manages customer reviews and their moderation.
type ReviewService struct {
	reviews *repository.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews *repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Create validates and inserts a new review. Reviews start unapproved.
func (s *ReviewService) Create(req ReviewRequest) (*models.Review, error) {
	if errs := validateReviewRequest(req); len(errs) > 0 {
		return nil, errs
	}

	rev := &models.Review{
		MusteriAdi:   strings.TrimSpace(req.MusteriAdi),
		MusteriResim: strings.TrimSpace(req.MusteriResim),
		Yildiz:       req.Yildiz,
		Yorum:        strings.TrimSpace(req.Yorum),
		Hizmet:       strings.TrimSpace(req.Hizmet),
		Fotograflar:  pq.StringArray(req.Fotograflar),
	}
	if rev.Fotograflar == nil {
		rev.Fotograflar = pq.StringArray{}
	}
	if err := s.reviews.Create(rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// List returns reviews newest first. Public callers only see approved ones.
func (s *ReviewService) List(onlyApproved bool, page, limit int) ([]models.Review, int, error) {
	return s.reviews.GetAllPaged(onlyApproved, page, limit)
}

// Approve marks a review as moderated and publicly visible.
func (s *ReviewService) Approve(id int) (*models.Review, error) {
	rev, err := s.reviews.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.reviews.SetApproved(id, true); err != nil {
		return nil, err
	}
	rev.Onaylandi = true
	return rev, nil
}

// Delete removes a review.
func (s *ReviewService) Delete(id int) error {
	err := s.reviews.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrNotFound
	}
	return err
}

// Stats returns the public aggregate over approved reviews.
func (s *ReviewService) Stats() (*models.ReviewStats, error) {
	return s.reviews.Stats()
}

func validateReviewRequest(req ReviewRequest) utils.ValidationErrors {
	var errs utils.ValidationErrors

	ad := strings.TrimSpace(req.MusteriAdi)
	if l := len([]rune(ad)); l < 2 {
		errs = errs.Add("musteriAdi", "Müşteri adı en az 2 karakter olmalıdır")
	} else if l > 100 {
		errs = errs.Add("musteriAdi", "Müşteri adı en fazla 100 karakter olabilir")
	}

	if req.Yildiz < 1 || req.Yildiz > 5 {
		errs = errs.Add("yildiz", "Yıldız puanı 1 ile 5 arasında olmalıdır")
	}

	yorum := strings.TrimSpace(req.Yorum)
	if l := len([]rune(yorum)); l < 10 {
		errs = errs.Add("yorum", "Yorum en az 10 karakter olmalıdır")
	} else if l > 1000 {
		errs = errs.Add("yorum", "Yorum en fazla 1000 karakter olabilir")
	}

	hizmet := strings.TrimSpace(req.Hizmet)
	if hizmet == "" {
		errs = errs.Add("hizmet", "Hizmet bilgisi zorunludur")
	} else if len([]rune(hizmet)) > 100 {
		errs = errs.Add("hizmet", "Hizmet bilgisi en fazla 100 karakter olabilir")
	}

	if len(req.Fotograflar) > 10 {
		errs = errs.Add("fotograflar", "En fazla 10 fotoğraf yüklenebilir")
	}
	return errs
}
