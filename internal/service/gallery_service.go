package service

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/repository"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// GalleryRequest is the payload for creating or editing a gallery item.
type GalleryRequest struct {
	Baslik           string     `json:"baslik"`
	Aciklama         string     `json:"aciklama"`
	Kategori         string     `json:"kategori"`
	ResimURL         []string   `json:"resimUrl"`
	TamamlanmaTarihi *time.Time `json:"tamamlanmaTarihi"`
	MusteriAdi       string     `json:"musteriAdi"`
	Konum            string     `json:"konum"`
}

// GalleryService manages the completed-work showcase.
type GalleryService struct {
	gallery *repository.GalleryRepository
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(gallery *repository.GalleryRepository) *GalleryService {
	return &GalleryService{gallery: gallery}
}

// List returns gallery items with an optional category filter and pagination.
func (s *GalleryService) List(kategori string, page, limit int) ([]models.GalleryItem, int, error) {
	if kategori != "" && !models.ValidCategory(kategori) {
		return nil, 0, utils.ValidationErrors{}.Add("kategori", "Geçersiz kategori")
	}
	return s.gallery.GetAllPaged(kategori, page, limit)
}

// Get returns one gallery item by id.
func (s *GalleryService) Get(id int) (*models.GalleryItem, error) {
	g, err := s.gallery.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	return g, err
}

// Create validates and inserts a new gallery item.
func (s *GalleryService) Create(req GalleryRequest) (*models.GalleryItem, error) {
	if errs := validateGalleryRequest(req); len(errs) > 0 {
		return nil, errs
	}

	g := galleryFromRequest(req)
	if err := s.gallery.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Update validates and rewrites an existing gallery item.
func (s *GalleryService) Update(id int, req GalleryRequest) (*models.GalleryItem, error) {
	if errs := validateGalleryRequest(req); len(errs) > 0 {
		return nil, errs
	}
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	g := galleryFromRequest(req)
	g.ID = id
	if g.TamamlanmaTarihi.IsZero() {
		g.TamamlanmaTarihi = current.TamamlanmaTarihi
	}
	if err := s.gallery.Update(g); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a gallery item.
func (s *GalleryService) Delete(id int) error {
	err := s.gallery.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrNotFound
	}
	return err
}

func galleryFromRequest(req GalleryRequest) *models.GalleryItem {
	g := &models.GalleryItem{
		Baslik:     strings.TrimSpace(req.Baslik),
		Aciklama:   strings.TrimSpace(req.Aciklama),
		Kategori:   req.Kategori,
		ResimURL:   pq.StringArray(req.ResimURL),
		MusteriAdi: strings.TrimSpace(req.MusteriAdi),
		Konum:      strings.TrimSpace(req.Konum),
	}
	if req.TamamlanmaTarihi != nil {
		g.TamamlanmaTarihi = *req.TamamlanmaTarihi
	}
	return g
}

func validateGalleryRequest(req GalleryRequest) utils.ValidationErrors {
	var errs utils.ValidationErrors

	baslik := strings.TrimSpace(req.Baslik)
	if baslik == "" {
		errs = errs.Add("baslik", "Başlık zorunludur")
	} else if len([]rune(baslik)) > 200 {
		errs = errs.Add("baslik", "Başlık 200 karakterden fazla olamaz")
	}

	if len([]rune(req.Aciklama)) > 1000 {
		errs = errs.Add("aciklama", "Açıklama 1000 karakterden fazla olamaz")
	}
	if !models.ValidCategory(req.Kategori) {
		errs = errs.Add("kategori", "Geçersiz kategori")
	}
	if len(req.ResimURL) == 0 {
		errs = errs.Add("resimUrl", "En az bir resim URL'si gereklidir")
	}
	return errs
}
