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

// ProductRequest is the payload for creating or editing a catalog product.
type ProductRequest struct {
	Ad       string            `json:"ad"`
	Kod      string            `json:"kod"`
	Fiyat    float64           `json:"fiyat"`
	Kategori string            `json:"kategori"`
	Aciklama string            `json:"aciklama"`
	Malzeme  string            `json:"malzeme"`
	Olculer  models.Dimensions `json:"olculer"`
	ResimURL []string          `json:"resimUrl"`
}

// ProductService manages the product catalog.
type ProductService struct {
	products *repository.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(products *repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// List returns products with an optional category filter and pagination.
func (s *ProductService) List(kategori string, page, limit int) ([]models.Product, int, error) {
	if kategori != "" && !models.ValidCategory(kategori) {
		return nil, 0, utils.ValidationErrors{}.Add("kategori", "Geçersiz kategori")
	}
	return s.products.GetAllPaged(kategori, page, limit)
}

// Get returns one product by id.
func (s *ProductService) Get(id int) (*models.Product, error) {
	p, err := s.products.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	return p, err
}

// Create validates and inserts a new product. Product codes are stored
// uppercase and must be unique.
func (s *ProductService) Create(req ProductRequest) (*models.Product, error) {
	if errs := validateProductRequest(req); len(errs) > 0 {
		return nil, errs
	}

	p := productFromRequest(req)
	if err := s.products.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update validates and rewrites an existing product.
func (s *ProductService) Update(id int, req ProductRequest) (*models.Product, error) {
	if errs := validateProductRequest(req); len(errs) > 0 {
		return nil, errs
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	p := productFromRequest(req)
	p.ID = id
	if err := s.products.Update(p); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a product.
func (s *ProductService) Delete(id int) error {
	err := s.products.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrNotFound
	}
	return err
}

func productFromRequest(req ProductRequest) *models.Product {
	return &models.Product{
		Ad:       strings.TrimSpace(req.Ad),
		Kod:      strings.ToUpper(strings.TrimSpace(req.Kod)),
		Fiyat:    req.Fiyat,
		Kategori: req.Kategori,
		Aciklama: strings.TrimSpace(req.Aciklama),
		Malzeme:  strings.TrimSpace(req.Malzeme),
		Olculer:  req.Olculer,
		ResimURL: pq.StringArray(req.ResimURL),
	}
}

func validateProductRequest(req ProductRequest) utils.ValidationErrors {
	var errs utils.ValidationErrors

	ad := strings.TrimSpace(req.Ad)
	if ad == "" {
		errs = errs.Add("ad", "Ürün adı zorunludur")
	} else if len([]rune(ad)) > 200 {
		errs = errs.Add("ad", "Ürün adı 200 karakterden fazla olamaz")
	}

	kod := strings.TrimSpace(req.Kod)
	if kod == "" {
		errs = errs.Add("kod", "Ürün kodu zorunludur")
	} else if len(kod) > 50 {
		errs = errs.Add("kod", "Ürün kodu 50 karakterden fazla olamaz")
	}

	if req.Fiyat < 0 {
		errs = errs.Add("fiyat", "Fiyat 0 veya daha büyük olmalıdır")
	}
	if !models.ValidCategory(req.Kategori) {
		errs = errs.Add("kategori", "Geçersiz kategori")
	}

	aciklama := strings.TrimSpace(req.Aciklama)
	if aciklama == "" {
		errs = errs.Add("aciklama", "Açıklama zorunludur")
	} else if len([]rune(aciklama)) > 2000 {
		errs = errs.Add("aciklama", "Açıklama 2000 karakterden fazla olamaz")
	}

	if strings.TrimSpace(req.Malzeme) == "" {
		errs = errs.Add("malzeme", "Malzeme bilgisi zorunludur")
	}
	if req.Olculer.Genislik < 0 || req.Olculer.Yukseklik < 0 || req.Olculer.Derinlik < 0 {
		errs = errs.Add("olculer", "Ölçüler negatif olamaz")
	}
	if len(req.ResimURL) == 0 {
		errs = errs.Add("resimUrl", "En az bir resim URL'si gereklidir")
	}
	return errs
}
