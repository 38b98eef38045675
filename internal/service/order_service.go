package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/pricing"
	"github.com/atolyemobilya/mobilya-api/internal/repository"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// OrderRequest is the payload for creating or editing an order.
type OrderRequest struct {
	MusteriAdi string `json:"musteriAdi"`
	Telefon    string `json:"telefon"`
	Adres      string `json:"adres"`
	UrunID     int    `json:"urunId"`
	Notlar     string `json:"notlar"`
}

// OrderService manages the order lifecycle.
type OrderService struct {
	orders   *repository.OrderRepository
	products *repository.ProductRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders *repository.OrderRepository, products *repository.ProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// Create validates the request, snapshots the referenced product and
// persists the order with status Yeni.
func (s *OrderService) Create(req OrderRequest) (*models.Order, error) {
	if errs := validateOrderRequest(req, true); len(errs) > 0 {
		return nil, errs
	}

	product, err := s.products.GetByID(req.UrunID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		MusteriAdi: strings.TrimSpace(req.MusteriAdi),
		Telefon:    strings.TrimSpace(req.Telefon),
		Adres:      strings.TrimSpace(req.Adres),
		Urun: models.OrderProduct{
			UrunID:   product.ID,
			Ad:       product.Ad,
			Kod:      product.Kod,
			Fiyat:    product.Fiyat,
			Kategori: product.Kategori,
		},
		Durum:  models.OrderStatusNew,
		Notlar: strings.TrimSpace(req.Notlar),
	}
	if err := s.orders.Create(order); err != nil {
		log.Error().Err(err).Msg("order insert failed")
		return nil, err
	}
	return order, nil
}

// List returns orders with an optional status filter and pagination.
func (s *OrderService) List(durum models.OrderStatus, page, limit int) ([]models.Order, int, error) {
	if durum != "" && !models.ValidOrderStatus(durum) {
		return nil, 0, utils.ValidationErrors{}.Add("durum", "Geçersiz sipariş durumu")
	}
	return s.orders.GetAllPaged(durum, page, limit)
}

// Get returns one order by id.
func (s *OrderService) Get(id int) (*models.Order, error) {
	o, err := s.orders.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	return o, err
}

// Update edits the customer fields of an order. Completed and cancelled
// orders are frozen and reject edits with a conflict.
func (s *OrderService) Update(id int, req OrderRequest) (*models.Order, error) {
	if errs := validateOrderRequest(req, false); len(errs) > 0 {
		return nil, errs
	}

	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if order.Durum.Locked() {
		return nil, utils.ErrStatusLocked
	}

	order.MusteriAdi = strings.TrimSpace(req.MusteriAdi)
	order.Telefon = strings.TrimSpace(req.Telefon)
	order.Adres = strings.TrimSpace(req.Adres)
	order.Notlar = strings.TrimSpace(req.Notlar)
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets the production status of an order.
func (s *OrderService) UpdateStatus(id int, durum models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(durum) {
		return nil, utils.ValidationErrors{}.Add("durum", "Geçersiz sipariş durumu")
	}

	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(id, durum); err != nil {
		return nil, err
	}
	order.Durum = durum
	return order, nil
}

// Delete removes an order.
func (s *OrderService) Delete(id int) error {
	err := s.orders.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrNotFound
	}
	return err
}

// Stats returns order counts grouped by status.
func (s *OrderService) Stats() ([]models.OrderStatusCount, error) {
	return s.orders.CountByStatus()
}

func validateOrderRequest(req OrderRequest, requireProduct bool) utils.ValidationErrors {
	var errs utils.ValidationErrors

	ad := strings.TrimSpace(req.MusteriAdi)
	if ad == "" {
		errs = errs.Add("musteriAdi", "Müşteri adı zorunludur")
	} else if len([]rune(ad)) > 200 {
		errs = errs.Add("musteriAdi", "Müşteri adı 200 karakterden fazla olamaz")
	}

	if pricing.NormalizePhone(req.Telefon) == "" {
		errs = errs.Add("telefon", "Geçerli bir telefon numarası giriniz")
	}

	adres := strings.TrimSpace(req.Adres)
	if adres == "" {
		errs = errs.Add("adres", "Adres zorunludur")
	} else if len([]rune(adres)) > 500 {
		errs = errs.Add("adres", "Adres 500 karakterden fazla olamaz")
	}

	if requireProduct && req.UrunID <= 0 {
		errs = errs.Add("urunId", "Ürün seçimi zorunludur")
	}

	if len([]rune(req.Notlar)) > 1000 {
		errs = errs.Add("notlar", "Notlar 1000 karakterden fazla olamaz")
	}
	return errs
}
