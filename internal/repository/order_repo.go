package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/atolyemobilya/mobilya-api/internal/models"
)

// OrderRepository handles data access for orders.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `
        id, musteri_adi, telefon, adres,
        urun_id AS "urun.urun_id", urun_ad AS "urun.ad", urun_kod AS "urun.kod",
        urun_fiyat AS "urun.fiyat", urun_kategori AS "urun.kategori",
        durum, notlar, tarih, created_at, updated_at`

// Create persists a new order with its embedded product snapshot.
func (r *OrderRepository) Create(o *models.Order) error {
	const q = `
        INSERT INTO orders
            (musteri_adi, telefon, adres, urun_id, urun_ad, urun_kod, urun_fiyat, urun_kategori, durum, notlar, tarih)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
        RETURNING id, tarih, created_at, updated_at`

	return r.db.QueryRowx(q,
		o.MusteriAdi, o.Telefon, o.Adres,
		o.Urun.UrunID, o.Urun.Ad, o.Urun.Kod, o.Urun.Fiyat, o.Urun.Kategori,
		o.Durum, o.Notlar,
	).Scan(&o.ID, &o.Tarih, &o.CreatedAt, &o.UpdatedAt)
}

// GetAllPaged returns orders newest first with an optional status filter and
// pagination, along with the total count. Page begins at 1.
func (r *OrderRepository) GetAllPaged(durum models.OrderStatus, page, limit int) ([]models.Order, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM orders WHERE ($1 = '' OR durum = $1)`, string(durum)); err != nil {
		return nil, 0, err
	}

	const q = `
        SELECT ` + orderColumns + ` FROM orders
        WHERE ($1 = '' OR durum = $1)
        ORDER BY tarih DESC
        LIMIT $2 OFFSET $3`

	orders := []models.Order{}
	if err := r.db.Select(&orders, q, string(durum), limit, offset); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetByID returns a single order by id.
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	var o models.Order
	if err := r.db.Get(&o, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &o, nil
}

// Update rewrites the editable fields of an order. Status is changed through
// UpdateStatus only.
func (r *OrderRepository) Update(o *models.Order) error {
	const q = `
        UPDATE orders SET
            musteri_adi = $2, telefon = $3, adres = $4, notlar = $5, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`
	return r.db.QueryRowx(q, o.ID, o.MusteriAdi, o.Telefon, o.Adres, o.Notlar).Scan(&o.UpdatedAt)
}

// UpdateStatus sets the production status of an order.
func (r *OrderRepository) UpdateStatus(id int, durum models.OrderStatus) error {
	res, err := r.db.Exec(`UPDATE orders SET durum = $2, updated_at = NOW() WHERE id = $1`, id, durum)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an order.
func (r *OrderRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountByStatus returns the number of orders per status for the statistics
// endpoint.
func (r *OrderRepository) CountByStatus() ([]models.OrderStatusCount, error) {
	counts := []models.OrderStatusCount{}
	err := r.db.Select(&counts, `SELECT durum, COUNT(1) AS adet FROM orders GROUP BY durum ORDER BY durum`)
	if err != nil {
		return nil, err
	}
	return counts, nil
}
