package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// ProductRepository handles data access for catalog products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `
        id, ad, kod, fiyat, kategori, aciklama, malzeme,
        olculer_genislik AS "olculer.genislik",
        olculer_yukseklik AS "olculer.yukseklik",
        olculer_derinlik AS "olculer.derinlik",
        resim_url, tarih, created_at, updated_at`

// GetAllPaged returns products newest first with an optional category filter
// and pagination, along with the total count. Page begins at 1.
func (r *ProductRepository) GetAllPaged(kategori string, page, limit int) ([]models.Product, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM products WHERE ($1 = '' OR kategori = $1)`, kategori); err != nil {
		return nil, 0, err
	}

	const q = `
        SELECT ` + productColumns + ` FROM products
        WHERE ($1 = '' OR kategori = $1)
        ORDER BY tarih DESC
        LIMIT $2 OFFSET $3`

	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, 0, err
	}
	defer stmt.Close()

	products := []models.Product{}
	if err := stmt.Select(&products, kategori, limit, offset); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	var p models.Product
	if err := r.db.Get(&p, `SELECT `+productColumns+` FROM products WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new product. A duplicate product code maps to
// ErrDuplicateCode.
func (r *ProductRepository) Create(p *models.Product) error {
	const q = `
        INSERT INTO products
            (ad, kod, fiyat, kategori, aciklama, malzeme,
             olculer_genislik, olculer_yukseklik, olculer_derinlik, resim_url, tarih)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
        RETURNING id, tarih, created_at, updated_at`

	err := r.db.QueryRowx(q,
		p.Ad, p.Kod, p.Fiyat, p.Kategori, p.Aciklama, p.Malzeme,
		p.Olculer.Genislik, p.Olculer.Yukseklik, p.Olculer.Derinlik, p.ResimURL,
	).Scan(&p.ID, &p.Tarih, &p.CreatedAt, &p.UpdatedAt)
	if isUniqueViolation(err) {
		return utils.ErrDuplicateCode
	}
	return err
}

// Update rewrites a product.
func (r *ProductRepository) Update(p *models.Product) error {
	const q = `
        UPDATE products SET
            ad = $2, kod = $3, fiyat = $4, kategori = $5, aciklama = $6, malzeme = $7,
            olculer_genislik = $8, olculer_yukseklik = $9, olculer_derinlik = $10,
            resim_url = $11, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`

	err := r.db.QueryRowx(q,
		p.ID, p.Ad, p.Kod, p.Fiyat, p.Kategori, p.Aciklama, p.Malzeme,
		p.Olculer.Genislik, p.Olculer.Yukseklik, p.Olculer.Derinlik, p.ResimURL,
	).Scan(&p.UpdatedAt)
	if isUniqueViolation(err) {
		return utils.ErrDuplicateCode
	}
	return err
}

// Delete removes a product.
func (r *ProductRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
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
