package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/atolyemobilya/mobilya-api/internal/models"
)

// GalleryRepository handles data access for gallery items.
type GalleryRepository struct {
	db *sqlx.DB
}

// NewGalleryRepository creates a new GalleryRepository.
func NewGalleryRepository(db *sqlx.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

const galleryColumns = `
        id, baslik, aciklama, kategori, resim_url, tamamlanma_tarihi,
        musteri_adi, konum, created_at, updated_at`

// GetAllPaged returns gallery items newest first (by completion date) with an
// optional category filter and pagination, along with the total count.
func (r *GalleryRepository) GetAllPaged(kategori string, page, limit int) ([]models.GalleryItem, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM gallery_items WHERE ($1 = '' OR kategori = $1)`, kategori); err != nil {
		return nil, 0, err
	}

	const q = `
        SELECT ` + galleryColumns + ` FROM gallery_items
        WHERE ($1 = '' OR kategori = $1)
        ORDER BY tamamlanma_tarihi DESC
        LIMIT $2 OFFSET $3`

	items := []models.GalleryItem{}
	if err := r.db.Select(&items, q, kategori, limit, offset); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID returns a single gallery item by id.
func (r *GalleryRepository) GetByID(id int) (*models.GalleryItem, error) {
	var g models.GalleryItem
	if err := r.db.Get(&g, `SELECT `+galleryColumns+` FROM gallery_items WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &g, nil
}

// Create inserts a new gallery item.
func (r *GalleryRepository) Create(g *models.GalleryItem) error {
	const q = `
        INSERT INTO gallery_items
            (baslik, aciklama, kategori, resim_url, tamamlanma_tarihi, musteri_adi, konum)
        VALUES ($1, $2, $3, $4, COALESCE($5, NOW()), $6, $7)
        RETURNING id, tamamlanma_tarihi, created_at, updated_at`

	var tarih interface{}
	if !g.TamamlanmaTarihi.IsZero() {
		tarih = g.TamamlanmaTarihi
	}
	return r.db.QueryRowx(q,
		g.Baslik, g.Aciklama, g.Kategori, g.ResimURL, tarih, g.MusteriAdi, g.Konum,
	).Scan(&g.ID, &g.TamamlanmaTarihi, &g.CreatedAt, &g.UpdatedAt)
}

// Update rewrites a gallery item.
func (r *GalleryRepository) Update(g *models.GalleryItem) error {
	const q = `
        UPDATE gallery_items SET
            baslik = $2, aciklama = $3, kategori = $4, resim_url = $5,
            tamamlanma_tarihi = $6, musteri_adi = $7, konum = $8, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`
	return r.db.QueryRowx(q,
		g.ID, g.Baslik, g.Aciklama, g.Kategori, g.ResimURL,
		g.TamamlanmaTarihi, g.MusteriAdi, g.Konum,
	).Scan(&g.UpdatedAt)
}

// Delete removes a gallery item.
func (r *GalleryRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM gallery_items WHERE id = $1`, id)
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
