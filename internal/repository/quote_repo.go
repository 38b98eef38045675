package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/atolyemobilya/mobilya-api/internal/models"
)

// QuoteRepository handles data access for quotes.
type QuoteRepository struct {
	db *sqlx.DB
}

// NewQuoteRepository creates a new QuoteRepository.
func NewQuoteRepository(db *sqlx.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

const quoteColumns = `
        id, ad_soyad, email, telefon, adres, hizmet,
        genislik, yukseklik, derinlik, malzeme, ek_ozellikler, cekmece_adedi, notlar,
        temel_fiyat AS "fiyat_detay.temel_fiyat",
        malzeme_fiyat AS "fiyat_detay.malzeme_fiyat",
        ek_ozellikler_fiyat AS "fiyat_detay.ek_ozellikler_fiyat",
        cekmece_fiyat AS "fiyat_detay.cekmece_fiyat",
        toplam_fiyat AS "fiyat_detay.toplam_fiyat",
        durum, created_at, updated_at`

// Create persists a new quote with its embedded price breakdown in a single
// insert. The breakdown is written once here and never updated afterwards.
func (r *QuoteRepository) Create(q *models.Quote) error {
	const query = `
        INSERT INTO quotes
            (ad_soyad, email, telefon, adres, hizmet, genislik, yukseklik, derinlik,
             malzeme, ek_ozellikler, cekmece_adedi, notlar,
             temel_fiyat, malzeme_fiyat, ek_ozellikler_fiyat, cekmece_fiyat, toplam_fiyat, durum)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(query,
		q.AdSoyad, q.Email, q.Telefon, q.Adres, q.Hizmet,
		q.Genislik, q.Yukseklik, q.Derinlik,
		q.Malzeme, q.EkOzellikler, q.CekmeceAdedi, q.Notlar,
		q.FiyatDetay.TemelFiyat, q.FiyatDetay.MalzemeFiyat, q.FiyatDetay.EkOzelliklerFiyat,
		q.FiyatDetay.CekmeceFiyat, q.FiyatDetay.ToplamFiyat, q.Durum,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

// GetAll returns quotes newest first, optionally filtered by status and
// capped at limit (0 means no cap).
func (r *QuoteRepository) GetAll(durum models.QuoteStatus, limit int) ([]models.Quote, error) {
	const q = `
        SELECT ` + quoteColumns + ` FROM quotes
        WHERE ($1 = '' OR durum = $1)
        ORDER BY created_at DESC
        LIMIT CASE WHEN $2 > 0 THEN $2 END`

	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	quotes := []models.Quote{}
	if err := stmt.Select(&quotes, string(durum), limit); err != nil {
		return nil, err
	}
	return quotes, nil
}

// GetByID returns a single quote by id.
func (r *QuoteRepository) GetByID(id int) (*models.Quote, error) {
	var q models.Quote
	if err := r.db.Get(&q, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &q, nil
}

// UpdateStatus sets the status of a quote. Only the status column is
// mutable after creation.
func (r *QuoteRepository) UpdateStatus(id int, durum models.QuoteStatus) error {
	res, err := r.db.Exec(`UPDATE quotes SET durum = $2, updated_at = NOW() WHERE id = $1`, id, durum)
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

// Delete removes a quote.
func (r *QuoteRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM quotes WHERE id = $1`, id)
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
