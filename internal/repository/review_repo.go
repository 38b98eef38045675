package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/atolyemobilya/mobilya-api/internal/models"
)

// ReviewRepository handles data access for customer reviews.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `
        id, musteri_adi, musteri_resim, yildiz, yorum, hizmet, fotograflar,
        onaylandi, created_at, updated_at`

// GetAllPaged returns reviews newest first. When onlyApproved is true only
// moderated reviews are returned (the public listing).
func (r *ReviewRepository) GetAllPaged(onlyApproved bool, page, limit int) ([]models.Review, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM reviews WHERE (NOT $1 OR onaylandi)`, onlyApproved); err != nil {
		return nil, 0, err
	}

	const q = `
        SELECT ` + reviewColumns + ` FROM reviews
        WHERE (NOT $1 OR onaylandi)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	reviews := []models.Review{}
	if err := r.db.Select(&reviews, q, onlyApproved, limit, offset); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// GetByID returns a single review by id.
func (r *ReviewRepository) GetByID(id int) (*models.Review, error) {
	var rev models.Review
	if err := r.db.Get(&rev, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &rev, nil
}

// Create inserts a new review. Reviews always start unapproved.
func (r *ReviewRepository) Create(rev *models.Review) error {
	const q = `
        INSERT INTO reviews (musteri_adi, musteri_resim, yildiz, yorum, hizmet, fotograflar, onaylandi)
        VALUES ($1, $2, $3, $4, $5, $6, false)
        RETURNING id, onaylandi, created_at, updated_at`
	return r.db.QueryRowx(q,
		rev.MusteriAdi, rev.MusteriResim, rev.Yildiz, rev.Yorum, rev.Hizmet, rev.Fotograflar,
	).Scan(&rev.ID, &rev.Onaylandi, &rev.CreatedAt, &rev.UpdatedAt)
}

// SetApproved flips the moderation flag on a review.
func (r *ReviewRepository) SetApproved(id int, approved bool) error {
	res, err := r.db.Exec(`UPDATE reviews SET onaylandi = $2, updated_at = NOW() WHERE id = $1`, id, approved)
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

// Delete removes a review.
func (r *ReviewRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM reviews WHERE id = $1`, id)
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

// Stats returns the approved-review count and average star rating.
func (r *ReviewRepository) Stats() (*models.ReviewStats, error) {
	var s models.ReviewStats
	const q = `
        SELECT COUNT(1) AS toplam_yorum,
               COALESCE(ROUND(AVG(yildiz)::numeric, 1), 0) AS ortalama_puan
        FROM reviews WHERE onaylandi`
	if err := r.db.Get(&s, q); err != nil {
		return nil, err
	}
	return &s, nil
}
