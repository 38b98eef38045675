package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// UserRepository handles data access for user accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
        id, kullanici_adi, sifre_hash, rol, ad_soyad, email, telefon, aktif,
        created_at, updated_at`

// GetByUsername returns a user by their (lowercased) username.
func (r *UserRepository) GetByUsername(kullaniciAdi string) (*models.User, error) {
	var u models.User
	if err := r.db.Get(&u, `SELECT `+userColumns+` FROM users WHERE kullanici_adi = $1`, kullaniciAdi); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns a user by id.
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var u models.User
	if err := r.db.Get(&u, `SELECT `+userColumns+` FROM users WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. Duplicate usernames and emails map to their
// dedicated errors so handlers can tell the caller which field clashed.
func (r *UserRepository) Create(u *models.User) error {
	const q = `
        INSERT INTO users (kullanici_adi, sifre_hash, rol, ad_soyad, email, telefon, aktif)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRowx(q,
		u.KullaniciAdi, u.SifreHash, u.Rol, u.AdSoyad, u.Email, u.Telefon, u.Aktif,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		if pqErr.Constraint == "users_email_key" {
			return utils.ErrDuplicateEmail
		}
		return utils.ErrDuplicateUsername
	}
	return err
}

// GetAllPaged returns users newest first with pagination.
func (r *UserRepository) GetAllPaged(page, limit int) ([]models.User, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM users`); err != nil {
		return nil, 0, err
	}

	users := []models.User{}
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	if err := r.db.Select(&users, q, limit, offset); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update rewrites a user's profile fields.
func (r *UserRepository) Update(u *models.User) error {
	const q = `
        UPDATE users SET
            ad_soyad = $2, email = $3, telefon = $4, rol = $5, aktif = $6, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`
	err := r.db.QueryRowx(q, u.ID, u.AdSoyad, u.Email, u.Telefon, u.Rol, u.Aktif).Scan(&u.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return utils.ErrDuplicateEmail
	}
	return err
}

// UpdatePassword replaces a user's password hash.
func (r *UserRepository) UpdatePassword(id int, sifreHash string) error {
	res, err := r.db.Exec(`UPDATE users SET sifre_hash = $2, updated_at = NOW() WHERE id = $1`, id, sifreHash)
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

// SetActive toggles the active flag of a user.
func (r *UserRepository) SetActive(id int, aktif bool) error {
	res, err := r.db.Exec(`UPDATE users SET aktif = $2, updated_at = NOW() WHERE id = $1`, id, aktif)
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

// Delete removes a user.
func (r *UserRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
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
