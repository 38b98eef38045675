package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// SettingsRepository handles data access for the singleton pricing settings
// row. The table allows exactly one row (id is checked to 1), so the
// singleton invariant lives in the schema rather than application checks.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

const settingsColumns = `
        id, metre_fiyat, cekmece_ucretsiz_limit, cekmece_birim_fiyat,
        cnc_acik AS "cnc.acik", cnc_fiyat AS "cnc.fiyat",
        ayna_acik AS "ayna.acik", ayna_fiyat AS "ayna.fiyat",
        created_at, updated_at`

// GetOrCreate returns the current settings, inserting the defaults if the
// row does not exist yet. Concurrent first reads are safe: the insert uses
// ON CONFLICT DO NOTHING and the row is re-read afterwards.
func (r *SettingsRepository) GetOrCreate() (*models.PricingSettings, error) {
	s, err := r.get()
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	def := models.DefaultPricingSettings()
	const q = `
        INSERT INTO pricing_settings
            (id, metre_fiyat, cekmece_ucretsiz_limit, cekmece_birim_fiyat, cnc_acik, cnc_fiyat, ayna_acik, ayna_fiyat)
        VALUES (1, $1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO NOTHING`
	if _, err := r.db.Exec(q,
		def.MetreFiyat, def.CekmeceUcretsizLimit, def.CekmeceBirimFiyat,
		def.CNC.Acik, def.CNC.Fiyat, def.Ayna.Acik, def.Ayna.Fiyat,
	); err != nil {
		return nil, err
	}
	return r.get()
}

// Create inserts a settings row directly. It fails with ErrSettingsConflict
// when the singleton row already exists.
func (r *SettingsRepository) Create(s *models.PricingSettings) error {
	const q = `
        INSERT INTO pricing_settings
            (id, metre_fiyat, cekmece_ucretsiz_limit, cekmece_birim_fiyat, cnc_acik, cnc_fiyat, ayna_acik, ayna_fiyat)
        VALUES (1, $1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`
	err := r.db.QueryRowx(q,
		s.MetreFiyat, s.CekmeceUcretsizLimit, s.CekmeceBirimFiyat,
		s.CNC.Acik, s.CNC.Fiyat, s.Ayna.Acik, s.Ayna.Fiyat,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if isUniqueViolation(err) {
		return utils.ErrSettingsConflict
	}
	return err
}

// Update overwrites the settings row with the given (already merged) values.
// Last writer wins; there is no revision check.
func (r *SettingsRepository) Update(s *models.PricingSettings) error {
	const q = `
        UPDATE pricing_settings SET
            metre_fiyat = $1,
            cekmece_ucretsiz_limit = $2,
            cekmece_birim_fiyat = $3,
            cnc_acik = $4,
            cnc_fiyat = $5,
            ayna_acik = $6,
            ayna_fiyat = $7,
            updated_at = NOW()
        WHERE id = 1
        RETURNING updated_at`
	return r.db.QueryRowx(q,
		s.MetreFiyat, s.CekmeceUcretsizLimit, s.CekmeceBirimFiyat,
		s.CNC.Acik, s.CNC.Fiyat, s.Ayna.Acik, s.Ayna.Fiyat,
	).Scan(&s.UpdatedAt)
}

func (r *SettingsRepository) get() (*models.PricingSettings, error) {
	var s models.PricingSettings
	if err := r.db.Get(&s, `SELECT `+settingsColumns+` FROM pricing_settings WHERE id = 1`); err != nil {
		return nil, err
	}
	return &s, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
