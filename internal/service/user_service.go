package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/repository"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// ProfileUpdateRequest is the payload for a user editing their own profile.
type ProfileUpdateRequest struct {
	AdSoyad string `json:"adSoyad"`
	Email   string `json:"email"`
	Telefon string `json:"telefon"`
}

// AdminUserUpdateRequest is the payload for an admin editing any account.
type AdminUserUpdateRequest struct {
	AdSoyad string `json:"adSoyad"`
	Email   string `json:"email"`
	Telefon string `json:"telefon"`
	Rol     string `json:"rol"`
	Aktif   *bool  `json:"aktif"`
}

// UserService manages account profiles and admin user management.
type UserService struct {
	users *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns users with pagination.
func (s *UserService) List(page, limit int) ([]models.User, int, error) {
	return s.users.GetAllPaged(page, limit)
}

// Get returns one user by id.
func (s *UserService) Get(id int) (*models.User, error) {
	u, err := s.users.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	return u, err
}

// UpdateProfile edits the profile fields of the calling user.
func (s *UserService) UpdateProfile(id int, req ProfileUpdateRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if errs := validateProfile(req.AdSoyad, req.Email); len(errs) > 0 {
		return nil, errs
	}
	user.AdSoyad = strings.TrimSpace(req.AdSoyad)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Telefon = strings.TrimSpace(req.Telefon)

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// AdminUpdate edits any account, including role and active flag.
func (s *UserService) AdminUpdate(id int, req AdminUserUpdateRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if errs := validateProfile(req.AdSoyad, req.Email); len(errs) > 0 {
		return nil, errs
	}
	if req.Rol != "" && req.Rol != models.RoleAdmin && req.Rol != models.RoleCustomer {
		return nil, utils.ValidationErrors{}.Add("rol", "Geçersiz rol")
	}

	user.AdSoyad = strings.TrimSpace(req.AdSoyad)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Telefon = strings.TrimSpace(req.Telefon)
	if req.Rol != "" {
		user.Rol = req.Rol
	}
	if req.Aktif != nil {
		user.Aktif = *req.Aktif
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleStatus flips the active flag of a user.
func (s *UserService) ToggleStatus(id int) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetActive(id, !user.Aktif); err != nil {
		return nil, err
	}
	user.Aktif = !user.Aktif
	return user, nil
}

// Delete removes a user account.
func (s *UserService) Delete(id int) error {
	err := s.users.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrNotFound
	}
	return err
}

func validateProfile(adSoyad, email string) utils.ValidationErrors {
	var errs utils.ValidationErrors
	if l := len([]rune(strings.TrimSpace(adSoyad))); l < 3 {
		errs = errs.Add("adSoyad", "Ad soyad en az 3 karakter olmalıdır")
	} else if l > 100 {
		errs = errs.Add("adSoyad", "Ad soyad en fazla 100 karakter olabilir")
	}
	if !authEmailPattern.MatchString(strings.TrimSpace(email)) {
		errs = errs.Add("email", "Geçerli bir e-posta adresi giriniz")
	}
	return errs
}
