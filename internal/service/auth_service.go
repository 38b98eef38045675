package service

import (
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/repository"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

var (
	usernamePattern  = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	authEmailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// RegisterRequest is the public registration payload.
type RegisterRequest struct {
	KullaniciAdi string `json:"kullaniciAdi"`
	Sifre        string `json:"sifre"`
	AdSoyad      string `json:"adSoyad"`
	Email        string `json:"email"`
	Telefon      string `json:"telefon"`
}

// AuthService handles registration, login and password changes.
type AuthService struct {
	users     *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

// Register creates a customer account and returns the user with a signed
// token.
func (s *AuthService) Register(req RegisterRequest) (*models.User, string, error) {
	if errs := validateRegisterRequest(req); len(errs) > 0 {
		return nil, "", errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Sifre), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		KullaniciAdi: strings.ToLower(strings.TrimSpace(req.KullaniciAdi)),
		SifreHash:    string(hash),
		Rol:          models.RoleCustomer,
		AdSoyad:      strings.TrimSpace(req.AdSoyad),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Telefon:      strings.TrimSpace(req.Telefon),
		Aktif:        true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.token(user)
	if err != nil {
		return nil, "", err
	}
	log.Info().Str("kullanici_adi", user.KullaniciAdi).Msg("user registered")
	return user, token, nil
}

// Login verifies credentials and issues a JWT.
func (s *AuthService) Login(kullaniciAdi, sifre string) (*models.User, string, error) {
	user, err := s.users.GetByUsername(strings.ToLower(strings.TrimSpace(kullaniciAdi)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", utils.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SifreHash), []byte(sifre)); err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}
	if !user.Aktif {
		return nil, "", utils.ErrAccountInactive
	}

	token, err := s.token(user)
	if err != nil {
		return nil, "", err
	}
	log.Info().Str("kullanici_adi", user.KullaniciAdi).Msg("login successful")
	return user, token, nil
}

// Me returns the account for an authenticated user id.
func (s *AuthService) Me(userID int) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, utils.ErrNotFound
	}
	return user, err
}

// ChangePassword verifies the current password and stores a new hash.
func (s *AuthService) ChangePassword(userID int, current, next string) error {
	if len(next) < 6 {
		return utils.ValidationErrors{}.Add("yeniSifre", "Şifre en az 6 karakter olmalıdır")
	}

	user, err := s.Me(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SifreHash), []byte(current)); err != nil {
		return utils.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(userID, string(hash))
}

// CreateAdmin creates an active admin account. Used by the seed command.
func (s *AuthService) CreateAdmin(kullaniciAdi, sifre, adSoyad, email string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(sifre), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{
		KullaniciAdi: strings.ToLower(kullaniciAdi),
		SifreHash:    string(hash),
		Rol:          models.RoleAdmin,
		AdSoyad:      adSoyad,
		Email:        strings.ToLower(email),
		Aktif:        true,
	})
}

func (s *AuthService) token(user *models.User) (string, error) {
	return utils.GenerateJWT(s.jwtSecret, user.ID, user.KullaniciAdi, user.Rol, s.jwtExpiry)
}

func validateRegisterRequest(req RegisterRequest) utils.ValidationErrors {
	var errs utils.ValidationErrors

	kullanici := strings.TrimSpace(req.KullaniciAdi)
	switch {
	case len(kullanici) < 3:
		errs = errs.Add("kullaniciAdi", "Kullanıcı adı en az 3 karakter olmalıdır")
	case len(kullanici) > 50:
		errs = errs.Add("kullaniciAdi", "Kullanıcı adı en fazla 50 karakter olabilir")
	case !usernamePattern.MatchString(kullanici):
		errs = errs.Add("kullaniciAdi", "Kullanıcı adı sadece harf, rakam ve alt çizgi içerebilir")
	}

	if len(req.Sifre) < 6 {
		errs = errs.Add("sifre", "Şifre en az 6 karakter olmalıdır")
	} else if len(req.Sifre) > 100 {
		errs = errs.Add("sifre", "Şifre en fazla 100 karakter olabilir")
	}

	ad := strings.TrimSpace(req.AdSoyad)
	if l := len([]rune(ad)); l < 3 {
		errs = errs.Add("adSoyad", "Ad soyad en az 3 karakter olmalıdır")
	} else if l > 100 {
		errs = errs.Add("adSoyad", "Ad soyad en fazla 100 karakter olabilir")
	}

	if !authEmailPattern.MatchString(strings.TrimSpace(req.Email)) {
		errs = errs.Add("email", "Geçerli bir e-posta adresi giriniz")
	}
	return errs
}
