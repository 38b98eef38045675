package models

import "time"

// User roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "musteri"
)

// User is an account that can sign in. Staff accounts carry the admin role;
// customer accounts are created through public registration.
type User struct {
	ID           int       `db:"id" json:"id"`
	KullaniciAdi string    `db:"kullanici_adi" json:"kullaniciAdi"`
	SifreHash    string    `db:"sifre_hash" json:"-"`
	Rol          string    `db:"rol" json:"rol"`
	AdSoyad      string    `db:"ad_soyad" json:"adSoyad"`
	Email        string    `db:"email" json:"email"`
	Telefon      string    `db:"telefon" json:"telefon"`
	Aktif        bool      `db:"aktif" json:"aktif"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
