package models

import (
	"time"

	"github.com/lib/pq"
)

// Review is a customer review. New reviews start unapproved and only show on
// the public listing after moderation.
type Review struct {
	ID           int            `db:"id" json:"id"`
	MusteriAdi   string         `db:"musteri_adi" json:"musteriAdi"`
	MusteriResim string         `db:"musteri_resim" json:"musteriResim"`
	Yildiz       int            `db:"yildiz" json:"yildiz"`
	Yorum        string         `db:"yorum" json:"yorum"`
	Hizmet       string         `db:"hizmet" json:"hizmet"`
	Fotograflar  pq.StringArray `db:"fotograflar" json:"fotograflar"`
	Onaylandi    bool           `db:"onaylandi" json:"onaylandi"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updatedAt"`
}

// ReviewStats is the public aggregate over approved reviews.
type ReviewStats struct {
	ToplamYorum  int     `db:"toplam_yorum" json:"toplamYorum"`
	OrtalamaPuan float64 `db:"ortalama_puan" json:"ortalamaPuan"`
}
