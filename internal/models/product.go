package models

import (
	"time"

	"github.com/lib/pq"
)

// Categories shared by products and gallery items.
var ProductCategories = []string{"Mutfak", "Yatak Odası", "Salon", "Banyo", "Özel Tasarım", "Diğer"}

// ValidCategory reports whether kategori is one of the fixed category names.
func ValidCategory(kategori string) bool {
	for _, k := range ProductCategories {
		if k == kategori {
			return true
		}
	}
	return false
}

// Dimensions are optional display measurements on a catalog product, in cm.
type Dimensions struct {
	Genislik  float64 `db:"genislik" json:"genislik"`
	Yukseklik float64 `db:"yukseklik" json:"yukseklik"`
	Derinlik  float64 `db:"derinlik" json:"derinlik"`
}

// Product is a catalog item offered for direct order.
type Product struct {
	ID        int            `db:"id" json:"id"`
	Ad        string         `db:"ad" json:"ad"`
	Kod       string         `db:"kod" json:"kod"`
	Fiyat     float64        `db:"fiyat" json:"fiyat"`
	Kategori  string         `db:"kategori" json:"kategori"`
	Aciklama  string         `db:"aciklama" json:"aciklama"`
	Malzeme   string         `db:"malzeme" json:"malzeme"`
	Olculer   Dimensions     `db:"olculer" json:"olculer"`
	ResimURL  pq.StringArray `db:"resim_url" json:"resimUrl"`
	Tarih     time.Time      `db:"tarih" json:"tarih"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `db:"updated_at" json:"updatedAt"`
}
