package models

import (
	"time"

	"github.com/lib/pq"
)

// GalleryItem is a completed-work showcase entry.
type GalleryItem struct {
	ID               int            `db:"id" json:"id"`
	Baslik           string         `db:"baslik" json:"baslik"`
	Aciklama         string         `db:"aciklama" json:"aciklama"`
	Kategori         string         `db:"kategori" json:"kategori"`
	ResimURL         pq.StringArray `db:"resim_url" json:"resimUrl"`
	TamamlanmaTarihi time.Time      `db:"tamamlanma_tarihi" json:"tamamlanmaTarihi"`
	MusteriAdi       string         `db:"musteri_adi" json:"musteriAdi"`
	Konum            string         `db:"konum" json:"konum"`
	CreatedAt        time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updatedAt"`
}
