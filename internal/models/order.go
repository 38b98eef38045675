package models

import "time"

// OrderStatus enumerates the production states of an order.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "Yeni"
	OrderStatusProcessing OrderStatus = "İşlemde"
	OrderStatusProduction OrderStatus = "Üretimde"
	OrderStatusCompleted  OrderStatus = "Tamamlandı"
	OrderStatusCancelled  OrderStatus = "İptal"
)

// ValidOrderStatus reports whether s is a known status value.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusProduction, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Locked reports whether general field edits are rejected for this status.
// Completed and cancelled orders are frozen except for deletion.
func (s OrderStatus) Locked() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderProduct is the product snapshot embedded in an order. The price and
// category are copied at order time so later catalog edits do not change
// historical orders.
type OrderProduct struct {
	UrunID   int     `db:"urun_id" json:"urunId"`
	Ad       string  `db:"ad" json:"ad"`
	Kod      string  `db:"kod" json:"kod"`
	Fiyat    float64 `db:"fiyat" json:"fiyat"`
	Kategori string  `db:"kategori" json:"kategori"`
}

// Order is a confirmed purchase of a catalog product.
type Order struct {
	ID         int          `db:"id" json:"id"`
	MusteriAdi string       `db:"musteri_adi" json:"musteriAdi"`
	Telefon    string       `db:"telefon" json:"telefon"`
	Adres      string       `db:"adres" json:"adres"`
	Urun       OrderProduct `db:"urun" json:"urun"`
	Durum      OrderStatus  `db:"durum" json:"durum"`
	Notlar     string       `db:"notlar" json:"notlar"`
	Tarih      time.Time    `db:"tarih" json:"tarih"`
	CreatedAt  time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time    `db:"updated_at" json:"updatedAt"`
}

// OrderStatusCount is one row of the status statistics aggregate.
type OrderStatusCount struct {
	Durum OrderStatus `db:"durum" json:"durum"`
	Adet  int         `db:"adet" json:"adet"`
}
