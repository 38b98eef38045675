package models

import (
	"time"

	"github.com/lib/pq"
)

// QuoteStatus enumerates the quote lifecycle states.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "beklemede"
	QuoteStatusReviewing QuoteStatus = "inceleniyor"
	QuoteStatusSent      QuoteStatus = "teklif-gonderildi"
	QuoteStatusApproved  QuoteStatus = "onaylandi"
	QuoteStatusRejected  QuoteStatus = "reddedildi"
)

// Service type slugs accepted on a quote.
const (
	ServiceMutfak   = "mutfak"
	ServiceGardirop = "gardirop"
	ServiceVestiyer = "vestiyer"
	ServiceTV       = "tv"
)

// Material slugs accepted on a quote.
const (
	MaterialSunta = "sunta"
	MaterialMDF   = "mdf"
)

// ValidQuoteStatus reports whether s is a known status value.
func ValidQuoteStatus(s QuoteStatus) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusReviewing, QuoteStatusSent, QuoteStatusApproved, QuoteStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusApproved || s == QuoteStatusRejected
}

// CanTransitionTo reports whether the status machine allows moving from s to
// next: one step forward along beklemede → inceleniyor → teklif-gonderildi →
// onaylandi, or to reddedildi from any non-terminal state.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == QuoteStatusRejected {
		return true
	}
	switch s {
	case QuoteStatusPending:
		return next == QuoteStatusReviewing
	case QuoteStatusReviewing:
		return next == QuoteStatusSent
	case QuoteStatusSent:
		return next == QuoteStatusApproved
	}
	return false
}

// PriceBreakdown is the per-component price computed at submission time.
// Values are whole currency units, rounded half-up independently per field.
type PriceBreakdown struct {
	TemelFiyat        int64 `db:"temel_fiyat" json:"temelFiyat"`
	MalzemeFiyat      int64 `db:"malzeme_fiyat" json:"malzemeFiyat"`
	EkOzelliklerFiyat int64 `db:"ek_ozellikler_fiyat" json:"ekOzelliklerFiyat"`
	CekmeceFiyat      int64 `db:"cekmece_fiyat" json:"cekmeceFiyat"`
	ToplamFiyat       int64 `db:"toplam_fiyat" json:"toplamFiyat"`
}

// Quote is a priced customer request, frozen once created. Dimensions are
// stored in meters; the breakdown is locked to the pricing settings in effect
// at submission and never recomputed.
type Quote struct {
	ID           int            `db:"id" json:"id"`
	AdSoyad      string         `db:"ad_soyad" json:"adSoyad"`
	Email        string         `db:"email" json:"email"`
	Telefon      string         `db:"telefon" json:"telefon"`
	Adres        string         `db:"adres" json:"adres"`
	Hizmet       string         `db:"hizmet" json:"hizmet"`
	Genislik     float64        `db:"genislik" json:"genislik"`
	Yukseklik    float64        `db:"yukseklik" json:"yukseklik"`
	Derinlik     float64        `db:"derinlik" json:"derinlik"`
	Malzeme      string         `db:"malzeme" json:"malzeme"`
	EkOzellikler pq.StringArray `db:"ek_ozellikler" json:"ekOzellikler"`
	CekmeceAdedi int            `db:"cekmece_adedi" json:"cekmeceAdedi"`
	Notlar       string         `db:"notlar" json:"notlar"`
	FiyatDetay   PriceBreakdown `db:"fiyat_detay" json:"fiyatDetay"`
	Durum        QuoteStatus    `db:"durum" json:"durum"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updatedAt"`
}

// Alan returns the volume in cubic meters.
func (q *Quote) Alan() float64 {
	return q.Genislik * q.Yukseklik * q.Derinlik
}
