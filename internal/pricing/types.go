package pricing

import (
	"strconv"
	"strings"
)

// Number is a JSON field that accepts either a number or a decimal string.
// The intake form historically sent dimensions as strings, so both forms must
// parse. A present-but-unparsable value is recorded rather than failing the
// bind, so validation can report it as a field error alongside the others.
type Number struct {
	Value float64
	Valid bool // parsed successfully
	Set   bool // present in the payload
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	n.Set = true
	s := strings.TrimSpace(string(b))
	if s == "null" {
		n.Set = false
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n.Value = f
	n.Valid = true
	return nil
}

// RawRequest is the quote payload exactly as the client sends it: dimensions
// in centimeters, service and material as display labels, phone unformatted.
type RawRequest struct {
	AdSoyad      string   `json:"adSoyad"`
	Email        string   `json:"email"`
	Telefon      string   `json:"telefon"`
	Adres        string   `json:"adres"`
	Hizmet       string   `json:"hizmet"`
	Genislik     Number   `json:"genislik"`
	Yukseklik    Number   `json:"yukseklik"`
	Derinlik     Number   `json:"derinlik"`
	Malzeme      string   `json:"malzeme"`
	EkOzellikler []string `json:"ekOzellikler"`
	CekmeceAdedi Number   `json:"cekmeceAdedi"`
	Notlar       string   `json:"notlar"`
}

// NormalizedQuote is the canonical form fed to the engine: meters, slugs,
// ten-digit phone. Produced only by ValidateAndNormalize.
type NormalizedQuote struct {
	AdSoyad      string
	Email        string
	Telefon      string
	Adres        string
	Hizmet       string
	Genislik     float64
	Yukseklik    float64
	Derinlik     float64
	Malzeme      string
	EkOzellikler []string
	CekmeceAdedi int
	Notlar       string
}
