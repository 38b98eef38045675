package pricing

import (
	"regexp"
	"strings"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Dimension bounds in meters, after cm→m conversion.
const (
	MinDimensionM = 0.1
	MaxDimensionM = 50.0
	MaxDrawers    = 20
)

// ValidateAndNormalize checks every structural and range constraint of a raw
// quote request and returns its canonical form. All violations are collected;
// the normalized quote is only meaningful when the returned list is empty.
func ValidateAndNormalize(raw RawRequest) (NormalizedQuote, utils.ValidationErrors) {
	var errs utils.ValidationErrors
	var q NormalizedQuote

	q.AdSoyad = strings.TrimSpace(raw.AdSoyad)
	if l := len([]rune(q.AdSoyad)); l < 2 {
		errs = errs.Add("adSoyad", "Ad soyad en az 2 karakter olmalıdır")
	} else if l > 100 {
		errs = errs.Add("adSoyad", "Ad soyad en fazla 100 karakter olabilir")
	}

	q.Email = strings.ToLower(strings.TrimSpace(raw.Email))
	if !emailPattern.MatchString(q.Email) {
		errs = errs.Add("email", "Geçerli bir email adresi giriniz")
	}

	q.Telefon = NormalizePhone(raw.Telefon)
	if len(q.Telefon) != 10 {
		errs = errs.Add("telefon", "Geçerli bir telefon numarası giriniz (10 haneli)")
	}

	q.Adres = strings.TrimSpace(raw.Adres)
	if q.Adres == "" {
		errs = errs.Add("adres", "Adres zorunludur")
	} else if len([]rune(q.Adres)) > 500 {
		errs = errs.Add("adres", "Adres en fazla 500 karakter olabilir")
	}

	if slug, ok := NormalizeService(raw.Hizmet); ok {
		q.Hizmet = slug
	} else {
		errs = errs.Add("hizmet", "Geçerli bir hizmet türü değil")
	}

	q.Genislik, errs = dimension(raw.Genislik, "genislik", "Genişlik", errs)
	q.Yukseklik, errs = dimension(raw.Yukseklik, "yukseklik", "Yükseklik", errs)
	q.Derinlik, errs = dimension(raw.Derinlik, "derinlik", "Derinlik", errs)

	q.Malzeme = NormalizeMaterial(raw.Malzeme)
	if q.Malzeme != models.MaterialSunta && q.Malzeme != models.MaterialMDF {
		errs = errs.Add("malzeme", "Geçerli bir malzeme türü değil")
	}

	q.EkOzellikler = []string{}
	for _, oz := range raw.EkOzellikler {
		oz = strings.ToLower(strings.TrimSpace(oz))
		if oz != models.AddOnCNC && oz != models.AddOnAyna {
			errs = errs.Add("ekOzellikler", "Geçersiz ek özellik. Sadece cnc ve ayna seçilebilir")
			continue
		}
		q.EkOzellikler = append(q.EkOzellikler, oz)
	}

	switch {
	case !raw.CekmeceAdedi.Set:
		q.CekmeceAdedi = 0
	case !raw.CekmeceAdedi.Valid:
		errs = errs.Add("cekmeceAdedi", "Çekmece adedi sayısal olmalıdır")
	case raw.CekmeceAdedi.Value != float64(int(raw.CekmeceAdedi.Value)):
		errs = errs.Add("cekmeceAdedi", "Çekmece adedi tam sayı olmalıdır")
	case raw.CekmeceAdedi.Value < 0:
		errs = errs.Add("cekmeceAdedi", "Çekmece adedi 0'dan küçük olamaz")
	case raw.CekmeceAdedi.Value > MaxDrawers:
		errs = errs.Add("cekmeceAdedi", "Çekmece adedi en fazla 20 olabilir")
	default:
		q.CekmeceAdedi = int(raw.CekmeceAdedi.Value)
	}

	q.Notlar = strings.TrimSpace(raw.Notlar)
	if len([]rune(q.Notlar)) > 1000 {
		errs = errs.Add("notlar", "Notlar en fazla 1000 karakter olabilir")
	}

	return q, errs
}

// dimension validates one centimeter measurement and converts it to meters.
func dimension(n Number, field, label string, errs utils.ValidationErrors) (float64, utils.ValidationErrors) {
	if !n.Set {
		return 0, errs.Add(field, label+" zorunludur")
	}
	if !n.Valid {
		return 0, errs.Add(field, label+" sayısal olmalıdır")
	}
	m := CmToMeters(n.Value)
	if m < MinDimensionM {
		return 0, errs.Add(field, label+" en az 0.1 metre olmalıdır")
	}
	if m > MaxDimensionM {
		return 0, errs.Add(field, label+" en fazla 50 metre olabilir")
	}
	return m, errs
}
