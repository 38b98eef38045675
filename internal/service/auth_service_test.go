package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterRequest(t *testing.T) {
	valid := RegisterRequest{
		KullaniciAdi: "ahmet_42",
		Sifre:        "gizli-sifre",
		AdSoyad:      "Ahmet Kaya",
		Email:        "ahmet@example.com",
	}
	assert.Empty(t, validateRegisterRequest(valid))

	cases := []struct {
		name   string
		mutate func(*RegisterRequest)
		field  string
	}{
		{"short username", func(r *RegisterRequest) { r.KullaniciAdi = "ab" }, "kullaniciAdi"},
		{"username with spaces", func(r *RegisterRequest) { r.KullaniciAdi = "ahmet kaya" }, "kullaniciAdi"},
		{"short password", func(r *RegisterRequest) { r.Sifre = "12345" }, "sifre"},
		{"short name", func(r *RegisterRequest) { r.AdSoyad = "A" }, "adSoyad"},
		{"invalid email", func(r *RegisterRequest) { r.Email = "ahmet@" }, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			errs := validateRegisterRequest(req)
			assert.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
		})
	}
}

func TestValidateRegisterRequestCollectsAllViolations(t *testing.T) {
	errs := validateRegisterRequest(RegisterRequest{})
	assert.Len(t, errs, 4)
}
