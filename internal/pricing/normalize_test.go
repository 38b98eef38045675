package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+90 (555) 123-45-67", "5551234567"},
		{"05551234567", "5551234567"},
		{"5551234567", "5551234567"},
		{"555 123", "555123"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizePhone(c.in), "input=%q", c.in)
	}
}

func TestNormalizeService(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Mutfak Dolabı", "mutfak", true},
		{"Mutfak", "mutfak", true},
		{"TV Ünitesi", "tv", true},
		{"TV", "tv", true},
		{"Gardirop", "gardirop", true},
		{"Vestiyer", "vestiyer", true},
		{"mutfak", "mutfak", true},
		{"GARDIROP", "gardirop", true},
		{"Banyo Dolabı", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeService(c.in)
		assert.Equal(t, c.ok, ok, "input=%q", c.in)
		assert.Equal(t, c.want, got, "input=%q", c.in)
	}
}

func TestNormalizeMaterial(t *testing.T) {
	assert.Equal(t, "mdf", NormalizeMaterial("MDF"))
	assert.Equal(t, "sunta", NormalizeMaterial(" Sunta "))
}

func TestCmToMeters(t *testing.T) {
	assert.InDelta(t, 2.0, CmToMeters(200), 1e-9)
	assert.InDelta(t, 0.05, CmToMeters(5), 1e-9)
}

func TestNumberUnmarshalAcceptsStringAndNumber(t *testing.T) {
	var payload struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
	}
	err := json.Unmarshal([]byte(`{"a": 200, "b": "80.5", "c": "abc"}`), &payload)
	assert.NoError(t, err)

	assert.True(t, payload.A.Valid)
	assert.InDelta(t, 200.0, payload.A.Value, 1e-9)
	assert.True(t, payload.B.Valid)
	assert.InDelta(t, 80.5, payload.B.Value, 1e-9)
	assert.True(t, payload.C.Set)
	assert.False(t, payload.C.Valid)
}
