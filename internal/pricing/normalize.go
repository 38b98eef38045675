package pricing

import (
	"strings"

	"github.com/atolyemobilya/mobilya-api/internal/models"
)

// serviceLabels maps the display labels the frontend sends to canonical slugs.
var serviceLabels = map[string]string{
	"Mutfak Dolabı": models.ServiceMutfak,
	"Mutfak":        models.ServiceMutfak,
	"Gardirop":      models.ServiceGardirop,
	"Vestiyer":      models.ServiceVestiyer,
	"TV Ünitesi":    models.ServiceTV,
	"TV":            models.ServiceTV,
}

// NormalizeService resolves a service label or slug to its canonical slug.
// Labels match case-sensitively against the fixed table; anything else is
// accepted only if it already lowercases to a known slug. Unrecognized values
// are rejected rather than passed through.
func NormalizeService(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if slug, ok := serviceLabels[raw]; ok {
		return slug, true
	}
	slug := strings.ToLower(raw)
	switch slug {
	case models.ServiceMutfak, models.ServiceGardirop, models.ServiceVestiyer, models.ServiceTV:
		return slug, true
	}
	return "", false
}

// NormalizeMaterial lowercases a material value; no label table beyond case
// folding.
func NormalizeMaterial(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizePhone strips every non-digit character and keeps at most the last
// ten digits. Shorter inputs come back shorter; validation rejects them.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits
}

// CmToMeters converts a centimeter measurement to meters. The intake boundary
// always receives centimeters and converts exactly once.
func CmToMeters(cm float64) float64 {
	return cm / 100
}
