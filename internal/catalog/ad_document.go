package catalog

import (
	"encoding/json"

	"storefront/internal/models"
)

// NormalizeAdDocument applies the product coercion rules to an ad record.
func NormalizeAdDocument(doc map[string]any) (models.Ad, bool) {
	raw, _ := plainValue(doc).(map[string]any)
	if raw == nil {
		return models.Ad{}, false
	}

	normalizeID(raw)
	coerceFloat(raw, "discountPercent")
	coerceBool(raw, "active")
	for _, key := range []string{"title", "type", "imageUrl", "link"} {
		coerceString(raw, key)
	}
	coerceDate(raw, "startDate")
	coerceDate(raw, "endDate")

	data, err := json.Marshal(raw)
	if err != nil {
		return models.Ad{}, false
	}

	var ad models.Ad
	if err := json.Unmarshal(data, &ad); err != nil {
		return models.Ad{}, false
	}
	return ad, true
}
