// Package variants resolves variant selection for multi-attribute products:
// default selection, attribute discovery, matching, option disabling and
// gallery sync. All functions are pure; the caller owns the selection.
package variants

import "storefront/internal/models"

// Selection maps attribute keys to the chosen value. Empty values count as
// "not selected".
type Selection map[string]string

// With returns a copy of s with key set to value.
func (s Selection) With(key, value string) Selection {
	out := make(Selection, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[key] = value
	return out
}

func (s Selection) entries() []models.Attribute {
	out := make([]models.Attribute, 0, len(s))
	for key, value := range s {
		if value != "" {
			out = append(out, models.Attribute{Key: key, Value: value})
		}
	}
	return out
}

func matches(v models.Variant, entries []models.Attribute) bool {
	for _, entry := range entries {
		if !v.Has(entry.Key, entry.Value) {
			return false
		}
	}
	return true
}

func isInactive(v models.Variant) bool {
	return v.Status == models.StatusInactive
}

// DefaultVariant picks the initial selection: the first in-stock active
// variant, else the first active one, else the first one.
func DefaultVariant(variants []models.Variant) *models.Variant {
	for i := range variants {
		if variants[i].Stock > 0 && !isInactive(variants[i]) {
			return &variants[i]
		}
	}
	for i := range variants {
		if !isInactive(variants[i]) {
			return &variants[i]
		}
	}
	if len(variants) > 0 {
		return &variants[0]
	}
	return nil
}

// AttributeKeys lists the distinct attribute keys in first-seen order.
func AttributeKeys(variants []models.Variant) []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, v := range variants {
		for _, attr := range v.Attributes {
			if attr.Key == "" {
				continue
			}
			if _, ok := seen[attr.Key]; ok {
				continue
			}
			seen[attr.Key] = struct{}{}
			keys = append(keys, attr.Key)
		}
	}
	return keys
}

// FindByAttributes returns the first variant carrying every selected
// key/value pair, or nil when nothing is selected or nothing matches.
func FindByAttributes(variants []models.Variant, sel Selection) *models.Variant {
	entries := sel.entries()
	if len(entries) == 0 {
		return nil
	}
	for i := range variants {
		if matches(variants[i], entries) {
			return &variants[i]
		}
	}
	return nil
}

// MatchingVariants returns every variant consistent with a possibly partial
// selection. An empty selection matches all variants.
func MatchingVariants(variants []models.Variant, sel Selection) []models.Variant {
	entries := sel.entries()
	out := make([]models.Variant, 0, len(variants))
	for _, v := range variants {
		if matches(v, entries) {
			out = append(out, v)
		}
	}
	return out
}

// IsOptionDisabled simulates choosing value for key on top of sel. The
// option is disabled when no variant matches, or every match is inactive,
// or every match is out of stock.
func IsOptionDisabled(variants []models.Variant, key, value string, sel Selection) bool {
	matching := MatchingVariants(variants, sel.With(key, value))
	if len(matching) == 0 {
		return true
	}

	allInactive, allOutOfStock := true, true
	for _, v := range matching {
		if !isInactive(v) {
			allInactive = false
		}
		if v.Stock > 0 {
			allOutOfStock = false
		}
	}
	return allInactive || allOutOfStock
}

// GalleryImages returns the selected variant's own images, or the product
// images when the variant has none.
func GalleryImages(selected *models.Variant, productImages []string) []string {
	if selected != nil && len(selected.Images) > 0 {
		return []string(selected.Images)
	}
	if productImages == nil {
		return []string{}
	}
	return productImages
}

// InStock reports whether v can be added to the cart.
func InStock(v *models.Variant) bool {
	return v != nil && !isInactive(*v) && v.Stock > 0
}
