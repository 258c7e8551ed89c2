package variants

import (
	"strings"

	"storefront/internal/models"
)

// State is the progress of a product-detail selection.
type State string

const (
	NoSelection      State = "none"
	PartialSelection State = "partial"
	FullSelection    State = "full"
)

// SelectionOf returns the attributes of v as a selection.
func SelectionOf(v *models.Variant) Selection {
	sel := make(Selection)
	if v == nil {
		return sel
	}
	for _, attr := range v.Attributes {
		if attr.Key == "" {
			continue
		}
		sel[attr.Key] = attr.Value
	}
	return sel
}

// MissingAttributes lists the attribute keys the selection has not filled,
// in AttributeKeys order.
func MissingAttributes(variants []models.Variant, sel Selection) []string {
	missing := make([]string, 0)
	for _, key := range AttributeKeys(variants) {
		if sel[key] == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// AllSelected reports whether every attribute key has a value. Products
// without attributes never count as fully selected.
func AllSelected(variants []models.Variant, sel Selection) bool {
	return complete(AttributeKeys(variants), sel)
}

// Summary renders the selection as "Color: Red / Size: M" in keys order.
func Summary(sel Selection, keys []string) string {
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if value := sel[key]; value != "" {
			parts = append(parts, key+": "+value)
		}
	}
	return strings.Join(parts, " / ")
}

// StateOf classifies the selection against the product's attribute keys.
func StateOf(variants []models.Variant, sel Selection) State {
	keys := AttributeKeys(variants)
	filled := 0
	for _, key := range keys {
		if sel[key] != "" {
			filled++
		}
	}
	switch {
	case filled == 0:
		return NoSelection
	case filled == len(keys):
		return FullSelection
	default:
		return PartialSelection
	}
}

// Resolution is everything a product page needs after an attribute click.
type Resolution struct {
	State     State           `json:"state"`
	Selection Selection       `json:"selection"`
	Variant   *models.Variant `json:"variant"`
	InStock   bool            `json:"inStock"`
	Missing   []string        `json:"missing"`
	Summary   string          `json:"summary"`
	Gallery   []string        `json:"gallery"`
}

// Resolve evaluates sel without changing it. Variant is only set once the
// selection is full and a variant carries it.
func Resolve(variants []models.Variant, sel Selection, productImages []string) Resolution {
	state := StateOf(variants, sel)

	var resolved *models.Variant
	if state == FullSelection {
		resolved = FindByAttributes(variants, sel)
	}

	return Resolution{
		State:     state,
		Selection: sel,
		Variant:   resolved,
		InStock:   InStock(resolved),
		Missing:   MissingAttributes(variants, sel),
		Summary:   Summary(sel, AttributeKeys(variants)),
		Gallery:   GalleryImages(resolved, productImages),
	}
}
