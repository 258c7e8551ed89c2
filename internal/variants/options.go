package variants

import (
	"regexp"
	"strings"

	"storefront/internal/models"
)

type Availability string

const (
	Available   Availability = "available"
	OutOfStock  Availability = "outOfStock"
	Unavailable Availability = "unavailable"
)

// Option is one selectable value of an attribute as seen from the current
// selection.
type Option struct {
	Value        string          `json:"value"`
	Availability Availability    `json:"availability"`
	Disabled     bool            `json:"disabled"`
	Selected     bool            `json:"selected"`
	Stock        int             `json:"stock"`
	Swatch       bool            `json:"swatch"`
	Variant      *models.Variant `json:"variant,omitempty"`
}

var (
	hexColor   = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	colorNames = map[string]struct{}{
		"black": {}, "silver": {}, "gray": {}, "white": {}, "maroon": {}, "red": {},
		"purple": {}, "fuchsia": {}, "green": {}, "lime": {}, "olive": {}, "yellow": {},
		"navy": {}, "blue": {}, "teal": {}, "aqua": {}, "orange": {},
	}
)

// IsColorAttribute reports whether key names a color dimension.
func IsColorAttribute(key string) bool {
	return strings.Contains(strings.ToLower(key), "color")
}

// IsColorValue reports whether value is a basic color name or hex code.
func IsColorValue(value string) bool {
	if _, ok := colorNames[strings.ToLower(value)]; ok {
		return true
	}
	return hexColor.MatchString(value)
}

// AttributeValues lists the distinct values of key in first-seen order.
func AttributeValues(variants []models.Variant, key string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, v := range variants {
		value, ok := v.Value(key)
		if !ok || value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	return values
}

// AvailableOptions describes every value of key as if it were chosen on top
// of sel. When that choice completes the selection, the exact variant is
// attached.
func AvailableOptions(variants []models.Variant, key string, sel Selection) []Option {
	keys := AttributeKeys(variants)
	values := AttributeValues(variants, key)
	options := make([]Option, 0, len(values))

	for _, value := range values {
		potential := sel.With(key, value)
		matching := MatchingVariants(variants, potential)

		opt := Option{
			Value:        value,
			Availability: Unavailable,
			Selected:     sel[key] == value,
			Swatch:       IsColorAttribute(key) || IsColorValue(value),
		}

		switch {
		case len(matching) == 0:
		case complete(keys, potential):
			exact := FindByAttributes(variants, potential)
			opt.Variant = exact
			if exact != nil && !isInactive(*exact) {
				opt.Stock = exact.Stock
				opt.Availability = OutOfStock
				if exact.Stock > 0 {
					opt.Availability = Available
				}
			}
		default:
			for _, v := range matching {
				if isInactive(v) {
					continue
				}
				if v.Stock > 0 {
					opt.Availability = Available
					opt.Stock = v.Stock
					break
				}
				opt.Availability = OutOfStock
			}
		}

		opt.Disabled = IsOptionDisabled(variants, key, value, sel) || opt.Availability == OutOfStock
		options = append(options, opt)
	}

	return options
}

func complete(keys []string, sel Selection) bool {
	if len(keys) == 0 {
		return false
	}
	for _, key := range keys {
		if sel[key] == "" {
			return false
		}
	}
	return true
}
