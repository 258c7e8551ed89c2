package variants

import (
	"reflect"
	"testing"

	"storefront/internal/models"
)

func variant(sku string, stock int, status string, attrs ...string) models.Variant {
	v := models.Variant{SKU: sku, Stock: stock, Status: status}
	for i := 0; i+1 < len(attrs); i += 2 {
		v.Attributes = append(v.Attributes, models.Attribute{Key: attrs[i], Value: attrs[i+1]})
	}
	return v
}

// Red only exists in size S; Green only as an inactive M.
func apparel() []models.Variant {
	return []models.Variant{
		variant("red-s", 3, models.StatusActive, "Color", "Red", "Size", "S"),
		variant("blue-s", 0, models.StatusActive, "Color", "Blue", "Size", "S"),
		variant("blue-m", 4, models.StatusActive, "Color", "Blue", "Size", "M"),
		variant("green-m", 2, models.StatusInactive, "Color", "Green", "Size", "M"),
	}
}

func TestDefaultVariantPrefersInStock(t *testing.T) {
	variants := []models.Variant{
		variant("a", 0, models.StatusActive),
		variant("b", 5, models.StatusActive),
	}
	if got := DefaultVariant(variants); got != &variants[1] {
		t.Fatalf("expected second variant, got %+v", got)
	}
}

func TestDefaultVariantAllOutOfStock(t *testing.T) {
	variants := []models.Variant{
		variant("active", 0, models.StatusActive),
		variant("inactive", 0, models.StatusInactive),
	}
	if got := DefaultVariant(variants); got != &variants[0] {
		t.Fatalf("expected first active variant, got %+v", got)
	}
}

func TestDefaultVariantFallbacks(t *testing.T) {
	inactive := []models.Variant{
		variant("x", 9, models.StatusInactive),
		variant("y", 9, models.StatusInactive),
	}
	if got := DefaultVariant(inactive); got != &inactive[0] {
		t.Fatalf("expected first variant when all inactive, got %+v", got)
	}
	if got := DefaultVariant(nil); got != nil {
		t.Fatalf("expected nil for no variants, got %+v", got)
	}

	// an empty status is not inactive
	unset := []models.Variant{variant("a", 0, ""), variant("b", 1, "")}
	if got := DefaultVariant(unset); got != &unset[1] {
		t.Fatalf("expected in-stock variant without status, got %+v", got)
	}
}

func TestAttributeKeysFirstSeenOrder(t *testing.T) {
	variants := []models.Variant{
		variant("a", 1, "", "Size", "S"),
		variant("b", 1, "", "Size", "M", "Color", "Red"),
		variant("c", 1, "", "Material", "Wool", "Color", "Blue"),
	}
	got := AttributeKeys(variants)
	want := []string{"Size", "Color", "Material"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if keys := AttributeKeys(nil); keys == nil || len(keys) != 0 {
		t.Fatalf("expected empty non-nil keys, got %#v", keys)
	}
}

func TestFindByAttributes(t *testing.T) {
	variants := apparel()

	if got := FindByAttributes(variants, Selection{"Color": "Blue", "Size": "M"}); got != &variants[2] {
		t.Fatalf("expected blue-m, got %+v", got)
	}
	if got := FindByAttributes(variants, Selection{"Color": "Red", "Size": "M"}); got != nil {
		t.Fatalf("expected no match, got %+v", got)
	}
	if got := FindByAttributes(variants, Selection{}); got != nil {
		t.Fatalf("expected nil for empty selection, got %+v", got)
	}
	if got := FindByAttributes(variants, Selection{"Color": "", "Size": ""}); got != nil {
		t.Fatalf("expected nil for blank selection, got %+v", got)
	}
	// partial selection resolves to the first match
	if got := FindByAttributes(variants, Selection{"Size": "S"}); got != &variants[0] {
		t.Fatalf("expected first match, got %+v", got)
	}
}

func TestFindByAttributesRoundTrip(t *testing.T) {
	variants := apparel()
	for i := range variants {
		got := FindByAttributes(variants, SelectionOf(&variants[i]))
		if got != &variants[i] {
			t.Fatalf("variant %s did not round-trip, got %+v", variants[i].SKU, got)
		}
	}
}

func TestMatchingVariants(t *testing.T) {
	variants := apparel()

	all := MatchingVariants(variants, nil)
	if !reflect.DeepEqual(all, variants) {
		t.Fatalf("expected all variants for empty selection")
	}
	all[0].SKU = "changed"
	if variants[0].SKU != "red-s" {
		t.Fatalf("expected a copy, input was modified")
	}

	sizeS := MatchingVariants(variants, Selection{"Size": "S"})
	if len(sizeS) != 2 || sizeS[0].SKU != "red-s" || sizeS[1].SKU != "blue-s" {
		t.Fatalf("unexpected matches for size S: %+v", sizeS)
	}

	if none := MatchingVariants(variants, Selection{"Color": "Pink"}); none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
}

func TestIsOptionDisabled(t *testing.T) {
	variants := apparel()

	cases := []struct {
		name  string
		key   string
		value string
		sel   Selection
		want  bool
	}{
		{"no combination", "Size", "M", Selection{"Color": "Red"}, true},
		{"available", "Size", "S", Selection{"Color": "Red"}, false},
		{"out of stock", "Size", "S", Selection{"Color": "Blue"}, true},
		{"all inactive", "Color", "Green", Selection{}, true},
		{"some in stock", "Color", "Blue", Selection{}, false},
		{"replaces current value", "Color", "Blue", Selection{"Color": "Red", "Size": "M"}, false},
		{"unknown value", "Color", "Pink", nil, true},
	}

	for _, tc := range cases {
		if got := IsOptionDisabled(variants, tc.key, tc.value, tc.sel); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestIsOptionDisabledDoesNotMutateSelection(t *testing.T) {
	sel := Selection{"Color": "Red"}
	IsOptionDisabled(apparel(), "Size", "M", sel)
	if len(sel) != 1 || sel["Color"] != "Red" {
		t.Fatalf("selection was modified: %v", sel)
	}
}

func TestGalleryImages(t *testing.T) {
	product := []string{"a.jpg"}

	if got := GalleryImages(&models.Variant{Images: models.StringList{}}, product); !reflect.DeepEqual(got, product) {
		t.Fatalf("expected product images, got %v", got)
	}
	got := GalleryImages(&models.Variant{Images: models.StringList{"b.jpg"}}, product)
	if !reflect.DeepEqual(got, []string{"b.jpg"}) {
		t.Fatalf("expected variant images, got %v", got)
	}
	if got := GalleryImages(nil, product); !reflect.DeepEqual(got, product) {
		t.Fatalf("expected product images without a variant, got %v", got)
	}
	if got := GalleryImages(nil, nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty gallery, got %#v", got)
	}
}

func TestInStock(t *testing.T) {
	cases := []struct {
		name string
		v    *models.Variant
		want bool
	}{
		{"nil", nil, false},
		{"active with stock", &models.Variant{Stock: 2, Status: models.StatusActive}, true},
		{"no status with stock", &models.Variant{Stock: 2}, true},
		{"inactive with stock", &models.Variant{Stock: 2, Status: models.StatusInactive}, false},
		{"active without stock", &models.Variant{Stock: 0, Status: models.StatusActive}, false},
	}
	for _, tc := range cases {
		if got := InStock(tc.v); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
