package catalog

import (
	"testing"
	"time"

	"storefront/internal/models"
)

func TestDisplayPricePrefersVariantThenDefaultPrice(t *testing.T) {
	p := models.Product{Price: 50, DefaultPrice: 45, MinPrice: 40}

	if got, ok := DisplayPrice(p, &models.Variant{Price: 30}); !ok || got != 30 {
		t.Fatalf("expected variant price 30, got %v (%v)", got, ok)
	}
	if got, ok := DisplayPrice(p, nil); !ok || got != 45 {
		t.Fatalf("expected default price 45, got %v (%v)", got, ok)
	}
	if got, ok := DisplayPrice(models.Product{MinPrice: 12}, nil); !ok || got != 12 {
		t.Fatalf("expected min price 12, got %v (%v)", got, ok)
	}
	if _, ok := DisplayPrice(models.Product{}, nil); ok {
		t.Fatal("expected no display price for a product without prices")
	}
}

func TestDiscountPercentage(t *testing.T) {
	tests := []struct {
		original, current, want float64
	}{
		{100, 75, 25},
		{3, 2, 33},
		{8, 7, 13},
		{200, 199, 1},
		{100, 100, 0},
		{100, 120, 0},
		{0, 10, 0},
		{100, 0, 0},
	}
	for _, tt := range tests {
		if got := DiscountPercentage(tt.original, tt.current); got != tt.want {
			t.Fatalf("DiscountPercentage(%v, %v) = %v, want %v", tt.original, tt.current, got, tt.want)
		}
	}
}

func TestHasDiscount(t *testing.T) {
	onSale := false
	if HasDiscount(models.Product{OriginalPrice: 100, Price: 50, IsOnSale: &onSale}, nil) {
		t.Fatal("explicit isOnSale=false must win")
	}
	if !HasDiscount(models.Product{OriginalPrice: 100, Price: 80}, nil) {
		t.Fatal("expected discount when price is below original price")
	}
	if HasDiscount(models.Product{Price: 80}, nil) {
		t.Fatal("expected no discount without an original price above the current price")
	}
	if !HasDiscount(models.Product{DefaultPrice: 80}, &models.Variant{Price: 60}) {
		t.Fatal("expected variant price below default price to count as a discount")
	}
}

func TestProductDiscountPercentagePrefersSalePercentage(t *testing.T) {
	pct := 15.0
	if got := ProductDiscountPercentage(models.Product{OriginalPrice: 100, Price: 50, SalePercentage: &pct}, nil); got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}
	if got := ProductDiscountPercentage(models.Product{OriginalPrice: 100, Price: 50}, nil); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestGalleryImagesFallsBackToCover(t *testing.T) {
	if got := GalleryImages(models.Product{Images: models.StringList{"a.jpg"}, ImageCover: "cover.jpg"}); len(got) != 1 || got[0] != "a.jpg" {
		t.Fatalf("expected product images, got %v", got)
	}
	if got := GalleryImages(models.Product{ImageCover: "cover.jpg"}); len(got) != 1 || got[0] != "cover.jpg" {
		t.Fatalf("expected cover image, got %v", got)
	}
	if got := GalleryImages(models.Product{}); got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
}

func TestTotalStock(t *testing.T) {
	explicit := 7
	if got := TotalStock(models.Product{TotalStock: &explicit, Variants: []models.Variant{{Stock: 1}}}); got != 7 {
		t.Fatalf("expected precomputed total 7, got %d", got)
	}
	if got := TotalStock(models.Product{Variants: []models.Variant{{Stock: 2}, {Stock: 3}}}); got != 5 {
		t.Fatalf("expected summed total 5, got %d", got)
	}
}

func TestIsNew(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	recent := models.Product{CreatedAt: models.At(now.Add(-48 * time.Hour))}
	old := models.Product{CreatedAt: models.At(now.Add(-30 * 24 * time.Hour))}

	if !IsNew(recent, now, 7) {
		t.Fatal("expected product created two days ago to be new")
	}
	if IsNew(old, now, 7) {
		t.Fatal("expected product created a month ago not to be new")
	}
	if IsNew(models.Product{}, now, 7) {
		t.Fatal("expected product without createdAt not to be new")
	}
}

func TestIsTrending(t *testing.T) {
	if !IsTrending(models.Product{TotalSold: 51}, 50) {
		t.Fatal("expected sales above the threshold to trend")
	}
	if IsTrending(models.Product{TotalSold: 50}, 50) {
		t.Fatal("expected sales equal to the threshold not to trend")
	}
	if IsTrending(models.Product{}, 50) {
		t.Fatal("expected product without sales not to trend")
	}
}

func TestHasPriceRange(t *testing.T) {
	cases := []struct {
		min, max float64
		want     bool
	}{
		{10, 20, true},
		{20, 20, false},
		{0, 20, false},
		{10, 0, false},
	}
	for _, tc := range cases {
		got := HasPriceRange(models.Product{MinPrice: tc.min, MaxPrice: tc.max})
		if got != tc.want {
			t.Fatalf("min=%v max=%v: expected %v, got %v", tc.min, tc.max, tc.want, got)
		}
	}
}
