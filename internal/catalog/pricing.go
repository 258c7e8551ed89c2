package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/models"
)

var hundred = decimal.NewFromInt(100)

func firstPositive(values ...float64) (float64, bool) {
	for _, v := range values {
		if v > 0 {
			return v, true
		}
	}
	return 0, false
}

// DisplayPrice is the price a buyer sees: the variant price, then the
// product's defaultPrice, price and minPrice. ok is false when none is set.
func DisplayPrice(p models.Product, v *models.Variant) (float64, bool) {
	variantPrice := 0.0
	if v != nil {
		variantPrice = v.Price
	}
	return firstPositive(variantPrice, p.DefaultPrice, p.Price, p.MinPrice)
}

// OriginalPrice is the pre-discount price of a product, or 0.
func OriginalPrice(p models.Product) float64 {
	price, _ := firstPositive(p.OriginalPrice, p.DefaultPrice, p.Price, p.MinPrice)
	return price
}

// ListPrice is the price listings sort and filter on.
func ListPrice(p models.Product) float64 {
	price, _ := firstPositive(p.Price, p.DefaultPrice, p.MinPrice)
	return price
}

// DiscountPercentage returns the whole-number discount from original to
// current, rounded half up. Invalid or non-discounted pairs yield 0.
func DiscountPercentage(original, current float64) float64 {
	if original <= 0 || current <= 0 || current >= original {
		return 0
	}
	orig := decimal.NewFromFloat(original)
	pct := orig.Sub(decimal.NewFromFloat(current)).Div(orig).Mul(hundred).Round(0)
	return pct.InexactFloat64()
}

// HasDiscount reports whether the product (optionally at a variant) sells
// below its original price. An explicit isOnSale flag wins.
func HasDiscount(p models.Product, v *models.Variant) bool {
	if p.IsOnSale != nil {
		return *p.IsOnSale
	}
	current, _ := DisplayPrice(p, v)
	original := OriginalPrice(p)
	return original > 0 && current < original
}

// ProductDiscountPercentage prefers the precomputed salePercentage.
func ProductDiscountPercentage(p models.Product, v *models.Variant) float64 {
	if p.SalePercentage != nil {
		return *p.SalePercentage
	}
	current, _ := DisplayPrice(p, v)
	return DiscountPercentage(OriginalPrice(p), current)
}

// GalleryImages returns the product images, falling back to the cover image.
func GalleryImages(p models.Product) []string {
	if len(p.Images) > 0 {
		return []string(p.Images)
	}
	if p.ImageCover != "" {
		return []string{p.ImageCover}
	}
	return []string{}
}

// TotalStock prefers the precomputed totalStock, then sums variant stock.
func TotalStock(p models.Product) int {
	if p.TotalStock != nil {
		return *p.TotalStock
	}
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}

func HasPriceRange(p models.Product) bool {
	return p.MinPrice > 0 && p.MaxPrice > 0 && p.MinPrice != p.MaxPrice
}

func IsTrending(p models.Product, threshold int) bool {
	return p.TotalSold > threshold
}

// IsNew reports whether the product was created less than days before now.
func IsNew(p models.Product, now time.Time, days int) bool {
	if !p.CreatedAt.Valid() {
		return false
	}
	return now.Sub(p.CreatedAt.Time) < time.Duration(days)*24*time.Hour
}
