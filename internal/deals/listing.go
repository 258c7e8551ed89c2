package deals

import (
	"sort"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

const (
	SortDefault      = "default"
	SortDiscountHigh = "discount-high"
)

// Query narrows and orders a deals listing.
type Query struct {
	Sort     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	Limit    int
}

// ListDeals returns the discounted products matching q. The default order is
// highest discount first.
func ListDeals(products []models.Product, q Query) catalog.Page {
	discounted := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !catalog.HasDiscount(p, nil) || !catalog.MatchesCategory(p, q.Category) {
			continue
		}
		price := catalog.ListPrice(p)
		if q.MinPrice != nil && price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && price > *q.MaxPrice {
			continue
		}
		discounted = append(discounted, p)
	}

	var sorted []models.Product
	switch catalog.SortKey(q.Sort) {
	case catalog.SortPriceLow, catalog.SortPriceHigh:
		sorted = catalog.SortProducts(discounted, catalog.SortKey(q.Sort))
	default:
		sorted = discounted
		sort.SliceStable(sorted, func(i, j int) bool {
			return catalog.ProductDiscountPercentage(sorted[i], nil) > catalog.ProductDiscountPercentage(sorted[j], nil)
		})
	}

	return catalog.Paginate(sorted, q.Page, q.Limit)
}
