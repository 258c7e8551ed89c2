package catalog

import (
	"sort"
	"strings"

	"storefront/internal/models"
)

type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortName       SortKey = "name"
	SortBestSeller SortKey = "best-seller"
)

// Page is one page of a product listing.
type Page struct {
	Products   []models.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

const (
	defaultPage  = 1
	defaultLimit = 20
)

// MergeProducts appends the buyer-visible products of extra to primary,
// skipping ids primary already holds. Products without an id are never
// treated as duplicates.
func MergeProducts(primary, extra []models.Product) []models.Product {
	out := make([]models.Product, 0, len(primary)+len(extra))
	seen := make(map[string]struct{}, len(primary)+len(extra))

	for _, p := range primary {
		if p.ID != "" {
			seen[p.ID] = struct{}{}
		}
		out = append(out, p)
	}

	for _, p := range extra {
		if !IsBuyerVisible(p) {
			continue
		}
		if p.ID != "" {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
		}
		out = append(out, p)
	}

	return out
}

// MatchesCategory checks every field upstream sources use to reference a
// category. An empty id matches everything.
func MatchesCategory(p models.Product, id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return true
	}
	for _, candidate := range []string{p.Category.ID, p.CategoryID, p.ParentCategory.ID, p.SubCategory.ID, p.SubCategoryID} {
		if candidate != "" && candidate == id {
			return true
		}
	}
	return false
}

// FilterCategory keeps the products matching the category id.
func FilterCategory(products []models.Product, id string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if MatchesCategory(p, id) {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts returns a sorted copy. Unknown keys sort newest first.
// Equal elements keep their input order.
func SortProducts(products []models.Product, key SortKey) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	var less func(a, b models.Product) bool
	switch key {
	case SortPriceLow:
		less = func(a, b models.Product) bool { return ListPrice(a) < ListPrice(b) }
	case SortPriceHigh:
		less = func(a, b models.Product) bool { return ListPrice(a) > ListPrice(b) }
	case SortName:
		less = func(a, b models.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortBestSeller:
		less = func(a, b models.Product) bool { return ratingOf(a) > ratingOf(b) }
	default:
		less = func(a, b models.Product) bool { return createdUnix(a) > createdUnix(b) }
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

// Paginate slices products into a page. Non-positive page or limit fall
// back to 1 and 20.
func Paginate(products []models.Product, page, limit int) Page {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	total := len(products)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := total
	if limit < total-start {
		end = start + limit
	}

	items := make([]models.Product, end-start)
	copy(items, products[start:end])

	return Page{
		Products:   items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

func ratingOf(p models.Product) float64 {
	if p.Rating > 0 {
		return p.Rating
	}
	return p.AverageRating
}

func createdUnix(p models.Product) int64 {
	if !p.CreatedAt.Valid() {
		return 0
	}
	return p.CreatedAt.Time.UnixMilli()
}
