package catalog

import "storefront/internal/models"

// IsBuyerVisible reports whether a product may be shown to storefront
// customers: not deleted by anyone, status active or out_of_stock (or
// unset), and moderation status approved (or unset).
func IsBuyerVisible(p models.Product) bool {
	if p.IsDeleted || p.IsDeletedByAdmin || p.IsDeletedBySeller {
		return false
	}
	if p.Status != "" && p.Status != models.StatusActive && p.Status != models.StatusOutOfStock {
		return false
	}
	if p.ModerationStatus != "" && p.ModerationStatus != models.ModerationApproved {
		return false
	}
	return true
}

// FilterBuyerVisible returns the buyer-visible products in input order.
func FilterBuyerVisible(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if IsBuyerVisible(p) {
			out = append(out, p)
		}
	}
	return out
}
