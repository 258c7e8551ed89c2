package deals

import (
	"math"
	"strings"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

// Deal is the merchandised deal of the day and its countdown target.
type Deal struct {
	Product *models.Product `json:"product"`
	EndDate time.Time       `json:"endDate"`
}

const targetHoursToExpiry = 24.0

// EndOfDay returns 23:59:59.999 of now's calendar day in now's location.
func EndOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), now.Location())
}

// IsEligible reports whether a product takes part in a promotion.
func IsEligible(p models.Product) bool {
	return strings.TrimSpace(p.PromotionKey) != ""
}

// PromotionEndDate returns availability.endDate when present, otherwise
// promotionEndDate. A present but unparseable value yields ok=false.
func PromotionEndDate(p models.Product) (time.Time, bool) {
	end := p.PromotionEndDate
	if p.Availability != nil && p.Availability.EndDate.Present {
		end = p.Availability.EndDate
	}
	if !end.Valid() {
		return time.Time{}, false
	}
	return end.Time, true
}

// SelectDealOfTheDay picks at most one promotion product.
//
// Among eligible products whose promotion ends strictly after now, the one
// expiring closest to 24 hours from now wins and its end date is the
// countdown target. Without such a product the cheapest eligible product
// wins and the countdown runs to the end of now's day. Ties keep input order.
func SelectDealOfTheDay(products []models.Product, now time.Time) Deal {
	endOfDay := EndOfDay(now)

	eligible := make([]int, 0, len(products))
	for i, p := range products {
		if IsEligible(p) {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return Deal{EndDate: endOfDay}
	}

	best := -1
	var bestDiff float64
	var bestEnd time.Time
	for _, i := range eligible {
		end, ok := PromotionEndDate(products[i])
		if !ok {
			continue
		}
		hours := end.Sub(now).Hours()
		if hours <= 0 {
			continue
		}
		diff := math.Abs(hours - targetHoursToExpiry)
		if best < 0 || diff < bestDiff {
			best, bestDiff, bestEnd = i, diff, end
		}
	}
	if best >= 0 {
		product := products[best]
		return Deal{Product: &product, EndDate: bestEnd}
	}

	cheapest := eligible[0]
	cheapestPrice := priceOrInf(products[cheapest])
	for _, i := range eligible[1:] {
		if price := priceOrInf(products[i]); price < cheapestPrice {
			cheapest, cheapestPrice = i, price
		}
	}

	product := products[cheapest]
	return Deal{Product: &product, EndDate: endOfDay}
}

func priceOrInf(p models.Product) float64 {
	if price, ok := catalog.DisplayPrice(p, nil); ok {
		return price
	}
	return math.Inf(1)
}
