// Package ads normalizes merchandising ads and derives the home page
// placements from them.
package ads

import (
	"encoding/json"
	"net/url"
	"regexp"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

// Groups buckets ads by placement type.
type Groups map[string][]models.Ad

var offersPath = regexp.MustCompile(`(?i)/offers/([^/?#]+)`)

// NormalizeAds accepts a bare array, {"ads": [...]} or {"data": {"ads": [...]}}.
// Any other shape yields no ads.
func NormalizeAds(raw []byte) []models.Ad {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil && list != nil {
		return decodeAds(list)
	}

	var envelope struct {
		Ads  json.RawMessage `json:"ads"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return []models.Ad{}
	}
	if err := json.Unmarshal(envelope.Ads, &list); err == nil && list != nil {
		return decodeAds(list)
	}

	var data struct {
		Ads json.RawMessage `json:"ads"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err == nil {
		if err := json.Unmarshal(data.Ads, &list); err == nil && list != nil {
			return decodeAds(list)
		}
	}
	return []models.Ad{}
}

func decodeAds(list []json.RawMessage) []models.Ad {
	out := make([]models.Ad, 0, len(list))
	for _, raw := range list {
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
			continue
		}
		if ad, ok := catalog.NormalizeAdDocument(doc); ok {
			out = append(out, ad)
		}
	}
	return out
}

// PromotionKeyFromLink extracts <key> from links like /offers/<key> or
// https://shop.example/offers/<key>?ref=home.
func PromotionKeyFromLink(link string) string {
	if link == "" {
		return ""
	}
	path := link
	if u, err := url.Parse(link); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		path = u.Path
	}
	match := offersPath.FindStringSubmatch(path)
	if match == nil {
		return ""
	}
	return match[1]
}

// PromotionDiscounts maps each promotion key to the highest positive
// discount among the ads linking to it.
func PromotionDiscounts(ads []models.Ad) map[string]float64 {
	discounts := make(map[string]float64)
	for _, ad := range ads {
		if ad.DiscountPercent <= 0 {
			continue
		}
		key := PromotionKeyFromLink(ad.Link)
		if key == "" {
			continue
		}
		if current, ok := discounts[key]; !ok || ad.DiscountPercent > current {
			discounts[key] = ad.DiscountPercent
		}
	}
	return discounts
}

// Group buckets ads by type, keeping input order. Ads without a type are
// banners; unknown types get their own bucket.
func Group(ads []models.Ad) Groups {
	groups := Groups{
		models.AdTypeBanner:   {},
		models.AdTypePopup:    {},
		models.AdTypeCarousel: {},
		models.AdTypeNative:   {},
	}
	for _, ad := range ads {
		kind := ad.Type
		if kind == "" {
			kind = models.AdTypeBanner
		}
		groups[kind] = append(groups[kind], ad)
	}
	return groups
}

// IsLive reports whether ad is active and now falls inside its schedule.
// Missing or unparseable bounds leave that side open.
func IsLive(ad models.Ad, now time.Time) bool {
	if !ad.Active {
		return false
	}
	if ad.StartDate.Valid() && now.Before(ad.StartDate.Time) {
		return false
	}
	if ad.EndDate.Valid() && !now.Before(ad.EndDate.Time) {
		return false
	}
	return true
}

// Live filters ads down to the ones IsLive accepts.
func Live(ads []models.Ad, now time.Time) []models.Ad {
	out := make([]models.Ad, 0, len(ads))
	for _, ad := range ads {
		if IsLive(ad, now) {
			out = append(out, ad)
		}
	}
	return out
}
