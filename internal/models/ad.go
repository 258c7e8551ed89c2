package models

// Ad is a merchandising placement shown on the home page.
type Ad struct {
	ID              string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Title           string    `bson:"title,omitempty" json:"title,omitempty"`
	Type            string    `bson:"type,omitempty" json:"type,omitempty"`
	ImageURL        string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Link            string    `bson:"link,omitempty" json:"link,omitempty"`
	DiscountPercent float64   `bson:"discountPercent,omitempty" json:"discountPercent,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	StartDate       Timestamp `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate         Timestamp `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

const (
	AdTypeBanner   = "banner"
	AdTypePopup    = "popup"
	AdTypeCarousel = "carousel"
	AdTypeNative   = "native"
)
