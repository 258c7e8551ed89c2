package models

// Product is a storefront product as served by the upstream product API.
// Upstream naming drifts between sources, so most fields are optional and a
// zero price field means "not provided".
type Product struct {
	ID                string        `bson:"_id,omitempty" json:"_id,omitempty"`
	Name              string        `bson:"name,omitempty" json:"name,omitempty"`
	Slug              string        `bson:"slug,omitempty" json:"slug,omitempty"`
	Status            string        `bson:"status,omitempty" json:"status,omitempty"`
	ModerationStatus  string        `bson:"moderationStatus,omitempty" json:"moderationStatus,omitempty"`
	IsDeleted         bool          `bson:"isDeleted,omitempty" json:"isDeleted,omitempty"`
	IsDeletedByAdmin  bool          `bson:"isDeletedByAdmin,omitempty" json:"isDeletedByAdmin,omitempty"`
	IsDeletedBySeller bool          `bson:"isDeletedBySeller,omitempty" json:"isDeletedBySeller,omitempty"`
	IsEazShopProduct  bool          `bson:"isEazShopProduct,omitempty" json:"isEazShopProduct,omitempty"`
	Price             float64       `bson:"price,omitempty" json:"price,omitempty"`
	OriginalPrice     float64       `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	DefaultPrice      float64       `bson:"defaultPrice,omitempty" json:"defaultPrice,omitempty"`
	MinPrice          float64       `bson:"minPrice,omitempty" json:"minPrice,omitempty"`
	MaxPrice          float64       `bson:"maxPrice,omitempty" json:"maxPrice,omitempty"`
	IsOnSale          *bool         `bson:"isOnSale,omitempty" json:"isOnSale,omitempty"`
	SalePercentage    *float64      `bson:"salePercentage,omitempty" json:"salePercentage,omitempty"`
	PromotionKey      string        `bson:"promotionKey,omitempty" json:"promotionKey,omitempty"`
	PromotionEndDate  Timestamp     `bson:"promotionEndDate,omitempty" json:"promotionEndDate,omitempty"`
	Availability      *Availability `bson:"availability,omitempty" json:"availability,omitempty"`
	Images            StringList    `bson:"images,omitempty" json:"images,omitempty"`
	ImageCover        string        `bson:"imageCover,omitempty" json:"imageCover,omitempty"`
	Variants          []Variant     `bson:"variants,omitempty" json:"variants,omitempty"`
	Category          CategoryRef   `bson:"category,omitempty" json:"category,omitempty"`
	CategoryID        string        `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	ParentCategory    CategoryRef   `bson:"parentCategory,omitempty" json:"parentCategory,omitempty"`
	SubCategory       CategoryRef   `bson:"subCategory,omitempty" json:"subCategory,omitempty"`
	SubCategoryID     string        `bson:"subCategoryId,omitempty" json:"subCategoryId,omitempty"`
	SKU               string        `bson:"sku,omitempty" json:"sku,omitempty"`
	Stock             int           `bson:"stock,omitempty" json:"stock,omitempty"`
	TotalStock        *int          `bson:"totalStock,omitempty" json:"totalStock,omitempty"`
	TotalSold         int           `bson:"totalSold,omitempty" json:"totalSold,omitempty"`
	Rating            float64       `bson:"rating,omitempty" json:"rating,omitempty"`
	AverageRating     float64       `bson:"averageRating,omitempty" json:"averageRating,omitempty"`
	CreatedAt         Timestamp     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// Availability holds the promotion window of a product.
type Availability struct {
	StartDate Timestamp `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   Timestamp `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

// Variant is one purchasable attribute combination of a product. The SKU is
// the unit of cart identity.
type Variant struct {
	ID            string      `bson:"_id,omitempty" json:"_id,omitempty"`
	SKU           string      `bson:"sku,omitempty" json:"sku,omitempty"`
	Name          string      `bson:"name,omitempty" json:"name,omitempty"`
	Attributes    []Attribute `bson:"attributes,omitempty" json:"attributes,omitempty"`
	Stock         int         `bson:"stock" json:"stock"`
	Price         float64     `bson:"price,omitempty" json:"price,omitempty"`
	OriginalPrice float64     `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Status        string      `bson:"status,omitempty" json:"status,omitempty"`
	Images        StringList  `bson:"images,omitempty" json:"images,omitempty"`
}

// Attribute is a single key/value pair of a variant, e.g. Color=Red.
type Attribute struct {
	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`
}

const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusOutOfStock = "out_of_stock"
	StatusArchived   = "archived"

	ModerationApproved = "approved"
)

// Value returns the value of the attribute with the given key.
func (v Variant) Value(key string) (string, bool) {
	for _, attr := range v.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether the variant carries exactly key=value.
func (v Variant) Has(key, value string) bool {
	for _, attr := range v.Attributes {
		if attr.Key == key && attr.Value == value {
			return true
		}
	}
	return false
}
