package database

//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"

	"storefront/internal/models"
)

const (
	ProductsCollection         = "products"
	OfficialProductsCollection = "official_products"
	AdsCollection              = "ads"
	AdminsCollection           = "admins"
)

var ErrNotFound = errors.New("not found")

// Source selects which product collection a call works on.
type Source string

const (
	SourceMarketplace Source = ProductsCollection
	SourceOfficial    Source = OfficialProductsCollection
)

// UpsertResult counts the outcome of a product import.
type UpsertResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type ProductStore interface {
	// Visible returns the buyer-visible products of source, newest first.
	Visible(ctx context.Context, source Source) ([]models.Product, error)
	// FindVisible looks id up in the marketplace, then the official store.
	FindVisible(ctx context.Context, id string) (models.Product, error)
	Upsert(ctx context.Context, source Source, products []models.Product) (UpsertResult, error)
}

type AdStore interface {
	// Active returns the ads flagged active, regardless of schedule.
	Active(ctx context.Context) ([]models.Ad, error)
}

type AdminStore interface {
	FindAdminByEmail(ctx context.Context, email string) (models.Admin, error)
}
