package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/database"
	"storefront/internal/models"
	"storefront/internal/variants"
)

const sourceOfficial = "official"

// loadCatalog returns the buyer-visible products. The marketplace listing is
// merged with the official store unless only the official store is asked for.
func loadCatalog(ctx context.Context, store database.ProductStore, source string) ([]models.Product, error) {
	if source == sourceOfficial {
		return store.Visible(ctx, database.SourceOfficial)
	}

	primary, err := store.Visible(ctx, database.SourceMarketplace)
	if err != nil {
		return nil, err
	}
	official, err := store.Visible(ctx, database.SourceOfficial)
	if err != nil {
		return nil, err
	}
	return catalog.MergeProducts(catalog.FilterBuyerVisible(primary), official), nil
}

/*
GET /products
- category, sort, page, limit are optional
- source=official lists only the official store
*/
func GetProducts(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit page=%s limit=%s category=%s sort=%s source=%s",
			route,
			c.Query("page"),
			c.Query("limit"),
			c.Query("category"),
			c.Query("sort"),
			c.Query("source"),
		)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
			return
		}

		if err := ensureDBConnection(c.Request.Context(), d.DB); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := d.storeContext(c)
		defer cancel()

		products, err := loadCatalog(ctx, d.Products, c.Query("source"))
		if err != nil {
			log.Printf("[%s] load failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		filtered := catalog.FilterCategory(products, c.Query("category"))
		sorted := catalog.SortProducts(filtered, catalog.SortKey(c.Query("sort")))
		result := catalog.Paginate(sorted, page, limit)

		log.Printf("[%s] returning %d of %d products", route, len(result.Products), result.Total)
		c.JSON(http.StatusOK, result)
	}
}

type productDetail struct {
	Product            models.Product                `json:"product"`
	DefaultVariant     *models.Variant               `json:"defaultVariant"`
	Selection          variants.Selection            `json:"selection"`
	AttributeKeys      []string                      `json:"attributeKeys"`
	Options            map[string][]variants.Option `json:"options"`
	Gallery            []string                      `json:"gallery"`
	Price              *float64                      `json:"price"`
	OriginalPrice      *float64                      `json:"originalPrice,omitempty"`
	DiscountPercentage float64                       `json:"discountPercentage"`
	InStock            bool                          `json:"inStock"`
	TotalStock         int                           `json:"totalStock"`
	IsNew              bool                          `json:"isNew"`
	IsTrending         bool                          `json:"isTrending"`
	HasPriceRange      bool                          `json:"hasPriceRange"`
}

type variantResolution struct {
	variants.Resolution
	Options            map[string][]variants.Option `json:"options"`
	Price              *float64                      `json:"price"`
	DiscountPercentage float64                       `json:"discountPercentage"`
}

func optionsByKey(list []models.Variant, keys []string, sel variants.Selection) map[string][]variants.Option {
	options := make(map[string][]variants.Option, len(keys))
	for _, key := range keys {
		options[key] = variants.AvailableOptions(list, key, sel)
	}
	return options
}

func priceOf(p models.Product, v *models.Variant) *float64 {
	if price, ok := catalog.DisplayPrice(p, v); ok {
		return &price
	}
	return nil
}

func findProduct(c *gin.Context, d Deps, route string) (models.Product, bool) {
	id := strings.TrimSpace(c.Param("id"))

	if err := ensureDBConnection(c.Request.Context(), d.DB); err != nil {
		respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
		return models.Product{}, false
	}

	ctx, cancel := d.storeContext(c)
	defer cancel()

	product, err := d.Products.FindVisible(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		respondWithError(c, http.StatusNotFound, route, "product not found")
		return models.Product{}, false
	}
	if err != nil {
		log.Printf("[%s] lookup %s failed: %v", route, id, err)
		respondWithError(c, http.StatusInternalServerError, route, "db error")
		return models.Product{}, false
	}
	return product, true
}

// GET /products/:id
func GetProduct(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		product, ok := findProduct(c, d, route)
		if !ok {
			return
		}

		defaultVariant := variants.DefaultVariant(product.Variants)
		sel := variants.SelectionOf(defaultVariant)
		keys := variants.AttributeKeys(product.Variants)

		detail := productDetail{
			Product:            product,
			DefaultVariant:     defaultVariant,
			Selection:          sel,
			AttributeKeys:      keys,
			Options:            optionsByKey(product.Variants, keys, sel),
			Gallery:            variants.GalleryImages(defaultVariant, catalog.GalleryImages(product)),
			Price:              priceOf(product, defaultVariant),
			DiscountPercentage: catalog.ProductDiscountPercentage(product, defaultVariant),
			TotalStock:         catalog.TotalStock(product),
			IsNew:              catalog.IsNew(product, d.now(), d.newProductDays()),
			IsTrending:         catalog.IsTrending(product, d.trendingThreshold()),
			HasPriceRange:      catalog.HasPriceRange(product),
		}
		if original := catalog.OriginalPrice(product); original > 0 {
			detail.OriginalPrice = &original
		}
		if len(product.Variants) == 0 {
			detail.InStock = detail.TotalStock > 0 || product.Stock > 0
		} else {
			detail.InStock = variants.InStock(defaultVariant)
		}

		log.Printf("[%s] returning %s with %d variants", route, product.ID, len(product.Variants))
		c.JSON(http.StatusOK, detail)
	}
}

/*
GET /products/:id/variant?Color=Red&Size=M
- every query param naming an attribute key is part of the selection
*/
func ResolveVariant(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id/variant"
		defer handlePanic(c, route)

		product, ok := findProduct(c, d, route)
		if !ok {
			return
		}
		if len(product.Variants) == 0 {
			respondWithError(c, http.StatusUnprocessableEntity, route, fmt.Sprintf("product %s has no variants", product.ID))
			return
		}

		keys := variants.AttributeKeys(product.Variants)
		query := c.Request.URL.Query()
		sel := make(variants.Selection, len(keys))
		for _, key := range keys {
			if value := strings.TrimSpace(query.Get(key)); value != "" {
				sel[key] = value
			}
		}

		res := variants.Resolve(product.Variants, sel, catalog.GalleryImages(product))
		out := variantResolution{
			Resolution:         res,
			Options:            optionsByKey(product.Variants, keys, sel),
			DiscountPercentage: catalog.ProductDiscountPercentage(product, res.Variant),
		}
		if res.Variant != nil {
			out.Price = priceOf(product, res.Variant)
		}

		log.Printf("[%s] %s selection=%q state=%s", route, product.ID, res.Summary, res.State)
		c.JSON(http.StatusOK, out)
	}
}
