package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/deals"
)

/*
GET /deals
- sort: default | discount-high | price-low | price-high
- category, minPrice, maxPrice, page, limit are optional
*/
func GetDeals(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /deals"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
			return
		}
		minPrice, err := parseOptionalFloat(c.Query("minPrice"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid minPrice")
			return
		}
		maxPrice, err := parseOptionalFloat(c.Query("maxPrice"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid maxPrice")
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

		result := deals.ListDeals(products, deals.Query{
			Sort:     c.Query("sort"),
			Category: c.Query("category"),
			MinPrice: minPrice,
			MaxPrice: maxPrice,
			Page:     page,
			Limit:    limit,
		})

		log.Printf("[%s] returning %d of %d deals", route, len(result.Products), result.Total)
		c.JSON(http.StatusOK, result)
	}
}

// GET /deals/today
func GetDealOfTheDay(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /deals/today"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), d.DB); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := d.storeContext(c)
		defer cancel()

		products, err := loadCatalog(ctx, d.Products, "")
		if err != nil {
			log.Printf("[%s] load failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		deal := deals.SelectDealOfTheDay(products, d.now())
		if deal.Product == nil {
			log.Printf("[%s] no eligible product among %d", route, len(products))
		} else {
			log.Printf("[%s] selected %s ending %s", route, deal.Product.ID, deal.EndDate)
		}
		c.JSON(http.StatusOK, deal)
	}
}
