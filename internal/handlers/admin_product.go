package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/database"
	"storefront/internal/models"
	"storefront/internal/variants"
)

type rejectedProduct struct {
	ID     string   `json:"id"`
	Name   string   `json:"name,omitempty"`
	Errors []string `json:"errors"`
}

type importResult struct {
	Received int               `json:"received"`
	Inserted int               `json:"inserted"`
	Updated  int               `json:"updated"`
	Rejected []rejectedProduct `json:"rejected"`
}

func errorMessages(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		messages := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			messages = append(messages, e.Error())
		}
		return messages
	}
	return []string{err.Error()}
}

/*
POST /admin/api/products/import?source=official
- body: an upstream product payload in any supported shape
- products with duplicate variant combinations are rejected, the rest upserted
*/
func ImportProducts(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/products/import"
		defer handlePanic(c, route)

		raw, err := c.GetRawData()
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		payload := catalog.DecodePayload(raw)
		if _, ok := payload.(catalog.Unrecognized); ok {
			respondWithError(c, http.StatusBadRequest, route, "unrecognized payload shape")
			return
		}

		products := payload.Products()
		accepted := make([]models.Product, 0, len(products))
		rejected := make([]rejectedProduct, 0)
		for _, p := range products {
			if err := variants.ValidateCombinations(p.Variants); err != nil {
				rejected = append(rejected, rejectedProduct{ID: p.ID, Name: p.Name, Errors: errorMessages(err)})
				continue
			}
			accepted = append(accepted, p)
		}

		result := importResult{Received: len(products), Rejected: rejected}
		if len(accepted) == 0 && len(rejected) > 0 {
			log.Printf("[%s] all %d products rejected", route, len(rejected))
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, result)
			return
		}

		if err := ensureDBConnection(c.Request.Context(), d.DB); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		source := database.SourceMarketplace
		if c.Query("source") == sourceOfficial {
			source = database.SourceOfficial
		}

		ctx, cancel := d.storeContext(c)
		defer cancel()

		counts, err := d.Products.Upsert(ctx, source, accepted)
		if err != nil {
			log.Printf("[%s] upsert failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		result.Inserted = counts.Inserted
		result.Updated = counts.Updated

		log.Printf("[%s] %s: received=%d inserted=%d updated=%d rejected=%d",
			route, source, result.Received, result.Inserted, result.Updated, len(rejected))
		c.JSON(http.StatusOK, result)
	}
}
