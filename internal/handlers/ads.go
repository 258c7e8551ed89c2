package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/ads"
	"storefront/internal/middleware"
	"storefront/internal/models"
)

func sessionDismissals(c *gin.Context, d Deps) ads.DismissalStore {
	return ads.Scoped(d.Dismissals, middleware.SessionID(c))
}

// GET /ads
func GetAds(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /ads"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), d.DB); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := d.storeContext(c)
		defer cancel()

		active, err := d.Ads.Active(ctx)
		if err != nil {
			log.Printf("[%s] load failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		live := ads.Live(active, d.now())
		groups := ads.Group(live)
		dismissals := sessionDismissals(c, d)
		groups[models.AdTypePopup] = ads.FilterDismissed(groups[models.AdTypePopup], dismissals)

		log.Printf("[%s] returning %d live ads", route, len(live))
		c.JSON(http.StatusOK, gin.H{
			"ads":                groups,
			"popup":              ads.ActivePopup(groups[models.AdTypePopup], dismissals),
			"promotionDiscounts": ads.PromotionDiscounts(live),
		})
	}
}

// POST /ads/:id/dismiss
func DismissAd(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /ads/:id/dismiss"
		defer handlePanic(c, route)

		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			respondWithError(c, http.StatusBadRequest, route, "ad id is required")
			return
		}

		if err := ensureDBConnection(c.Request.Context(), d.DB); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := d.storeContext(c)
		defer cancel()

		active, err := d.Ads.Active(ctx)
		if err != nil {
			log.Printf("[%s] load failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		popups := ads.Group(ads.Live(active, d.now()))[models.AdTypePopup]
		if !ads.IsPopup(popups, id) {
			respondWithError(c, http.StatusNotFound, route, "popup not found")
			return
		}

		ads.DismissPopup(sessionDismissals(c, d), id)
		log.Printf("[%s] session %s dismissed %s", route, middleware.SessionID(c), id)
		c.Status(http.StatusNoContent)
	}
}
