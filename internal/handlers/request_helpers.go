package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/ads"
	"storefront/internal/database"
)

// Clock returns the current time. Handlers never read the wall clock
// directly.
type Clock func() time.Time

// Deps carries the stores and settings the handlers read from.
type Deps struct {
	DB         database.Pinger
	Products   database.ProductStore
	Ads        database.AdStore
	Admins     database.AdminStore
	Dismissals ads.DismissalStore
	Clock      Clock
	Location   *time.Location
	Timeout    time.Duration
	JWTSecret  string
	AccessTTL  time.Duration

	TrendingThreshold int
	NewProductDays    int
}

func (d Deps) trendingThreshold() int {
	if d.TrendingThreshold > 0 {
		return d.TrendingThreshold
	}
	return 50
}

func (d Deps) newProductDays() int {
	if d.NewProductDays > 0 {
		return d.NewProductDays
	}
	return 7
}

func (d Deps) now() time.Time {
	now := time.Now()
	if d.Clock != nil {
		now = d.Clock()
	}
	if d.Location != nil {
		now = now.In(d.Location)
	}
	return now
}

func (d Deps) storeContext(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func ensureDBConnection(ctx context.Context, db database.Pinger) error {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.Ping(checkCtx)
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
