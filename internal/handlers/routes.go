package handlers

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/middleware"
)

// Register mounts the storefront routes on r.
func Register(r gin.IRouter, d Deps) {
	r.GET("/products", GetProducts(d))
	r.GET("/products/:id", GetProduct(d))
	r.GET("/products/:id/variant", ResolveVariant(d))

	r.GET("/deals", GetDeals(d))
	r.GET("/deals/today", GetDealOfTheDay(d))

	r.GET("/ads", GetAds(d))
	r.POST("/ads/:id/dismiss", DismissAd(d))

	r.POST("/admin/login", AdminLogin(d))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(d.JWTSecret))
	{
		admin.POST("/products/import", ImportProducts(d))
	}
}
