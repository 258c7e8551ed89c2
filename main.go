package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront/internal/ads"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("MongoDB disconnect error:", err)
		}
	}()

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("⚠️ product index warning: %v", err)
	}
	if err := database.EnsureAdIndexes(db); err != nil {
		log.Printf("⚠️ ad index warning: %v", err)
	}
	if err := database.EnsureAdminIndexes(db); err != nil {
		log.Printf("⚠️ admin index warning: %v", err)
	}

	if config.AppEnv.JWTSecret == "" {
		log.Println("⚠️ JWT_SECRET is empty, admin tokens are not secure")
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = config.AppEnv.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin", middleware.SessionHeader}
	corsConfig.ExposeHeaders = []string{middleware.SessionHeader}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))
	r.Use(middleware.Session())

	handlers.Register(r, handlers.Deps{
		DB:         database.ClientPinger{Client: client},
		Products:   database.NewProductStore(db),
		Ads:        database.NewAdStore(db),
		Admins:     database.NewAdminStore(db),
		Dismissals: ads.NewMemoryDismissals(config.AppEnv.DismissalCapacity),
		Clock:      time.Now,
		Location:   config.AppEnv.StoreLocation,
		Timeout:    config.AppEnv.RequestTimeout,
		JWTSecret:  config.AppEnv.JWTSecret,
		AccessTTL:  config.AppEnv.AccessTokenTTL,

		TrendingThreshold: config.AppEnv.TrendingThreshold,
		NewProductDays:    config.AppEnv.NewProductDays,
	})

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
