package main

import (
	"log"
	"net/http"

	"wayfarer/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"wayfarer/internal/auth"
	"wayfarer/internal/cache"
	"wayfarer/internal/config"
	"wayfarer/internal/db"
	"wayfarer/internal/geo"
	"wayfarer/internal/handler"
	"wayfarer/internal/model"
	"wayfarer/internal/repository"
	"wayfarer/internal/router"
	"wayfarer/internal/service"
)

// @title Wayfarer API
// @version 1.0
// @description Route-planning backend with JWT cookie sessions, geocoding and routing proxies.
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// The unique index on users.email is part of the schema on purpose: it is
	// the real guard against concurrent signups with the same address.
	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories and auth components
	userRepo := repository.NewUserRepository(gormDB)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	cookies := auth.NewCookieManager(cfg.CookieDomain, cfg.IsProduction())

	// Initialize geo providers
	geocoder := geo.NewNominatimGeocoder(cfg.GeocoderURL)
	osrmRouter := geo.NewOSRMRouter(cfg.RouterURL)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens)
	geoService := service.NewGeoService(geocoder, osrmRouter, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cookies)
	geoHandler := handler.NewGeoHandler(geoService, cfg)
	homeHandler := handler.NewHomeHandler()

	// Register routes
	router.Register(e, cfg, tokens, userRepo, authHandler, geoHandler, homeHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
