package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"wayfarer/internal/auth"
	"wayfarer/internal/config"
	"wayfarer/internal/handler"
	"wayfarer/internal/middleware"
	"wayfarer/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	geoHandler *handler.GeoHandler,
	homeHandler *handler.HomeHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Cookie-carrying cross-site requests from the map client.
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (session cookie or bearer token required)
	secured := api.Group("", middleware.Session(tokens, users)...)

	secured.GET("/auth/verify", authHandler.Verify)
	secured.GET("/home", homeHandler.Home)

	// Geo routes
	secured.GET("/geo/search", geoHandler.Search)
	secured.GET("/geo/route", geoHandler.Route)
	secured.GET("/geo/config", geoHandler.MapConfig)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
