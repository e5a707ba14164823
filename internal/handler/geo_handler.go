package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"wayfarer/internal/config"
	apperrors "wayfarer/internal/errors"
	"wayfarer/internal/geo"
	"wayfarer/internal/service"
)

// GeoHandler proxies geocoding and routing lookups for the map client.
type GeoHandler struct {
	geoService service.GeoService
	cfg        *config.Config
}

// NewGeoHandler creates a new geo handler.
func NewGeoHandler(geoService service.GeoService, cfg *config.Config) *GeoHandler {
	return &GeoHandler{geoService: geoService, cfg: cfg}
}

// SearchResponse wraps geocoding candidates in the success envelope.
type SearchResponse struct {
	Success bool        `json:"success"`
	Data    []geo.Place `json:"data"`
}

// RouteResponse wraps a computed route in the success envelope.
type RouteResponse struct {
	Success bool       `json:"success"`
	Data    *geo.Route `json:"data"`
}

// MapConfigResponse carries client-facing map defaults.
type MapConfigResponse struct {
	Success bool           `json:"success"`
	Data    geo.Coordinate `json:"data"`
}

// Search godoc
// @Summary Geocode a free-text place name
// @Tags geo
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Max candidates (default 5)"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /geo/search [get]
func (h *GeoHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return validationError(c, "query parameter q is required")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	places, err := h.geoService.Search(c.Request().Context(), query, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SearchResponse{Success: true, Data: places})
}

// Route godoc
// @Summary Compute a route between two coordinates
// @Tags geo
// @Produce json
// @Param from_lat query number true "Origin latitude"
// @Param from_lon query number true "Origin longitude"
// @Param to_lat query number true "Destination latitude"
// @Param to_lon query number true "Destination longitude"
// @Success 200 {object} RouteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /geo/route [get]
func (h *GeoHandler) Route(c echo.Context) error {
	from, err := parseCoordinate(c, "from_lat", "from_lon")
	if err != nil {
		return writeError(c, err)
	}
	to, err := parseCoordinate(c, "to_lat", "to_lon")
	if err != nil {
		return writeError(c, err)
	}

	route, err := h.geoService.Route(c.Request().Context(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, RouteResponse{Success: true, Data: route})
}

// MapConfig godoc
// @Summary Map defaults for the client
// @Tags geo
// @Produce json
// @Success 200 {object} MapConfigResponse
// @Router /geo/config [get]
func (h *GeoHandler) MapConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, MapConfigResponse{
		Success: true,
		Data:    geo.Coordinate{Lat: h.cfg.DefaultCenterLat, Lon: h.cfg.DefaultCenterLon},
	})
}

func parseCoordinate(c echo.Context, latParam, lonParam string) (geo.Coordinate, error) {
	lat, err := strconv.ParseFloat(c.QueryParam(latParam), 64)
	if err != nil {
		return geo.Coordinate{}, apperrors.NewValidationError(latParam + " is required")
	}
	lon, err := strconv.ParseFloat(c.QueryParam(lonParam), 64)
	if err != nil {
		return geo.Coordinate{}, apperrors.NewValidationError(lonParam + " is required")
	}
	return geo.Coordinate{Lat: lat, Lon: lon}, nil
}
