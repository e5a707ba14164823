package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "wayfarer/internal/errors"
	"wayfarer/internal/middleware"
	"wayfarer/internal/model"
)

// HomeHandler serves the protected home payload.
type HomeHandler struct{}

// NewHomeHandler creates a new home handler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

type homeData struct {
	Message string         `json:"message"`
	User    model.Identity `json:"user"`
}

// HomeResponse wraps the home payload in the success envelope.
type HomeResponse struct {
	Success bool     `json:"success"`
	Data    homeData `json:"data"`
}

// Home godoc
// @Summary Protected home page data
// @Tags home
// @Produce json
// @Success 200 {object} HomeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /home [get]
func (h *HomeHandler) Home(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return writeError(c, apperrors.ErrUnauthenticated)
	}
	return c.JSON(http.StatusOK, HomeResponse{
		Success: true,
		Data: homeData{
			Message: "Welcome to the protected home page!",
			User:    identity,
		},
	})
}
