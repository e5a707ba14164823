package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"wayfarer/internal/auth"
	apperrors "wayfarer/internal/errors"
	"wayfarer/internal/middleware"
	"wayfarer/internal/model"
	"wayfarer/internal/service"
)

// AuthHandler handles the signup/login/logout/verify endpoints.
type AuthHandler struct {
	authService service.AuthService
	cookies     *auth.CookieManager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookies *auth.CookieManager) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

// SignupRequest represents a user signup request.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse wraps a user summary in the success envelope.
type UserResponse struct {
	Success bool           `json:"success"`
	Data    model.Identity `json:"data"`
}

// MessageResponse wraps a plain message in the success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VerifyResponse is returned by the verify endpoint.
type VerifyResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          model.Identity `json:"user"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return validationError(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, "username, email and password are required")
	}

	user, token, err := h.authService.Signup(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	// Issuance precedes cookie emission; the cookie carries the only copy of
	// the token the client ever sees.
	h.cookies.Set(c.Response(), token)

	return c.JSON(http.StatusCreated, UserResponse{Success: true, Data: user.Identity()})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return validationError(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, "email and password are required")
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	h.cookies.Set(c.Response(), token)

	return c.JSON(http.StatusOK, UserResponse{Success: true, Data: user.Identity()})
}

// Logout godoc
// @Summary Logout and clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Always succeeds, with or without a prior session. The token itself
	// stays cryptographically valid until natural expiry; logout only makes
	// the browser forget it.
	h.cookies.Clear(c.Response())

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "logged out successfully"})
}

// Verify godoc
// @Summary Verify the current session
// @Tags auth
// @Produce json
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return writeError(c, apperrors.ErrUnauthenticated)
	}
	return c.JSON(http.StatusOK, VerifyResponse{Authenticated: true, User: identity})
}

func validationError(c echo.Context, message string) error {
	return writeError(c, apperrors.NewValidationError(message))
}

func writeError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		log.Printf("handler error: %v", err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
