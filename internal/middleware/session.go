package middleware

import (
	"log"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"wayfarer/internal/auth"
	apperrors "wayfarer/internal/errors"
	"wayfarer/internal/model"
	"wayfarer/internal/repository"
)

const (
	claimsContextKey   = "session_claims"
	identityContextKey = "identity"
)

// Session returns the middleware chain guarding protected routes. The token
// is extracted from the session cookie, falling back to an Authorization
// bearer header, verified by the token service, and its subject resolved
// against the credential store. Any failure short-circuits with a 401; the
// identity projection attached to the context never carries the password hash.
func Session(tokens *auth.TokenService, users repository.UserRepository) []echo.MiddlewareFunc {
	extract := echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsContextKey,
		TokenLookup: "cookie:" + auth.SessionCookieName + ",header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := tokens.Verify(token)
			if err != nil {
				// Expired vs malformed is recorded here only; the
				// response is a uniform 401 either way.
				log.Printf("session token rejected: %v", err)
				return nil, err
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthenticated(c)
		},
	})

	return []echo.MiddlewareFunc{extract, resolveIdentity(users)}
}

func resolveIdentity(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsContextKey).(*auth.Claims)
			if !ok {
				return unauthenticated(c)
			}

			// Subject may have vanished between issuance and use.
			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return unauthenticated(c)
			}

			c.Set(identityContextKey, user.Identity())
			return next(c)
		}
	}
}

// IdentityFrom returns the authenticated identity attached by Session.
func IdentityFrom(c echo.Context) (model.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(model.Identity)
	return identity, ok
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized,
		apperrors.NewErrorResponse(apperrors.ErrUnauthenticated.Error(), "UNAUTHENTICATED"))
}
