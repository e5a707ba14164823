package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "jwt"

// CookieManager writes and clears the session cookie. Set and Clear share one
// attribute builder: a cleared cookie with mismatched path/domain/samesite
// would not actually be removed by the browser.
type CookieManager struct {
	domain     string
	production bool
}

// NewCookieManager builds a cookie manager. In production the cookie is
// Secure with SameSite=None to satisfy cross-site delivery; in development it
// relaxes to SameSite=Lax without Secure.
func NewCookieManager(domain string, production bool) *CookieManager {
	return &CookieManager{domain: domain, production: production}
}

func (m *CookieManager) cookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if m.production {
		sameSite = http.SameSiteNoneMode
	}
	c := &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Domain:   m.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.production,
		SameSite: sameSite,
	}
	if maxAge <= 0 {
		c.Expires = time.Unix(0, 0)
	}
	return c
}

// Set attaches the session cookie with a 1-day max age.
func (m *CookieManager) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, m.cookie(token, int(SessionTokenExpiry.Seconds())))
}

// Clear overwrites the session cookie with an immediately-expired one using
// the same scoping attributes used to set it.
func (m *CookieManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie("", -1))
}
