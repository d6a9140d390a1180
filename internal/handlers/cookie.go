package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salman-gigabit/PatientQueueBackend/internal/middleware"
)

// CookieHelper manages the authentication cookie mirror of the bearer token.
type CookieHelper struct {
	domain string
	secure bool
}

// NewCookieHelper creates a cookie helper. secure should be true outside
// development so the cookie only travels over TLS.
func NewCookieHelper(domain string, secure bool) *CookieHelper {
	return &CookieHelper{domain: domain, secure: secure}
}

// SetAuthCookie stores the token as an HTTP-only SameSite-Lax cookie scoped
// to the whole path, living exactly as long as the token is valid.
func (h *CookieHelper) SetAuthCookie(c *gin.Context, token string, lifetime time.Duration) {
	h.setCookie(c, token, int(lifetime.Seconds()))
}

// ClearAuthCookie removes the authentication cookie by reissuing it expired.
func (h *CookieHelper) ClearAuthCookie(c *gin.Context) {
	h.setCookie(c, "", -1)
}

func (h *CookieHelper) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.AccessTokenCookie,
		value,
		maxAge,
		"/",
		h.domain,
		h.secure,
		true, // httpOnly - always true for auth cookies
	)
}
