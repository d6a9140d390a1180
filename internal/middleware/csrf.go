package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// CSRF returns middleware that validates Origin/Referer headers on
// state-changing requests. Required because the identity token also travels
// in a cookie, which browsers attach to cross-site requests automatically.
func CSRF(allowedOrigins []string) gin.HandlerFunc {
	allowedSet := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowedSet[normalizeOrigin(origin)] = true
	}

	return func(c *gin.Context) {
		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}

		if origin := c.GetHeader("Origin"); origin != "" {
			if !allowedSet[normalizeOrigin(origin)] {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid origin"})
				return
			}
			c.Next()
			return
		}

		if referer := c.GetHeader("Referer"); referer != "" {
			if !allowedSet[normalizeOrigin(refererOrigin(referer))] {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid referer"})
				return
			}
			c.Next()
			return
		}

		// No browser context at all: a non-browser client using the
		// Authorization header instead of the cookie. The auth middleware
		// still guards the route.
		c.Next()
	}
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(origin), "/")
}

func refererOrigin(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host
}
