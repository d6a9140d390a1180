// Package middleware provides HTTP middleware for the clinic front-desk service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salman-gigabit/PatientQueueBackend/internal/service"
)

// AccessTokenCookie is the cookie carrying the identity token for browser
// clients that do not set an Authorization header.
const AccessTokenCookie = "access_token"

// identityKey is the gin context key under which RequireAuth stores the
// resolved caller identity.
const identityKey = "identity"

// Identity is the authenticated caller of a protected request.
type Identity struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IdentityFrom returns the Identity stored by RequireAuth, if any.
func IdentityFrom(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*Identity)
	return identity, ok
}

// RequireAuth resolves the caller identity from the request and aborts with
// 401 before the handler runs when no valid token is presented. The
// Authorization header wins over the cookie; verification failures are not
// distinguished from a missing token.
func RequireAuth(jwtService service.JWTService, authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := jwtService.Verify(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}
		if authService != nil && authService.IsRevoked(c.Request.Context(), token) {
			abortUnauthenticated(c)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(identityKey, &Identity{
			UserID: userID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
}

// extractToken finds the bearer token for the request: Authorization header
// first, the access-token cookie as fallback. Misconfigured clients sometimes
// send the literal strings "null" or "undefined"; those count as absent.
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" && header != "null" && header != "undefined" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if token := normalizeToken(parts[1]); token != "" {
				return token
			}
		}
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return normalizeToken(cookie)
}

// normalizeToken strips surrounding whitespace and wrapping quotes that some
// clients add when storing the token.
func normalizeToken(token string) string {
	token = strings.TrimSpace(token)
	for len(token) >= 2 && (token[0] == '"' && token[len(token)-1] == '"' ||
		token[0] == '\'' && token[len(token)-1] == '\'') {
		token = strings.TrimSpace(token[1 : len(token)-1])
	}
	if token == "null" || token == "undefined" {
		return ""
	}
	return token
}
