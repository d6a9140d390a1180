package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salman-gigabit/PatientQueueBackend/internal/middleware"
)

func TestSetAuthCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		domain     string
		secure     bool
		wantDomain string // Go http strips leading dot from domain per RFC 6265
	}{
		{
			name:       "development config",
			domain:     "",
			secure:     false,
			wantDomain: "",
		},
		{
			name:       "production config",
			domain:     ".clinic.example.com",
			secure:     true,
			wantDomain: "clinic.example.com", // Leading dot stripped by http package
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			helper := NewCookieHelper(tt.domain, tt.secure)
			helper.SetAuthCookie(c, "access123", 24*time.Hour)

			cookies := w.Result().Cookies()
			if len(cookies) != 1 {
				t.Fatalf("expected 1 cookie, got %d", len(cookies))
			}
			cookie := cookies[0]

			if cookie.Name != middleware.AccessTokenCookie {
				t.Errorf("cookie name = %s, want %s", cookie.Name, middleware.AccessTokenCookie)
			}
			if cookie.Value != "access123" {
				t.Errorf("cookie value = %s, want access123", cookie.Value)
			}
			if !cookie.HttpOnly {
				t.Error("auth cookie should be HttpOnly")
			}
			if cookie.Secure != tt.secure {
				t.Errorf("cookie Secure = %v, want %v", cookie.Secure, tt.secure)
			}
			if cookie.SameSite != http.SameSiteLaxMode {
				t.Errorf("cookie SameSite = %v, want %v", cookie.SameSite, http.SameSiteLaxMode)
			}
			if cookie.Path != "/" {
				t.Errorf("cookie Path = %s, want /", cookie.Path)
			}
			if cookie.Domain != tt.wantDomain {
				t.Errorf("cookie Domain = %s, want %s", cookie.Domain, tt.wantDomain)
			}
			if cookie.MaxAge != int((24 * time.Hour).Seconds()) {
				t.Errorf("cookie MaxAge = %d, want %d", cookie.MaxAge, int((24*time.Hour).Seconds()))
			}
		})
	}
}

func TestClearAuthCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	helper := NewCookieHelper("", false)
	helper.ClearAuthCookie(c)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("cleared cookie MaxAge = %d, want -1", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Errorf("cleared cookie value = %q, want empty", cookies[0].Value)
	}
}
