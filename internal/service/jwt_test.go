package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testSecret   = "test-secret-key-at-least-32-chars-long"
	testLifetime = 24 * time.Hour
)

// =============================================================================
// Issue Tests
// =============================================================================

func TestIssue(t *testing.T) {
	service := NewJWTService(testSecret, testLifetime)

	tests := []struct {
		name   string
		userID int64
		email  string
		role   string
	}{
		{
			name:   "regular user",
			userID: 1,
			email:  "desk@clinic.local",
			role:   "user",
		},
		{
			name:   "admin user",
			userID: 42,
			email:  "admin@clinic.local",
			role:   "admin",
		},
		{
			name:   "large user id",
			userID: 9007199254740993,
			email:  "x@clinic.local",
			role:   "user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Issue(tt.userID, tt.email, tt.role)
			if err != nil {
				t.Fatalf("Issue() error = %v", err)
			}
			if token == "" {
				t.Fatal("Issue() returned empty token")
			}

			claims, err := service.Verify(token)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}

			userID, err := claims.UserID()
			if err != nil {
				t.Fatalf("UserID() error = %v", err)
			}
			if userID != tt.userID {
				t.Errorf("UserID() = %d, want %d", userID, tt.userID)
			}
			if claims.Email != tt.email {
				t.Errorf("Claims.Email = %s, want %s", claims.Email, tt.email)
			}
			if claims.Role != tt.role {
				t.Errorf("Claims.Role = %s, want %s", claims.Role, tt.role)
			}
		})
	}
}

func TestIssue_SubjectIsDecimalString(t *testing.T) {
	service := NewJWTService(testSecret, testLifetime)

	token, err := service.Issue(123, "a@b.c", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Decode without verification to inspect the raw subject claim.
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &Claims{})
	if err != nil {
		t.Fatalf("ParseUnverified() error = %v", err)
	}
	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		t.Fatalf("GetSubject() error = %v", err)
	}
	if subject != "123" {
		t.Errorf("subject = %q, want %q", subject, "123")
	}
}

func TestIssue_ExpiryMatchesLifetime(t *testing.T) {
	service := NewJWTService(testSecret, testLifetime)

	before := time.Now()
	token, err := service.Issue(1, "a@b.c", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := service.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	gap := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	if gap != testLifetime {
		t.Errorf("expiry - issuedAt = %v, want %v", gap, testLifetime)
	}
	if claims.IssuedAt.Time.Before(before.Add(-2 * time.Second)) {
		t.Errorf("IssuedAt = %v, want around %v", claims.IssuedAt.Time, before)
	}
}

// =============================================================================
// Verify Tests
// =============================================================================

func TestVerify_TamperedSignature(t *testing.T) {
	service := NewJWTService(testSecret, testLifetime)

	token, err := service.Issue(1, "a@b.c", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	if _, err := service.Verify(tampered); err == nil {
		t.Error("Verify() accepted a tampered token")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewJWTService(testSecret, testLifetime)
	verifier := NewJWTService("another-secret-that-is-also-32-chars", testLifetime)

	token, err := issuer.Issue(1, "a@b.c", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("Verify() accepted a token signed with a different secret")
	}
}

func TestVerify_Expired(t *testing.T) {
	service := NewJWTService(testSecret, -time.Minute)

	token, err := service.Issue(1, "a@b.c", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := service.Verify(token); err == nil {
		t.Error("Verify() accepted an expired token")
	}
}

func TestVerify_RejectsNonHMACAlgorithm(t *testing.T) {
	service := NewJWTService(testSecret, testLifetime)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Email: "a@b.c",
		Role:  "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := service.Verify(token); err == nil {
		t.Error("Verify() accepted an unsigned token")
	}
}

func TestVerify_Garbage(t *testing.T) {
	service := NewJWTService(testSecret, testLifetime)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := service.Verify(token); err == nil {
			t.Errorf("Verify(%q) accepted garbage input", token)
		}
	}
}

func TestVerify_UniformError(t *testing.T) {
	service := NewJWTService(testSecret, -time.Minute)

	expired, err := service.Issue(1, "a@b.c", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Expiry and tampering must produce the same error so callers cannot
	// distinguish them.
	_, errExpired := service.Verify(expired)
	_, errGarbage := service.Verify("garbage")
	if errExpired != ErrInvalidToken || errGarbage != ErrInvalidToken {
		t.Errorf("Verify() errors = %v / %v, want both %v", errExpired, errGarbage, ErrInvalidToken)
	}
}

// =============================================================================
// Claims Tests
// =============================================================================

func TestClaimsUserID_NonNumericSubject(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"}}
	if _, err := claims.UserID(); err == nil {
		t.Error("UserID() accepted a non-numeric subject")
	}
}
