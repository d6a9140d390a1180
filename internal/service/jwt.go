package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure mode of token verification. Signature
// mismatch, algorithm mismatch and expiry are deliberately not distinguished
// to the caller.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the identity token payload. The subject is always signed
// as a decimal string; UserID is the one place it is parsed back.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim as an integer user id.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// JWTService issues and verifies signed identity tokens.
type JWTService interface {
	Issue(userID int64, email, role string) (string, error)
	Verify(tokenString string) (*Claims, error)
	Lifetime() time.Duration
}

type jwtService struct {
	secret   string
	lifetime time.Duration
}

// NewJWTService creates a new JWTService instance. Tokens are signed with
// HS256 and expire lifetime after issuance.
func NewJWTService(secret string, lifetime time.Duration) JWTService {
	return &jwtService{
		secret:   secret,
		lifetime: lifetime,
	}
}

func (s *jwtService) Issue(userID int64, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *jwtService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *jwtService) Lifetime() time.Duration {
	return s.lifetime
}
