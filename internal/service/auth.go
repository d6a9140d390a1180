package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/salman-gigabit/PatientQueueBackend/internal/models"
	"github.com/salman-gigabit/PatientQueueBackend/internal/repository"
)

// ErrInvalidCredentials covers every login failure: unknown email, wrong
// password, malformed stored hash. The caller learns nothing about which.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrDuplicateEmail reports a signup against an email that is already taken.
var ErrDuplicateEmail = repository.ErrDuplicateEmail

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
	User        *models.User `json:"user"`
}

// AuthService owns password hashing, signup, login and token revocation.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	// Logout revokes the presented token for the remainder of its validity.
	Logout(ctx context.Context, token string) error
	// IsRevoked reports whether a token was revoked by Logout. Without a
	// revocation store every token is considered live until it expires.
	IsRevoked(ctx context.Context, token string) bool
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// EnsureAdmin creates the bootstrap admin account if it does not exist,
	// so an operator can always log in on a fresh deployment.
	EnsureAdmin(ctx context.Context, email, password string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
	redis      *redis.Client
}

// NewAuthService creates a new AuthService instance. redisClient may be nil,
// which disables logout revocation.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, redisClient *redis.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		redis:      redisClient,
	}
}

// HashPassword produces a salted bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. A malformed
// hash compares as false, never as an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *authService) Register(ctx context.Context, name, email, password, role string) (*models.User, error) {
	if role == "" {
		role = models.RoleUser
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.jwtService.Lifetime().Seconds()),
		User:        user,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.Verify(token)
	if err != nil {
		return err
	}
	if s.redis == nil {
		return nil
	}

	// Keep the revocation entry only as long as the token could still be
	// accepted.
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, revocationKey(token), "1", ttl).Err()
}

func (s *authService) IsRevoked(ctx context.Context, token string) bool {
	if s.redis == nil {
		return false
	}
	_, err := s.redis.Get(ctx, revocationKey(token)).Result()
	return err == nil
}

func (s *authService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	_, err = s.Register(ctx, "Administrator", email, password, models.RoleAdmin)
	if errors.Is(err, ErrDuplicateEmail) {
		// Lost a race against a concurrent bootstrap; the account exists.
		return nil
	}
	return err
}

func revocationKey(token string) string {
	return fmt.Sprintf("revoked_token:%s", token)
}
