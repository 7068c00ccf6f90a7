package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lichess-gateway/config"
	"lichess-gateway/internal/domain/user"
	"lichess-gateway/internal/repository"
	apperrors "lichess-gateway/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repository.UserRepository
	secret   []byte
	method   jwt.SigningMethod
	ttl      time.Duration
}

// NewAuthService resolves the signing method eagerly so a bad algorithm is a
// startup failure, not a surprise on the first token operation.
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) (*AuthService, error) {
	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown JWT algorithm %q", cfg.JWTAlgorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("JWT algorithm %q is not an HMAC method", cfg.JWTAlgorithm)
	}
	return &AuthService{
		userRepo: userRepo,
		secret:   []byte(cfg.JWTSecret),
		method:   method,
		ttl:      time.Duration(cfg.JWTExpiryDays) * 24 * time.Hour,
	}, nil
}

// AccessClaims keeps the wire shape of the original tokens: an "id" and an
// "email_ID" claim plus the registered expiry.
type AccessClaims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email_ID"`
	jwt.RegisteredClaims
}

// Signup creates a fresh account and returns a signed token for it. The
// email pre-check is an optimization; the database unique constraint decides
// the race.
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.ErrInvalidInput
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return "", apperrors.ErrAlreadyExists
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}

	u, err := s.userRepo.Create(ctx, email, hash)
	if err != nil {
		return "", err
	}

	return s.IssueToken(u)
}

// Login verifies credentials and returns a signed token. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := comparePassword(u.HashedPassword, password); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.IssueToken(u)
}

// IssueToken signs an access token for the user with the configured
// algorithm and TTL.
func (s *AuthService) IssueToken(u user.User) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID: u.ID,
		Email:  u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken validates a bearer token and returns its claims. Any
// decode failure, signature mismatch, expiry, or missing id claim maps to
// ErrInvalidToken.
func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, apperrors.ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return AccessClaims{}, apperrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, apperrors.ErrInvalidToken
	}
	if claims.UserID == 0 {
		return AccessClaims{}, apperrors.ErrInvalidToken
	}

	return *claims, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

type ctxKey string

var userIDKey ctxKey = "user_id"

// WithUserContext stores the authenticated user id on the request context.
func WithUserContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retrieves the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}
