package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"lichess-gateway/config"
	"lichess-gateway/internal/domain/user"
	apperrors "lichess-gateway/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, byEmail: make(map[string]user.User)}
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, apperrors.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) Create(_ context.Context, email, hashedPassword string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[email]; ok {
		return user.User{}, apperrors.ErrAlreadyExists
	}
	u := user.User{ID: r.nextID, Email: email, HashedPassword: hashedPassword, CreatedAt: time.Now()}
	r.nextID++
	r.byEmail[email] = u
	return u, nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "unit-test-secret",
		JWTAlgorithm:  "HS256",
		JWTExpiryDays: 80,
	}
}

func newTestAuthService(t *testing.T, repo *memUserRepo) *AuthService {
	t.Helper()
	svc, err := NewAuthService(repo, testAuthConfig())
	require.NoError(t, err)
	return svc
}

func TestNewAuthService_RejectsNonHMACAlgorithm(t *testing.T) {
	cfg := testAuthConfig()
	cfg.JWTAlgorithm = "RS256"
	_, err := NewAuthService(newMemUserRepo(), cfg)
	assert.Error(t, err)

	cfg.JWTAlgorithm = "bogus"
	_, err = NewAuthService(newMemUserRepo(), cfg)
	assert.Error(t, err)
}

func TestAuthService_SignupThenLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(t, repo)
	ctx := context.Background()

	signupToken, err := svc.Signup(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(signupToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)

	loginToken, err := svc.Login(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)

	loginClaims, err := svc.ParseAccessToken(loginToken)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, loginClaims.UserID)
}

func TestAuthService_DuplicateSignup(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(t, repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "bob@example.com", "first-password")
	require.NoError(t, err)
	stored := repo.byEmail["bob@example.com"]

	_, err = svc.Signup(ctx, "bob@example.com", "second-password")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.Equal(t, stored, repo.byEmail["bob@example.com"], "stored record must not change")
}

func TestAuthService_LoginFailuresIndistinguishable(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(t, repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "carol@example.com", "correct-password")
	require.NoError(t, err)

	_, wrongPass := svc.Login(ctx, "carol@example.com", "wrong-password")
	_, noUser := svc.Login(ctx, "nobody@example.com", "whatever")

	assert.ErrorIs(t, wrongPass, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), noUser.Error())
}

func TestAuthService_ExpiredToken(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(t, repo)
	svc.ttl = -time.Minute

	token, err := svc.Signup(context.Background(), "dave@example.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthService_TamperedToken(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(t, repo)

	token, err := svc.Signup(context.Background(), "erin@example.com", "pw123456")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.ParseAccessToken(tampered)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = svc.ParseAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = svc.ParseAccessToken("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthService_TokenWithoutIDClaim(t *testing.T) {
	svc := newTestAuthService(t, newMemUserRepo())

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email_ID": "ghost@example.com",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := anonymous.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(signed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
