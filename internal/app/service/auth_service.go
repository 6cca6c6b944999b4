package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	appGateway "github.com/dsev/locknlock-bff/internal/app/gateway"
	"github.com/dsev/locknlock-bff/internal/app/model"
	"github.com/dsev/locknlock-bff/pkg/gateway"
	"github.com/dsev/locknlock-bff/pkg/logger"
)

var ErrLoginFailed = errors.New("login failed")

// Session is a successful login ready to be written into the auth cookie.
type Session struct {
	Token string
	TTL   time.Duration
	User  model.User
}

// AuthService fronts the backend auth endpoints and owns cookie lifetimes.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*Session, error)
	Register(ctx context.Context, payload json.RawMessage) (*gateway.Envelope, error)
	Logout(ctx context.Context, token string)
	Me(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	authGateway appGateway.AuthGateway
	cookieTTL   time.Duration
}

func NewAuthService(authGateway appGateway.AuthGateway, cookieTTL time.Duration) AuthService {
	return &authService{
		authGateway: authGateway,
		cookieTTL:   cookieTTL,
	}
}

// Login exchanges credentials for an access token. The cookie lifetime
// follows the token's own expiry when the token carries one, capped at the
// configured default.
func (s *authService) Login(ctx context.Context, username, password string) (*Session, error) {
	result, err := s.authGateway.Login(ctx, username, password)
	if err != nil {
		logger.Warn("Login failed", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, ErrLoginFailed
	}

	logger.Info("User logged in", map[string]interface{}{
		"username": username,
	})
	return &Session{
		Token: result.AccessToken,
		TTL:   s.sessionTTL(result.AccessToken),
		User:  result.User,
	}, nil
}

// sessionTTL reads the exp claim without verifying the signature. The BFF
// never trusts token contents, the backend verifies on every forwarded
// call, the claim only trims the cookie so it dies with the token.
func (s *authService) sessionTTL(token string) time.Duration {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return s.cookieTTL
	}

	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return s.cookieTTL
	}

	ttl := time.Until(expiry.Time)
	if ttl <= 0 || ttl > s.cookieTTL {
		return s.cookieTTL
	}
	return ttl
}

func (s *authService) Register(ctx context.Context, payload json.RawMessage) (*gateway.Envelope, error) {
	return s.authGateway.Register(ctx, payload)
}

// Logout tells the backend best effort. The cookie is cleared regardless,
// a failed backend call must not keep the shopper logged in.
func (s *authService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.authGateway.Logout(ctx, token); err != nil {
		logger.Warn("Backend logout failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *authService) Me(ctx context.Context, token string) (*model.User, error) {
	return s.authGateway.Me(ctx, token)
}
