package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dsev/locknlock-bff/internal/app/model"
	"github.com/dsev/locknlock-bff/pkg/gateway"
)

// AuthGateway talks to the backend auth endpoints.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*model.AuthResult, error)
	Register(ctx context.Context, payload json.RawMessage) (*gateway.Envelope, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*model.User, error)
}

type authGateway struct {
	client *gateway.Client
}

func NewAuthGateway(client *gateway.Client) AuthGateway {
	return &authGateway{client: client}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (g *authGateway) Login(ctx context.Context, username, password string) (*model.AuthResult, error) {
	env, err := g.client.Post(ctx, "/api/v1/auth/login", "", loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	var result model.AuthResult
	if err := env.Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode login result: %w", err)
	}
	return &result, nil
}

func (g *authGateway) Register(ctx context.Context, payload json.RawMessage) (*gateway.Envelope, error) {
	return g.client.Post(ctx, "/api/v1/auth/register", "", payload)
}

func (g *authGateway) Logout(ctx context.Context, token string) error {
	_, err := g.client.Post(ctx, "/api/v1/auth/logout", token, nil)
	return err
}

func (g *authGateway) Me(ctx context.Context, token string) (*model.User, error) {
	env, err := g.client.Get(ctx, "/api/v1/me", token, nil)
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := env.Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}
