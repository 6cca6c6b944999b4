package gateway

import (
	"context"
	"fmt"

	"github.com/dsev/locknlock-bff/internal/app/model"
	"github.com/dsev/locknlock-bff/pkg/gateway"
)

// CartGateway is the remote cart store: it owns cart items, quantities and
// prices. The BFF never invents line ids; they always come from here.
type CartGateway interface {
	FetchCart(ctx context.Context, token string) ([]model.CartLine, error)
	AddItem(ctx context.Context, token, productVariantID string, quantity int) (*model.CartLine, error)
	UpdateItemQuantity(ctx context.Context, token, lineID string, quantity int) error
	RemoveItem(ctx context.Context, token, lineID string) error
}

type cartGateway struct {
	client *gateway.Client
}

func NewCartGateway(client *gateway.Client) CartGateway {
	return &cartGateway{client: client}
}

type cartPayload struct {
	Items []model.CartLine `json:"items"`
}

func (g *cartGateway) FetchCart(ctx context.Context, token string) ([]model.CartLine, error) {
	env, err := g.client.Get(ctx, "/api/v1/me/cart", token, nil)
	if err != nil {
		return nil, err
	}

	var payload cartPayload
	if err := env.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return payload.Items, nil
}

func (g *cartGateway) AddItem(ctx context.Context, token, productVariantID string, quantity int) (*model.CartLine, error) {
	body := map[string]interface{}{
		"productVariantId": productVariantID,
		"quantity":         quantity,
	}

	env, err := g.client.Post(ctx, "/api/v1/me/cart/items", token, body)
	if err != nil {
		return nil, err
	}

	var line model.CartLine
	if err := env.Decode(&line); err != nil {
		return nil, fmt.Errorf("failed to decode cart line: %w", err)
	}
	return &line, nil
}

func (g *cartGateway) UpdateItemQuantity(ctx context.Context, token, lineID string, quantity int) error {
	body := map[string]int{"quantity": quantity}

	// An empty body on 2xx is success for this contract.
	_, err := g.client.Patch(ctx, "/api/v1/me/cart/items/"+lineID, token, body)
	return err
}

func (g *cartGateway) RemoveItem(ctx context.Context, token, lineID string) error {
	_, err := g.client.Delete(ctx, "/api/v1/me/cart/items/"+lineID, token)
	return err
}
