package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dsev/locknlock-bff/internal/app/model"
	"github.com/dsev/locknlock-bff/pkg/gateway"
)

// OrderGateway places orders and drives QR payments against the backend.
type OrderGateway interface {
	CreateOrder(ctx context.Context, token string, shipping model.ShippingInfo) (*model.Order, error)
	RequestQR(ctx context.Context, token, orderID string) (*model.PaymentQR, error)
	PaymentStatus(ctx context.Context, token, orderID string) (*model.PaymentState, error)
	RelayWebhook(ctx context.Context, payload json.RawMessage) (*gateway.Envelope, error)
}

type orderGateway struct {
	client *gateway.Client
}

func NewOrderGateway(client *gateway.Client) OrderGateway {
	return &orderGateway{client: client}
}

type createOrderRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city"`
	Ward        string `json:"ward"`
	Street      string `json:"street"`
	Note        string `json:"note,omitempty"`
}

func (g *orderGateway) CreateOrder(ctx context.Context, token string, shipping model.ShippingInfo) (*model.Order, error) {
	body := createOrderRequest{
		FullName:    shipping.FullName,
		PhoneNumber: shipping.PhoneNumber,
		City:        shipping.City,
		Ward:        shipping.Ward,
		Street:      shipping.Street,
		Note:        shipping.Note,
	}

	env, err := g.client.Post(ctx, "/api/v1/orders", token, body)
	if err != nil {
		return nil, err
	}

	var order model.Order
	if err := env.Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}
	return &order, nil
}

func (g *orderGateway) RequestQR(ctx context.Context, token, orderID string) (*model.PaymentQR, error) {
	env, err := g.client.Post(ctx, "/api/v1/sepay", token, map[string]string{"orderId": orderID})
	if err != nil {
		return nil, err
	}

	var qr model.PaymentQR
	if err := env.Decode(&qr); err != nil {
		return nil, fmt.Errorf("failed to decode payment QR: %w", err)
	}
	return &qr, nil
}

func (g *orderGateway) PaymentStatus(ctx context.Context, token, orderID string) (*model.PaymentState, error) {
	env, err := g.client.Get(ctx, "/api/v1/payment/status", token, url.Values{"orderId": {orderID}})
	if err != nil {
		return nil, err
	}

	var state model.PaymentState
	if err := env.Decode(&state); err != nil {
		return nil, fmt.Errorf("failed to decode payment status: %w", err)
	}
	return &state, nil
}

func (g *orderGateway) RelayWebhook(ctx context.Context, payload json.RawMessage) (*gateway.Envelope, error) {
	return g.client.Post(ctx, "/api/v1/sepay/webhook", "", payload)
}
