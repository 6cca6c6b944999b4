package gateway

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/dsev/locknlock-bff/pkg/gateway"
)

// AdminGateway forwards admin console requests to the backend unchanged.
// The console owns request and response shapes; the BFF only attaches the
// caller's credentials and relays whatever the backend says.
type AdminGateway interface {
	Forward(ctx context.Context, token, method, path string, query url.Values, payload json.RawMessage) (*gateway.Envelope, error)
}

type adminGateway struct {
	client *gateway.Client
}

func NewAdminGateway(client *gateway.Client) AdminGateway {
	return &adminGateway{client: client}
}

func (g *adminGateway) Forward(ctx context.Context, token, method, path string, query url.Values, payload json.RawMessage) (*gateway.Envelope, error) {
	// An empty payload must stay an untyped nil, a typed nil RawMessage
	// would be marshalled into a literal null body.
	var body interface{}
	if len(payload) > 0 {
		body = payload
	}

	switch method {
	case "POST":
		return g.client.Post(ctx, path, token, body)
	case "PUT":
		return g.client.Put(ctx, path, token, body)
	case "PATCH":
		return g.client.Patch(ctx, path, token, body)
	case "DELETE":
		return g.client.Delete(ctx, path, token)
	default:
		return g.client.Get(ctx, path, token, query)
	}
}
