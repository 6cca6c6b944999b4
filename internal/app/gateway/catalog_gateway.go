package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dsev/locknlock-bff/internal/app/model"
	"github.com/dsev/locknlock-bff/pkg/gateway"
)

// CatalogGateway reads the product catalog. ActiveProducts is typed because
// the BFF joins against it for image enrichment and export; the browse
// endpoints are relayed to the browser as-is.
type CatalogGateway interface {
	ActiveProducts(ctx context.Context) ([]model.Product, error)
	ProductByID(ctx context.Context, id string) (*gateway.Envelope, error)
	Search(ctx context.Context, query string) (*gateway.Envelope, error)
	ByCategory(ctx context.Context, categoryID string) (*gateway.Envelope, error)
	ByTag(ctx context.Context, tagID string) (*gateway.Envelope, error)
	Tags(ctx context.Context) (*gateway.Envelope, error)
	TagByID(ctx context.Context, id string) (*gateway.Envelope, error)
	Categories(ctx context.Context) (*gateway.Envelope, error)
}

type catalogGateway struct {
	client *gateway.Client
}

func NewCatalogGateway(client *gateway.Client) CatalogGateway {
	return &catalogGateway{client: client}
}

func (g *catalogGateway) ActiveProducts(ctx context.Context) ([]model.Product, error) {
	env, err := g.client.Get(ctx, "/api/v1/products/active", "", nil)
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := env.Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (g *catalogGateway) ProductByID(ctx context.Context, id string) (*gateway.Envelope, error) {
	return g.client.Get(ctx, "/api/v1/products/"+id, "", nil)
}

func (g *catalogGateway) Search(ctx context.Context, query string) (*gateway.Envelope, error) {
	return g.client.Get(ctx, "/api/v1/products/search", "", url.Values{"q": {query}})
}

func (g *catalogGateway) ByCategory(ctx context.Context, categoryID string) (*gateway.Envelope, error) {
	return g.client.Get(ctx, "/api/v1/products/category/"+categoryID, "", nil)
}

func (g *catalogGateway) ByTag(ctx context.Context, tagID string) (*gateway.Envelope, error) {
	return g.client.Get(ctx, "/api/v1/products/tag/"+tagID, "", nil)
}

func (g *catalogGateway) Tags(ctx context.Context) (*gateway.Envelope, error) {
	return g.client.Get(ctx, "/api/v1/tags", "", nil)
}

func (g *catalogGateway) TagByID(ctx context.Context, id string) (*gateway.Envelope, error) {
	return g.client.Get(ctx, "/api/v1/tags/"+id, "", nil)
}

func (g *catalogGateway) Categories(ctx context.Context) (*gateway.Envelope, error) {
	return g.client.Get(ctx, "/api/v1/categories", "", nil)
}
