package service

import (
	"context"
	"time"

	appGateway "github.com/dsev/locknlock-bff/internal/app/gateway"
	"github.com/dsev/locknlock-bff/internal/app/model"
	"github.com/dsev/locknlock-bff/pkg/gateway"
	"github.com/dsev/locknlock-bff/pkg/logger"
	"github.com/dsev/locknlock-bff/pkg/redis"
)

const catalogCacheKey = "locknlock:catalog:active"

// CatalogService serves the product catalog to the storefront. The active
// catalog is cached briefly because cart image enrichment re-reads it on
// every cart sync.
type CatalogService interface {
	ActiveProducts(ctx context.Context) ([]model.Product, error)
	VariantImageIndex(ctx context.Context) map[string]string
	ProductByID(ctx context.Context, id string) (*gateway.Envelope, error)
	Search(ctx context.Context, query string) (*gateway.Envelope, error)
	ByCategory(ctx context.Context, categoryID string) (*gateway.Envelope, error)
	ByTag(ctx context.Context, tagID string) (*gateway.Envelope, error)
	Tags(ctx context.Context) (*gateway.Envelope, error)
	TagByID(ctx context.Context, id string) (*gateway.Envelope, error)
	Categories(ctx context.Context) (*gateway.Envelope, error)
}

type catalogService struct {
	catalogGateway appGateway.CatalogGateway
	cacheTTL       time.Duration
}

func NewCatalogService(catalogGateway appGateway.CatalogGateway, cacheTTL time.Duration) CatalogService {
	return &catalogService{
		catalogGateway: catalogGateway,
		cacheTTL:       cacheTTL,
	}
}

// ActiveProducts returns the live catalog, served from cache when fresh.
func (s *catalogService) ActiveProducts(ctx context.Context) ([]model.Product, error) {
	var cached []model.Product
	hit, err := redis.GetJSON(ctx, catalogCacheKey, &cached)
	if err != nil {
		logger.Warn("Failed to read catalog cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if hit {
		return cached, nil
	}

	products, err := s.catalogGateway.ActiveProducts(ctx)
	if err != nil {
		logger.Error("Failed to fetch active products", err, nil)
		return nil, err
	}

	if err := redis.SetJSON(ctx, catalogCacheKey, products, s.cacheTTL); err != nil {
		logger.Warn("Failed to cache catalog", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Debug("Fetched active products", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

// VariantImageIndex maps variant ids to the first image of their product.
// A catalog fetch failure yields an empty index, callers render without
// images rather than failing.
func (s *catalogService) VariantImageIndex(ctx context.Context) map[string]string {
	index := make(map[string]string)

	products, err := s.ActiveProducts(ctx)
	if err != nil {
		return index
	}

	for i := range products {
		if len(products[i].Images) == 0 {
			continue
		}
		image := products[i].Images[0]
		for j := range products[i].Variants {
			index[products[i].Variants[j].ID] = image
		}
	}
	return index
}

func (s *catalogService) ProductByID(ctx context.Context, id string) (*gateway.Envelope, error) {
	return s.catalogGateway.ProductByID(ctx, id)
}

func (s *catalogService) Search(ctx context.Context, query string) (*gateway.Envelope, error) {
	return s.catalogGateway.Search(ctx, query)
}

func (s *catalogService) ByCategory(ctx context.Context, categoryID string) (*gateway.Envelope, error) {
	return s.catalogGateway.ByCategory(ctx, categoryID)
}

func (s *catalogService) ByTag(ctx context.Context, tagID string) (*gateway.Envelope, error) {
	return s.catalogGateway.ByTag(ctx, tagID)
}

func (s *catalogService) Tags(ctx context.Context) (*gateway.Envelope, error) {
	return s.catalogGateway.Tags(ctx)
}

func (s *catalogService) TagByID(ctx context.Context, id string) (*gateway.Envelope, error) {
	return s.catalogGateway.TagByID(ctx, id)
}

func (s *catalogService) Categories(ctx context.Context) (*gateway.Envelope, error) {
	return s.catalogGateway.Categories(ctx)
}
