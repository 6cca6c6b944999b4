package service

import (
	"context"
	"errors"
	"sync"
	"time"

	appGateway "github.com/dsev/locknlock-bff/internal/app/gateway"
	"github.com/dsev/locknlock-bff/internal/app/model"
	"github.com/dsev/locknlock-bff/pkg/logger"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

// CartService keeps a per-shopper cart mirror and syncs it with the backend.
// Reads are served from the mirror, mutations go to the backend first and
// the mirror follows. Sync failures never blank an already rendered cart.
type CartService interface {
	Refresh(ctx context.Context, token string) model.CartView
	AddItem(ctx context.Context, token, productVariantID string, quantity int) (model.CartView, error)
	UpdateQuantity(ctx context.Context, token, itemID string, quantity int) (model.CartView, error)
	RemoveItem(ctx context.Context, token, itemID string) (model.CartView, error)
	View(token string) model.CartView
	Clear(token string)
	SweepIdle(maxIdle time.Duration) int
}

// CartOptions tunes cart sync behavior.
type CartOptions struct {
	// OptimisticRemoval keeps an item removed locally even when the backend
	// delete fails. The next refresh reconciles either way.
	OptimisticRemoval bool
}

type cartEntry struct {
	store    *CartStore
	lastSeen time.Time
}

type cartService struct {
	cartGateway    appGateway.CartGateway
	catalogService CatalogService
	options        CartOptions

	mu      sync.Mutex
	entries map[string]*cartEntry
}

func NewCartService(cartGateway appGateway.CartGateway, catalogService CatalogService, options CartOptions) CartService {
	return &cartService{
		cartGateway:    cartGateway,
		catalogService: catalogService,
		options:        options,
		entries:        make(map[string]*cartEntry),
	}
}

func (s *cartService) storeFor(token string) *CartStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		entry = &cartEntry{store: NewCartStore()}
		s.entries[token] = entry
	}
	entry.lastSeen = time.Now()
	return entry.store
}

// Refresh pulls the backend cart, enriches lines with catalog images and
// replaces the mirror. On any failure the previous mirror is returned
// unchanged so the storefront keeps rendering what it had.
func (s *cartService) Refresh(ctx context.Context, token string) model.CartView {
	store := s.storeFor(token)

	lines, err := s.cartGateway.FetchCart(ctx, token)
	if err != nil {
		logger.Warn("Failed to refresh cart, keeping local state", map[string]interface{}{
			"error": err.Error(),
		})
		return store.View()
	}

	images := s.catalogService.VariantImageIndex(ctx)

	items := make([]model.CartLineItem, 0, len(lines))
	for i := range lines {
		items = append(items, s.toLineItem(lines[i], images))
	}
	store.ReplaceAll(items)

	logger.Debug("Cart refreshed", map[string]interface{}{
		"item_count": len(items),
	})
	return store.View()
}

func (s *cartService) toLineItem(line model.CartLine, images map[string]string) model.CartLineItem {
	imageURL := line.ImageURL
	if imageURL == "" {
		imageURL = images[line.ProductVariantID]
	}
	return model.CartLineItem{
		ID:        line.ID,
		Name:      line.ProductName,
		UnitPrice: line.UnitPrice,
		ImageURL:  imageURL,
		Quantity:  line.Quantity,
	}
}

// AddItem adds a variant to the backend cart, then merges the returned line
// into the mirror.
func (s *cartService) AddItem(ctx context.Context, token, productVariantID string, quantity int) (model.CartView, error) {
	store := s.storeFor(token)

	if quantity < 1 {
		return store.View(), ErrInvalidQuantity
	}

	line, err := s.cartGateway.AddItem(ctx, token, productVariantID, quantity)
	if err != nil {
		logger.Error("Failed to add cart item", err, map[string]interface{}{
			"product_variant_id": productVariantID,
		})
		return store.View(), err
	}

	images := s.catalogService.VariantImageIndex(ctx)
	store.AddOrMerge(s.toLineItem(*line, images))

	logger.Info("Cart item added", map[string]interface{}{
		"item_id":  line.ID,
		"quantity": quantity,
	})
	return store.View(), nil
}

// UpdateQuantity changes a line's quantity on the backend first. Quantities
// below one are rejected before any call goes out.
func (s *cartService) UpdateQuantity(ctx context.Context, token, itemID string, quantity int) (model.CartView, error) {
	store := s.storeFor(token)

	if quantity < 1 {
		return store.View(), ErrInvalidQuantity
	}

	if err := s.cartGateway.UpdateItemQuantity(ctx, token, itemID, quantity); err != nil {
		logger.Error("Failed to update cart item quantity", err, map[string]interface{}{
			"item_id": itemID,
		})
		return store.View(), err
	}

	store.SetQuantity(itemID, quantity)
	return store.View(), nil
}

// RemoveItem drops a line. The mirror is updated before the backend call,
// and under OptimisticRemoval a backend failure does not bring the line
// back, the next refresh settles it.
func (s *cartService) RemoveItem(ctx context.Context, token, itemID string) (model.CartView, error) {
	store := s.storeFor(token)

	store.Remove(itemID)

	if err := s.cartGateway.RemoveItem(ctx, token, itemID); err != nil {
		logger.Error("Failed to remove cart item", err, map[string]interface{}{
			"item_id":            itemID,
			"optimistic_removal": s.options.OptimisticRemoval,
		})
		if s.options.OptimisticRemoval {
			return store.View(), nil
		}
		return s.Refresh(ctx, token), err
	}

	return store.View(), nil
}

func (s *cartService) View(token string) model.CartView {
	return s.storeFor(token).View()
}

// Clear wipes the mirror, used after a successful checkout or logout.
func (s *cartService) Clear(token string) {
	s.storeFor(token).Clear()
}

// SweepIdle evicts cart mirrors not touched within maxIdle and returns how
// many were dropped.
func (s *cartService) SweepIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	swept := 0
	for token, entry := range s.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(s.entries, token)
			swept++
		}
	}
	return swept
}
