package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dsev/locknlock-bff/internal/app/model"
)

type fakeCartGateway struct {
	fetchLines  []model.CartLine
	fetchErr    error
	addLine     *model.CartLine
	addErr      error
	updateErr   error
	removeErr   error
	fetchCalls  int
	removeCalls int
}

func (f *fakeCartGateway) FetchCart(ctx context.Context, token string) ([]model.CartLine, error) {
	f.fetchCalls++
	return f.fetchLines, f.fetchErr
}

func (f *fakeCartGateway) AddItem(ctx context.Context, token, productVariantID string, quantity int) (*model.CartLine, error) {
	return f.addLine, f.addErr
}

func (f *fakeCartGateway) UpdateItemQuantity(ctx context.Context, token, itemID string, quantity int) error {
	return f.updateErr
}

func (f *fakeCartGateway) RemoveItem(ctx context.Context, token, itemID string) error {
	f.removeCalls++
	return f.removeErr
}

type fakeCatalogService struct {
	CatalogService
	images map[string]string
}

func (f *fakeCatalogService) VariantImageIndex(ctx context.Context) map[string]string {
	if f.images == nil {
		return map[string]string{}
	}
	return f.images
}

func newTestCartService(gw *fakeCartGateway, images map[string]string, options CartOptions) CartService {
	return NewCartService(gw, &fakeCatalogService{images: images}, options)
}

func TestCartService_Refresh(t *testing.T) {
	t.Run("Success_ReplacesMirrorAndEnrichesImages", func(t *testing.T) {
		gw := &fakeCartGateway{
			fetchLines: []model.CartLine{
				{ID: "ci-1", ProductName: "Bình giữ nhiệt", UnitPrice: 350000, Quantity: 2, ProductVariantID: "v-1"},
				{ID: "ci-2", ProductName: "Hộp cơm", UnitPrice: 180000, Quantity: 1, ProductVariantID: "v-2"},
			},
		}
		svc := newTestCartService(gw, map[string]string{"v-1": "https://cdn.example.com/v1.jpg"}, CartOptions{})

		view := svc.Refresh(context.Background(), "token-a")

		assert.Len(t, view.Items, 2)
		assert.Equal(t, "https://cdn.example.com/v1.jpg", view.Items[0].ImageURL)
		assert.Empty(t, view.Items[1].ImageURL)
		assert.Equal(t, 3, view.ItemCount)
		assert.Equal(t, int64(350000*2+180000), view.Subtotal)
	})

	t.Run("FailSilent_KeepsPreviousMirror", func(t *testing.T) {
		gw := &fakeCartGateway{
			fetchLines: []model.CartLine{{ID: "ci-1", UnitPrice: 100000, Quantity: 2, ProductVariantID: "v-1"}},
		}
		svc := newTestCartService(gw, nil, CartOptions{})
		svc.Refresh(context.Background(), "token-a")

		gw.fetchErr = errors.New("backend down")
		view := svc.Refresh(context.Background(), "token-a")

		assert.Len(t, view.Items, 1)
		assert.Equal(t, 2, view.ItemCount)
	})

	t.Run("Isolation_TokensDoNotShareCarts", func(t *testing.T) {
		gw := &fakeCartGateway{
			fetchLines: []model.CartLine{{ID: "ci-1", Quantity: 1, ProductVariantID: "v-1"}},
		}
		svc := newTestCartService(gw, nil, CartOptions{})

		svc.Refresh(context.Background(), "token-a")

		assert.Len(t, svc.View("token-a").Items, 1)
		assert.Empty(t, svc.View("token-b").Items)
	})
}

func TestCartService_AddItem(t *testing.T) {
	t.Run("Success_MergesReturnedLine", func(t *testing.T) {
		gw := &fakeCartGateway{
			addLine: &model.CartLine{ID: "ci-1", ProductName: "Ly thủy tinh", UnitPrice: 90000, Quantity: 2, ProductVariantID: "v-1"},
		}
		svc := newTestCartService(gw, nil, CartOptions{})

		view, err := svc.AddItem(context.Background(), "token-a", "v-1", 2)

		assert.NoError(t, err)
		assert.Len(t, view.Items, 1)
		assert.Equal(t, 2, view.ItemCount)
	})

	t.Run("Error_InvalidQuantity", func(t *testing.T) {
		svc := newTestCartService(&fakeCartGateway{}, nil, CartOptions{})

		_, err := svc.AddItem(context.Background(), "token-a", "v-1", 0)

		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("Error_GatewayFailureLeavesMirrorAlone", func(t *testing.T) {
		gw := &fakeCartGateway{addErr: errors.New("out of stock")}
		svc := newTestCartService(gw, nil, CartOptions{})

		view, err := svc.AddItem(context.Background(), "token-a", "v-1", 1)

		assert.Error(t, err)
		assert.Empty(t, view.Items)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	t.Run("Success_BackendFirstThenMirror", func(t *testing.T) {
		gw := &fakeCartGateway{
			fetchLines: []model.CartLine{{ID: "ci-1", UnitPrice: 100000, Quantity: 2, ProductVariantID: "v-1"}},
		}
		svc := newTestCartService(gw, nil, CartOptions{})
		svc.Refresh(context.Background(), "token-a")

		view, err := svc.UpdateQuantity(context.Background(), "token-a", "ci-1", 5)

		assert.NoError(t, err)
		assert.Equal(t, 5, view.Items[0].Quantity)
	})

	t.Run("Error_InvalidQuantityNeverReachesBackend", func(t *testing.T) {
		gw := &fakeCartGateway{updateErr: errors.New("should not be called")}
		svc := newTestCartService(gw, nil, CartOptions{})

		_, err := svc.UpdateQuantity(context.Background(), "token-a", "ci-1", 0)

		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("Error_BackendFailureKeepsOldQuantity", func(t *testing.T) {
		gw := &fakeCartGateway{
			fetchLines: []model.CartLine{{ID: "ci-1", Quantity: 2, ProductVariantID: "v-1"}},
		}
		svc := newTestCartService(gw, nil, CartOptions{})
		svc.Refresh(context.Background(), "token-a")

		gw.updateErr = errors.New("backend down")
		view, err := svc.UpdateQuantity(context.Background(), "token-a", "ci-1", 9)

		assert.Error(t, err)
		assert.Equal(t, 2, view.Items[0].Quantity)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	seed := func(gw *fakeCartGateway) {
		gw.fetchLines = []model.CartLine{
			{ID: "ci-1", Quantity: 1, ProductVariantID: "v-1"},
			{ID: "ci-2", Quantity: 1, ProductVariantID: "v-2"},
		}
	}

	t.Run("Success_RemovesLocallyAndRemotely", func(t *testing.T) {
		gw := &fakeCartGateway{}
		seed(gw)
		svc := newTestCartService(gw, nil, CartOptions{})
		svc.Refresh(context.Background(), "token-a")

		view, err := svc.RemoveItem(context.Background(), "token-a", "ci-1")

		assert.NoError(t, err)
		assert.Len(t, view.Items, 1)
		assert.Equal(t, 1, gw.removeCalls)
	})

	t.Run("Optimistic_BackendFailureKeepsItemRemoved", func(t *testing.T) {
		gw := &fakeCartGateway{}
		seed(gw)
		svc := newTestCartService(gw, nil, CartOptions{OptimisticRemoval: true})
		svc.Refresh(context.Background(), "token-a")

		gw.removeErr = errors.New("backend down")
		view, err := svc.RemoveItem(context.Background(), "token-a", "ci-1")

		assert.NoError(t, err)
		assert.Len(t, view.Items, 1)
		assert.Equal(t, "ci-2", view.Items[0].ID)
	})

	t.Run("Strict_BackendFailureResyncsAndReturnsError", func(t *testing.T) {
		gw := &fakeCartGateway{}
		seed(gw)
		svc := newTestCartService(gw, nil, CartOptions{OptimisticRemoval: false})
		svc.Refresh(context.Background(), "token-a")

		gw.removeErr = errors.New("backend down")
		view, err := svc.RemoveItem(context.Background(), "token-a", "ci-1")

		assert.Error(t, err)
		assert.Len(t, view.Items, 2)
	})
}

func TestCartService_SweepIdle(t *testing.T) {
	gw := &fakeCartGateway{
		fetchLines: []model.CartLine{{ID: "ci-1", Quantity: 1, ProductVariantID: "v-1"}},
	}
	svc := newTestCartService(gw, nil, CartOptions{})
	svc.Refresh(context.Background(), "token-a")

	assert.Equal(t, 0, svc.SweepIdle(time.Hour))
	assert.Equal(t, 1, svc.SweepIdle(0))
	assert.Empty(t, svc.View("token-a").Items)
}
