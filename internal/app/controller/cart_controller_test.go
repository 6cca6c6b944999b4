package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsev/locknlock-bff/internal/app/model"
	"github.com/dsev/locknlock-bff/internal/app/service"
	"github.com/dsev/locknlock-bff/internal/middleware"
	"github.com/dsev/locknlock-bff/pkg/gateway"
)

type fakeCartService struct {
	view      model.CartView
	addErr    error
	updateErr error
	removeErr error

	lastToken    string
	lastItemID   string
	lastQuantity int
}

func (f *fakeCartService) Refresh(ctx context.Context, token string) model.CartView {
	f.lastToken = token
	return f.view
}

func (f *fakeCartService) AddItem(ctx context.Context, token, productVariantID string, quantity int) (model.CartView, error) {
	f.lastToken = token
	f.lastQuantity = quantity
	return f.view, f.addErr
}

func (f *fakeCartService) UpdateQuantity(ctx context.Context, token, itemID string, quantity int) (model.CartView, error) {
	f.lastItemID = itemID
	f.lastQuantity = quantity
	return f.view, f.updateErr
}

func (f *fakeCartService) RemoveItem(ctx context.Context, token, itemID string) (model.CartView, error) {
	f.lastItemID = itemID
	return f.view, f.removeErr
}

func (f *fakeCartService) View(token string) model.CartView { return f.view }

func (f *fakeCartService) Clear(token string) {}

func (f *fakeCartService) SweepIdle(maxIdle time.Duration) int { return 0 }

func setupCartRouter(svc service.CartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	session := middleware.NewSessionMiddleware("auth-token")
	ctrl := NewCartController(svc)

	me := router.Group("/api/me", session.RequireSession())
	{
		me.GET("/cart", ctrl.GetCart)
		me.POST("/cart/items", ctrl.AddItem)
		me.PATCH("/cart/items/:id", ctrl.UpdateItem)
		me.DELETE("/cart/items/:id", ctrl.RemoveItem)
	}
	return router
}

func authedRequest(method, target string, body []byte) *http.Request {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: "tok-123"})
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCartController_GetCart(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &fakeCartService{
			view: model.CartView{
				Items:     []model.CartLineItem{{ID: "ci-1", Name: "Bình giữ nhiệt", UnitPrice: 350000, Quantity: 2}},
				ItemCount: 2,
				Subtotal:  700000,
			},
		}
		router := setupCartRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/me/cart", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok-123", svc.lastToken)

		var resp struct {
			Success bool           `json:"success"`
			Data    model.CartView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Data.ItemCount)
		assert.Equal(t, int64(700000), resp.Data.Subtotal)
	})

	t.Run("Error_NoSession", func(t *testing.T) {
		router := setupCartRouter(&fakeCartService{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me/cart", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCartController_AddItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &fakeCartService{view: model.CartView{ItemCount: 1}}
		router := setupCartRouter(svc)

		body := []byte(`{"productVariantId":"v-1","quantity":2}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/me/cart/items", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 2, svc.lastQuantity)
	})

	t.Run("Error_MissingVariant", func(t *testing.T) {
		router := setupCartRouter(&fakeCartService{})

		body := []byte(`{"quantity":2}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/me/cart/items", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_INVALID_INPUT")
	})

	t.Run("Error_BackendMessageRelayed", func(t *testing.T) {
		svc := &fakeCartService{
			addErr: &gateway.APIError{Status: 409, Message: "Số lượng vượt quá tồn kho"},
		}
		router := setupCartRouter(svc)

		body := []byte(`{"productVariantId":"v-1","quantity":99}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/me/cart/items", body))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Số lượng vượt quá tồn kho")
	})

	t.Run("Error_SessionExpired", func(t *testing.T) {
		svc := &fakeCartService{
			addErr: gateway.ErrUnauthorized,
		}
		router := setupCartRouter(svc)

		body := []byte(`{"productVariantId":"v-1","quantity":1}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/me/cart/items", body))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCartController_UpdateItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &fakeCartService{view: model.CartView{ItemCount: 5}}
		router := setupCartRouter(svc)

		body := []byte(`{"quantity":5}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPatch, "/api/me/cart/items/ci-1", body))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ci-1", svc.lastItemID)
		assert.Equal(t, 5, svc.lastQuantity)
	})

	t.Run("Error_InvalidQuantity", func(t *testing.T) {
		svc := &fakeCartService{updateErr: service.ErrInvalidQuantity}
		router := setupCartRouter(svc)

		body := []byte(`{"quantity":-1}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPatch, "/api/me/cart/items/ci-1", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartController_RemoveItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &fakeCartService{view: model.CartView{}}
		router := setupCartRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodDelete, "/api/me/cart/items/ci-1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ci-1", svc.lastItemID)
	})

	t.Run("Error_NetworkBecomesBadGateway", func(t *testing.T) {
		svc := &fakeCartService{removeErr: gateway.ErrNetwork}
		router := setupCartRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodDelete, "/api/me/cart/items/ci-1", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
