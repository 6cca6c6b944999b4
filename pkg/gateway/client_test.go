package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)
	return client
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestClient_Get_DecodesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/active", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"id":"p1"}]}`))
	})

	env, err := client.Get(context.Background(), "/api/v1/products/active", "tok-123", nil)
	require.NoError(t, err)
	assert.True(t, env.HasData())

	var products []struct {
		ID string `json:"id"`
	}
	require.NoError(t, env.Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestClient_Get_AnonymousHasNoAuthHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := client.Get(context.Background(), "/api/v1/products/active", "", nil)
	assert.NoError(t, err)
}

func TestClient_Get_QueryParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "o1", r.URL.Query().Get("orderId"))
		w.Write([]byte(`{"data":{"paymentStatus":"PENDING"}}`))
	})

	query := url.Values{"orderId": {"o1"}}
	env, err := client.Get(context.Background(), "/api/v1/payment/status", "tok", query)
	require.NoError(t, err)
	assert.True(t, env.HasData())
}

func TestClient_Delete_EmptyBodyIsSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	env, err := client.Delete(context.Background(), "/api/v1/me/cart/items/i1", "tok")
	require.NoError(t, err)
	assert.False(t, env.HasData())
	assert.ErrorIs(t, env.Decode(&struct{}{}), ErrMissingData)
}

func TestClient_RelaysServerMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Số lượng vượt quá tồn kho"}`))
	})

	_, err := client.Patch(context.Background(), "/api/v1/me/cart/items/i1", "tok", map[string]int{"quantity": 99})
	require.Error(t, err)
	assert.Equal(t, "Số lượng vượt quá tồn kho", Message(err, "fallback"))
}

func TestClient_MessageFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Get(context.Background(), "/api/v1/me", "tok", nil)
	require.Error(t, err)
	assert.Equal(t, "fallback", Message(err, "fallback"))
}

func TestClient_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	})

	_, err := client.Get(context.Background(), "/api/v1/me", "stale", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, IsAuthError(err))
	assert.Equal(t, "token expired", Message(err, "fallback"))
}

func TestClient_NetworkError(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/api/v1/me", "", nil)
	assert.ErrorIs(t, err, ErrNetwork)
}
