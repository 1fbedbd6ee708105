package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOf1AN3/myks-sports-bolt/cart"
	"github.com/SOf1AN3/myks-sports-bolt/models"
)

func floatPtr(v float64) *float64 { return &v }

func filledCart() *cart.Store {
	s := cart.NewStore()
	s.AddItem(models.Product{
		ID:            "1",
		Name:          "T-Shirt Performance Pro",
		Price:         45,
		OriginalPrice: floatPtr(60),
		OnSale:        true,
	}, "M", "Noir")
	s.AddItem(models.Product{
		ID:    "2",
		Name:  "Legging Ultra Flex",
		Price: 65,
	}, "S", "Violet")
	s.Open()
	return s
}

func TestSubmitOrderEmptyCartSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, nil)
	order, err := c.SubmitOrder(context.Background(), cart.NewStore())

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)
	assert.Zero(t, calls.Load())
}

func TestSubmitOrderSuccessClearsAndClosesCart(t *testing.T) {
	var received models.CreateOrderRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{
			ID:     "order-1",
			Items:  models.OrderItemList(received.Items),
			Total:  received.Total,
			Status: models.OrderStatusPending,
		})
	}))
	defer ts.Close()

	store := filledCart()
	c := NewClient(ts.URL+"/", nil)

	order, err := c.SubmitOrder(context.Background(), store)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// Sale item is charged at its pre-discount price: 60 + 65.
	require.Len(t, received.Items, 2)
	assert.InDelta(t, 60, received.Items[0].Price, 1e-9)
	assert.InDelta(t, 125, received.Total, 1e-9)

	assert.Zero(t, store.Len())
	assert.False(t, store.IsOpen())
}

func TestSubmitOrderServerErrorLeavesCartUntouched(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Items are required and total must be greater than zero"})
	}))
	defer ts.Close()

	store := filledCart()
	c := NewClient(ts.URL, nil)

	order, err := c.SubmitOrder(context.Background(), store)
	require.Error(t, err)
	assert.Nil(t, order)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Items are required and total must be greater than zero", apiErr.Message)

	assert.Equal(t, 2, store.Len())
	assert.True(t, store.IsOpen())
}

func TestSubmitOrderNetworkFailureLeavesCartUntouched(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	store := filledCart()
	c := NewClient(ts.URL, nil)

	_, err := c.SubmitOrder(context.Background(), store)
	require.Error(t, err)
	assert.Equal(t, 2, store.Len())
}

func TestSubmitOrderRejectsConcurrentSubmission(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{ID: "order-1", Status: models.OrderStatusPending})
	}))
	defer ts.Close()

	store := filledCart()
	c := NewClient(ts.URL, nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := c.SubmitOrder(context.Background(), store)
		firstDone <- err
	}()

	// Wait until the first submission is in flight, then try a second one.
	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("first submission never reached the server")
	}

	_, err := c.SubmitOrder(context.Background(), filledCart())
	require.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-firstDone)
}

func TestSubmitOrderMalformedErrorBodyGetsFallbackMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, nil).SubmitOrder(context.Background(), filledCart())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "order submission failed", apiErr.Message)
}
