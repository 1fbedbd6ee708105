// Package checkout converts a cart into a persisted order by posting it to
// the order service. One round-trip per attempt, no automatic retries; a
// failed submission leaves the cart untouched so the user can retry.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/SOf1AN3/myks-sports-bolt/cart"
	"github.com/SOf1AN3/myks-sports-bolt/models"
)

var (
	// ErrEmptyCart rejects checkout before any network call is made.
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrSubmissionInFlight blocks a second submission while one is still
	// pending, so a double click cannot create duplicate orders.
	ErrSubmissionInFlight = errors.New("checkout: submission already in flight")
)

// APIError is a non-success response from the order service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("checkout: order service returned %d: %s", e.StatusCode, e.Message)
}

// Client submits orders to the backend API.
type Client struct {
	baseURL  string
	http     *http.Client
	inFlight atomic.Bool
}

// NewClient builds a client for the given API base URL
// (e.g. "http://localhost:5000/api"). A nil httpClient falls back to a
// 15 second default.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// SubmitOrder serializes the cart into an order payload and posts it.
// On success the persisted order is returned and the cart is cleared and
// closed; on any failure the cart is left exactly as it was.
func (c *Client) SubmitOrder(ctx context.Context, store *cart.Store) (*models.Order, error) {
	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer c.inFlight.Store(false)

	payload := models.CreateOrderRequest{
		Items: make([]models.OrderItem, 0, len(items)),
		Total: store.TotalPrice(),
	}
	for _, li := range items {
		payload.Items = append(payload.Items, models.OrderItem{
			ProductID: li.Product.ID,
			Name:      li.Product.Name,
			Price:     li.UnitPrice(),
			Quantity:  li.Quantity,
			Size:      li.Size,
			Color:     li.Color,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("checkout: encode order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("checkout: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checkout: submit order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("checkout: decode order response: %w", err)
	}

	store.Clear()
	store.Close()
	return &order, nil
}

func readErrorMessage(r io.Reader) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4<<10)).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return "order submission failed"
}
