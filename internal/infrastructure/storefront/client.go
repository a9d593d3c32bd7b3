package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/storefront/cartsync/internal/domain/cart"
)

const (
	// maxResponseSize limits the response body size to prevent memory exhaustion
	maxResponseSize = 4 * 1024 * 1024 // 4MB max response

	pathCartItems      = "/cart-items"
	pathAddToCart      = "/add-to-cart"
	pathUpdateQuantity = "/update-cart-item-quantity"
	pathDeleteItem     = "/delete-cart-item"
	pathClearCart      = "/clear-cart"
	pathOrderItems     = "/order-items"
)

// Client implements the cart.RemoteCart contract against the remote cart
// service HTTP API. It is stateless: the session credential is supplied per
// call and forwarded as a bearer token.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new remote cart client with the given configuration
func NewClient(config *ClientConfig) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// FetchItems retrieves the full cart for the session credential
func (c *Client) FetchItems(ctx context.Context, credential string) ([]cart.LineItem, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, pathCartItems, credential, nil)
	if err != nil {
		return nil, err
	}

	var resp CartItemsResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", cart.ErrRemoteInvalidResponse, err)
	}
	if !resp.IsSuccess() {
		return nil, refused(resp.Message)
	}

	items := make([]cart.LineItem, 0, len(resp.Data))
	for _, item := range resp.Data {
		items = append(items, item.toDomain())
	}
	return items, nil
}

// AddItem creates a cart line for the product
func (c *Client) AddItem(ctx context.Context, credential, productID string) error {
	return c.doMutation(ctx, pathAddToCart, credential, AddToCartRequest{ProductID: productID})
}

// UpdateQuantity sets the quantity of an existing cart line
func (c *Client) UpdateQuantity(ctx context.Context, credential, id string, quantity int64) error {
	return c.doMutation(ctx, pathUpdateQuantity, credential, UpdateQuantityRequest{ID: id, Quantity: quantity})
}

// DeleteItem removes a single cart line
func (c *Client) DeleteItem(ctx context.Context, credential, id string) error {
	return c.doMutation(ctx, pathDeleteItem, credential, DeleteItemRequest{ID: id})
}

// Clear removes cart entries scoped to the given product identifiers, or all
// entries when none are given
func (c *Client) Clear(ctx context.Context, credential string, productIDs []string) error {
	return c.doMutation(ctx, pathClearCart, credential, ClearCartRequest{SelectedProductIDs: productIDs})
}

// FetchOrders retrieves the order history for the session credential
func (c *Client) FetchOrders(ctx context.Context, credential string) ([]cart.Order, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, pathOrderItems, credential, nil)
	if err != nil {
		return nil, err
	}

	var resp OrderItemsResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", cart.ErrRemoteInvalidResponse, err)
	}
	if !resp.IsSuccess() {
		return nil, refused(resp.Message)
	}

	orders := make([]cart.Order, 0, len(resp.Data))
	for _, order := range resp.Data {
		orders = append(orders, order.toDomain())
	}
	return orders, nil
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// doMutation posts a mutation body and checks the success envelope
func (c *Client) doMutation(ctx context.Context, path, credential string, body any) error {
	respBody, err := c.doRequest(ctx, http.MethodPost, path, credential, body)
	if err != nil {
		return err
	}

	var resp BaseResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("%w: %v", cart.ErrRemoteInvalidResponse, err)
	}
	if !resp.IsSuccess() {
		return refused(resp.Message)
	}
	return nil
}

// doRequest performs an HTTP request against the remote cart API
func (c *Client) doRequest(ctx context.Context, method, path, credential string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("storefront: failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	url := c.config.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("storefront: failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cart.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("storefront: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, cart.ErrRemoteUnauthenticated
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d", cart.ErrRemoteRequestFailed, resp.StatusCode)
	}

	return respBody, nil
}

func refused(message string) error {
	if message == "" {
		message = "no failure message"
	}
	return fmt.Errorf("%w: %s", cart.ErrRemoteOperationRefused, message)
}

// Ensure Client implements the RemoteCart contract
var _ cart.RemoteCart = (*Client)(nil)
