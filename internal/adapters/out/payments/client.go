// Package payments implements the payment gateway port over the provider's
// HTTP API. Only two calls exist, charge and refund, both JSON over POST.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// Client talks to the payment provider. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a payment gateway client for the given base URL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

type chargeRequest struct {
	OrderID  string `json:"orderId"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type chargeResponse struct {
	TransactionID string `json:"transactionId"`
}

type refundRequest struct {
	OrderID string `json:"orderId"`
	Amount  string `json:"amount"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Charge captures the given amount for an order and returns the provider's
// transaction reference.
func (c *Client) Charge(
	ctx context.Context, orderID kernel.UUID, amount decimal.Decimal,
) (string, error) {
	payload := chargeRequest{
		OrderID:  orderID.String(),
		Amount:   amount.StringFixed(2),
		Currency: "EUR",
	}

	var response chargeResponse
	if err := c.post(ctx, "/v1/charges", payload, &response); err != nil {
		return "", fmt.Errorf("charge order %s: %w", orderID, err)
	}

	c.logger.Info("payment charged",
		zap.String("orderId", orderID.String()),
		zap.String("transactionId", response.TransactionID))

	return response.TransactionID, nil
}

// Refund returns the given amount for a previously charged order.
func (c *Client) Refund(ctx context.Context, orderID kernel.UUID, amount decimal.Decimal) error {
	payload := refundRequest{
		OrderID: orderID.String(),
		Amount:  amount.StringFixed(2),
	}

	if err := c.post(ctx, "/v1/refunds", payload, nil); err != nil {
		return fmt.Errorf("refund order %s: %w", orderID, err)
	}

	c.logger.Info("payment refunded", zap.String("orderId", orderID.String()))
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload, response any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var provider errorResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if unmarshalErr := json.Unmarshal(raw, &provider); unmarshalErr == nil &&
			provider.Message != "" {
			return fmt.Errorf("provider returned %d: %s", resp.StatusCode, provider.Message)
		}
		return fmt.Errorf("provider returned %d", resp.StatusCode)
	}

	if response == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(response)
}
