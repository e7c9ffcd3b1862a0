package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/feastly/feastly/internal/models"
)

// default time of retry after
const delaySeconds = 60

// bounded attempts for initiation calls
const maxCreateAttempts = 3

// gateway-side payment object status
const (
	ObjectStatusPending   = "pending"
	ObjectStatusSucceeded = "succeeded"
	ObjectStatusFailed    = "failed"
)

// Client talks to the payment gateway over HTTP
type Client struct {
	client  *http.Client
	baseURL string
	secret  []byte
}

// NewClient creates new Client instance. The secret signs webhook bodies and
// authenticates outbound calls.
func NewClient(baseURL, secret string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: baseURL,
		secret:  []byte(secret),
	}
}

// CreateRequest describes the gateway object to create
type CreateRequest struct {
	OrderRef string  `json:"order_ref"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PaymentObject is the gateway's representation of a payment
type PaymentObject struct {
	Ref          string  `json:"id"`
	Status       string  `json:"status"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	ClientSecret string  `json:"client_secret,omitempty"`
	RedirectURL  string  `json:"redirect_url,omitempty"`
}

// RefundObject is the gateway's representation of a refund
type RefundObject struct {
	Ref        string  `json:"id"`
	PaymentRef string  `json:"payment_id"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
}

// CreatePaymentIntent creates a payment intent at the gateway
func (c *Client) CreatePaymentIntent(ctx context.Context, req CreateRequest) (*PaymentObject, error) {
	return c.createPayment(ctx, "payment-intents", req)
}

// CreateCheckoutSession creates a hosted checkout session at the gateway
func (c *Client) CreateCheckoutSession(ctx context.Context, req CreateRequest) (*PaymentObject, error) {
	return c.createPayment(ctx, "checkout-sessions", req)
}

func (c *Client) createPayment(ctx context.Context, kind string, req CreateRequest) (*PaymentObject, error) {
	var lastErr error

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		obj := PaymentObject{}
		err := c.post(ctx, []string{"api", kind}, req, &obj)
		if err == nil {
			return &obj, nil
		}
		// rejections are final, only availability problems are retried
		if !isRetryable(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// CreateRefund asks the gateway to refund a settled payment
func (c *Client) CreateRefund(ctx context.Context, paymentRef string, amount float64) (*RefundObject, error) {
	body := struct {
		PaymentRef string  `json:"payment_id"`
		Amount     float64 `json:"amount"`
	}{PaymentRef: paymentRef, Amount: amount}

	obj := RefundObject{}
	if err := c.post(ctx, []string{"api", "refunds"}, body, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// GetPayment fetches the current gateway state of a payment. Used by the
// sweeper to reconcile payments whose webhook never arrived.
// 200 — object found.
// 404 — unknown reference.
// 429 — throttled, Retry-After honoured.
func (c *Client) GetPayment(ctx context.Context, ref string) (*PaymentObject, error) {
	u, err := url.JoinPath(c.baseURL, "api", "payments", ref)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, models.ErrGatewayUnavailable
	}

	switch resp.StatusCode {
	case http.StatusOK:
		obj := PaymentObject{}
		if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
			return nil, err
		}
		return &obj, nil
	case http.StatusNotFound:
		return nil, models.ErrDataNotFound
	case http.StatusTooManyRequests:
		return nil, models.NewTooManyRequestsError(retryAfter(resp))
	default:
		return nil, models.ErrGatewayUnavailable
	}
}

func (c *Client) post(ctx context.Context, path []string, in, out interface{}) error {
	u, err := url.JoinPath(c.baseURL, path...)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return models.ErrGatewayUnavailable
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusTooManyRequests:
		return models.NewTooManyRequestsError(retryAfter(resp))
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusPaymentRequired:
		return models.ErrGatewayRejected
	default:
		return models.ErrGatewayUnavailable
	}
}

func isRetryable(err error) bool {
	switch err.(type) {
	case models.TooManyRequestsError:
		return true
	}
	return err == models.ErrGatewayUnavailable
}

func retryAfter(resp *http.Response) time.Duration {
	t := delaySeconds
	if val := resp.Header.Get("Retry-After"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			t = parsed
		}
	}
	return time.Duration(t) * time.Second
}
