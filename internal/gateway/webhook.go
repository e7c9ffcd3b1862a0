package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/feastly/feastly/internal/models"
)

// SignatureHeader carries the hex HMAC of the raw request body
const SignatureHeader = "X-Gateway-Signature"

// VerifySignature checks the HMAC-SHA256 signature over the raw body. The
// body must not be parsed or mutated before this runs.
func (c *Client) VerifySignature(body []byte, signature string) error {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return models.ErrBadSignature
	}

	mac := hmac.New(sha256.New, c.secret)
	mac.Write(body)

	if !hmac.Equal(got, mac.Sum(nil)) {
		return models.ErrBadSignature
	}
	return nil
}

// Sign computes the signature the gateway would attach to body. Used by the
// webhook tests and local tooling.
func (c *Client) Sign(body []byte) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

type eventEnvelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		PaymentRef string  `json:"payment_id"`
		Amount     float64 `json:"amount"`
		Currency   string  `json:"currency"`
	} `json:"data"`
}

// ParseEvent decodes a verified webhook body into a gateway event
func ParseEvent(body []byte) (*models.GatewayEvent, error) {
	env := eventEnvelope{}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, models.ErrValidation
	}
	if env.ID == "" || env.Type == "" {
		return nil, models.ErrValidation
	}

	return &models.GatewayEvent{
		ID:         env.ID,
		Type:       env.Type,
		GatewayRef: env.Data.PaymentRef,
		Amount:     env.Data.Amount,
		Currency:   env.Data.Currency,
		ReceivedAt: time.Now(),
	}, nil
}
