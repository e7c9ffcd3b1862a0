package gateway

import (
	"errors"
	"testing"

	"github.com/feastly/feastly/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_VerifySignature(t *testing.T) {
	client := NewClient("http://gateway.local", "webhook-secret")
	body := []byte(`{"id":"evt_1","type":"payment.succeeded","data":{"payment_id":"pi_1","amount":42.5,"currency":"USD"}}`)

	t.Run("valid_signature_accepted", func(t *testing.T) {
		assert.NoError(t, client.VerifySignature(body, client.Sign(body)))
	})

	t.Run("tampered_body_rejected", func(t *testing.T) {
		signature := client.Sign(body)
		tampered := []byte(`{"id":"evt_1","type":"payment.succeeded","data":{"payment_id":"pi_1","amount":999,"currency":"USD"}}`)
		err := client.VerifySignature(tampered, signature)
		assert.True(t, errors.Is(err, models.ErrBadSignature))
	})

	t.Run("wrong_secret_rejected", func(t *testing.T) {
		other := NewClient("http://gateway.local", "different-secret")
		err := client.VerifySignature(body, other.Sign(body))
		assert.True(t, errors.Is(err, models.ErrBadSignature))
	})

	t.Run("non_hex_signature_rejected", func(t *testing.T) {
		err := client.VerifySignature(body, "not-hex")
		assert.True(t, errors.Is(err, models.ErrBadSignature))
	})
}

func TestParseEvent(t *testing.T) {
	t.Run("valid_event", func(t *testing.T) {
		body := []byte(`{"id":"evt_1","type":"payment.succeeded","data":{"payment_id":"pi_1","amount":42.5,"currency":"USD"}}`)
		event, err := ParseEvent(body)
		require.NoError(t, err)
		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, models.GatewayEventPaymentSucceeded, event.Type)
		assert.Equal(t, "pi_1", event.GatewayRef)
		assert.Equal(t, 42.5, event.Amount)
		assert.Equal(t, "USD", event.Currency)
	})

	t.Run("malformed_json_rejected", func(t *testing.T) {
		_, err := ParseEvent([]byte(`{"id":`))
		assert.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("missing_id_rejected", func(t *testing.T) {
		_, err := ParseEvent([]byte(`{"type":"payment.succeeded","data":{"payment_id":"pi_1"}}`))
		assert.True(t, errors.Is(err, models.ErrValidation))
	})
}
