package models

import (
	"time"

	"github.com/google/uuid"
)

// payment status
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusSucceeded = "SUCCEEDED"
	PaymentStatusFailed    = "FAILED"
)

// payment kinds created against the gateway
const (
	PaymentKindIntent   = "PAYMENT_INTENT"
	PaymentKindCheckout = "CHECKOUT_SESSION"
)

// PaymentStatusIsTerminal reports whether the payment can no longer move
func PaymentStatusIsTerminal(status string) bool {
	return status == PaymentStatusSucceeded || status == PaymentStatusFailed
}

// Payment is a local record of a gateway payment object
type Payment struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Amount     float64
	Currency   string
	Status     string
	Kind       string
	GatewayRef string
	// IdempotencyKey holds the gateway event id that settled the payment
	IdempotencyKey string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PaymentConnection is the client-facing data needed to complete a payment
type PaymentConnection struct {
	PaymentID    uuid.UUID
	GatewayRef   string
	ClientSecret string
	RedirectURL  string
}

// GatewayEvent is a signature-verified webhook event from the payment gateway
type GatewayEvent struct {
	ID         string
	Type       string
	GatewayRef string
	Amount     float64
	Currency   string
	ReceivedAt time.Time
}

// gateway event types
const (
	GatewayEventPaymentSucceeded = "payment.succeeded"
	GatewayEventPaymentFailed    = "payment.failed"
	GatewayEventRefundCompleted  = "refund.completed"
	GatewayEventRefundFailed     = "refund.failed"
)
