package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/feastly/feastly/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PaymentService is interface for payment initiation
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.PaymentConnection, error)
	CreateCheckoutSession(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.PaymentConnection, error)
	GetLatestPayment(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.Payment, error)
}

// PaymentHandler represents HTTP handler for payment-related requests
type PaymentHandler struct {
	svc PaymentService
}

// NewPaymentHandler creates new PaymentHandler instance
func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

type paymentConnectionResponse struct {
	PaymentID    string `json:"payment_id"`
	GatewayRef   string `json:"gateway_ref"`
	ClientSecret string `json:"client_secret,omitempty"`
	RedirectURL  string `json:"redirect_url,omitempty"`
}

type paymentResponse struct {
	ID         string  `json:"id"`
	OrderID    string  `json:"order_id"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Status     string  `json:"status"`
	Kind       string  `json:"kind"`
	GatewayRef string  `json:"gateway_ref"`
	CreatedAt  string  `json:"created_at"`
}

// CreatePaymentIntent starts a payment intent for the order's outstanding
// balance
// 201 — intent created;
// 401 — caller is not authenticated;
// 403 — caller may not pay this order;
// 404 — order not found;
// 409 — order not payable or a payment is already in flight;
// 502/503 — gateway rejected the call or is unreachable.
func (ph *PaymentHandler) CreatePaymentIntent() http.HandlerFunc {
	return ph.initiate(func(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.PaymentConnection, error) {
		return ph.svc.CreatePaymentIntent(ctx, actor, orderID)
	})
}

// CreateCheckoutSession starts a hosted checkout session for the order
func (ph *PaymentHandler) CreateCheckoutSession() http.HandlerFunc {
	return ph.initiate(func(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.PaymentConnection, error) {
		return ph.svc.CreateCheckoutSession(ctx, actor, orderID)
	})
}

func (ph *PaymentHandler) initiate(create func(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.PaymentConnection, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			http.Error(w, "bad order id", http.StatusBadRequest)
			return
		}

		conn, err := create(r.Context(), actor, orderID)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, paymentConnectionResponse{
			PaymentID:    conn.PaymentID.String(),
			GatewayRef:   conn.GatewayRef,
			ClientSecret: conn.ClientSecret,
			RedirectURL:  conn.RedirectURL,
		})
	}
}

// GetPayment returns the order's most recent payment
func (ph *PaymentHandler) GetPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			http.Error(w, "bad order id", http.StatusBadRequest)
			return
		}

		payment, err := ph.svc.GetLatestPayment(r.Context(), actor, orderID)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, paymentResponse{
			ID:         payment.ID.String(),
			OrderID:    payment.OrderID.String(),
			Amount:     payment.Amount,
			Currency:   payment.Currency,
			Status:     payment.Status,
			Kind:       payment.Kind,
			GatewayRef: payment.GatewayRef,
			CreatedAt:  payment.CreatedAt.Format(time.RFC3339),
		})
	}
}
