package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/feastly/feastly/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CancellationService is interface for cancellation-related operations
type CancellationService interface {
	Create(ctx context.Context, actor models.Actor, orderID uuid.UUID, reason string) (*models.OrderCancellation, error)
	Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.OrderCancellation, error)
	List(ctx context.Context, actor models.Actor, filter models.CancellationFilter) ([]models.OrderCancellation, error)
	UpdateRefundStatus(ctx context.Context, actor models.Actor, id uuid.UUID, to string) (*models.OrderCancellation, error)
}

// CancellationHandler represents HTTP handler for cancellation requests
type CancellationHandler struct {
	svc      CancellationService
	validate *validator.Validate
}

// NewCancellationHandler creates new CancellationHandler instance
func NewCancellationHandler(svc CancellationService) *CancellationHandler {
	return &CancellationHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

type cancellationResponse struct {
	ID           string `json:"id"`
	OrderID      string `json:"order_id"`
	RequestedBy  string `json:"requested_by"`
	Reason       string `json:"reason,omitempty"`
	Status       string `json:"status"`
	RefundStatus string `json:"refund_status"`
	CreatedAt    string `json:"created_at"`
}

func newCancellationResponse(c *models.OrderCancellation) cancellationResponse {
	return cancellationResponse{
		ID:           c.ID.String(),
		OrderID:      c.OrderID.String(),
		RequestedBy:  c.RequestedBy.String(),
		Reason:       c.Reason,
		Status:       c.Status,
		RefundStatus: c.RefundStatus,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}

type createCancellationRequest struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
	Reason  string `json:"reason" validate:"omitempty,max=500"`
}

// CreateCancellation cancels an order
// 201 — order cancelled;
// 400 — malformed request;
// 403 — caller may not cancel this order;
// 404 — order not found;
// 409 — order not cancellable or already cancelled.
func (ch *CancellationHandler) CreateCancellation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createCancellationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ch.validate.Struct(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		orderID, err := uuid.Parse(req.OrderID)
		if err != nil {
			http.Error(w, "bad order id", http.StatusBadRequest)
			return
		}

		c, err := ch.svc.Create(r.Context(), actor, orderID, req.Reason)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, newCancellationResponse(c))
	}
}

// GetCancellation returns cancellation by id
func (ch *CancellationHandler) GetCancellation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "bad cancellation id", http.StatusBadRequest)
			return
		}

		c, err := ch.svc.Get(r.Context(), actor, id)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newCancellationResponse(c))
	}
}

// ListCancellations returns cancellations visible to the actor
func (ch *CancellationHandler) ListCancellations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter, err := parseCancellationFilter(r.URL.Query())
		if err != nil {
			respondError(w, err)
			return
		}

		cancellations, err := ch.svc.List(r.Context(), actor, filter)
		if err != nil {
			respondError(w, err)
			return
		}

		resp := []cancellationResponse{}
		for i := range cancellations {
			resp = append(resp, newCancellationResponse(&cancellations[i]))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type updateCancellationRequest struct {
	RefundStatus string `json:"refund_status" validate:"required,oneof=COMPLETED FAILED"`
}

// UpdateCancellation settles a refund out of band (admin only)
func (ch *CancellationHandler) UpdateCancellation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "bad cancellation id", http.StatusBadRequest)
			return
		}

		var req updateCancellationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ch.validate.Struct(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		c, err := ch.svc.UpdateRefundStatus(r.Context(), actor, id, req.RefundStatus)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newCancellationResponse(c))
	}
}

func parseCancellationFilter(query url.Values) (models.CancellationFilter, error) {
	if err := checkFilterKeys(query, "order_id", "refund_status"); err != nil {
		return models.CancellationFilter{}, err
	}

	filter := models.CancellationFilter{}

	if raw := query.Get("order_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return models.CancellationFilter{}, models.ErrBadFilter
		}
		filter.OrderID = &id
	}
	if raw := query.Get("refund_status"); raw != "" {
		status := raw
		filter.RefundStatus = &status
	}

	return filter, nil
}
