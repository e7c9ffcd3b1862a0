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

// DeliveryService is interface for delivery-related operations
type DeliveryService interface {
	Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Delivery, error)
	List(ctx context.Context, actor models.Actor, filter models.DeliveryFilter) ([]models.Delivery, error)
	Create(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.Delivery, error)
	AssignDriver(ctx context.Context, actor models.Actor, deliveryID, driverID uuid.UUID) (*models.Delivery, error)
	UpdateStatus(ctx context.Context, actor models.Actor, id uuid.UUID, to string) (*models.Delivery, error)
}

// DeliveryHandler represents HTTP handler for delivery-related requests
type DeliveryHandler struct {
	svc      DeliveryService
	validate *validator.Validate
}

// NewDeliveryHandler creates new DeliveryHandler instance
func NewDeliveryHandler(svc DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

type deliveryResponse struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	DriverID  string `json:"driver_id,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func newDeliveryResponse(delivery *models.Delivery) deliveryResponse {
	resp := deliveryResponse{
		ID:        delivery.ID.String(),
		OrderID:   delivery.OrderID.String(),
		Status:    delivery.Status,
		CreatedAt: delivery.CreatedAt.Format(time.RFC3339),
	}
	if delivery.DriverID != nil {
		resp.DriverID = delivery.DriverID.String()
	}
	return resp
}

// GetDelivery returns delivery by id
func (dh *DeliveryHandler) GetDelivery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "bad delivery id", http.StatusBadRequest)
			return
		}

		delivery, err := dh.svc.Get(r.Context(), actor, id)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newDeliveryResponse(delivery))
	}
}

// ListDeliveries returns deliveries visible to the actor
func (dh *DeliveryHandler) ListDeliveries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter, err := parseDeliveryFilter(r.URL.Query())
		if err != nil {
			respondError(w, err)
			return
		}

		deliveries, err := dh.svc.List(r.Context(), actor, filter)
		if err != nil {
			respondError(w, err)
			return
		}

		resp := []deliveryResponse{}
		for i := range deliveries {
			resp = append(resp, newDeliveryResponse(&deliveries[i]))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type createDeliveryRequest struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
}

// CreateDelivery creates a delivery slot for an order by hand (admin repair
// path; the order flow normally creates it on confirmation)
func (dh *DeliveryHandler) CreateDelivery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createDeliveryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := dh.validate.Struct(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		orderID, err := uuid.Parse(req.OrderID)
		if err != nil {
			http.Error(w, "bad order id", http.StatusBadRequest)
			return
		}

		delivery, err := dh.svc.Create(r.Context(), actor, orderID)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, newDeliveryResponse(delivery))
	}
}

type updateDeliveryRequest struct {
	DriverID string `json:"driver_id" validate:"omitempty,uuid"`
	Status   string `json:"status" validate:"omitempty"`
}

// UpdateDelivery assigns a driver or advances the delivery status
// 200 — delivery updated;
// 400 — malformed request;
// 403 — caller may not update this delivery;
// 404 — delivery not found;
// 409 — driver already claimed, non-adjacent transition or unsettled payment.
func (dh *DeliveryHandler) UpdateDelivery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "bad delivery id", http.StatusBadRequest)
			return
		}

		var req updateDeliveryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := dh.validate.Struct(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if (req.DriverID == "") == (req.Status == "") {
			http.Error(w, "exactly one of driver_id or status is required", http.StatusBadRequest)
			return
		}

		var delivery *models.Delivery
		if req.DriverID != "" {
			driverID, err := uuid.Parse(req.DriverID)
			if err != nil {
				http.Error(w, "bad driver id", http.StatusBadRequest)
				return
			}
			delivery, err = dh.svc.AssignDriver(r.Context(), actor, id, driverID)
			if err != nil {
				respondError(w, err)
				return
			}
		} else {
			delivery, err = dh.svc.UpdateStatus(r.Context(), actor, id, req.Status)
			if err != nil {
				respondError(w, err)
				return
			}
		}

		writeJSON(w, http.StatusOK, newDeliveryResponse(delivery))
	}
}

func parseDeliveryFilter(query url.Values) (models.DeliveryFilter, error) {
	if err := checkFilterKeys(query, "order_id", "driver_id", "status"); err != nil {
		return models.DeliveryFilter{}, err
	}

	filter := models.DeliveryFilter{}

	if raw := query.Get("order_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return models.DeliveryFilter{}, models.ErrBadFilter
		}
		filter.OrderID = &id
	}
	if raw := query.Get("driver_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return models.DeliveryFilter{}, models.ErrBadFilter
		}
		filter.DriverID = &id
	}
	if raw := query.Get("status"); raw != "" {
		status := raw
		filter.Status = &status
	}

	return filter, nil
}
