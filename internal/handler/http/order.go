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

// OrderService is interface for order-related operations
type OrderService interface {
	Create(ctx context.Context, actor models.Actor, order *models.Order) (*models.Order, error)
	Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, actor models.Actor, filter models.OrderFilter) ([]models.Order, error)
	UpdateStatus(ctx context.Context, actor models.Actor, id uuid.UUID, to string) (*models.Order, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc      OrderService
	validate *validator.Validate
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

type orderItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
	Quantity   int32  `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	RestaurantID string             `json:"restaurant_id" validate:"required,uuid"`
	CustomerID   string             `json:"customer_id" validate:"omitempty,uuid"`
	Total        float64            `json:"total" validate:"omitempty,gte=0"`
	Items        []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type orderItemResponse struct {
	MenuItemID string  `json:"menu_item_id"`
	Quantity   int32   `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type orderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"`
	RestaurantID string              `json:"restaurant_id"`
	Total        float64             `json:"total"`
	Status       string              `json:"status"`
	Items        []orderItemResponse `json:"items,omitempty"`
	CreatedAt    string              `json:"created_at"`
}

func newOrderResponse(order *models.Order) orderResponse {
	resp := orderResponse{
		ID:           order.ID.String(),
		CustomerID:   order.CustomerID.String(),
		RestaurantID: order.RestaurantID.String(),
		Total:        order.Total,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}
	return resp
}

// CreateOrder creates new order
// 201 — order created;
// 400 — malformed request or total mismatch;
// 401 — caller is not authenticated;
// 403 — caller may not create orders;
// 500 — internal error.
func (oh *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := oh.validate.Struct(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		restaurantID, err := uuid.Parse(req.RestaurantID)
		if err != nil {
			http.Error(w, "bad restaurant id", http.StatusBadRequest)
			return
		}

		order := models.Order{
			RestaurantID: restaurantID,
			Total:        req.Total,
		}
		if req.CustomerID != "" {
			customerID, err := uuid.Parse(req.CustomerID)
			if err != nil {
				http.Error(w, "bad customer id", http.StatusBadRequest)
				return
			}
			order.CustomerID = customerID
		}
		for _, item := range req.Items {
			menuItemID, err := uuid.Parse(item.MenuItemID)
			if err != nil {
				http.Error(w, "bad menu item id", http.StatusBadRequest)
				return
			}
			order.Items = append(order.Items, models.OrderItem{
				MenuItemID: menuItemID,
				Quantity:   item.Quantity,
			})
		}

		created, err := oh.svc.Create(r.Context(), actor, &order)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, newOrderResponse(created))
	}
}

// GetOrder returns order by id
func (oh *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "bad order id", http.StatusBadRequest)
			return
		}

		order, err := oh.svc.Get(r.Context(), actor, id)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newOrderResponse(order))
	}
}

// ListOrders returns orders visible to the actor. The filter is a closed
// set; unknown query keys are rejected.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter, err := parseOrderFilter(r.URL.Query())
		if err != nil {
			respondError(w, err)
			return
		}

		orders, err := oh.svc.List(r.Context(), actor, filter)
		if err != nil {
			respondError(w, err)
			return
		}

		resp := []orderResponse{}
		for i := range orders {
			resp = append(resp, newOrderResponse(&orders[i]))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type updateOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrder advances the order status
// 200 — status updated;
// 400 — malformed request;
// 403 — caller may not update this order;
// 404 — order not found;
// 409 — transition is not adjacent or the order is terminal.
func (oh *OrderHandler) UpdateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "bad order id", http.StatusBadRequest)
			return
		}

		var req updateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := oh.validate.Struct(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		order, err := oh.svc.UpdateStatus(r.Context(), actor, id, req.Status)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newOrderResponse(order))
	}
}

func parseOrderFilter(query url.Values) (models.OrderFilter, error) {
	if err := checkFilterKeys(query, "customer_id", "restaurant_id", "status"); err != nil {
		return models.OrderFilter{}, err
	}

	filter := models.OrderFilter{}

	if raw := query.Get("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return models.OrderFilter{}, models.ErrBadFilter
		}
		filter.CustomerID = &id
	}
	if raw := query.Get("restaurant_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return models.OrderFilter{}, models.ErrBadFilter
		}
		filter.RestaurantID = &id
	}
	if raw := query.Get("status"); raw != "" {
		status := raw
		filter.Status = &status
	}

	return filter, nil
}
