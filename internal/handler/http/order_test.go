package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/feastly/feastly/internal/handler/http/mocks"
	"github.com/feastly/feastly/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	restaurantID := uuid.New()
	menuItemID := uuid.New()
	body := `{"restaurant_id":"` + restaurantID.String() + `","items":[{"menu_item_id":"` + menuItemID.String() + `","quantity":2}]}`

	tests := []struct {
		name           string
		token          *models.TokenPayload
		body           string
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
	}{
		{
			// 201 — order created;
			name: "valid_request_return_201",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleCustomer,
			},
			body: body,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.Order{
					ID:           uuid.New(),
					RestaurantID: restaurantID,
					Total:        21.98,
					Status:       models.OrderStatusPending,
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			// 400 — malformed request body;
			name: "malformed_body_return_400",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleCustomer,
			},
			body: `{"restaurant_id":`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 400 — client total disagrees with line items;
			name: "total_mismatch_return_400",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleCustomer,
			},
			body: body,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrTotalMismatch).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 401 — caller is not authenticated;
			name: "unauthorized_request_return_401",
			body: body,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			// 403 — role may not create orders;
			name: "forbidden_role_return_403",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleDriver,
			},
			body: body,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrForbidden).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusForbidden,
		},
		{
			// 500 — internal error.
			name: "internal_error_return_500",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleCustomer,
			},
			body: body,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrInternal).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal("cannot create request", zap.Error(err))
			}

			w := httptest.NewRecorder()
			st := tt.setup(t)
			ctx := context.WithValue(req.Context(), authPayloadKey, tt.token)

			handler := NewOrderHandler(st)
			h := handler.CreateOrder()
			h(w, req.WithContext(ctx))

			res := w.Result()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
			defer res.Body.Close()
		})
	}
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	orderID := uuid.New()

	tests := []struct {
		name           string
		token          *models.TokenPayload
		body           string
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
	}{
		{
			// 200 — status updated;
			name: "valid_request_return_200",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleRestaurantStaff,
			},
			body: `{"status":"PREPARING"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), orderID, "PREPARING").Return(&models.Order{
					ID:     orderID,
					Status: models.OrderStatusPreparing,
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			// 404 — order not found;
			name: "unknown_order_return_404",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleRestaurantStaff,
			},
			body: `{"status":"PREPARING"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrDataNotFound).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			// 409 — transition is not adjacent;
			name: "skipped_stage_return_409",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleRestaurantStaff,
			},
			body: `{"status":"DELIVERED"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrInvalidTransition).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			// 400 — CANCELLED is not reachable through this endpoint;
			name: "cancel_through_update_return_400",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleRestaurantStaff,
			},
			body: `{"status":"CANCELLED"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrValidation).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPut, "/api/orders/"+orderID.String(), strings.NewReader(tt.body))
			if err != nil {
				t.Fatal("cannot create request", zap.Error(err))
			}

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", orderID.String())

			w := httptest.NewRecorder()
			st := tt.setup(t)
			ctx := context.WithValue(req.Context(), authPayloadKey, tt.token)
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

			handler := NewOrderHandler(st)
			h := handler.UpdateOrder()
			h(w, req.WithContext(ctx))

			res := w.Result()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
			defer res.Body.Close()
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	createdAt := time.Now()
	orderID := uuid.New()
	customerID := uuid.New()
	restaurantID := uuid.New()

	tests := []struct {
		name           string
		token          *models.TokenPayload
		query          string
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
		wantBody       []orderResponse
	}{
		{
			// 200 — orders returned.
			name: "valid_request_return_200",
			token: &models.TokenPayload{
				ActorID: customerID,
				Role:    models.RoleCustomer,
			},
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Order{
					{
						ID:           orderID,
						CustomerID:   customerID,
						RestaurantID: restaurantID,
						Total:        21.98,
						Status:       models.OrderStatusPending,
						CreatedAt:    createdAt,
					},
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody: []orderResponse{{
				ID:           orderID.String(),
				CustomerID:   customerID.String(),
				RestaurantID: restaurantID.String(),
				Total:        21.98,
				Status:       models.OrderStatusPending,
				CreatedAt:    createdAt.Format(time.RFC3339),
			}},
		},
		{
			// 400 — unknown filter key is rejected, not ignored.
			name: "unknown_filter_key_return_400",
			token: &models.TokenPayload{
				ActorID: customerID,
				Role:    models.RoleCustomer,
			},
			query: "?tenant=acme",
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 403 — narrowing rejected the filter.
			name: "conflicting_filter_return_403",
			token: &models.TokenPayload{
				ActorID: customerID,
				Role:    models.RoleCustomer,
			},
			query: "?customer_id=" + uuid.New().String(),
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrForbidden).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/api/orders"+tt.query, nil)
			if err != nil {
				t.Fatal("cannot create request", zap.Error(err))
			}

			w := httptest.NewRecorder()
			st := tt.setup(t)
			ctx := context.WithValue(req.Context(), authPayloadKey, tt.token)

			handler := NewOrderHandler(st)
			h := handler.ListOrders()
			h(w, req.WithContext(ctx))

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
			resBody, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			if tt.wantBody != nil {
				var got []orderResponse
				err = json.Unmarshal(resBody, &got)
				require.NoError(t, err)

				if diff := cmp.Diff(tt.wantBody, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
