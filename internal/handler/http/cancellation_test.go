package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/feastly/feastly/internal/handler/http/mocks"
	"github.com/feastly/feastly/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCancellationHandler_CreateCancellation(t *testing.T) {
	orderID := uuid.New()
	body := `{"order_id":"` + orderID.String() + `","reason":"changed my mind"}`

	tests := []struct {
		name           string
		token          *models.TokenPayload
		body           string
		setup          func(t *testing.T) *mocks.MockCancellationService
		wantStatusCode int
	}{
		{
			// 201 — order cancelled;
			name: "valid_request_return_201",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleCustomer,
			},
			body: body,
			setup: func(t *testing.T) *mocks.MockCancellationService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCancellationService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any(), orderID, "changed my mind").Return(&models.OrderCancellation{
					ID:           uuid.New(),
					OrderID:      orderID,
					Status:       models.CancellationStatusConfirmed,
					RefundStatus: models.RefundStatusRequested,
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			// 400 — malformed request;
			name: "missing_order_id_return_400",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleCustomer,
			},
			body: `{"reason":"changed my mind"}`,
			setup: func(t *testing.T) *mocks.MockCancellationService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCancellationService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// 403 — caller may not cancel this order;
			name: "foreign_order_return_403",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleCustomer,
			},
			body: body,
			setup: func(t *testing.T) *mocks.MockCancellationService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCancellationService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrForbidden).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusForbidden,
		},
		{
			// 404 — order not found;
			name: "unknown_order_return_404",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleCustomer,
			},
			body: body,
			setup: func(t *testing.T) *mocks.MockCancellationService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCancellationService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrDataNotFound).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			// 409 — order progressed past the cancellable window.
			name: "delivered_order_return_409",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleCustomer,
			},
			body: body,
			setup: func(t *testing.T) *mocks.MockCancellationService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCancellationService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrOrderNotCancellable).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			// 409 — second cancellation of the same order.
			name: "duplicate_cancellation_return_409",
			token: &models.TokenPayload{
				ActorID: uuid.New(),
				Role:    models.RoleCustomer,
			},
			body: body,
			setup: func(t *testing.T) *mocks.MockCancellationService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCancellationService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrConflictData).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/api/order-cancellations", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal("cannot create request", zap.Error(err))
			}

			w := httptest.NewRecorder()
			st := tt.setup(t)
			ctx := context.WithValue(req.Context(), authPayloadKey, tt.token)

			handler := NewCancellationHandler(st)
			h := handler.CreateCancellation()
			h(w, req.WithContext(ctx))

			res := w.Result()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
			defer res.Body.Close()
		})
	}
}
