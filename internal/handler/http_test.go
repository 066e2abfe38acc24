package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
	"github.com/SergeyBogomolovv/booking-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/booking-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/booking-service/internal/middleware"
	"github.com/SergeyBogomolovv/booking-service/internal/pricing"
	"github.com/SergeyBogomolovv/booking-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	secret     = []byte("0123456789abcdef")

	customer = entities.Actor{ID: "c1", Role: entities.RoleCustomer}
	vendor   = entities.Actor{ID: "v1", Role: entities.RoleVendor}
	admin    = entities.Actor{ID: "a1", Role: entities.RoleAdmin}
)

func token(t *testing.T, actor entities.Actor) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		UserID: actor.ID,
		Role:   actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(secret)
	require.NoError(t, err)
	return signed
}

type fakeSockets struct {
	recipient string
}

func (f *fakeSockets) Serve(w http.ResponseWriter, _ *http.Request, recipientID string) error {
	f.recipient = recipientID
	w.WriteHeader(http.StatusSwitchingProtocols)
	return nil
}

type env struct {
	orders        *mocks.MockOrderService
	notifications *mocks.MockNotificationService
	sockets       *fakeSockets
	router        chi.Router
}

func newEnv(t *testing.T) *env {
	e := &env{
		orders:        mocks.NewMockOrderService(t),
		notifications: mocks.NewMockNotificationService(t),
		sockets:       &fakeSockets{},
		router:        chi.NewRouter(),
	}
	handler.NewHTTPHandler(testLogger, secret, e.orders, e.notifications, e.sockets).Init(e.router)
	return e
}

func (e *env) do(t *testing.T, actor *entities.Actor, method, target, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if actor != nil {
		req.Header.Set("Authorization", "Bearer "+token(t, *actor))
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

var sampleOrder = entities.Order{
	ID:            "ORD-000001",
	CustomerID:    "c1",
	VendorID:      "v1",
	PackageID:     "p1",
	DeliveryAt:    time.Date(2030, 1, 7, 11, 0, 0, 0, time.UTC),
	OfferedAmount: 40,
	Status:        entities.OrderPending,
	PaymentStatus: entities.PaymentPending,
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		actor        *entities.Actor
		body         string
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "success",
			actor: &customer,
			body:  `{"vendor_id":"v1","package_id":"p1","service_start":"2030-01-07T10:00:00Z","delivery_at":"2030-01-07T11:00:00Z","offered_amount":40,"location":{"lng":-73.99,"lat":40.73}}`,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(in service.CreateOrderInput) bool {
						return in.CustomerID == "c1" &&
							in.ServiceStart.Equal(time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC)) &&
							in.Location.Lat == 40.73
					})).
					Return(sampleOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"ORD-000001"`,
		},
		{
			name:         "missing delivery date",
			actor:        &customer,
			body:         `{"vendor_id":"v1","package_id":"p1"}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"DeliveryAt":"required"`,
		},
		{
			name:         "malformed body",
			actor:        &customer,
			body:         `{`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:  "vendor busy",
			actor: &customer,
			body:  `{"vendor_id":"v1","package_id":"p1","delivery_at":"2030-01-07T11:00:00Z"}`,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, entities.ErrVendorBusy).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"vendor is busy for the requested time"`,
		},
		{
			name:         "vendors cannot book",
			actor:        &vendor,
			body:         `{}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "anonymous",
			body:         `{}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t)
			tc.mockBehavior(e.orders)

			status, body := e.do(t, tc.actor, http.MethodPost, "/orders", tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "ORD-000001",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().GetOrder(mock.Anything, customer, "ORD-000001").Return(sampleOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"pending"`,
		},
		{
			name:    "not found",
			orderID: "ORD-000404",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().GetOrder(mock.Anything, customer, "ORD-000404").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "invalid id",
			orderID: "42",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().GetOrder(mock.Anything, customer, "42").Return(entities.Order{}, entities.ErrInvalidOrderID).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid order id"`,
		},
		{
			name:    "store unavailable",
			orderID: "ORD-000001",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().GetOrder(mock.Anything, customer, "ORD-000001").
					Return(entities.Order{}, entities.External("failed to get order", errors.New("connection refused"))).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"failed to get order"`,
		},
		{
			name:    "internal error",
			orderID: "ORD-000001",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().GetOrder(mock.Anything, customer, "ORD-000001").Return(entities.Order{}, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t)
			tc.mockBehavior(e.orders)

			status, body := e.do(t, &customer, http.MethodGet, "/orders/"+tc.orderID, "")
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if status == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "ORD-000001", resp["id"])
				assert.NotContains(t, resp, "service_start")
			}
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	t.Run("passes filter", func(t *testing.T) {
		e := newEnv(t)
		e.orders.EXPECT().
			ListOrders(mock.Anything, vendor, entities.OrderFilter{
				Statuses: []entities.OrderStatus{entities.OrderPending, entities.OrderAccepted},
				Limit:    5,
				Offset:   10,
			}).
			Return([]entities.Order{sampleOrder}, nil).Once()

		status, body := e.do(t, &vendor, http.MethodGet, "/orders?status=pending&status=accepted&limit=5&offset=10", "")
		assert.Equal(t, http.StatusOK, status)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		assert.Len(t, resp, 1)
	})

	t.Run("unknown status", func(t *testing.T) {
		e := newEnv(t)
		status, body := e.do(t, &vendor, http.MethodGet, "/orders?status=confirmed", "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, "unknown order status")
	})

	t.Run("bad limit", func(t *testing.T) {
		e := newEnv(t)
		status, _ := e.do(t, &vendor, http.MethodGet, "/orders?limit=-1", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHTTPHandler_Transitions(t *testing.T) {
	accepted := sampleOrder
	accepted.Status = entities.OrderAccepted
	accepted.Amount = 50

	testCases := []struct {
		name         string
		actor        entities.Actor
		path         string
		body         string
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "accept",
			actor: vendor,
			path:  "/orders/ORD-000001/accept",
			body:  `{"amount":50}`,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().AcceptOrder(mock.Anything, vendor, "ORD-000001", 50.0).Return(accepted, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"accepted"`,
		},
		{
			name:         "accept without amount",
			actor:        vendor,
			path:         "/orders/ORD-000001/accept",
			body:         `{}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Amount":"gt=0"`,
		},
		{
			name:  "accept twice",
			actor: vendor,
			path:  "/orders/ORD-000001/accept",
			body:  `{"amount":50}`,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().AcceptOrder(mock.Anything, vendor, "ORD-000001", 50.0).Return(entities.Order{}, entities.ErrWrongState).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:         "customer cannot accept",
			actor:        customer,
			path:         "/orders/ORD-000001/accept",
			body:         `{"amount":50}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:  "reject",
			actor: vendor,
			path:  "/orders/ORD-000001/reject",
			mockBehavior: func(orders *mocks.MockOrderService) {
				rejected := sampleOrder
				rejected.Status = entities.OrderRejected
				orders.EXPECT().RejectOrder(mock.Anything, vendor, "ORD-000001").Return(rejected, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"rejected"`,
		},
		{
			name:  "decline",
			actor: customer,
			path:  "/orders/ORD-000001/decline",
			body:  `{"message":"too expensive"}`,
			mockBehavior: func(orders *mocks.MockOrderService) {
				declined := accepted
				declined.Status = entities.OrderDeclined
				declined.Declined = true
				declined.DeclineMessage = "too expensive"
				orders.EXPECT().DeclineOrder(mock.Anything, customer, "ORD-000001", "too expensive").Return(declined, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"decline_message":"too expensive"`,
		},
		{
			name:         "decline without message",
			actor:        customer,
			path:         "/orders/ORD-000001/decline",
			body:         `{}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:  "admin cancels",
			actor: admin,
			path:  "/orders/ORD-000001/cancel",
			mockBehavior: func(orders *mocks.MockOrderService) {
				cancelled := accepted
				cancelled.Status = entities.OrderCancelled
				orders.EXPECT().CancelOrder(mock.Anything, admin, "ORD-000001").Return(cancelled, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"cancelled"`,
		},
		{
			name:         "vendor cannot cancel",
			actor:        vendor,
			path:         "/orders/ORD-000001/cancel",
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t)
			tc.mockBehavior(e.orders)

			status, body := e.do(t, &tc.actor, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetFees(t *testing.T) {
	e := newEnv(t)
	e.orders.EXPECT().Quote(mock.Anything, vendor, "ORD-000001", true).Return(service.Quote{
		OrderID: "ORD-000001",
		Vendor:  &pricing.VendorFees{ApplicationCharge: 15, CustomerCCCharge: 3, VendorReceivable: 82, Instant: true},
	}, nil).Once()

	status, body := e.do(t, &vendor, http.MethodGet, "/orders/ORD-000001/fees?instant=true", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"vendor_receivable":82`)
	assert.NotContains(t, body, `"customer"`)

	status, _ = e.do(t, &vendor, http.MethodGet, "/orders/ORD-000001/fees?instant=maybe", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHTTPHandler_Notifications(t *testing.T) {
	e := newEnv(t)
	created := time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC)
	e.notifications.EXPECT().ListNotifications(mock.Anything, customer, uint64(0), uint64(0)).Return([]entities.Notification{
		{ID: "n1", Event: "orders:order.accepted", Title: "Order accepted", OrderID: "ORD-000001", CreatedAt: created},
	}, nil).Once()
	e.notifications.EXPECT().MarkRead(mock.Anything, customer, "n1").Return(nil).Once()
	e.notifications.EXPECT().MarkRead(mock.Anything, customer, "n2").Return(entities.ErrNotificationNotFound).Once()

	status, body := e.do(t, &customer, http.MethodGet, "/notifications", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"title":"Order accepted"`)

	status, _ = e.do(t, &customer, http.MethodPost, "/notifications/n1/read", "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = e.do(t, &customer, http.MethodPost, "/notifications/n2/read", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHTTPHandler_Subscribe(t *testing.T) {
	e := newEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/ws?token="+token(t, vendor), nil)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSwitchingProtocols, rr.Code)
	assert.Equal(t, "v1", e.sockets.recipient)
}
