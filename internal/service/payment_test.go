package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
	"github.com/SergeyBogomolovv/booking-service/internal/notify"
	notifyMocks "github.com/SergeyBogomolovv/booking-service/internal/notify/mocks"
	"github.com/SergeyBogomolovv/booking-service/internal/service"
	"github.com/SergeyBogomolovv/booking-service/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// acceptedOrder books and accepts an order for 100 on the given repo.
func acceptedOrder(t *testing.T, repo *memRepo) entities.Order {
	t.Helper()
	ctx := context.Background()
	orders := newOrderService(t, repo, quietEmitter(t))

	order, err := orders.CreateOrder(ctx, booking("c1", "p1", at(10, 0), at(11, 0)))
	require.NoError(t, err)
	order, err = orders.AcceptOrder(ctx, vendorActor, order.ID, 100)
	require.NoError(t, err)
	return order
}

func newPaymentService(t *testing.T, repo service.PaymentRepo, emitter notify.Emitter) interface {
	HandleEvent(ctx context.Context, ev entities.PaymentEvent) error
} {
	return service.NewPaymentService(testLogger, passthroughTx(t), repo, cache.NewLRUCache(100, time.Minute), emitter, testRates)
}

func TestPaymentService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	order := acceptedOrder(t, repo)

	emitter := notifyMocks.NewMockEmitter(t)
	emitter.EXPECT().Emit(mock.Anything, "payments", "v1", mock.Anything).Return(nil).Times(3)
	emitter.EXPECT().Emit(mock.Anything, "payments", "c1", mock.Anything).Return(nil).Once()

	svc := newPaymentService(t, repo, emitter)

	err := svc.HandleEvent(ctx, entities.PaymentEvent{
		Type:        entities.PaymentDeposit,
		OrderID:     order.ID,
		ProviderRef: "pi_deposit",
		Amount:      50,
	})
	require.NoError(t, err)

	stored, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderAccepted, stored.Status)
	assert.Equal(t, entities.PaymentHalf, stored.PaymentStatus)

	err = svc.HandleEvent(ctx, entities.PaymentEvent{
		Type:        entities.PaymentSucceeded,
		OrderID:     order.ID,
		ProviderRef: "pi_full",
		Amount:      50,
	})
	require.NoError(t, err)

	stored, err = repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderOngoing, stored.Status)
	assert.Equal(t, entities.PaymentFull, stored.PaymentStatus)
	assert.Equal(t, "pi_full", stored.PaymentID)

	err = svc.HandleEvent(ctx, entities.PaymentEvent{
		Type:    entities.TransferSucceeded,
		OrderID: order.ID,
	})
	require.NoError(t, err)

	stored, err = repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderCompleted, stored.Status)

	require.Len(t, repo.payments, 2)
	latest := repo.payments[1]
	assert.Equal(t, "pi_full", latest.ProviderRef)
	assert.Equal(t, 10.0, latest.ApplicationCharge)
	assert.Equal(t, 87.0, latest.VendorReceivable)
	assert.NotNil(t, latest.TransferredAt)
	assert.Nil(t, repo.payments[0].TransferredAt)
}

func TestPaymentService_InstantTransfer(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	order := acceptedOrder(t, repo)
	svc := newPaymentService(t, repo, quietEmitter(t))

	require.NoError(t, svc.HandleEvent(ctx, entities.PaymentEvent{
		Type:        entities.PaymentSucceeded,
		OrderID:     order.ID,
		ProviderRef: "pi_1",
		Amount:      100,
	}))
	require.NoError(t, svc.HandleEvent(ctx, entities.PaymentEvent{
		Type:    entities.TransferSucceeded,
		OrderID: order.ID,
		Instant: true,
	}))

	require.Len(t, repo.payments, 1)
	assert.Equal(t, 15.0, repo.payments[0].ApplicationCharge)
	assert.Equal(t, 82.0, repo.payments[0].VendorReceivable)
}

func TestPaymentService_Rejections(t *testing.T) {
	testCases := []struct {
		name     string
		paid     bool
		event    func(orderID string) entities.PaymentEvent
		wantErr  error
		wantKind entities.ErrorKind
	}{
		{
			name: "replayed payment",
			paid: true,
			event: func(id string) entities.PaymentEvent {
				return entities.PaymentEvent{Type: entities.PaymentSucceeded, OrderID: id, ProviderRef: "pi_1", Amount: 100}
			},
			wantErr: entities.ErrEventApplied,
		},
		{
			name: "deposit after full payment",
			paid: true,
			event: func(id string) entities.PaymentEvent {
				return entities.PaymentEvent{Type: entities.PaymentDeposit, OrderID: id, ProviderRef: "pi_2", Amount: 50}
			},
			wantErr: entities.ErrWrongState,
		},
		{
			name: "transfer before payment",
			event: func(id string) entities.PaymentEvent {
				return entities.PaymentEvent{Type: entities.TransferSucceeded, OrderID: id}
			},
			wantErr: entities.ErrWrongState,
		},
		{
			name: "unknown order",
			event: func(string) entities.PaymentEvent {
				return entities.PaymentEvent{Type: entities.PaymentSucceeded, OrderID: "ORD-000404", ProviderRef: "pi_1", Amount: 100}
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "malformed order id",
			event: func(string) entities.PaymentEvent {
				return entities.PaymentEvent{Type: entities.PaymentSucceeded, OrderID: "42", Amount: 100}
			},
			wantErr: entities.ErrInvalidOrderID,
		},
		{
			name: "non positive amount",
			event: func(id string) entities.PaymentEvent {
				return entities.PaymentEvent{Type: entities.PaymentSucceeded, OrderID: id, ProviderRef: "pi_1"}
			},
			wantKind: entities.KindValidation,
		},
		{
			name: "unknown event type",
			event: func(id string) entities.PaymentEvent {
				return entities.PaymentEvent{Type: "charge.refunded", OrderID: id}
			},
			wantKind: entities.KindValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			repo := seededRepo()
			order := acceptedOrder(t, repo)
			svc := newPaymentService(t, repo, quietEmitter(t))

			if tc.paid {
				require.NoError(t, svc.HandleEvent(ctx, entities.PaymentEvent{
					Type:        entities.PaymentSucceeded,
					OrderID:     order.ID,
					ProviderRef: "pi_1",
					Amount:      100,
				}))
			}
			payments := len(repo.payments)

			err := svc.HandleEvent(ctx, tc.event(order.ID))
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			if tc.wantErr == entities.ErrWrongState {
				assert.NotErrorIs(t, err, entities.ErrEventApplied)
			}
			if tc.wantKind != 0 {
				assert.Equal(t, tc.wantKind, entities.KindOf(err))
			}
			assert.Len(t, repo.payments, payments, "failed events store no payment")
		})
	}
}

func TestPaymentService_Redelivery(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	order := acceptedOrder(t, repo)
	svc := newPaymentService(t, repo, quietEmitter(t))

	deposit := entities.PaymentEvent{Type: entities.PaymentDeposit, OrderID: order.ID, ProviderRef: "pi_d", Amount: 50}
	require.NoError(t, svc.HandleEvent(ctx, deposit))
	assert.ErrorIs(t, svc.HandleEvent(ctx, deposit), entities.ErrEventApplied)

	paid := entities.PaymentEvent{Type: entities.PaymentSucceeded, OrderID: order.ID, ProviderRef: "pi_p", Amount: 50}
	require.NoError(t, svc.HandleEvent(ctx, paid))
	assert.ErrorIs(t, svc.HandleEvent(ctx, paid), entities.ErrEventApplied)

	transfer := entities.PaymentEvent{Type: entities.TransferSucceeded, OrderID: order.ID}
	require.NoError(t, svc.HandleEvent(ctx, transfer))
	assert.ErrorIs(t, svc.HandleEvent(ctx, transfer), entities.ErrEventApplied)
	assert.ErrorIs(t, svc.HandleEvent(ctx, paid), entities.ErrEventApplied, "payment replayed after completion")

	assert.Len(t, repo.payments, 2)
}

func TestPaymentService_RefusedByOrderState(t *testing.T) {
	testCases := []struct {
		name    string
		prepare func(t *testing.T, repo *memRepo) string
	}{
		{
			name: "cancelled order",
			prepare: func(t *testing.T, repo *memRepo) string {
				order := acceptedOrder(t, repo)
				_, err := newOrderService(t, repo, quietEmitter(t)).CancelOrder(context.Background(), adminActor, order.ID)
				require.NoError(t, err)
				return order.ID
			},
		},
		{
			name: "declined order",
			prepare: func(t *testing.T, repo *memRepo) string {
				order := acceptedOrder(t, repo)
				_, err := newOrderService(t, repo, quietEmitter(t)).DeclineOrder(context.Background(), customerActor("c1"), order.ID, "changed plans")
				require.NoError(t, err)
				return order.ID
			},
		},
		{
			name: "pending order",
			prepare: func(t *testing.T, repo *memRepo) string {
				order, err := newOrderService(t, repo, quietEmitter(t)).CreateOrder(context.Background(), booking("c1", "p1", at(10, 0), at(11, 0)))
				require.NoError(t, err)
				return order.ID
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			repo := seededRepo()
			id := tc.prepare(t, repo)
			svc := newPaymentService(t, repo, quietEmitter(t))

			err := svc.HandleEvent(ctx, entities.PaymentEvent{
				Type:        entities.PaymentSucceeded,
				OrderID:     id,
				ProviderRef: "pi_late",
				Amount:      100,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, entities.ErrWrongState)
			assert.NotErrorIs(t, err, entities.ErrEventApplied)
			assert.Empty(t, repo.payments)
		})
	}
}
