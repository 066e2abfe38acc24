package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
	"github.com/SergeyBogomolovv/booking-service/internal/notify"
	"github.com/SergeyBogomolovv/booking-service/internal/pricing"
	"github.com/SergeyBogomolovv/booking-service/pkg/trm"

	"github.com/google/uuid"
)

const nsPayments = "payments"

type PaymentRepo interface {
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, u entities.StatusUpdate) (entities.Order, error)

	SavePayment(ctx context.Context, p entities.Payment) error
	LatestPayment(ctx context.Context, orderID string) (entities.Payment, error)
	MarkTransferred(ctx context.Context, paymentID string, applicationCharge, vendorReceivable float64, at time.Time) error
}

// system is the actor of provider callbacks; it may see every order.
var system = entities.Actor{ID: "system", Role: entities.RoleAdmin}

type paymentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      PaymentRepo
	cache     Cache
	emitter   notify.Emitter
	rates     pricing.Rates
	now       func() time.Time
}

func NewPaymentService(logger *slog.Logger, txManager trm.Manager, repo PaymentRepo, cache Cache, emitter notify.Emitter, rates pricing.Rates) *paymentService {
	return &paymentService{
		logger:    logger.With(slog.String("service", "payment")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		emitter:   emitter,
		rates:     rates,
		now:       time.Now,
	}
}

// HandleEvent applies a payment provider event to its order. A replayed event
// fails with ErrEventApplied. An event the order cannot take in its current
// state fails with ErrWrongState.
func (s *paymentService) HandleEvent(ctx context.Context, ev entities.PaymentEvent) error {
	if _, err := entities.ParseOrderID(ev.OrderID); err != nil {
		return err
	}

	var (
		order entities.Order
		err   error
	)
	switch ev.Type {
	case entities.PaymentSucceeded:
		order, err = s.markPaid(ctx, ev)
	case entities.PaymentDeposit:
		order, err = s.markDeposit(ctx, ev)
	case entities.TransferSucceeded:
		order, err = s.completeTransfer(ctx, ev)
	default:
		return entities.Validation("unknown payment event type %q", ev.Type)
	}
	if errors.Is(err, entities.ErrWrongState) {
		return s.classifyRejected(ctx, ev)
	}
	if err != nil {
		return err
	}

	s.cache.Delete(order.ID)
	orderTransitions.WithLabelValues(string(order.Status)).Inc()
	s.logger.Debug("payment event applied",
		slog.String("order_id", order.ID),
		slog.String("type", string(ev.Type)),
		slog.String("status", string(order.Status)),
	)
	return nil
}

// classifyRejected decides whether an event the order refused was already
// applied to it.
func (s *paymentService) classifyRejected(ctx context.Context, ev entities.PaymentEvent) error {
	order, err := s.repo.GetOrderByID(ctx, ev.OrderID)
	if err != nil {
		return err
	}
	if alreadyApplied(order, ev.Type) {
		return entities.ErrEventApplied
	}
	return fmt.Errorf("%s for order %s in status %s/%s: %w",
		ev.Type, order.ID, order.Status, order.PaymentStatus, entities.ErrWrongState)
}

func alreadyApplied(order entities.Order, typ entities.PaymentEventType) bool {
	switch typ {
	case entities.PaymentSucceeded:
		return order.PaymentStatus == entities.PaymentFull &&
			(order.Status == entities.OrderOngoing || order.Status == entities.OrderCompleted)
	case entities.PaymentDeposit:
		return order.PaymentStatus == entities.PaymentHalf && order.Status == entities.OrderAccepted
	case entities.TransferSucceeded:
		return order.Status == entities.OrderCompleted
	}
	return false
}

// markPaid moves an accepted order to ongoing once fully paid.
func (s *paymentService) markPaid(ctx context.Context, ev entities.PaymentEvent) (entities.Order, error) {
	if ev.Amount <= 0 {
		return entities.Order{}, entities.Validation("payment amount must be positive")
	}

	full := entities.PaymentFull
	order, err := s.applyPayment(ctx, ev, entities.StatusUpdate{
		OrderID:       ev.OrderID,
		From:          []entities.OrderStatus{entities.OrderAccepted},
		To:            entities.OrderOngoing,
		PaymentStatus: &full,
		PaymentID:     &ev.ProviderRef,
	})
	if err != nil {
		return entities.Order{}, err
	}

	payload := notify.Payload{
		Title:   "Payment received",
		Message: fmt.Sprintf("Order %s has been paid in full", order.ID),
		Type:    string(entities.PaymentSucceeded),
		OrderID: order.ID,
	}
	emit(ctx, s.logger, s.emitter, nsPayments, order.VendorID, payload)
	emit(ctx, s.logger, s.emitter, nsPayments, order.CustomerID, payload)
	return order, nil
}

// markDeposit records a half payment; the order stays accepted.
func (s *paymentService) markDeposit(ctx context.Context, ev entities.PaymentEvent) (entities.Order, error) {
	if ev.Amount <= 0 {
		return entities.Order{}, entities.Validation("payment amount must be positive")
	}

	half := entities.PaymentHalf
	order, err := s.applyPayment(ctx, ev, entities.StatusUpdate{
		OrderID:       ev.OrderID,
		From:          []entities.OrderStatus{entities.OrderAccepted},
		To:            entities.OrderAccepted,
		PaymentFrom:   []entities.PaymentStatus{entities.PaymentPending},
		PaymentStatus: &half,
		PaymentID:     &ev.ProviderRef,
	})
	if err != nil {
		return entities.Order{}, err
	}

	emit(ctx, s.logger, s.emitter, nsPayments, order.VendorID, notify.Payload{
		Title:   "Deposit received",
		Message: fmt.Sprintf("A deposit for order %s has been paid", order.ID),
		Type:    string(entities.PaymentDeposit),
		OrderID: order.ID,
	})
	return order, nil
}

func (s *paymentService) applyPayment(ctx context.Context, ev entities.PaymentEvent, u entities.StatusUpdate) (entities.Order, error) {
	status := *u.PaymentStatus

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = applyTransition(ctx, s.repo, system, u)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		return s.repo.SavePayment(ctx, entities.Payment{
			ID:          uuid.NewString(),
			OrderID:     order.ID,
			ProviderRef: ev.ProviderRef,
			Amount:      ev.Amount,
			Status:      status,
			Instant:     ev.Instant,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	})
	return order, err
}

// completeTransfer closes an ongoing order and stores the vendor's fee
// breakdown on its latest payment.
func (s *paymentService) completeTransfer(ctx context.Context, ev entities.PaymentEvent) (entities.Order, error) {
	var (
		order entities.Order
		fees  pricing.VendorFees
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = applyTransition(ctx, s.repo, system, entities.StatusUpdate{
			OrderID: ev.OrderID,
			From:    []entities.OrderStatus{entities.OrderOngoing},
			To:      entities.OrderCompleted,
		})
		if err != nil {
			return err
		}

		payment, err := s.repo.LatestPayment(ctx, order.ID)
		if err != nil {
			return err
		}

		fees = s.rates.VendorView(pricing.FeeInput{
			Amount:      order.Amount,
			SetupFee:    order.SetupFee,
			DeliveryFee: order.DeliveryFee,
			Instant:     ev.Instant,
		})
		return s.repo.MarkTransferred(ctx, payment.ID, fees.ApplicationCharge, fees.VendorReceivable, s.now())
	})
	if err != nil {
		return entities.Order{}, err
	}

	emit(ctx, s.logger, s.emitter, nsPayments, order.VendorID, notify.Payload{
		Title:   "Payout sent",
		Message: fmt.Sprintf("%.2f for order %s is on its way to your account", fees.VendorReceivable, order.ID),
		Type:    string(entities.TransferSucceeded),
		OrderID: order.ID,
	})
	return order, nil
}
