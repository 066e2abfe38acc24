package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
	"github.com/SergeyBogomolovv/booking-service/internal/notify"
	"github.com/SergeyBogomolovv/booking-service/internal/pricing"
	"github.com/SergeyBogomolovv/booking-service/internal/schedule"
	"github.com/SergeyBogomolovv/booking-service/pkg/geo"
	"github.com/SergeyBogomolovv/booking-service/pkg/trm"

	"golang.org/x/sync/errgroup"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	notifyTimeout = 5 * time.Second
	nsOrders      = "orders"
)

type OrderRepo interface {
	NextOrderID(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	FindOrder(ctx context.Context, filter entities.OrderFilter) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	HasOverlap(ctx context.Context, q entities.OverlapQuery) (bool, error)
	UpdateOrderStatus(ctx context.Context, u entities.StatusUpdate) (entities.Order, error)

	LockVendor(ctx context.Context, id string) error
	GetVendor(ctx context.Context, id string) (entities.Vendor, error)
	GetCustomer(ctx context.Context, id string) (entities.Customer, error)
	GetPackage(ctx context.Context, id string) (entities.Package, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type CreateOrderInput struct {
	CustomerID string
	VendorID   string
	PackageID  string

	// zero when the customer did not ask for a service start
	ServiceStart  time.Time
	DeliveryAt    time.Time
	OfferedAmount float64

	Address  string
	Location geo.Point
}

// Quote is the fee breakdown of an order as seen by the caller.
type Quote struct {
	OrderID  string
	Vendor   *pricing.VendorFees
	Customer *pricing.CustomerFees
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	emitter   notify.Emitter
	rates     pricing.Rates
	now       func() time.Time
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, emitter notify.Emitter, rates pricing.Rates) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		emitter:   emitter,
		rates:     rates,
		now:       time.Now,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if !in.DeliveryAt.After(s.now()) {
		return entities.Order{}, entities.Validation("delivery date must be in the future")
	}
	if !in.ServiceStart.IsZero() && !in.ServiceStart.Before(in.DeliveryAt) {
		return entities.Order{}, entities.Validation("service start must be before the delivery date")
	}
	if in.OfferedAmount < 0 {
		return entities.Order{}, entities.Validation("offered amount must not be negative")
	}

	var (
		customer entities.Customer
		vendor   entities.Vendor
		pkg      entities.Package
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		customer, err = s.repo.GetCustomer(gctx, in.CustomerID)
		return err
	})
	g.Go(func() (err error) {
		vendor, err = s.repo.GetVendor(gctx, in.VendorID)
		return err
	})
	g.Go(func() (err error) {
		pkg, err = s.repo.GetPackage(gctx, in.PackageID)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.Order{}, err
	}

	if !customer.Active() {
		return entities.Order{}, entities.ErrCustomerNotFound
	}
	if !vendor.Active() {
		return entities.Order{}, entities.ErrVendorNotFound
	}
	if pkg.VendorID != vendor.ID {
		return entities.Order{}, entities.ErrPackageNotFound
	}

	now := s.now().UTC()
	order := entities.Order{
		CustomerID:    customer.ID,
		VendorID:      vendor.ID,
		ServiceID:     pkg.ServiceID,
		PackageID:     pkg.ID,
		ServiceStart:  in.ServiceStart.UTC(),
		DeliveryAt:    in.DeliveryAt.UTC(),
		OfferedAmount: in.OfferedAmount,
		Status:        entities.OrderPending,
		PaymentStatus: entities.PaymentPending,
		Address:       in.Address,
		Location:      in.Location,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if pkg.HasSetup {
		setup, err := schedule.ParseDuration(pkg.SetupDuration)
		if err != nil {
			return entities.Order{}, err
		}
		setupStart := order.DeliveryAt.Add(-setup)
		order.SetupStart = &setupStart
		order.SetupFee = pkg.SetupFee
	}

	if err := schedule.CheckAvailability(vendor, order.Window(), pkg.HasSetup); err != nil {
		return entities.Order{}, err
	}

	if !order.Location.IsZero() && !vendor.Location.IsZero() {
		order.DeliveryFee = s.rates.DeliveryFee(geo.Distance(vendor.Location, order.Location))
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.LockVendor(ctx, vendor.ID); err != nil {
			return err
		}
		if err := s.checkConflicts(ctx, order, ""); err != nil {
			return err
		}

		id, err := s.repo.NextOrderID(ctx)
		if err != nil {
			return err
		}
		order.ID = id

		return s.repo.CreateOrder(ctx, order)
	})
	if err != nil {
		return entities.Order{}, err
	}

	ordersCreated.Inc()
	s.logger.Debug("order created", slog.String("order_id", order.ID), slog.String("vendor_id", order.VendorID))

	s.notify(ctx, order.VendorID, notify.Payload{
		Title:   "New order request",
		Message: fmt.Sprintf("You have a new order request %s", order.ID),
		Type:    "order.created",
		OrderID: order.ID,
	})

	return order, nil
}

// checkConflicts runs the two booking conflict rules against the stored
// orders. excludeID skips the order being re-checked.
func (s *orderService) checkConflicts(ctx context.Context, order entities.Order, excludeID string) error {
	window := order.Window()

	busy, err := s.repo.HasOverlap(ctx, entities.OverlapQuery{
		VendorID:       order.VendorID,
		Statuses:       entities.ActiveStatuses,
		Window:         window,
		ExcludeOrderID: excludeID,
	})
	if err != nil {
		return err
	}
	if busy {
		bookingConflicts.WithLabelValues("vendor_busy").Inc()
		return entities.ErrVendorBusy
	}

	booked, err := s.repo.HasOverlap(ctx, entities.OverlapQuery{
		VendorID:       order.VendorID,
		CustomerID:     order.CustomerID,
		Statuses:       entities.PendingOrActiveStatuses,
		Window:         window,
		ExcludeOrderID: excludeID,
	})
	if err != nil {
		return err
	}
	if booked {
		bookingConflicts.WithLabelValues("already_booked").Inc()
		return entities.ErrAlreadyBooked
	}
	return nil
}

// GetOrder hides orders the actor may not see behind ErrOrderNotFound.
func (s *orderService) GetOrder(ctx context.Context, actor entities.Actor, id string) (entities.Order, error) {
	if _, err := entities.ParseOrderID(id); err != nil {
		return entities.Order{}, err
	}

	order, err := s.getOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !actor.CanSee(order) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) getOrder(ctx context.Context, id string) (entities.Order, error) {
	if data, ok := s.cache.Get(id); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		s.logger.Error("failed to unmarshal cached order", slog.String("order_id", id))
		s.cache.Delete(id)
	}

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

// cacheOrder keeps only terminal orders: they never change again, so a read
// racing a transition can not leave a stale entry behind.
func (s *orderService) cacheOrder(order entities.Order) {
	if !order.Status.IsTerminal() {
		return
	}
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}

// ListOrders scopes the filter to the actor: customers and vendors only see
// their own orders.
func (s *orderService) ListOrders(ctx context.Context, actor entities.Actor, filter entities.OrderFilter) ([]entities.Order, error) {
	filter.ID = ""
	switch actor.Role {
	case entities.RoleCustomer:
		filter.CustomerID = actor.ID
	case entities.RoleVendor:
		filter.VendorID = actor.ID
	case entities.RoleAdmin:
	default:
		return nil, entities.Validation("unknown role %q", actor.Role)
	}

	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	return s.repo.ListOrders(ctx, filter)
}

func (s *orderService) AcceptOrder(ctx context.Context, actor entities.Actor, id string, amount float64) (entities.Order, error) {
	if amount <= 0 {
		return entities.Order{}, entities.Validation("amount is required to accept an order")
	}

	var accepted entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.LockVendor(ctx, actor.ID); err != nil {
			if errors.Is(err, entities.ErrVendorNotFound) {
				return entities.ErrOrderNotFound
			}
			return err
		}

		order, err := s.repo.FindOrder(ctx, entities.OrderFilter{
			ID:       id,
			VendorID: actor.ID,
			Statuses: []entities.OrderStatus{entities.OrderPending},
		})
		if errors.Is(err, entities.ErrOrderNotFound) {
			return s.transitionFailure(ctx, actor, id)
		}
		if err != nil {
			return err
		}

		if err := s.checkConflicts(ctx, order, order.ID); err != nil {
			return err
		}

		accepted, err = s.transition(ctx, actor, entities.StatusUpdate{
			OrderID:  id,
			VendorID: actor.ID,
			From:     []entities.OrderStatus{entities.OrderPending},
			To:       entities.OrderAccepted,
			Amount:   &amount,
		})
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}
	s.afterTransition(accepted)

	s.notify(ctx, accepted.CustomerID, notify.Payload{
		Title:   "Order accepted",
		Message: fmt.Sprintf("Your order %s was accepted for %.2f", accepted.ID, accepted.Amount),
		Type:    "order.accepted",
		OrderID: accepted.ID,
	})
	return accepted, nil
}

func (s *orderService) RejectOrder(ctx context.Context, actor entities.Actor, id string) (entities.Order, error) {
	rejected, err := s.transitionTx(ctx, actor, entities.StatusUpdate{
		OrderID:  id,
		VendorID: actor.ID,
		From:     []entities.OrderStatus{entities.OrderPending},
		To:       entities.OrderRejected,
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.notify(ctx, rejected.CustomerID, notify.Payload{
		Title:   "Order rejected",
		Message: fmt.Sprintf("Your order %s was rejected by the vendor", rejected.ID),
		Type:    "order.rejected",
		OrderID: rejected.ID,
	})
	return rejected, nil
}

// DeclineOrder lets the customer turn down an accepted order.
func (s *orderService) DeclineOrder(ctx context.Context, actor entities.Actor, id, message string) (entities.Order, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.Order{}, entities.Validation("a message is required to decline an order")
	}

	declined, err := s.transitionTx(ctx, actor, entities.StatusUpdate{
		OrderID:        id,
		CustomerID:     actor.ID,
		From:           []entities.OrderStatus{entities.OrderAccepted},
		To:             entities.OrderDeclined,
		DeclineMessage: &message,
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.notify(ctx, declined.VendorID, notify.Payload{
		Title:   "Order declined",
		Message: fmt.Sprintf("Order %s was declined: %s", declined.ID, message),
		Type:    "order.declined",
		OrderID: declined.ID,
	})
	return declined, nil
}

// CancelOrder: admins cancel pending or accepted orders, customers only their
// own pending ones.
func (s *orderService) CancelOrder(ctx context.Context, actor entities.Actor, id string) (entities.Order, error) {
	update := entities.StatusUpdate{OrderID: id, To: entities.OrderCancelled}
	switch actor.Role {
	case entities.RoleAdmin:
		update.From = []entities.OrderStatus{entities.OrderPending, entities.OrderAccepted}
	case entities.RoleCustomer:
		update.CustomerID = actor.ID
		update.From = []entities.OrderStatus{entities.OrderPending}
	default:
		return entities.Order{}, entities.Validation("role %q cannot cancel orders", actor.Role)
	}

	cancelled, err := s.transitionTx(ctx, actor, update)
	if err != nil {
		return entities.Order{}, err
	}

	payload := notify.Payload{
		Title:   "Order cancelled",
		Message: fmt.Sprintf("Order %s was cancelled", cancelled.ID),
		Type:    "order.cancelled",
		OrderID: cancelled.ID,
	}
	s.notify(ctx, cancelled.VendorID, payload)
	if actor.Role == entities.RoleAdmin {
		s.notify(ctx, cancelled.CustomerID, payload)
	}
	return cancelled, nil
}

// Quote returns the fee views of an order. Customers get the customer view,
// vendors the vendor view, admins both.
func (s *orderService) Quote(ctx context.Context, actor entities.Actor, id string, instant bool) (Quote, error) {
	order, err := s.GetOrder(ctx, actor, id)
	if err != nil {
		return Quote{}, err
	}

	amount := order.Amount
	if amount == 0 {
		amount = order.OfferedAmount
	}
	in := pricing.FeeInput{
		Amount:      amount,
		SetupFee:    order.SetupFee,
		DeliveryFee: order.DeliveryFee,
		Instant:     instant,
	}

	quote := Quote{OrderID: order.ID}
	if actor.Role == entities.RoleAdmin || actor.ID == order.CustomerID {
		view := s.rates.CustomerView(in)
		quote.Customer = &view
	}
	if actor.Role == entities.RoleAdmin || actor.ID == order.VendorID {
		view := s.rates.VendorView(in)
		quote.Vendor = &view
	}
	return quote, nil
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return err
	}
	for _, order := range orders {
		s.cacheOrder(order)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) transitionTx(ctx context.Context, actor entities.Actor, u entities.StatusUpdate) (entities.Order, error) {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.transition(ctx, actor, u)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}
	s.afterTransition(order)
	return order, nil
}

func (s *orderService) transition(ctx context.Context, actor entities.Actor, u entities.StatusUpdate) (entities.Order, error) {
	return applyTransition(ctx, s.repo, actor, u)
}

func (s *orderService) afterTransition(order entities.Order) {
	s.cache.Delete(order.ID)
	orderTransitions.WithLabelValues(string(order.Status)).Inc()
	s.logger.Debug("order transitioned", slog.String("order_id", order.ID), slog.String("status", string(order.Status)))
}

func (s *orderService) transitionFailure(ctx context.Context, actor entities.Actor, id string) error {
	return resolveTransitionFailure(ctx, s.repo, actor, id)
}

func (s *orderService) notify(ctx context.Context, recipientID string, payload notify.Payload) {
	emit(ctx, s.logger, s.emitter, nsOrders, recipientID, payload)
}

type transitionStore interface {
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, u entities.StatusUpdate) (entities.Order, error)
}

// applyTransition checks every source against the state machine before the
// compare-and-swap.
func applyTransition(ctx context.Context, repo transitionStore, actor entities.Actor, u entities.StatusUpdate) (entities.Order, error) {
	for _, from := range u.From {
		if from != u.To && !entities.CanTransition(from, u.To) {
			return entities.Order{}, fmt.Errorf("transition %s -> %s is not allowed", from, u.To)
		}
	}

	order, err := repo.UpdateOrderStatus(ctx, u)
	if errors.Is(err, entities.ErrWrongState) {
		return entities.Order{}, resolveTransitionFailure(ctx, repo, actor, u.OrderID)
	}
	return order, err
}

// resolveTransitionFailure tells a missing order apart from one in the wrong
// state after a filtered lookup or update matched nothing.
func resolveTransitionFailure(ctx context.Context, repo transitionStore, actor entities.Actor, id string) error {
	order, err := repo.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanSee(order) {
		return entities.ErrOrderNotFound
	}
	return entities.ErrWrongState
}

// emit never fails the caller: delivery problems are only logged.
func emit(ctx context.Context, logger *slog.Logger, emitter notify.Emitter, namespace, recipientID string, payload notify.Payload) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := emitter.Emit(ctx, namespace, recipientID, payload); err != nil {
		logger.Error("failed to emit notification",
			slog.String("recipient", recipientID),
			slog.String("type", payload.Type),
			slog.Any("error", err),
		)
	}
}
