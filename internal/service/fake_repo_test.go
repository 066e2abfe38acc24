package service_test

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
)

// memRepo is an in-memory stand-in for the Postgres repository that keeps the
// same compare-and-swap and overlap semantics.
type memRepo struct {
	mu sync.Mutex

	lastID    string
	orders    map[string]entities.Order
	customers map[string]entities.Customer
	vendors   map[string]entities.Vendor
	packages  map[string]entities.Package
	payments  []entities.Payment
}

func newMemRepo() *memRepo {
	return &memRepo{
		orders:    make(map[string]entities.Order),
		customers: make(map[string]entities.Customer),
		vendors:   make(map[string]entities.Vendor),
		packages:  make(map[string]entities.Package),
	}
}

func (r *memRepo) NextOrderID(context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, err := entities.NextOrderID(r.lastID)
	if err != nil {
		return "", err
	}
	r.lastID = id
	return id, nil
}

func (r *memRepo) CreateOrder(_ context.Context, o entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	return nil
}

func (r *memRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	return r.FindOrder(ctx, entities.OrderFilter{ID: id})
}

func (r *memRepo) FindOrder(ctx context.Context, filter entities.OrderFilter) (entities.Order, error) {
	orders, _ := r.ListOrders(ctx, filter)
	if len(orders) == 0 {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return orders[0], nil
}

func (r *memRepo) ListOrders(_ context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entities.Order
	for _, o := range r.orders {
		if filter.ID != "" && o.ID != filter.ID {
			continue
		}
		if filter.CustomerID != "" && o.CustomerID != filter.CustomerID {
			continue
		}
		if filter.VendorID != "" && o.VendorID != filter.VendorID {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, o.Status) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })

	if filter.Offset > 0 {
		if filter.Offset >= uint64(len(out)) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < uint64(len(out)) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *memRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	return r.ListOrders(ctx, entities.OrderFilter{Limit: uint64(count)})
}

func (r *memRepo) HasOverlap(_ context.Context, q entities.OverlapQuery) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.VendorID != q.VendorID || o.ID == q.ExcludeOrderID {
			continue
		}
		if q.CustomerID != "" && o.CustomerID != q.CustomerID {
			continue
		}
		if !slices.Contains(q.Statuses, o.Status) {
			continue
		}
		if o.Window().Overlaps(q.Window) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) UpdateOrderStatus(_ context.Context, u entities.StatusUpdate) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[u.OrderID]
	if !ok || !slices.Contains(u.From, o.Status) {
		return entities.Order{}, entities.ErrWrongState
	}
	if (u.CustomerID != "" && o.CustomerID != u.CustomerID) || (u.VendorID != "" && o.VendorID != u.VendorID) {
		return entities.Order{}, entities.ErrWrongState
	}
	if len(u.PaymentFrom) > 0 && !slices.Contains(u.PaymentFrom, o.PaymentStatus) {
		return entities.Order{}, entities.ErrWrongState
	}

	o.Status = u.To
	if u.Amount != nil {
		o.Amount = *u.Amount
	}
	if u.PaymentStatus != nil {
		o.PaymentStatus = *u.PaymentStatus
	}
	if u.PaymentID != nil {
		o.PaymentID = *u.PaymentID
	}
	if u.DeclineMessage != nil {
		o.Declined = true
		o.DeclineMessage = *u.DeclineMessage
	}
	o.UpdatedAt = time.Now().UTC()
	r.orders[o.ID] = o
	return o, nil
}

func (r *memRepo) LockVendor(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vendors[id]; !ok {
		return entities.ErrVendorNotFound
	}
	return nil
}

func (r *memRepo) GetVendor(_ context.Context, id string) (entities.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vendors[id]
	if !ok {
		return entities.Vendor{}, entities.ErrVendorNotFound
	}
	return v, nil
}

func (r *memRepo) GetCustomer(_ context.Context, id string) (entities.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	return c, nil
}

func (r *memRepo) GetPackage(_ context.Context, id string) (entities.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.packages[id]
	if !ok {
		return entities.Package{}, entities.ErrPackageNotFound
	}
	return p, nil
}

func (r *memRepo) SavePayment(_ context.Context, p entities.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, p)
	return nil
}

func (r *memRepo) LatestPayment(_ context.Context, orderID string) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.payments) - 1; i >= 0; i-- {
		if r.payments[i].OrderID == orderID {
			return r.payments[i], nil
		}
	}
	return entities.Payment{}, entities.NotFound("payment for order %s not found", orderID)
}

func (r *memRepo) MarkTransferred(_ context.Context, paymentID string, applicationCharge, vendorReceivable float64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.payments {
		if r.payments[i].ID == paymentID {
			r.payments[i].ApplicationCharge = applicationCharge
			r.payments[i].VendorReceivable = vendorReceivable
			r.payments[i].TransferredAt = &at
			return nil
		}
	}
	return entities.NotFound("payment %s not found", paymentID)
}
