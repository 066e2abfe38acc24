package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

// windowStartExpr mirrors entities.Order.Window.
const windowStartExpr = "COALESCE(setup_start, service_start, delivery_at)"

// NextOrderID must run inside a transaction: the advisory lock is held until
// it commits, so concurrent creations never draw the same id.
func (r *postgresRepo) NextOrderID(ctx context.Context) (string, error) {
	if _, err := r.execContext(ctx, "SELECT pg_advisory_xact_lock(hashtext('orders.id'))"); err != nil {
		return "", entities.External("failed to lock order ids", err)
	}

	query, args := r.qb.Select("id").
		From("orders").
		OrderBy("length(id) DESC", "id DESC").
		Limit(1).
		MustSql()

	var last string
	err := r.getContext(ctx, &last, query, args...)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", entities.External("failed to get last order id", err)
	}

	return entities.NextOrderID(last)
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	row := OrderFromEntity(o)
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			row.ID, row.CustomerID, row.VendorID, row.ServiceID, row.PackageID,
			row.ServiceStart, row.DeliveryAt, row.SetupStart,
			row.OfferedAmount, row.Amount, row.DeliveryFee, row.SetupFee,
			string(row.Status), string(row.PaymentStatus), row.PaymentID,
			row.Address, row.Lng, row.Lat, row.Declined, row.DeclineMessage,
			row.CreatedAt, row.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.External("failed to save order", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	return r.FindOrder(ctx, entities.OrderFilter{ID: id})
}

// FindOrder returns the first order matching the filter.
func (r *postgresRepo) FindOrder(ctx context.Context, filter entities.OrderFilter) (entities.Order, error) {
	filter.Limit = 1
	query, args := r.selectOrders(filter).MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, entities.External("failed to get order", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	query, args := r.selectOrders(filter).MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, entities.External("failed to select orders", err)
	}

	result := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		result = append(result, OrderToEntity(row))
	}
	return result, nil
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	return r.ListOrders(ctx, entities.OrderFilter{Limit: uint64(count)})
}

func (r *postgresRepo) selectOrders(filter entities.OrderFilter) sq.SelectBuilder {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC", "id DESC")

	if filter.ID != "" {
		q = q.Where(sq.Eq{"id": filter.ID})
	}
	if filter.CustomerID != "" {
		q = q.Where(sq.Eq{"customer_id": filter.CustomerID})
	}
	if filter.VendorID != "" {
		q = q.Where(sq.Eq{"vendor_id": filter.VendorID})
	}
	if len(filter.Statuses) > 0 {
		q = q.Where(sq.Eq{"status": statusStrings(filter.Statuses)})
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	return q
}

// HasOverlap is a single existence query on the (vendor_id, status) index.
func (r *postgresRepo) HasOverlap(ctx context.Context, q entities.OverlapQuery) (bool, error) {
	where := sq.And{
		sq.Eq{"vendor_id": q.VendorID},
		sq.Eq{"status": statusStrings(q.Statuses)},
		sq.Lt{windowStartExpr: q.Window.End.UTC()},
		sq.Gt{"delivery_at": q.Window.Start.UTC()},
	}
	if q.CustomerID != "" {
		where = append(where, sq.Eq{"customer_id": q.CustomerID})
	}
	if q.ExcludeOrderID != "" {
		where = append(where, sq.NotEq{"id": q.ExcludeOrderID})
	}

	query, args := r.qb.Select("1").
		From("orders").
		Where(where).
		Limit(1).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, entities.External("failed to check overlapping orders", err)
	}
	return true, nil
}

// UpdateOrderStatus applies the update only when the stored order is still in
// one of u.From and belongs to the given parties. ErrWrongState is returned
// when nothing matched.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, u entities.StatusUpdate) (entities.Order, error) {
	q := r.qb.Update("orders").
		Set("status", string(u.To)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": u.OrderID}).
		Where(sq.Eq{"status": statusStrings(u.From)})

	if u.CustomerID != "" {
		q = q.Where(sq.Eq{"customer_id": u.CustomerID})
	}
	if u.VendorID != "" {
		q = q.Where(sq.Eq{"vendor_id": u.VendorID})
	}
	if len(u.PaymentFrom) > 0 {
		from := make([]string, len(u.PaymentFrom))
		for i, s := range u.PaymentFrom {
			from[i] = string(s)
		}
		q = q.Where(sq.Eq{"payment_status": from})
	}
	if u.Amount != nil {
		q = q.Set("amount", *u.Amount)
	}
	if u.PaymentStatus != nil {
		q = q.Set("payment_status", string(*u.PaymentStatus))
	}
	if u.PaymentID != nil {
		q = q.Set("payment_id", *u.PaymentID)
	}
	if u.DeclineMessage != nil {
		q = q.Set("declined", true).Set("decline_message", *u.DeclineMessage)
	}

	query, args := q.Suffix("RETURNING " + strings.Join(orderColumns, ", ")).MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrWrongState
	}
	if err != nil {
		return entities.Order{}, entities.External("failed to update order status", err)
	}
	return OrderToEntity(order), nil
}
