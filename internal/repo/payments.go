package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

// SavePayment is idempotent per (order_id, provider_ref).
func (r *postgresRepo) SavePayment(ctx context.Context, p entities.Payment) error {
	query, args := r.qb.Insert("payments").
		Columns(paymentColumns...).
		Values(
			p.ID, p.OrderID, p.ProviderRef, p.Amount, string(p.Status), p.Instant,
			p.ApplicationCharge, p.VendorReceivable, ptrToNull(p.TransferredAt),
			p.CreatedAt.UTC(), p.UpdatedAt.UTC(),
		).
		Suffix("ON CONFLICT (order_id, provider_ref) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.External("failed to save payment", err)
	}
	return nil
}

func (r *postgresRepo) LatestPayment(ctx context.Context, orderID string) (entities.Payment, error) {
	query, args := r.qb.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at DESC").
		Limit(1).
		MustSql()

	var payment Payment
	err := r.getContext(ctx, &payment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Payment{}, entities.NotFound("payment for order %s not found", orderID)
	}
	if err != nil {
		return entities.Payment{}, entities.External("failed to get payment", err)
	}
	return PaymentToEntity(payment), nil
}

// MarkTransferred stores the vendor fee breakdown on a payment.
func (r *postgresRepo) MarkTransferred(ctx context.Context, paymentID string, applicationCharge, vendorReceivable float64, at time.Time) error {
	query, args := r.qb.Update("payments").
		Set("application_charge", applicationCharge).
		Set("vendor_receivable", vendorReceivable).
		Set("transferred_at", at.UTC()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": paymentID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.External("failed to update payment", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.NotFound("payment %s not found", paymentID)
	}
	return nil
}
