package repo

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) SaveNotification(ctx context.Context, n entities.Notification) error {
	query, args := r.qb.Insert("notifications").
		Columns(notificationColumns...).
		Values(
			n.ID, n.RecipientID, n.Event, n.Title, n.Message, n.Type, n.OrderID,
			n.CreatedAt.UTC(), ptrToNull(n.ReadAt),
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.External("failed to save notification", err)
	}
	return nil
}

func (r *postgresRepo) ListNotifications(ctx context.Context, recipientID string, limit, offset uint64) ([]entities.Notification, error) {
	q := r.qb.Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"recipient_id": recipientID}).
		OrderBy("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	query, args := q.MustSql()

	var rows []Notification
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, entities.External("failed to select notifications", err)
	}

	result := make([]entities.Notification, 0, len(rows))
	for _, row := range rows {
		result = append(result, NotificationToEntity(row))
	}
	return result, nil
}

// MarkNotificationRead only touches notifications of the given recipient.
func (r *postgresRepo) MarkNotificationRead(ctx context.Context, id, recipientID string, at time.Time) error {
	query, args := r.qb.Update("notifications").
		Set("read_at", sq.Expr("COALESCE(read_at, ?)", at.UTC())).
		Where(sq.Eq{"id": id, "recipient_id": recipientID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.External("failed to mark notification read", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrNotificationNotFound
	}
	return nil
}
