package service

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"

	"github.com/google/uuid"
)

type NotificationRepo interface {
	ListNotifications(ctx context.Context, recipientID string, limit, offset uint64) ([]entities.Notification, error)
	MarkNotificationRead(ctx context.Context, id, recipientID string, at time.Time) error
}

type notificationService struct {
	repo NotificationRepo
}

func NewNotificationService(repo NotificationRepo) *notificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) ListNotifications(ctx context.Context, actor entities.Actor, limit, offset uint64) ([]entities.Notification, error) {
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.ListNotifications(ctx, actor.ID, limit, offset)
}

func (s *notificationService) MarkRead(ctx context.Context, actor entities.Actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return entities.Validation("invalid notification id")
	}
	return s.repo.MarkNotificationRead(ctx, id, actor.ID, time.Now())
}
