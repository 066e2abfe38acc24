package service_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
	"github.com/SergeyBogomolovv/booking-service/internal/service"
	mocks "github.com/SergeyBogomolovv/booking-service/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	testCases := []struct {
		name       string
		limit      uint64
		offset     uint64
		wantLimit  uint64
		wantOffset uint64
	}{
		{name: "default limit", wantLimit: 20},
		{name: "limit is capped", limit: 1000, offset: 5, wantLimit: 100, wantOffset: 5},
		{name: "explicit limit", limit: 3, wantLimit: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockNotificationRepo(t)
			want := []entities.Notification{{ID: uuid.NewString(), RecipientID: "c1"}}
			repo.EXPECT().ListNotifications(mock.Anything, "c1", tc.wantLimit, tc.wantOffset).Return(want, nil).Once()

			svc := service.NewNotificationService(repo)

			got, err := svc.ListNotifications(context.Background(), customerActor("c1"), tc.limit, tc.offset)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	id := uuid.NewString()

	testCases := []struct {
		name         string
		id           string
		mockBehavior func(repo *mocks.MockNotificationRepo)
		wantErr      error
		wantKind     entities.ErrorKind
	}{
		{
			name: "success",
			id:   id,
			mockBehavior: func(repo *mocks.MockNotificationRepo) {
				repo.EXPECT().MarkNotificationRead(mock.Anything, id, "c1", mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "someone else's notification",
			id:   id,
			mockBehavior: func(repo *mocks.MockNotificationRepo) {
				repo.EXPECT().MarkNotificationRead(mock.Anything, id, "c1", mock.Anything).Return(entities.ErrNotificationNotFound).Once()
			},
			wantErr: entities.ErrNotificationNotFound,
		},
		{
			name:         "malformed id",
			id:           "not-a-uuid",
			mockBehavior: func(*mocks.MockNotificationRepo) {},
			wantKind:     entities.KindValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockNotificationRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewNotificationService(repo)

			err := svc.MarkRead(context.Background(), customerActor("c1"), tc.id)
			if tc.wantErr == nil && tc.wantKind == 0 {
				assert.NoError(t, err)
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			if tc.wantKind != 0 {
				assert.Equal(t, tc.wantKind, entities.KindOf(err))
			}
		})
	}
}
