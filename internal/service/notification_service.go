package service

import (
	"context"

	"go-gin-event-booking/internal/cache"
	"go-gin-event-booking/internal/model"
)

const defaultNotificationLimit = 20

type NotificationService interface {
	// Record 將訂單事件轉成主辦方通知
	Record(ctx context.Context, event *model.BookingEvent) error
	Recent(ctx context.Context, limit int) ([]model.Notification, error)
}

type NotificationServiceImpl struct {
	feed cache.NotificationFeed
}

func NewNotificationService(feed cache.NotificationFeed) NotificationService {
	return &NotificationServiceImpl{feed: feed}
}

func (s *NotificationServiceImpl) Record(ctx context.Context, event *model.BookingEvent) error {
	if event == nil {
		return nil
	}
	return s.feed.Push(ctx, model.NotificationFromEvent(event))
}

func (s *NotificationServiceImpl) Recent(ctx context.Context, limit int) ([]model.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > cache.NotificationFeedSize {
		limit = cache.NotificationFeedSize
	}
	return s.feed.Recent(ctx, limit)
}
