package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	NotificationFeedKey = "organizer:notifications"
	// 只保留最新 50 筆
	NotificationFeedSize = 50
)

type NotificationFeed interface {
	Push(ctx context.Context, n model.Notification) error
	Recent(ctx context.Context, limit int) ([]model.Notification, error)
}

type RedisNotificationFeedImpl struct {
	client *redis.Client
}

func NewNotificationFeed(client *redis.Client) NotificationFeed {
	return &RedisNotificationFeedImpl{client: client}
}

func (f *RedisNotificationFeedImpl) Push(ctx context.Context, n model.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	_, err = f.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, NotificationFeedKey, data)
		pipe.LTrim(ctx, NotificationFeedKey, 0, NotificationFeedSize-1)
		return nil
	})
	return err
}

func (f *RedisNotificationFeedImpl) Recent(ctx context.Context, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > NotificationFeedSize {
		limit = NotificationFeedSize
	}
	raw, err := f.client.LRange(ctx, NotificationFeedKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	out := make([]model.Notification, 0, len(raw))
	for _, item := range raw {
		var n model.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			logger.WithComponent("cache").Warn("skip malformed notification", zap.Error(err))
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
