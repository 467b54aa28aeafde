package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-gin-event-booking/internal/model"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ConfirmationStore 結帳成功後交給確認頁的一次性快照
type ConfirmationStore interface {
	Put(ctx context.Context, sessionID uuid.UUID, booking *model.Booking) error
	// Take 讀取後即刪除
	Take(ctx context.Context, sessionID uuid.UUID) (*model.Booking, error)
}

type RedisConfirmationStoreImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewConfirmationStore(client *redis.Client, ttl time.Duration) ConfirmationStore {
	return &RedisConfirmationStoreImpl{client: client, ttl: ttl}
}

func ConfirmationKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("booking:confirmation:%s", sessionID)
}

func (s *RedisConfirmationStoreImpl) Put(ctx context.Context, sessionID uuid.UUID, booking *model.Booking) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("marshal booking: %w", err)
	}
	return s.client.Set(ctx, ConfirmationKey(sessionID), data, s.ttl).Err()
}

func (s *RedisConfirmationStoreImpl) Take(ctx context.Context, sessionID uuid.UUID) (*model.Booking, error) {
	data, err := s.client.GetDel(ctx, ConfirmationKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrConfirmationNotFound
	}
	if err != nil {
		return nil, err
	}

	var booking model.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, fmt.Errorf("unmarshal booking: %w", err)
	}
	return &booking, nil
}
