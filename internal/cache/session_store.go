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

// SessionStore 選票 session 暫存，每次寫入都會延長 TTL
type SessionStore interface {
	Save(ctx context.Context, session *model.BookingSession) error
	Get(ctx context.Context, id uuid.UUID) (*model.BookingSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RedisSessionStoreImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &RedisSessionStoreImpl{client: client, ttl: ttl}
}

func SessionKey(id uuid.UUID) string {
	return fmt.Sprintf("booking:session:%s", id)
}

func (s *RedisSessionStoreImpl) Save(ctx context.Context, session *model.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, SessionKey(session.ID), data, s.ttl).Err()
}

func (s *RedisSessionStoreImpl) Get(ctx context.Context, id uuid.UUID) (*model.BookingSession, error) {
	data, err := s.client.Get(ctx, SessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session model.BookingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStoreImpl) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.client.Del(ctx, SessionKey(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}
