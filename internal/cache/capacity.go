package cache

import (
	"context"
	"errors"
	"fmt"

	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CapacityManager interface {
	// 預熱：剩餘名額不存在時才寫入，回傳是否寫入
	WarmUp(ctx context.Context, eventID uuid.UUID, remaining int) (bool, error)
	// 獲取：剩餘名額
	GetRemaining(ctx context.Context, eventID uuid.UUID) (int, error)
	// 預留：扣減剩餘名額 (使用Lua腳本確保原子性)
	Reserve(ctx context.Context, eventID uuid.UUID, quantity int) error
	// 釋放：歸還名額，key 不存在時不做事
	Release(ctx context.Context, eventID uuid.UUID, quantity int) error
}

type CapacityManagerImpl struct {
	client *redis.Client
}

func NewCapacityManager(client *redis.Client) CapacityManager {
	return &CapacityManagerImpl{
		client: client,
	}
}

const capacityField = "remaining"

// CapacityKey 名額 key
func CapacityKey(eventID uuid.UUID) string {
	return fmt.Sprintf("event:%s:capacity", eventID)
}

// ReserveScript 回傳 1 成功、-1 名額不足、-3 尚未預熱
const ReserveScript = `
	local key = KEYS[1]
	local qty = tonumber(ARGV[1])

	local remaining = redis.call('HGET', key, 'remaining')
	if not remaining then
		return -3
	end

	if tonumber(remaining) < qty then
		return -1
	end

	redis.call('HINCRBY', key, 'remaining', -qty)
	return 1
`

// ReleaseScript 只在 key 存在時歸還，避免產生沒有上限的計數
const ReleaseScript = `
	local key = KEYS[1]
	local qty = tonumber(ARGV[1])

	if redis.call('HEXISTS', key, 'remaining') == 0 then
		return 0
	end

	redis.call('HINCRBY', key, 'remaining', qty)
	return 1
`

func (m *CapacityManagerImpl) WarmUp(ctx context.Context, eventID uuid.UUID, remaining int) (bool, error) {
	if remaining < 0 {
		remaining = 0
	}
	return m.client.HSetNX(ctx, CapacityKey(eventID), capacityField, remaining).Result()
}

func (m *CapacityManagerImpl) GetRemaining(ctx context.Context, eventID uuid.UUID) (int, error) {
	val, err := m.client.HGet(ctx, CapacityKey(eventID), capacityField).Int()
	if errors.Is(err, redis.Nil) {
		return -1, apperrors.ErrInventoryNotReady
	}
	return val, err
}

func (m *CapacityManagerImpl) Reserve(ctx context.Context, eventID uuid.UUID, quantity int) error {
	result, err := m.client.Eval(ctx, ReserveScript, []string{CapacityKey(eventID)}, quantity).Result()
	if err != nil {
		return fmt.Errorf("reserve capacity: %w", err)
	}

	code, ok := result.(int64)
	if !ok {
		return fmt.Errorf("reserve capacity: unexpected result %v", result)
	}

	switch code {
	case 1:
		return nil
	case -1:
		return apperrors.ErrCapacityExceeded
	case -3:
		return apperrors.ErrInventoryNotReady
	default:
		return fmt.Errorf("reserve capacity: unexpected code %d", code)
	}
}

func (m *CapacityManagerImpl) Release(ctx context.Context, eventID uuid.UUID, quantity int) error {
	if err := m.client.Eval(ctx, ReleaseScript, []string{CapacityKey(eventID)}, quantity).Err(); err != nil {
		return fmt.Errorf("release capacity: %w", err)
	}
	return nil
}
