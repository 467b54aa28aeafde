package queue_test

import (
	"context"
	"testing"
	"time"

	"go-gin-event-booking/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStreamBookingEventQueue(t *testing.T) {
	requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	t.Run("success", func(t *testing.T) {
		q, err := queue.NewRedisStreamBookingEventQueue(testRdb, "test-consumer", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})

	t.Run("existing group is reused", func(t *testing.T) {
		q, err := queue.NewRedisStreamBookingEventQueue(testRdb, "", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})
}

func TestRedisStreamBookingEventQueue_Subscribe_deliversPublishedEvent(t *testing.T) {
	requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	q, err := queue.NewRedisStreamBookingEventQueue(testRdb, "deliver-test", nil)
	require.NoError(t, err)

	event := newEvent("BK20000001")
	require.NoError(t, q.Publish(ctx, event))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	deliveries, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d, ok := <-deliveries:
		require.True(t, ok)
		require.NotNil(t, d.Data)
		assert.Equal(t, event.Type, d.Data.Type)
		assert.Equal(t, event.BookingID, d.Data.BookingID)
		assert.Equal(t, event.Reference, d.Data.Reference)
		assert.Equal(t, event.Quantity, d.Data.Quantity)
		assert.True(t, event.TotalPrice.Equal(d.Data.TotalPrice))
		assert.Equal(t, event.CustomerName, d.Data.CustomerName)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout 未收到訊息")
	}
}

func TestRedisStreamBookingEventQueue_NackDiscard_preventsRedelivery(t *testing.T) {
	requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	cfg := &queue.RedisStreamQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 500 * time.Millisecond,
	}
	q, err := queue.NewRedisStreamBookingEventQueue(testRdb, "nack-discard-test", cfg)
	require.NoError(t, err)
	require.NoError(t, q.Publish(ctx, newEvent("BK20000002")))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	deliveries, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d := <-deliveries:
		d.Nack(false)
	case <-subCtx.Done():
		t.Fatal("timeout 未收到第一筆")
	}

	// 驗證結果：超過 ClaimMinIdleTime 仍不應再收到同一筆
	select {
	case d, ok := <-deliveries:
		if ok && d.Data != nil && d.Data.Reference == "BK20000002" {
			t.Fatal("Nack(false) 後不應再投遞同一筆")
		}
	case <-time.After(1 * time.Second):
	}
}

func TestRedisStreamBookingEventQueue_NackRequeue_redeliversAfterIdle(t *testing.T) {
	requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	cfg := &queue.RedisStreamQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 500 * time.Millisecond,
	}
	q, err := queue.NewRedisStreamBookingEventQueue(testRdb, "nack-requeue-test", cfg)
	require.NoError(t, err)
	require.NoError(t, q.Publish(ctx, newEvent("BK20000003")))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	deliveries, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d := <-deliveries:
		d.Nack(true)
	case <-subCtx.Done():
		t.Fatal("timeout 未收到第一筆")
	}

	select {
	case d := <-deliveries:
		assert.Equal(t, "BK20000003", d.Data.Reference)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("Nack(true) 後應由 XAUTOCLAIM 再次投遞")
	}
}
