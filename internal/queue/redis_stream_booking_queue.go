package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey          = "bookings:events"
	ConsumerGroupName  = "notification-workers"
	ConsumerNamePrefix = "worker"
	payloadField       = "event"
)

// RedisStreamQueueConfig 可注入的逾時與重試設定；nil 或零值時使用預設。
type RedisStreamQueueConfig struct {
	ClaimMinIdleTime   time.Duration // PEL 中超過此時間才被 XAUTOCLAIM 領取
	MaxRetryCount      int           // 超過此次數視為毒藥消息並丟棄
	ReadGroupBlockTime time.Duration // XReadGroup 阻塞時間
	MaxLen             int64         // stream 保留長度（近似），0 表示不限制
}

func defaultRedisStreamConfig() RedisStreamQueueConfig {
	return RedisStreamQueueConfig{
		ClaimMinIdleTime:   5 * time.Second,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 2 * time.Second,
		MaxLen:             10000,
	}
}

type RedisStreamBookingEventQueueImpl struct {
	client       *redis.Client
	streamKey    string
	groupName    string
	consumerName string
	cfg          RedisStreamQueueConfig
}

// NewRedisStreamBookingEventQueue 建立 Redis Stream 版 BookingEventQueue。config 可為 nil。
func NewRedisStreamBookingEventQueue(client *redis.Client, consumerID string, config *RedisStreamQueueConfig) (BookingEventQueue, error) {
	if consumerID == "" {
		consumerID = uuid.New().String()
	}
	cfg := defaultRedisStreamConfig()
	if config != nil {
		if config.ClaimMinIdleTime > 0 {
			cfg.ClaimMinIdleTime = config.ClaimMinIdleTime
		}
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.ReadGroupBlockTime > 0 {
			cfg.ReadGroupBlockTime = config.ReadGroupBlockTime
		}
		if config.MaxLen > 0 {
			cfg.MaxLen = config.MaxLen
		}
	}
	q := &RedisStreamBookingEventQueueImpl{
		client:       client,
		streamKey:    StreamKey,
		groupName:    ConsumerGroupName,
		consumerName: fmt.Sprintf("%s:%s", ConsumerNamePrefix, consumerID),
		cfg:          cfg,
	}
	if err := q.ensureConsumerGroup(context.Background()); err != nil {
		return nil, fmt.Errorf("ensure consumer group: %w", err)
	}
	return q, nil
}

func (q *RedisStreamBookingEventQueueImpl) ensureConsumerGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.streamKey, q.groupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (q *RedisStreamBookingEventQueueImpl) Publish(ctx context.Context, event *model.BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}
	args := &redis.XAddArgs{
		Stream: q.streamKey,
		ID:     "*",
		Values: map[string]interface{}{payloadField: string(payload)},
	}
	if q.cfg.MaxLen > 0 {
		args.MaxLen = q.cfg.MaxLen
		args.Approx = true
	}
	if err := q.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

func (q *RedisStreamBookingEventQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	go func() {
		defer close(out)
		done := make(chan struct{})
		go func() {
			defer close(done)
			q.runAutoClaim(ctx, out)
		}()
		q.runReadLoop(ctx, out)
		<-done
	}()
	return out, nil
}

// runReadLoop 主讀取循環，只讀新消息(">")
func (q *RedisStreamBookingEventQueueImpl) runReadLoop(ctx context.Context, out chan<- Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			q.readAndDeliver(ctx, out)
		}
	}
}

// readAndDeliver 已投遞過的 Pending 訊息不再重讀，由 XAUTOCLAIM 超時後領回重試
func (q *RedisStreamBookingEventQueueImpl) readAndDeliver(ctx context.Context, out chan<- Delivery) {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.groupName,
		Consumer: q.consumerName,
		Streams:  []string{q.streamKey, ">"},
		Count:    10,
		Block:    q.cfg.ReadGroupBlockTime,
	}).Result()

	if errors.Is(err, redis.Nil) {
		return
	}
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.WithComponent("mq").Error("XReadGroup failed", zap.Error(err))
		select {
		case <-time.After(time.Second):
		case <-ctx.Done():
		}
		return
	}

	for _, stream := range streams {
		if stream.Stream != q.streamKey {
			continue
		}
		for _, msg := range stream.Messages {
			d := q.newDelivery(ctx, msg)
			if d == nil {
				continue
			}
			select {
			case out <- *d:
			case <-ctx.Done():
				return
			}
		}
	}
}

// shouldProcessMessage 超過重試上限的毒藥消息直接 XACK 丟棄
func (q *RedisStreamBookingEventQueueImpl) shouldProcessMessage(ctx context.Context, messageID string) bool {
	n, err := q.getMessageRetryCount(ctx, messageID)
	if err != nil {
		logger.WithComponent("mq").Warn("getMessageRetryCount failed", zap.String("message_id", messageID), zap.Error(err))
		return true
	}
	if n >= int64(q.cfg.MaxRetryCount) {
		logger.WithComponent("mq").Warn("discard poison message",
			zap.String("message_id", messageID),
			zap.Int64("retries", n),
			zap.Int("max_retries", q.cfg.MaxRetryCount))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, messageID).Err()
		return false
	}
	return true
}

func (q *RedisStreamBookingEventQueueImpl) getMessageRetryCount(ctx context.Context, messageID string) (int64, error) {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: q.streamKey,
		Group:  q.groupName,
		Start:  messageID,
		End:    messageID,
		Count:  1,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}
	return pending[0].RetryCount, nil
}

// runAutoClaim 定時用 XAUTOCLAIM 領取超時未處理的消息
func (q *RedisStreamBookingEventQueueImpl) runAutoClaim(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()
	startID := "0-0"

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			claimed, nextID, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
				Stream:   q.streamKey,
				Group:    q.groupName,
				Consumer: q.consumerName,
				MinIdle:  q.cfg.ClaimMinIdleTime,
				Count:    10,
				Start:    startID,
			}).Result()

			if err != nil && !errors.Is(err, redis.Nil) {
				if ctx.Err() == nil {
					logger.WithComponent("mq").Error("XAutoClaim failed", zap.Error(err))
				}
				continue
			}
			if nextID != "" && nextID != "0-0" {
				startID = nextID
			} else {
				startID = "0-0"
			}

			for _, msg := range claimed {
				if !q.shouldProcessMessage(ctx, msg.ID) {
					continue
				}
				d := q.newDelivery(ctx, msg)
				if d == nil {
					continue
				}
				select {
				case out <- *d:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// newDelivery 解析失敗的訊息直接 XACK，避免反覆領回
func (q *RedisStreamBookingEventQueueImpl) newDelivery(ctx context.Context, msg redis.XMessage) *Delivery {
	log := logger.WithComponent("mq").With(zap.String("message_id", msg.ID))

	raw, ok := msg.Values[payloadField].(string)
	if !ok {
		log.Warn("invalid message: missing event field")
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, msg.ID).Err()
		return nil
	}
	var event model.BookingEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		log.Warn("unmarshal booking event failed", zap.Error(err))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, msg.ID).Err()
		return nil
	}

	msgID := msg.ID
	return &Delivery{
		Data: &event,
		Ack: func() {
			if err := q.client.XAck(ctx, q.streamKey, q.groupName, msgID).Err(); err != nil {
				log.Error("XAck failed", zap.Error(err))
			}
		},
		Nack: func(requeue bool) {
			if requeue {
				// 消息留在 PEL，等 ClaimMinIdleTime 後由 XAUTOCLAIM 領取
				log.Info("message nack(requeue), will retry", zap.Duration("claim_min_idle", q.cfg.ClaimMinIdleTime))
				return
			}
			if err := q.client.XAck(ctx, q.streamKey, q.groupName, msgID).Err(); err != nil {
				log.Error("XAck discard failed", zap.Error(err))
			}
		},
	}
}
