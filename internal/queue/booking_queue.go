package queue

import (
	"context"
	"time"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/pkg/logger"

	"go.uber.org/zap"
)

type Delivery struct {
	Data *model.BookingEvent
	Ack  func()
	Nack func(requeue bool)
}

type BookingEventQueue interface {
	// 發送訂單事件到隊列
	Publish(ctx context.Context, event *model.BookingEvent) error
	// 訂閱訂單事件
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// MemoryQueueConfig 重試設定；nil 或零值時使用預設。
type MemoryQueueConfig struct {
	MaxRetryCount int           // 投遞次數達到此值後 Nack 直接丟棄
	RetryDelay    time.Duration // 重回隊列前的等待，依投遞次數線性增加
}

func defaultMemoryQueueConfig() MemoryQueueConfig {
	return MemoryQueueConfig{
		MaxRetryCount: 5,
		RetryDelay:    100 * time.Millisecond,
	}
}

type memoryMessage struct {
	event      *model.BookingEvent
	deliveries int
}

type MemoryBookingEventQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch  chan memoryMessage
	cfg MemoryQueueConfig
}

// NewMemoryBookingEventQueue 單機版 BookingEventQueue。config 可為 nil。
func NewMemoryBookingEventQueue(bufferSize int, config *MemoryQueueConfig) BookingEventQueue {
	cfg := defaultMemoryQueueConfig()
	if config != nil {
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.RetryDelay > 0 {
			cfg.RetryDelay = config.RetryDelay
		}
	}
	return &MemoryBookingEventQueueImpl{
		ch:  make(chan memoryMessage, bufferSize),
		cfg: cfg,
	}
}

func (q *MemoryBookingEventQueueImpl) Publish(ctx context.Context, event *model.BookingEvent) error {
	select {
	case q.ch <- memoryMessage{event: event}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryBookingEventQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-q.ch:
				if !ok {
					return
				}

				msg.deliveries++
				d := Delivery{
					Data: msg.event,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.requeue(msg)
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (q *MemoryBookingEventQueueImpl) requeue(msg memoryMessage) {
	log := logger.WithComponent("mq").With(
		zap.String("reference", msg.event.Reference),
		zap.Int("deliveries", msg.deliveries),
	)
	if msg.deliveries >= q.cfg.MaxRetryCount {
		log.Warn("discard poison message", zap.Int("max_retries", q.cfg.MaxRetryCount))
		return
	}

	time.AfterFunc(time.Duration(msg.deliveries)*q.cfg.RetryDelay, func() {
		// buffer 滿了就放棄，避免卡住計時器
		select {
		case q.ch <- msg:
		default:
			log.Warn("requeue dropped: buffer full")
		}
	})
}
