package worker

import (
	"context"

	"go-gin-event-booking/internal/queue"
	"go-gin-event-booking/internal/service"
	"go-gin-event-booking/pkg/logger"

	"go.uber.org/zap"
)

type NotificationWorker interface {
	// 訂閱訂單事件隊列，ctx 結束時停止
	Start(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	service service.NotificationService
	queue   queue.BookingEventQueue
}

func NewNotificationWorker(service service.NotificationService, queue queue.BookingEventQueue) NotificationWorker {
	return &NotificationWorkerImpl{
		service: service,
		queue:   queue,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("worker")
		for {
			select {
			case <-ctx.Done():
				log.Info("notification worker stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				w.handle(ctx, msg)
			}
		}
	}()
	return nil
}

func (w *NotificationWorkerImpl) handle(ctx context.Context, msg queue.Delivery) {
	if err := w.service.Record(ctx, msg.Data); err != nil {
		// Redis 暫時失敗，放回隊列重試
		logger.WithComponent("worker").Warn("failed to record notification",
			zap.String("reference", msg.Data.Reference),
			zap.Error(err),
		)
		msg.Nack(true)
		return
	}
	msg.Ack()
}
