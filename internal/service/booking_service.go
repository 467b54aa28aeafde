package service

import (
	"context"
	"time"

	"go-gin-event-booking/internal/cache"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/queue"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Lookup 接受 UUID 或 BK 訂單編號
	Lookup(ctx context.Context, key string) (*model.Booking, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, filter model.BookingFilter) ([]*model.Booking, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*model.Booking, error)
}

type BookingServiceImpl struct {
	repo            repository.BookingRepository
	eventRepo       repository.EventRepository
	capacityManager cache.CapacityManager
	eventQueue      queue.BookingEventQueue
}

func NewBookingService(
	repo repository.BookingRepository,
	eventRepo repository.EventRepository,
	capacityManager cache.CapacityManager,
	eventQueue queue.BookingEventQueue,
) BookingService {
	return &BookingServiceImpl{
		repo:            repo,
		eventRepo:       eventRepo,
		capacityManager: capacityManager,
		eventQueue:      eventQueue,
	}
}

func (s *BookingServiceImpl) Lookup(ctx context.Context, key string) (*model.Booking, error) {
	if model.IsBookingReference(key) {
		return s.repo.FindByReference(ctx, key)
	}
	id, err := uuid.Parse(key)
	if err != nil {
		return nil, apperrors.ErrBookingNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *BookingServiceImpl) ListByEvent(ctx context.Context, eventID uuid.UUID, filter model.BookingFilter) ([]*model.Booking, error) {
	if filter.Status != "" {
		status, ok := model.ParseBookingStatus(string(filter.Status))
		if !ok {
			return nil, apperrors.ErrInvalidStatus
		}
		filter.Status = status
	}

	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.repo.ListByEvent(ctx, eventID, filter)
}

func (s *BookingServiceImpl) SetStatus(ctx context.Context, id uuid.UUID, status string) (*model.Booking, error) {
	target, ok := model.ParseBookingStatus(status)
	if !ok {
		return nil, apperrors.ErrInvalidStatus
	}

	change, err := s.repo.UpdateStatusWithLock(ctx, id, target)
	if err != nil {
		return nil, err
	}

	log := logger.WithComponent("booking").With(
		zap.String("reference", change.Booking.Reference),
		zap.String("from", string(change.Previous)),
		zap.String("to", string(change.Booking.Status)),
	)

	// 取消後歸還名額
	if change.Previous.IsActive() && !change.Booking.Status.IsActive() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := s.capacityManager.Release(releaseCtx, change.Booking.EventID, change.Booking.Quantity)
		cancel()
		if err != nil {
			log.Error("failed to release capacity", zap.Error(err))
		}
	}

	if err := s.eventQueue.Publish(ctx, model.NewBookingStatusChangedEvent(*change)); err != nil {
		log.Error("failed to publish status change", zap.Error(err))
	}

	log.Info("booking status changed")
	return change.Booking, nil
}
