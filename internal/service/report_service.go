package service

import (
	"context"
	"errors"

	"go-gin-event-booking/internal/cache"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReportService interface {
	// EventSummary 每次讀取時重新計算
	EventSummary(ctx context.Context, eventID uuid.UUID) (*model.EventSummary, error)
}

type ReportServiceImpl struct {
	eventRepo       repository.EventRepository
	bookingRepo     repository.BookingRepository
	capacityManager cache.CapacityManager
}

func NewReportService(
	eventRepo repository.EventRepository,
	bookingRepo repository.BookingRepository,
	capacityManager cache.CapacityManager,
) ReportService {
	return &ReportServiceImpl{
		eventRepo:       eventRepo,
		bookingRepo:     bookingRepo,
		capacityManager: capacityManager,
	}
}

func (s *ReportServiceImpl) EventSummary(ctx context.Context, eventID uuid.UUID) (*model.EventSummary, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByEvent(ctx, eventID, model.BookingFilter{})
	if err != nil {
		return nil, err
	}

	summary := model.Summarize(eventID, bookings)
	summary.RemainingTickets = s.remainingTickets(ctx, event, bookings)
	return summary, nil
}

// remainingTickets 以 Redis 計數為準；尚未預熱或讀取失敗時用訂單重新推算
func (s *ReportServiceImpl) remainingTickets(ctx context.Context, event *model.Event, bookings []*model.Booking) int {
	remaining, err := s.capacityManager.GetRemaining(ctx, event.ID)
	if err == nil {
		return remaining
	}
	if !errors.Is(err, apperrors.ErrInventoryNotReady) {
		logger.WithComponent("report").Warn("Failed to read remaining capacity",
			zap.String("event_id", event.ID.String()),
			zap.Error(err),
		)
	}
	return model.RemainingTickets(event.TotalTickets, bookings)
}
