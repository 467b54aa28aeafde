package service

import (
	"context"

	"go-gin-event-booking/internal/cache"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"
	"go-gin-event-booking/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	ListEvents(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*model.Event, error)
	ListCategories() []string
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	// OpenForSale 活動開賣：以 總票數 - 已售出 預熱 Redis 名額
	OpenForSale(ctx context.Context, id uuid.UUID) error
	// OpenAllForSale 啟動時預熱所有活動
	OpenAllForSale(ctx context.Context) error
}

type CatalogServiceImpl struct {
	repo            repository.EventRepository
	capacityManager cache.CapacityManager
}

func NewCatalogService(repo repository.EventRepository, capacityManager cache.CapacityManager) CatalogService {
	return &CatalogServiceImpl{repo: repo, capacityManager: capacityManager}
}

func (s *CatalogServiceImpl) ListEvents(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	return s.repo.List(ctx, filter)
}

func (s *CatalogServiceImpl) GetEvent(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogServiceImpl) ListCategories() []string {
	categories := make([]string, len(model.Categories))
	copy(categories, model.Categories)
	return categories
}

func (s *CatalogServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.BasePrice.IsZero() {
		event.BasePrice = event.LowestPrice()
	}
	return s.repo.Create(ctx, event)
}

func (s *CatalogServiceImpl) OpenForSale(ctx context.Context, id uuid.UUID) error {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	booked, err := s.repo.SumActiveQuantity(ctx, id)
	if err != nil {
		return err
	}

	remaining := event.TotalTickets - booked
	if remaining < 0 {
		remaining = 0
	}

	written, err := s.capacityManager.WarmUp(ctx, id, remaining)
	if err != nil {
		return err
	}
	if written {
		logger.WithComponent("catalog").Info("capacity warmed up",
			zap.String("event_id", id.String()),
			zap.Int("remaining", remaining),
		)
	}
	return nil
}

func (s *CatalogServiceImpl) OpenAllForSale(ctx context.Context) error {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := s.OpenForSale(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
