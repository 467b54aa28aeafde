package service

import (
	"context"

	"go-gin-event-booking/internal/cache"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"

	"github.com/google/uuid"
)

type SessionService interface {
	Start(ctx context.Context, eventID uuid.UUID) (*model.BookingSession, error)
	Get(ctx context.Context, id uuid.UUID) (*model.BookingSession, error)
	SelectTicketType(ctx context.Context, id uuid.UUID, ticketTypeID string) (*model.BookingSession, error)
	SetQuantity(ctx context.Context, id uuid.UUID, quantity int) (*model.BookingSession, error)
	// Discard 使用者離開頁面時丟棄選票狀態
	Discard(ctx context.Context, id uuid.UUID) error
}

type SessionServiceImpl struct {
	eventRepo repository.EventRepository
	store     cache.SessionStore
}

func NewSessionService(eventRepo repository.EventRepository, store cache.SessionStore) SessionService {
	return &SessionServiceImpl{eventRepo: eventRepo, store: store}
}

func (s *SessionServiceImpl) Start(ctx context.Context, eventID uuid.UUID) (*model.BookingSession, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	session := model.NewBookingSession(*event)
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.BookingSession, error) {
	return s.store.Get(ctx, id)
}

func (s *SessionServiceImpl) SelectTicketType(ctx context.Context, id uuid.UUID, ticketTypeID string) (*model.BookingSession, error) {
	return s.update(ctx, id, func(session *model.BookingSession) error {
		return session.SelectTicketType(ticketTypeID)
	})
}

func (s *SessionServiceImpl) SetQuantity(ctx context.Context, id uuid.UUID, quantity int) (*model.BookingSession, error) {
	return s.update(ctx, id, func(session *model.BookingSession) error {
		return session.SetQuantity(quantity)
	})
}

func (s *SessionServiceImpl) Discard(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// update 讀取、修改、寫回；修改失敗時不寫回，保留原狀態
func (s *SessionServiceImpl) update(ctx context.Context, id uuid.UUID, mutate func(*model.BookingSession) error) (*model.BookingSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(session); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
