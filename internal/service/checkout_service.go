package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-event-booking/config"
	"go-gin-event-booking/internal/cache"
	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/payment"
	"go-gin-event-booking/internal/queue"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	reasonCapacityExceeded = "Not enough tickets remaining"
	reasonTimeout          = "Payment authorization timed out"
	reasonDeclined         = "Payment authorization failed"
	reasonPersistFailed    = "Booking could not be saved"
)

// 釋放名額與收尾動作不跟隨請求生命週期
const cleanupTimeout = 3 * time.Second

// CreateBookingInput POST /bookings 解析後的輸入
type CreateBookingInput struct {
	EventID       uuid.UUID
	TicketTypeID  string
	Quantity      int
	PaymentMethod model.PaymentMethod
	Customer      model.Customer
}

type CheckoutService interface {
	// Submit 驗證付款資料、預留名額、授權付款並建立已付款訂單；每個結果都回傳非 nil 的 CheckoutResult
	Submit(ctx context.Context, req model.BookingRequest, method model.PaymentMethod, customer model.Customer) (*model.CheckoutResult, error)
	// SubmitSession 從 session 結帳，成功後丟棄 session 並寫入確認頁快照
	SubmitSession(ctx context.Context, sessionID uuid.UUID, method model.PaymentMethod, customer model.Customer) (*model.CheckoutResult, error)
	// CreateBooking 以目錄價格建立臨時 session 後結帳
	CreateBooking(ctx context.Context, input CreateBookingInput) (*model.CheckoutResult, error)
	// TakeConfirmation 取出確認頁快照，只能讀一次
	TakeConfirmation(ctx context.Context, sessionID uuid.UUID) (*model.Booking, error)
}

type CheckoutServiceImpl struct {
	catalog         CatalogService
	bookingRepo     repository.BookingRepository
	sessions        cache.SessionStore
	confirmations   cache.ConfirmationStore
	capacityManager cache.CapacityManager
	authorizer      payment.Authorizer
	eventQueue      queue.BookingEventQueue
	config          config.CheckoutConfig
}

func NewCheckoutService(
	catalog CatalogService,
	bookingRepo repository.BookingRepository,
	sessions cache.SessionStore,
	confirmations cache.ConfirmationStore,
	capacityManager cache.CapacityManager,
	authorizer payment.Authorizer,
	eventQueue queue.BookingEventQueue,
	config config.CheckoutConfig,
) CheckoutService {
	return &CheckoutServiceImpl{
		catalog:         catalog,
		bookingRepo:     bookingRepo,
		sessions:        sessions,
		confirmations:   confirmations,
		capacityManager: capacityManager,
		authorizer:      authorizer,
		eventQueue:      eventQueue,
		config:          config,
	}
}

func (s *CheckoutServiceImpl) Submit(
	ctx context.Context,
	req model.BookingRequest,
	method model.PaymentMethod,
	customer model.Customer,
) (*model.CheckoutResult, error) {
	log := logger.WithComponent("checkout").With(
		zap.String("event_id", req.EventID.String()),
		zap.String("ticket_type_id", req.TicketTypeID),
		zap.Int("quantity", req.Quantity),
	)
	attempt := model.NewCheckoutAttempt()

	// 1. 驗證付款資料
	if err := attempt.Transition(model.CheckoutValidating); err != nil {
		return failed(attempt, err, false, "")
	}
	if fields := payment.Validate(method); fields != nil {
		_ = attempt.Transition(model.CheckoutAwaitingMethodDetails)
		return &model.CheckoutResult{State: attempt.State, FieldErrors: fields}, apperrors.NewValidationError(fields)
	}

	// 2. 預留名額
	if err := s.reserve(ctx, req.EventID, req.Quantity); err != nil {
		if errors.Is(err, apperrors.ErrCapacityExceeded) {
			log.Warn("capacity exceeded")
			return failed(attempt, err, false, reasonCapacityExceeded)
		}
		return failed(attempt, fmt.Errorf("reserve capacity: %w", err), true, "")
	}

	// 3. 授權付款
	_ = attempt.Transition(model.CheckoutAuthorizing)
	decision, err := s.authorize(ctx, method, req.TotalPrice)
	if err != nil {
		s.release(req.EventID, req.Quantity)
		reason := reasonDeclined
		if errors.Is(err, apperrors.ErrAuthorizationTimeout) {
			reason = reasonTimeout
		} else if decision.Reason != "" {
			reason = decision.Reason
		}
		log.Warn("authorization failed", zap.Error(err))
		return failed(attempt, err, true, reason)
	}

	// 4. 建立訂單
	now := time.Now().UTC()
	booking := &model.Booking{
		ID:             uuid.New(),
		Reference:      model.NewBookingReference(),
		EventID:        req.EventID,
		TicketTypeID:   req.TicketTypeID,
		TicketTypeName: req.TicketTypeName,
		UnitPrice:      req.UnitPrice,
		Quantity:       req.Quantity,
		TotalPrice:     req.TotalPrice,
		Status:         model.BookingStatusPaid,
		Payment:        method.Redact(),
		Customer: model.Customer{
			Name:  strings.TrimSpace(customer.Name),
			Email: strings.TrimSpace(customer.Email),
		},
		CreatedAt: now,
		PaidAt:    &now,
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		s.release(req.EventID, req.Quantity)
		log.Error("failed to persist booking",
			zap.String("authorization_reference", decision.Reference),
			zap.Error(err),
		)
		if errors.Is(err, apperrors.ErrCapacityExceeded) {
			return failed(attempt, err, false, reasonCapacityExceeded)
		}
		return failed(attempt, err, true, reasonPersistFailed)
	}
	_ = attempt.Transition(model.CheckoutSucceeded)

	// 5. 發佈事件：失敗只記錄，不影響結帳結果
	if err := s.eventQueue.Publish(ctx, model.NewBookingCreatedEvent(created)); err != nil {
		log.Error("failed to publish booking event", zap.String("reference", created.Reference), zap.Error(err))
	}

	log.Info("booking paid",
		zap.String("reference", created.Reference),
		zap.String("total_price", created.TotalPrice.StringFixed(2)),
	)
	return &model.CheckoutResult{State: attempt.State, Booking: created}, nil
}

func (s *CheckoutServiceImpl) SubmitSession(
	ctx context.Context,
	sessionID uuid.UUID,
	method model.PaymentMethod,
	customer model.Customer,
) (*model.CheckoutResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	req, err := session.ToBookingRequest()
	if err != nil {
		return nil, err
	}

	result, err := s.Submit(ctx, req, method, customer)
	if err != nil {
		// 失敗時保留 session，使用者可以修改後重試
		return result, err
	}

	cleanupCtx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	log := logger.WithComponent("checkout").With(zap.String("session_id", sessionID.String()))
	if err := s.confirmations.Put(cleanupCtx, sessionID, result.Booking); err != nil {
		log.Error("failed to store confirmation", zap.Error(err))
	}
	if err := s.sessions.Delete(cleanupCtx, sessionID); err != nil && !errors.Is(err, apperrors.ErrSessionNotFound) {
		log.Error("failed to discard session", zap.Error(err))
	}

	return result, nil
}

func (s *CheckoutServiceImpl) CreateBooking(ctx context.Context, input CreateBookingInput) (*model.CheckoutResult, error) {
	event, err := s.catalog.GetEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	session := model.NewBookingSession(*event)
	if err := session.SelectTicketType(input.TicketTypeID); err != nil {
		return nil, err
	}
	if err := session.SetQuantity(input.Quantity); err != nil {
		return nil, err
	}
	req, err := session.ToBookingRequest()
	if err != nil {
		return nil, err
	}

	return s.Submit(ctx, req, input.PaymentMethod, input.Customer)
}

func (s *CheckoutServiceImpl) TakeConfirmation(ctx context.Context, sessionID uuid.UUID) (*model.Booking, error) {
	return s.confirmations.Take(ctx, sessionID)
}

// reserve 計數器不存在時先預熱再重試一次
func (s *CheckoutServiceImpl) reserve(ctx context.Context, eventID uuid.UUID, quantity int) error {
	err := s.capacityManager.Reserve(ctx, eventID, quantity)
	if !errors.Is(err, apperrors.ErrInventoryNotReady) {
		return err
	}
	if err := s.catalog.OpenForSale(ctx, eventID); err != nil {
		return err
	}
	return s.capacityManager.Reserve(ctx, eventID, quantity)
}

// release 使用獨立的 context，請求取消時也要歸還名額
func (s *CheckoutServiceImpl) release(eventID uuid.UUID, quantity int) {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	if err := s.capacityManager.Release(ctx, eventID, quantity); err != nil {
		logger.WithComponent("checkout").Error("failed to release capacity",
			zap.String("event_id", eventID.String()),
			zap.Int("quantity", quantity),
			zap.Error(err),
		)
	}
}

type authorizeOutcome struct {
	decision payment.Decision
	err      error
}

// authorize 在逾時內等待授權結果；逾時一律視為失敗，不會停在授權中
func (s *CheckoutServiceImpl) authorize(ctx context.Context, method model.PaymentMethod, amount decimal.Decimal) (payment.Decision, error) {
	authCtx, cancel := context.WithTimeout(ctx, s.config.AuthorizationTimeout)
	defer cancel()

	done := make(chan authorizeOutcome, 1)
	go func() {
		decision, err := s.authorizer.Authorize(authCtx, method, amount)
		done <- authorizeOutcome{decision: decision, err: err}
	}()

	var outcome authorizeOutcome
	select {
	case outcome = <-done:
	case <-authCtx.Done():
		outcome = authorizeOutcome{err: authCtx.Err()}
	}

	switch {
	case outcome.err != nil && errors.Is(authCtx.Err(), context.DeadlineExceeded):
		return payment.Decision{}, apperrors.AuthorizationTimeout()
	case outcome.err != nil:
		return payment.Decision{}, fmt.Errorf("%w: %v", apperrors.ErrAuthorizationFailed, outcome.err)
	case !outcome.decision.Approved:
		return outcome.decision, fmt.Errorf("%w: %s", apperrors.ErrAuthorizationFailed, outcome.decision.Reason)
	}
	return outcome.decision, nil
}

func failed(attempt *model.CheckoutAttempt, err error, retryable bool, reason string) (*model.CheckoutResult, error) {
	_ = attempt.Transition(model.CheckoutFailed)
	return &model.CheckoutResult{
		State:     model.CheckoutFailed,
		Retryable: retryable,
		Reason:    reason,
	}, err
}
