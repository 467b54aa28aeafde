package apperrors

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrSessionNotFound      = errors.New("booking session not found")
	ErrConfirmationNotFound = errors.New("confirmation not found")

	// 選票流程
	ErrInvalidTicketType   = errors.New("ticket type does not belong to event")
	ErrQuantityOutOfRange  = errors.New("quantity out of range")
	ErrIncompleteSelection = errors.New("no ticket type selected")

	// 結帳流程
	ErrValidationFailed     = errors.New("payment details validation failed")
	ErrAuthorizationFailed  = errors.New("payment authorization failed")
	ErrAuthorizationTimeout = errors.New("payment authorization timed out")
	ErrCapacityExceeded     = errors.New("event capacity exceeded")
	ErrInventoryNotReady    = errors.New("event inventory not warmed up")

	// 訂單狀態
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrInvalidStatus     = errors.New("invalid booking status")

	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError 付款資料欄位錯誤，key 為欄位名稱
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidationFailed.Error() + " (" + strings.Join(parts, ", ") + ")"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// authorizationTimeout 同時符合 ErrAuthorizationTimeout 與 ErrAuthorizationFailed
type authorizationTimeout struct{}

func (authorizationTimeout) Error() string { return ErrAuthorizationTimeout.Error() }

func (authorizationTimeout) Is(target error) bool {
	return target == ErrAuthorizationTimeout || target == ErrAuthorizationFailed
}

// AuthorizationTimeout 回傳逾時錯誤，errors.Is 對兩個 sentinel 都成立
func AuthorizationTimeout() error {
	return authorizationTimeout{}
}
