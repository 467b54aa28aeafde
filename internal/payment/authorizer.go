package payment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go-gin-event-booking/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Decision 授權結果
type Decision struct {
	Approved  bool
	Reference string
	Reason    string
}

// Authorizer 外部付款授權；實作必須在 ctx 結束時返回
type Authorizer interface {
	Authorize(ctx context.Context, method model.PaymentMethod, amount decimal.Decimal) (Decision, error)
}

// SimulatedAuthorizer 模擬金流：固定延遲後依成功率核准
type SimulatedAuthorizer struct {
	delay       time.Duration
	successRate float64

	mu  sync.Mutex
	rnd *rand.Rand
}

type SimulatedOption func(*SimulatedAuthorizer)

// WithRandSource 注入亂數來源，測試時可得到固定結果
func WithRandSource(src rand.Source) SimulatedOption {
	return func(a *SimulatedAuthorizer) {
		a.rnd = rand.New(src)
	}
}

func NewSimulatedAuthorizer(delay time.Duration, successRate float64, opts ...SimulatedOption) *SimulatedAuthorizer {
	if successRate < 0 {
		successRate = 0
	}
	if successRate > 1 {
		successRate = 1
	}
	a := &SimulatedAuthorizer{
		delay:       delay,
		successRate: successRate,
		rnd:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *SimulatedAuthorizer) Authorize(ctx context.Context, method model.PaymentMethod, amount decimal.Decimal) (Decision, error) {
	if method == nil {
		return Decision{}, fmt.Errorf("authorize: missing payment method")
	}

	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Decision{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Decision{}, err
	}

	a.mu.Lock()
	roll := a.rnd.Float64()
	a.mu.Unlock()

	if roll >= a.successRate {
		return Decision{Approved: false, Reason: "Payment declined by issuer"}, nil
	}
	return Decision{
		Approved:  true,
		Reference: "AUTH-" + uuid.NewString()[:8],
	}, nil
}
