package payment_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedAuthorizer_Authorize(t *testing.T) {
	ctx := context.Background()
	amount := decimal.RequireFromString("599.98")

	t.Run("Approved", func(t *testing.T) {
		a := payment.NewSimulatedAuthorizer(0, 1, payment.WithRandSource(rand.NewPCG(1, 2)))

		d, err := a.Authorize(ctx, validCard(), amount)

		require.NoError(t, err)
		assert.True(t, d.Approved)
		assert.NotEmpty(t, d.Reference)
	})

	t.Run("Declined", func(t *testing.T) {
		a := payment.NewSimulatedAuthorizer(0, 0)

		d, err := a.Authorize(ctx, model.UPI{ID: "ada@okbank"}, amount)

		require.NoError(t, err)
		assert.False(t, d.Approved)
		assert.NotEmpty(t, d.Reason)
	})

	t.Run("Context deadline before delay elapses", func(t *testing.T) {
		a := payment.NewSimulatedAuthorizer(time.Second, 1)
		ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := a.Authorize(ctx, validCard(), amount)

		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("Missing method", func(t *testing.T) {
		a := payment.NewSimulatedAuthorizer(0, 1)
		_, err := a.Authorize(ctx, nil, amount)
		assert.Error(t, err)
	})

	t.Run("Success rate is clamped", func(t *testing.T) {
		a := payment.NewSimulatedAuthorizer(0, 7)
		for i := 0; i < 20; i++ {
			d, err := a.Authorize(ctx, validCard(), amount)
			require.NoError(t, err)
			assert.True(t, d.Approved)
		}
	})
}
