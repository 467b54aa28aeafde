package model_test

import (
	"encoding/json"
	"testing"

	"go-gin-event-booking/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodInput_UnmarshalJSON(t *testing.T) {
	t.Run("CreditCard", func(t *testing.T) {
		var in model.PaymentMethodInput
		err := json.Unmarshal([]byte(`{"type":"credit_card","card_number":"4111 1111 1111 1111","card_name":"Ada","expiry_date":"12/29","cvv":"123","upi_id":"ignored@bank"}`), &in)

		require.NoError(t, err)
		card, ok := in.Method.(model.CreditCard)
		require.True(t, ok)
		assert.Equal(t, "4111111111111111", card.NormalizedNumber())
		assert.Equal(t, "Ada", card.HolderName)
	})

	t.Run("UPI", func(t *testing.T) {
		var in model.PaymentMethodInput
		require.NoError(t, json.Unmarshal([]byte(`{"type":"upi","upi_id":"ada@okbank"}`), &in))
		assert.Equal(t, model.UPI{ID: "ada@okbank"}, in.Method)
	})

	t.Run("NetBanking", func(t *testing.T) {
		var in model.PaymentMethodInput
		require.NoError(t, json.Unmarshal([]byte(`{"type":"net_banking","bank_id":"hdfc"}`), &in))
		assert.Equal(t, model.NetBanking{BankID: "hdfc"}, in.Method)
	})

	t.Run("Wallet", func(t *testing.T) {
		var in model.PaymentMethodInput
		require.NoError(t, json.Unmarshal([]byte(`{"type":"wallet","provider":"paytm","mobile_number":"9876543210"}`), &in))
		assert.Equal(t, model.Wallet{Provider: "paytm", MobileNumber: "9876543210"}, in.Method)
	})

	t.Run("Unknown type leaves method empty", func(t *testing.T) {
		var in model.PaymentMethodInput
		require.NoError(t, json.Unmarshal([]byte(`{"type":"cash"}`), &in))
		assert.Nil(t, in.Method)
	})

	t.Run("Missing type leaves method empty", func(t *testing.T) {
		var in model.PaymentMethodInput
		require.NoError(t, json.Unmarshal([]byte(`{"card_number":"4111111111111111"}`), &in))
		assert.Nil(t, in.Method)
	})

	t.Run("Failed - malformed envelope", func(t *testing.T) {
		var in model.PaymentMethodInput
		assert.Error(t, json.Unmarshal([]byte(`{"type":42}`), &in))
	})
}

func TestPaymentMethodInput_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(model.PaymentMethodInput{Method: model.UPI{ID: "ada@okbank"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"upi","upi_id":"ada@okbank"}`, string(b))

	var back model.PaymentMethodInput
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, model.UPI{ID: "ada@okbank"}, back.Method)
}

func TestPaymentMethod_Redact(t *testing.T) {
	card := model.CreditCard{Number: "4111 1111 1111 1234", HolderName: " Ada Lovelace ", Expiry: "12/29", CVV: "123"}

	snap := card.Redact()

	assert.Equal(t, model.PaymentMethodCreditCard, snap.Method)
	assert.Equal(t, "1234", snap.CardLast4)
	assert.Equal(t, "Ada Lovelace", snap.CardHolder)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "4111")
	assert.NotContains(t, string(raw), "123\"")
	assert.NotContains(t, string(raw), "12/29")

	wallet := model.Wallet{Provider: "paytm", MobileNumber: "9876543210"}.Redact()
	assert.Equal(t, "3210", wallet.MobileLast4)
	assert.Equal(t, "paytm", wallet.WalletProvider)
}

func TestPaymentSnapshot_ValueScan(t *testing.T) {
	snap := model.PaymentSnapshot{Method: model.PaymentMethodNetBanking, BankID: "sbi"}

	v, err := snap.Value()
	require.NoError(t, err)

	var back model.PaymentSnapshot
	require.NoError(t, back.Scan([]byte(v.(string))))
	assert.Equal(t, snap, back)

	require.NoError(t, back.Scan(nil))
	assert.Equal(t, model.PaymentSnapshot{}, back)

	assert.Error(t, back.Scan(42))
}
