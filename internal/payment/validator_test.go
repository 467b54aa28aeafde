package payment_test

import (
	"testing"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/payment"

	"github.com/stretchr/testify/assert"
)

func validCard() model.CreditCard {
	return model.CreditCard{
		Number:     "4111111111111111",
		HolderName: "Ada Lovelace",
		Expiry:     "12/29",
		CVV:        "123",
	}
}

func TestValidate_CreditCard(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		assert.Nil(t, payment.Validate(validCard()))
	})

	t.Run("Success - spaces in number and 4 digit cvv", func(t *testing.T) {
		card := validCard()
		card.Number = "4111 1111 1111 1111"
		card.CVV = "1234"
		assert.Nil(t, payment.Validate(card))
	})

	t.Run("Failed - 12 digit number", func(t *testing.T) {
		card := validCard()
		card.Number = "411111111111"

		fields := payment.Validate(card)

		assert.Equal(t, map[string]string{"card_number": "Invalid card number"}, fields)
	})

	t.Run("Failed - expiry month 13", func(t *testing.T) {
		card := validCard()
		card.Expiry = "13/29"

		fields := payment.Validate(card)

		assert.Equal(t, "Use format MM/YY", fields["expiry_date"])
		assert.Len(t, fields, 1)
	})

	t.Run("Failed - everything empty", func(t *testing.T) {
		fields := payment.Validate(model.CreditCard{})

		assert.Equal(t, map[string]string{
			"card_number": "Card number is required",
			"card_name":   "Cardholder name is required",
			"expiry_date": "Expiry date is required",
			"cvv":         "CVV is required",
		}, fields)
	})

	t.Run("Failed - bad cvv", func(t *testing.T) {
		card := validCard()
		card.CVV = "12"
		assert.Equal(t, "Invalid CVV", payment.Validate(card)["cvv"])
	})
}

func TestValidExpiry(t *testing.T) {
	for _, ok := range []string{"01/25", "12/29", "06/30"} {
		assert.True(t, payment.ValidExpiry(ok), ok)
	}
	for _, bad := range []string{"13/29", "00/29", "1/29", "12-29", "12/2029", ""} {
		assert.False(t, payment.ValidExpiry(bad), bad)
	}
}

func TestValidate_UPI(t *testing.T) {
	assert.Nil(t, payment.Validate(model.UPI{ID: "ada.lovelace@okbank"}))
	assert.Equal(t, map[string]string{"upi_id": "Invalid UPI ID"}, payment.Validate(model.UPI{ID: "ada.lovelace"}))
	assert.Equal(t, map[string]string{"upi_id": "UPI ID is required"}, payment.Validate(model.UPI{}))
}

func TestValidate_NetBanking(t *testing.T) {
	assert.Nil(t, payment.Validate(model.NetBanking{BankID: "hdfc"}))
	assert.Equal(t, map[string]string{"bank_id": "Please select a bank"}, payment.Validate(model.NetBanking{}))
}

func TestValidate_Wallet(t *testing.T) {
	assert.Nil(t, payment.Validate(model.Wallet{Provider: "paytm", MobileNumber: "9876543210"}))
	assert.Equal(t, map[string]string{"mobile_number": "Invalid mobile number"},
		payment.Validate(model.Wallet{Provider: "paytm", MobileNumber: "98765"}))
	assert.Equal(t, map[string]string{"provider": "Please select a wallet"},
		payment.Validate(model.Wallet{MobileNumber: "9876543210"}))
}

func TestValidate_NilMethod(t *testing.T) {
	fields := payment.Validate(nil)
	assert.Contains(t, fields, "type")
}
