package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// PaymentMethodType 付款方式種類
type PaymentMethodType string

const (
	PaymentMethodCreditCard PaymentMethodType = "credit_card"
	PaymentMethodUPI        PaymentMethodType = "upi"
	PaymentMethodNetBanking PaymentMethodType = "net_banking"
	PaymentMethodWallet     PaymentMethodType = "wallet"
)

// PaymentMethod 封閉的付款方式集合，只有本 package 內的型別能實作
type PaymentMethod interface {
	Type() PaymentMethodType
	// Redact 產生可儲存的快照，敏感欄位只保留末四碼
	Redact() PaymentSnapshot
	paymentMethod()
}

type CreditCard struct {
	Number     string `json:"card_number" validate:"required,card_number"`
	HolderName string `json:"card_name" validate:"required"`
	Expiry     string `json:"expiry_date" validate:"required,expiry"`
	CVV        string `json:"cvv" validate:"required,cvv"`
}

type UPI struct {
	ID string `json:"upi_id" validate:"required,upi"`
}

type NetBanking struct {
	BankID string `json:"bank_id" validate:"required"`
}

type Wallet struct {
	Provider     string `json:"provider" validate:"required"`
	MobileNumber string `json:"mobile_number" validate:"required,mobile"`
}

func (CreditCard) paymentMethod() {}
func (UPI) paymentMethod()        {}
func (NetBanking) paymentMethod() {}
func (Wallet) paymentMethod()     {}

func (CreditCard) Type() PaymentMethodType { return PaymentMethodCreditCard }
func (UPI) Type() PaymentMethodType        { return PaymentMethodUPI }
func (NetBanking) Type() PaymentMethodType { return PaymentMethodNetBanking }
func (Wallet) Type() PaymentMethodType     { return PaymentMethodWallet }

// NormalizedNumber 去除空白後的卡號
func (c CreditCard) NormalizedNumber() string {
	return strings.Join(strings.Fields(c.Number), "")
}

func (c CreditCard) Redact() PaymentSnapshot {
	return PaymentSnapshot{
		Method:     PaymentMethodCreditCard,
		CardLast4:  lastN(c.NormalizedNumber(), 4),
		CardHolder: strings.TrimSpace(c.HolderName),
	}
}

func (u UPI) Redact() PaymentSnapshot {
	return PaymentSnapshot{Method: PaymentMethodUPI, UPIID: strings.TrimSpace(u.ID)}
}

func (n NetBanking) Redact() PaymentSnapshot {
	return PaymentSnapshot{Method: PaymentMethodNetBanking, BankID: n.BankID}
}

func (w Wallet) Redact() PaymentSnapshot {
	return PaymentSnapshot{
		Method:         PaymentMethodWallet,
		WalletProvider: w.Provider,
		MobileLast4:    lastN(strings.TrimSpace(w.MobileNumber), 4),
	}
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// PaymentSnapshot 訂單內儲存的付款資訊（已遮蔽）
type PaymentSnapshot struct {
	Method         PaymentMethodType `json:"method"`
	CardLast4      string            `json:"card_last4,omitempty"`
	CardHolder     string            `json:"card_holder,omitempty"`
	UPIID          string            `json:"upi_id,omitempty"`
	BankID         string            `json:"bank_id,omitempty"`
	WalletProvider string            `json:"wallet_provider,omitempty"`
	MobileLast4    string            `json:"mobile_last4,omitempty"`
}

// Value 以 jsonb 寫入資料庫
func (p PaymentSnapshot) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 從 jsonb 讀取
func (p *PaymentSnapshot) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = PaymentSnapshot{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported payment snapshot source %T", src)
	}
}

// PaymentMethodInput JSON 外層：{"type": "...", 其餘為該付款方式的欄位}
type PaymentMethodInput struct {
	Method PaymentMethod
}

func (in PaymentMethodInput) MarshalJSON() ([]byte, error) {
	if in.Method == nil {
		return []byte("null"), nil
	}
	payload, err := json.Marshal(in.Method)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, err
	}
	fields["type"] = in.Method.Type()
	return json.Marshal(fields)
}

func (in *PaymentMethodInput) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Type PaymentMethodType `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	var (
		method PaymentMethod
		err    error
	)
	switch envelope.Type {
	case PaymentMethodCreditCard:
		var v CreditCard
		err = json.Unmarshal(data, &v)
		method = v
	case PaymentMethodUPI:
		var v UPI
		err = json.Unmarshal(data, &v)
		method = v
	case PaymentMethodNetBanking:
		var v NetBanking
		err = json.Unmarshal(data, &v)
		method = v
	case PaymentMethodWallet:
		var v Wallet
		err = json.Unmarshal(data, &v)
		method = v
	default:
		// 未知或缺少 type 時留空，交給付款驗證回報欄位錯誤
		in.Method = nil
		return nil
	}
	if err != nil {
		return err
	}
	in.Method = method
	return nil
}
