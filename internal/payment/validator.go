package payment

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"go-gin-event-booking/internal/model"

	"github.com/go-playground/validator/v10"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern     = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	upiPattern        = regexp.MustCompile(`^[\w.\-]+@[\w]+$`)
	mobilePattern     = regexp.MustCompile(`^\d{10}$`)
)

// 錯誤訊息沿用前台的文字
var messages = map[string]map[string]string{
	"card_number":   {"required": "Card number is required", "card_number": "Invalid card number"},
	"card_name":     {"required": "Cardholder name is required"},
	"expiry_date":   {"required": "Expiry date is required", "expiry": "Use format MM/YY"},
	"cvv":           {"required": "CVV is required", "cvv": "Invalid CVV"},
	"upi_id":        {"required": "UPI ID is required", "upi": "Invalid UPI ID"},
	"bank_id":       {"required": "Please select a bank"},
	"provider":      {"required": "Please select a wallet"},
	"mobile_number": {"required": "Mobile number is required", "mobile": "Invalid mobile number"},
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		mustRegister(v, "card_number", func(fl validator.FieldLevel) bool {
			return cardNumberPattern.MatchString(strings.Join(strings.Fields(fl.Field().String()), ""))
		})
		mustRegister(v, "expiry", func(fl validator.FieldLevel) bool {
			return ValidExpiry(fl.Field().String())
		})
		mustRegister(v, "cvv", func(fl validator.FieldLevel) bool {
			return cvvPattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "upi", func(fl validator.FieldLevel) bool {
			return upiPattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})
		mustRegister(v, "mobile", func(fl validator.FieldLevel) bool {
			return mobilePattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ValidExpiry MM/YY 且月份介於 01~12
func ValidExpiry(s string) bool {
	m := expiryPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return false
	}
	month, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	return month >= 1 && month <= 12
}

// Validate 檢查付款方式的必填欄位，回傳以欄位名稱為 key 的錯誤訊息；全部通過時回傳 nil
func Validate(method model.PaymentMethod) map[string]string {
	if method == nil {
		return map[string]string{"type": "Please select a payment method"}
	}

	err := getValidator().Struct(method)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"type": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := fields[field]; seen {
			continue
		}
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		fields[field] = msg
	}
	return fields
}
