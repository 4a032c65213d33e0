package utils

import (
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ttacon/libphonenumber"
)

const defaultPhoneRegion = "TZ"

func NewTrue() *bool {
	b := true
	return &b
}

func NewFalse() *bool {
	b := false
	return &b
}

// InternationalPhone prefixes a bare MSISDN with "+". Numbers that
// already carry the prefix pass through unchanged.
func InternationalPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+" + phone
}

// TanzaniaPhone converts a local 0-prefixed number to the +255 form.
// Anything else is handed to InternationalPhone.
func TanzaniaPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "0") {
		return "+255" + phone[1:]
	}
	return InternationalPhone(phone)
}

func ValidatePhoneNumber(phone string) bool {
	num, err := libphonenumber.Parse(phone, defaultPhoneRegion)
	if err != nil {
		return false
	}
	return libphonenumber.IsValidNumber(num)
}

// FormatAmount renders a monetary amount with thousands separators and
// no decimal places, e.g. 1234567.89 -> "1,234,568". SMS templates use
// this form.
func FormatAmount(amount decimal.Decimal) string {
	s := amount.Round(0).StringFixed(0)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

func GetEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
