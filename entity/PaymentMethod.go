package entity

import "strings"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCard PaymentMethod = "card"
)

var PaymentMethods = []PaymentMethod{PaymentCash, PaymentUPI, PaymentCard}

// ParsePaymentMethod accepts the method key case-insensitively.
func ParsePaymentMethod(key string) (PaymentMethod, bool) {
	k := PaymentMethod(strings.ToLower(strings.TrimSpace(key)))
	for _, m := range PaymentMethods {
		if m == k {
			return m, true
		}
	}
	return "", false
}
