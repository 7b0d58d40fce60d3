package enums

import "fmt"

// PaymentMethod describes how the buyer settles the order on delivery.
type PaymentMethod string

const (
	PaymentMethodCredit PaymentMethod = "credito"
	PaymentMethodDebit  PaymentMethod = "debito"
	PaymentMethodCash   PaymentMethod = "dinheiro"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodCredit,
	PaymentMethodDebit,
	PaymentMethodCash,
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// Label returns the storefront display name for the method.
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentMethodCredit:
		return "Cartão de Crédito"
	case PaymentMethodDebit:
		return "Cartão de Débito"
	case PaymentMethodCash:
		return "Dinheiro"
	}
	return string(p)
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
