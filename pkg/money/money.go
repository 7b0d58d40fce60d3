// Package money centralizes decimal arithmetic and display formatting for
// monetary amounts. Amounts are decimals end to end; floats never touch
// pricing math.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Order and catalog payloads carry prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Parse converts a decimal string such as "3.50" into an amount.
func Parse(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", value, err)
	}
	return amount, nil
}

// Fixed renders the amount with exactly two decimal places ("19.80").
func Fixed(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// Display renders the amount for the storefront, BRL style with a comma
// decimal separator ("R$ 19,80").
func Display(amount decimal.Decimal) string {
	return "R$ " + strings.Replace(Fixed(amount), ".", ",", 1)
}
