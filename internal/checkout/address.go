package checkout

import (
	"regexp"
	"strings"

	"github.com/pedrolima/coffee-delivery-backend/pkg/enums"
)

// AddressInput is the checkout form payload: delivery address plus payment
// choice. Field names follow the storefront's wire format. The schema is
// fixed, not user-configurable.
type AddressInput struct {
	CEP         string              `json:"cep" validate:"required,cep"`
	Rua         string              `json:"rua" validate:"required"`
	Numero      string              `json:"numero" validate:"required"`
	Complemento string              `json:"complemento"`
	Bairro      string              `json:"bairro" validate:"required"`
	Cidade      string              `json:"cidade" validate:"required"`
	UF          string              `json:"uf" validate:"required,len=2"`
	Pagamento   enums.PaymentMethod `json:"pagamento" validate:"required,oneof=credito debito dinheiro"`
}

// Normalize reshapes the raw CEP input before validation runs.
func (a *AddressInput) Normalize() {
	a.CEP = FormatCEP(a.CEP)
}

var cepPattern = regexp.MustCompile(`^\d{5}-\d{3}$`)

// MatchCEP reports whether the value has the 00000-000 shape.
func MatchCEP(value string) bool {
	return cepPattern.MatchString(value)
}

// FormatCEP turns raw input such as "12345678" into "12345-678": strip
// everything that is not a digit, keep the first eight digits, insert the
// hyphen after the fifth. Inputs with five or fewer digits are returned
// without a hyphen and will fail the shape check.
func FormatCEP(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r < '0' || r > '9' {
			continue
		}
		digits.WriteRune(r)
		if digits.Len() == 8 {
			break
		}
	}
	formatted := digits.String()
	if len(formatted) <= 5 {
		return formatted
	}
	return formatted[:5] + "-" + formatted[5:]
}
