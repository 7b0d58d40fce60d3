package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pedrolima/coffee-delivery-backend/pkg/enums"
)

// OrderItem is a product snapshot frozen at submission time. Later catalog
// changes never retroactively alter a placed order.
type OrderItem struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order is the immutable record produced by a successful checkout. Field
// names follow the storefront's persisted wire format.
type Order struct {
	ID          uuid.UUID           `json:"id"`
	CEP         string              `json:"cep"`
	Rua         string              `json:"rua"`
	Numero      string              `json:"numero"`
	Complemento string              `json:"complemento,omitempty"`
	Bairro      string              `json:"bairro"`
	Cidade      string              `json:"cidade"`
	UF          string              `json:"uf"`
	Pagamento   enums.PaymentMethod `json:"pagamento"`
	Items       []OrderItem         `json:"items"`
	Timestamp   string              `json:"timestamp"`
}

// PlacedAt parses the order's ISO-8601 timestamp.
func (o *Order) PlacedAt() (time.Time, error) {
	return time.Parse(time.RFC3339, o.Timestamp)
}

// Subtotal sums price times quantity over the order's items.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
