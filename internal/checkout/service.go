package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pedrolima/coffee-delivery-backend/internal/cart"
	"github.com/pedrolima/coffee-delivery-backend/internal/catalog"
	"github.com/pedrolima/coffee-delivery-backend/internal/orders"
	pkgerrors "github.com/pedrolima/coffee-delivery-backend/pkg/errors"
	"github.com/pedrolima/coffee-delivery-backend/pkg/logger"
)

type cartStore interface {
	Lines() []cart.Line
	TotalQuantity() int
	Clear(ctx context.Context)
}

// Quote is the priced view of the current cart.
type Quote struct {
	Snapshot      cart.Snapshot
	TotalQuantity int
	Subtotal      decimal.Decimal
	DeliveryFee   decimal.Decimal
	Total         decimal.Decimal
}

// Service gates order submission and prices the cart.
type Service interface {
	Quote(ctx context.Context) Quote
	PlaceOrder(ctx context.Context, input AddressInput) (*orders.Order, error)
}

// ServiceParams wires the checkout service's dependencies. Archive is
// optional; everything else is required.
type ServiceParams struct {
	Cart        cartStore
	Catalog     *catalog.Catalog
	Orders      orders.Repository
	Archive     orders.Archive
	DeliveryFee decimal.Decimal
	Logger      *logger.Logger
}

type service struct {
	cart    cartStore
	catalog *catalog.Catalog
	orders  orders.Repository
	archive orders.Archive
	fee     decimal.Decimal
	logg    *logger.Logger
}

// NewService validates the wiring at construction time.
func NewService(params ServiceParams) (Service, error) {
	if params.Cart == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.DeliveryFee.IsNegative() {
		return nil, fmt.Errorf("delivery fee must not be negative")
	}
	return &service{
		cart:    params.Cart,
		catalog: params.Catalog,
		orders:  params.Orders,
		archive: params.Archive,
		fee:     params.DeliveryFee,
		logg:    params.Logger,
	}, nil
}

// Quote snapshots the cart and prices it: per-line subtotals, cart
// subtotal, and the flat delivery fee on top.
func (s *service) Quote(ctx context.Context) Quote {
	snapshot := cart.BuildSnapshot(s.cart.Lines(), s.catalog)
	subtotal := snapshot.Subtotal()
	return Quote{
		Snapshot:      snapshot,
		TotalQuantity: s.cart.TotalQuantity(),
		Subtotal:      subtotal,
		DeliveryFee:   s.fee,
		Total:         subtotal.Add(s.fee),
	}
}

// PlaceOrder turns the validated address and the current cart snapshot into
// one immutable order, persists it as the current order, clears the cart
// and hands the order back for the confirmation view. The UI disables
// submission on an empty cart; the API still guards the precondition.
func (s *service) PlaceOrder(ctx context.Context, input AddressInput) (*orders.Order, error) {
	if !input.Pagamento.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment method is not recognized").
			WithDetails(map[string]string{"pagamento": "must be one of credito, debito, dinheiro"})
	}

	snapshot := cart.BuildSnapshot(s.cart.Lines(), s.catalog)
	if snapshot.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	items := make([]orders.OrderItem, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		items = append(items, orders.OrderItem{
			ID:       line.Product.ID,
			Title:    line.Product.Title,
			Price:    line.Product.Price,
			Quantity: line.Quantity,
		})
	}

	order := &orders.Order{
		ID:          uuid.New(),
		CEP:         input.CEP,
		Rua:         input.Rua,
		Numero:      input.Numero,
		Complemento: input.Complemento,
		Bairro:      input.Bairro,
		Cidade:      input.Cidade,
		UF:          input.UF,
		Pagamento:   input.Pagamento,
		Items:       items,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.orders.SaveCurrent(ctx, order); err != nil {
		return nil, err
	}

	s.cart.Clear(ctx)

	if s.archive != nil {
		if err := s.archive.Save(ctx, order); err != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "order archive write failed")
		}
	}

	return order, nil
}
