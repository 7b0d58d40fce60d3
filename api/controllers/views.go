package controllers

import (
	"github.com/shopspring/decimal"

	"github.com/pedrolima/coffee-delivery-backend/internal/catalog"
	"github.com/pedrolima/coffee-delivery-backend/internal/checkout"
	"github.com/pedrolima/coffee-delivery-backend/pkg/money"
)

// ProductView is the catalog item as the storefront renders it.
type ProductView struct {
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	Image        string          `json:"image"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
	Tags         []string        `json:"tags"`
}

func newProductView(p catalog.Product) ProductView {
	return ProductView{
		ID:           p.ID,
		Title:        p.Title,
		Image:        p.Image,
		Description:  p.Description,
		Price:        p.Price,
		PriceDisplay: money.Display(p.Price),
		Tags:         []string(p.Tags),
	}
}

// CartItemView is one resolved cart line with its running subtotal.
type CartItemView struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Image           string          `json:"image"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	Subtotal        string          `json:"subtotal"`
	SubtotalDisplay string          `json:"subtotal_display"`
}

// CartView is the priced cart snapshot returned by every cart endpoint.
type CartView struct {
	Items           []CartItemView `json:"items"`
	TotalQuantity   int            `json:"total_quantity"`
	Subtotal        string         `json:"subtotal"`
	DeliveryFee     string         `json:"delivery_fee"`
	Total           string         `json:"total"`
	SubtotalDisplay string         `json:"subtotal_display"`
	TotalDisplay    string         `json:"total_display"`
}

func newCartView(quote checkout.Quote) CartView {
	items := make([]CartItemView, 0, len(quote.Snapshot.Lines))
	for _, line := range quote.Snapshot.Lines {
		subtotal := line.Subtotal()
		items = append(items, CartItemView{
			ID:              line.Product.ID,
			Title:           line.Product.Title,
			Image:           line.Product.Image,
			Price:           line.Product.Price,
			Quantity:        line.Quantity,
			Subtotal:        money.Fixed(subtotal),
			SubtotalDisplay: money.Display(subtotal),
		})
	}
	return CartView{
		Items:           items,
		TotalQuantity:   quote.TotalQuantity,
		Subtotal:        money.Fixed(quote.Subtotal),
		DeliveryFee:     money.Fixed(quote.DeliveryFee),
		Total:           money.Fixed(quote.Total),
		SubtotalDisplay: money.Display(quote.Subtotal),
		TotalDisplay:    money.Display(quote.Total),
	}
}
