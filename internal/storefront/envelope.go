// internal/storefront/envelope.go
package storefront

import (
	"merchstore/internal/catalog"
	"merchstore/internal/printify"
)

// Source tags every orchestrated response so callers can tell live data
// from fallback. Mock data must never be silently indistinguishable from
// a real catalog.
type Source string

const (
	SourcePrintify Source = "printify" // live end-to-end call
	SourceMock     Source = "mock"     // degraded: detected failure, mock substituted
	SourceError    Source = "error"    // unexpected failure, still rendered
)

// Envelope rules: the data field is always populated with something
// renderable; `error` is the human-facing message, `errorDetails` the raw
// diagnostic cause.

type ProductsEnvelope struct {
	Source       Source            `json:"source"`
	ShopID       string            `json:"shopId,omitempty"`
	Products     []catalog.Product `json:"products"`
	Error        string            `json:"error,omitempty"`
	ErrorDetails string            `json:"errorDetails,omitempty"`
}

type ShopEnvelope struct {
	Source       Source `json:"source"`
	ShopID       string `json:"shopId"`
	Error        string `json:"error,omitempty"`
	ErrorDetails string `json:"errorDetails,omitempty"`
}

// ShippingOption is one named quote; Cost is decimal dollars and ID is
// the value to send back as shippingMethod when ordering.
type ShippingOption struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Delivery string  `json:"delivery"`
}

type ShippingEnvelope struct {
	Source       Source           `json:"source"`
	Options      []ShippingOption `json:"options"`
	Error        string           `json:"error,omitempty"`
	ErrorDetails string           `json:"errorDetails,omitempty"`
}

type OrderEnvelope struct {
	Source       Source                `json:"source"`
	Order        *printify.OrderResult `json:"order,omitempty"`
	Error        string                `json:"error,omitempty"`
	ErrorDetails string                `json:"errorDetails,omitempty"`
}

// Storefront-facing request bodies. Addresses pass through in the
// provider's field naming; cart items use the frontend's camelCase.

type CartItem struct {
	ProductID string `json:"productId"`
	VariantID int64  `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

type ShippingQuoteBody struct {
	Address printify.Address `json:"address"`
	Items   []CartItem       `json:"items"`
}

type OrderBody struct {
	Address        printify.Address `json:"address"`
	Items          []CartItem       `json:"items"`
	ShippingMethod int              `json:"shippingMethod"`
}

func toLineItems(items []CartItem) []printify.LineItem {
	out := make([]printify.LineItem, 0, len(items))
	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		out = append(out, printify.LineItem{ProductID: it.ProductID, VariantID: it.VariantID, Quantity: qty})
	}
	return out
}
