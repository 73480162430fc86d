// internal/printify/types.go
package printify

import "encoding/json"

// Wire shapes for the Printify REST API.
//
// Money convention: Printify reports amounts in integer cents on both the
// product-variant and shipping-rate endpoints. Nothing in this package
// converts units; the storefront mapping layer divides by 100 exactly once.

// Shop is one entry from GET /shops.json. Printify serializes the id as a
// number; json.Number keeps it intact until the resolver stringifies it.
type Shop struct {
	ID           json.Number `json:"id"`
	Title        string      `json:"title"`
	SalesChannel string      `json:"sales_channel,omitempty"`
}

// Product is the raw upstream product record. Immutable once received.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
	Images      []Image   `json:"images,omitempty"`
	Visible     bool      `json:"visible,omitempty"`
}

type Option struct {
	Name   string        `json:"name"`
	Type   string        `json:"type"`
	Values []OptionValue `json:"values"`
}

type OptionValue struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Variant availability flags are pointers: Printify omits them on some
// catalog payloads, and an omitted flag means "purchasable".
type Variant struct {
	ID          int64  `json:"id"`
	SKU         string `json:"sku,omitempty"`
	Title       string `json:"title,omitempty"`
	Price       int64  `json:"price"` // cents
	IsEnabled   *bool  `json:"is_enabled,omitempty"`
	IsAvailable *bool  `json:"is_available,omitempty"`
	Options     []int  `json:"options,omitempty"`
}

type Image struct {
	Src        string  `json:"src"`
	VariantIDs []int64 `json:"variant_ids,omitempty"`
	Position   string  `json:"position,omitempty"`
	IsDefault  bool    `json:"is_default,omitempty"`
}

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Country   string `json:"country"`
	Region    string `json:"region,omitempty"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

type LineItem struct {
	ProductID string `json:"product_id"`
	VariantID int64  `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// ShippingQuoteRequest is the body of POST /shops/{id}/orders/shipping.json.
type ShippingQuoteRequest struct {
	LineItems []LineItem `json:"line_items"`
	AddressTo Address    `json:"address_to"`
}

// ShippingRates holds per-tier costs in cents. A zero tier was not offered.
type ShippingRates struct {
	Standard int64 `json:"standard"`
	Express  int64 `json:"express,omitempty"`
	Priority int64 `json:"priority,omitempty"`
}

// OrderSubmission is the body of POST /shops/{id}/orders.json.
type OrderSubmission struct {
	ExternalID               string     `json:"external_id,omitempty"`
	LineItems                []LineItem `json:"line_items"`
	ShippingMethod           int        `json:"shipping_method"`
	SendShippingNotification bool       `json:"send_shipping_notification"`
	AddressTo                Address    `json:"address_to"`
}

type OrderResult struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}
