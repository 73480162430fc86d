// internal/storefront/service.go
package storefront

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"merchstore/internal/catalog"
	"merchstore/internal/orderlog"
	"merchstore/internal/printify"
	"merchstore/pkg/config"
	"merchstore/pkg/middleware"
)

// Provider is the slice of the Printify client the orchestrator depends
// on. Tests substitute a stub; production wires *printify.Client.
type Provider interface {
	printify.ShopLister
	ListProducts(ctx context.Context, shopID string) ([]printify.Product, error)
	GetShippingRates(ctx context.Context, shopID string, req printify.ShippingQuoteRequest) (printify.ShippingRates, error)
	CreateOrder(ctx context.Context, shopID string, sub printify.OrderSubmission) (printify.OrderResult, error)
}

// Service sequences resolver -> client -> mapper per request and decides
// when to substitute mock data. Its defining invariant: a read request
// always gets a renderable envelope, whatever the upstream does. Write
// and quote paths surface failures instead; synthetic confirmations would
// mislead a paying customer.
type Service struct {
	cfg      config.Config
	log      *zap.SugaredLogger
	api      Provider
	resolver *printify.ShopResolver
	orders   *orderlog.Log
}

func NewService(cfg config.Config, log *zap.SugaredLogger, api Provider, orders *orderlog.Log) *Service {
	return &Service{
		cfg:      cfg,
		log:      log,
		api:      api,
		resolver: printify.NewShopResolver(cfg, api),
		orders:   orders,
	}
}

// Products is the read path: resolve, fetch, map. Resolution or provider
// failure degrades to the mock catalog; a panic anywhere in the pipeline
// is converted to a rendered error envelope rather than propagated.
func (s *Service) Products(ctx context.Context) (env ProductsEnvelope) {
	defer func() {
		if rec := recover(); rec != nil {
			s.log.Errorw("catalog pipeline panic", "err", rec)
			middleware.RecordFallback("panic")
			env = ProductsEnvelope{
				Source:       SourceError,
				ShopID:       catalog.MockShopID(),
				Products:     catalog.MockProducts(),
				Error:        "catalog temporarily unavailable",
				ErrorDetails: fmt.Sprint(rec),
			}
		}
	}()
	shopID, err := s.resolver.Resolve(ctx)
	if err != nil {
		s.log.Warnw("shop resolution failed, serving mock catalog", "kind", classify(err), "err", err)
		middleware.RecordFallback("resolution")
		return ProductsEnvelope{
			Source:       SourceMock,
			ShopID:       catalog.MockShopID(),
			Products:     catalog.MockProducts(),
			Error:        "could not resolve Printify shop",
			ErrorDetails: err.Error(),
		}
	}
	raw, err := s.api.ListProducts(ctx, shopID)
	if err != nil {
		s.log.Warnw("product fetch failed, serving mock catalog", "kind", classify(err), "shop", shopID, "err", err)
		middleware.RecordFallback("provider")
		return ProductsEnvelope{
			Source:       SourceMock,
			ShopID:       catalog.MockShopID(),
			Products:     catalog.MockProducts(),
			Error:        "could not fetch products from Printify",
			ErrorDetails: err.Error(),
		}
	}
	products := make([]catalog.Product, 0, len(raw))
	for _, p := range raw {
		products = append(products, catalog.FromPrintify(p))
	}
	return ProductsEnvelope{Source: SourcePrintify, ShopID: shopID, Products: products}
}

// Shop resolves the active shop id, degrading to the mock id so the
// caller always has something to display.
func (s *Service) Shop(ctx context.Context) ShopEnvelope {
	shopID, err := s.resolver.Resolve(ctx)
	if err != nil {
		s.log.Warnw("shop resolution failed", "err", err)
		return ShopEnvelope{
			Source:       SourceMock,
			ShopID:       catalog.MockShopID(),
			Error:        "could not resolve Printify shop",
			ErrorDetails: err.Error(),
		}
	}
	return ShopEnvelope{Source: SourcePrintify, ShopID: shopID}
}

// ShippingRates quotes shipping. No mock fallback on this path: failures
// return an explicit non-2xx status alongside the envelope.
func (s *Service) ShippingRates(ctx context.Context, body ShippingQuoteBody) (ShippingEnvelope, int) {
	shopID, err := s.resolver.Resolve(ctx)
	if err != nil {
		return ShippingEnvelope{
			Source:       SourceError,
			Options:      []ShippingOption{},
			Error:        "could not resolve Printify shop",
			ErrorDetails: err.Error(),
		}, http.StatusBadGateway
	}
	rates, err := s.api.GetShippingRates(ctx, shopID, printify.ShippingQuoteRequest{
		LineItems: toLineItems(body.Items),
		AddressTo: body.Address,
	})
	if err != nil {
		s.log.Warnw("shipping quote failed", "kind", classify(err), "shop", shopID, "err", err)
		return ShippingEnvelope{
			Source:       SourceError,
			Options:      []ShippingOption{},
			Error:        "shipping rates are unavailable right now",
			ErrorDetails: err.Error(),
		}, http.StatusBadGateway
	}
	return ShippingEnvelope{Source: SourcePrintify, Options: shippingOptions(rates)}, http.StatusOK
}

// CreateOrder submits the cart for fulfillment. Same surfacing policy as
// shipping: never a synthetic confirmation.
func (s *Service) CreateOrder(ctx context.Context, body OrderBody) (OrderEnvelope, int) {
	shopID, err := s.resolver.Resolve(ctx)
	if err != nil {
		return OrderEnvelope{
			Source:       SourceError,
			Error:        "could not resolve Printify shop",
			ErrorDetails: err.Error(),
		}, http.StatusBadGateway
	}
	method := body.ShippingMethod
	if method <= 0 {
		method = 1 // standard
	}
	sub := printify.OrderSubmission{
		ExternalID:               uuid.NewString(),
		LineItems:                toLineItems(body.Items),
		ShippingMethod:           method,
		SendShippingNotification: true,
		AddressTo:                body.Address,
	}
	res, err := s.api.CreateOrder(ctx, shopID, sub)
	if err != nil {
		s.log.Errorw("order submission failed", "kind", classify(err), "shop", shopID, "err", err)
		return OrderEnvelope{
			Source:       SourceError,
			Error:        "your order could not be submitted",
			ErrorDetails: err.Error(),
		}, http.StatusBadGateway
	}
	s.orders.Record(ctx, orderlog.Entry{
		OrderID:     res.ID,
		ShopID:      shopID,
		Status:      res.Status,
		ItemCount:   len(sub.LineItems),
		SubmittedAt: time.Now().UTC(),
	})
	return OrderEnvelope{Source: SourcePrintify, Order: &res}, http.StatusOK
}

// RecentOrders reads the Redis trail; empty when the trail is disabled.
func (s *Service) RecentOrders(ctx context.Context, n int64) []orderlog.Entry {
	return s.orders.Recent(ctx, n)
}

// shippingOptions maps cent-denominated carrier tiers to named options.
// Tier ids double as Printify shipping_method values; delivery windows
// are the storefront's published estimates, not provider data.
func shippingOptions(rates printify.ShippingRates) []ShippingOption {
	opts := []ShippingOption{}
	if rates.Standard > 0 {
		opts = append(opts, ShippingOption{ID: 1, Name: "Standard", Cost: catalog.Dollars(rates.Standard), Delivery: "5-7 business days"})
	}
	if rates.Priority > 0 {
		opts = append(opts, ShippingOption{ID: 2, Name: "Priority", Cost: catalog.Dollars(rates.Priority), Delivery: "3-4 business days"})
	}
	if rates.Express > 0 {
		opts = append(opts, ShippingOption{ID: 3, Name: "Express", Cost: catalog.Dollars(rates.Express), Delivery: "1-2 business days"})
	}
	return opts
}

// classify names the failure kind for logs: every failure on this layer
// is one of the three known kinds or unexpected.
func classify(err error) string {
	var re *printify.ResolutionError
	var pe *printify.ProviderError
	switch {
	case errors.Is(err, printify.ErrNoCredential):
		return "configuration"
	case errors.As(err, &re):
		return "resolution"
	case errors.As(err, &pe):
		return "provider"
	default:
		return "unexpected"
	}
}
