// internal/storefront/handlers.go
package storefront

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"merchstore/internal/catalog"
	"merchstore/pkg/config"
	"merchstore/pkg/middleware"
	"merchstore/pkg/openapi"
)

// Handlers owns the storefront-facing HTTP surface. Every Printify-backed
// endpoint checks the credential first: a wholly absent credential is an
// explicit 401, never silently papered over with mock data, so operators
// see the configuration error.
type Handlers struct {
	cfg config.Config
	log *zap.SugaredLogger
	svc *Service
}

func NewHandlers(cfg config.Config, log *zap.SugaredLogger, svc *Service) *Handlers {
	return &Handlers{cfg: cfg, log: log, svc: svc}
}

// Register mounts the storefront routes plus the public OpenAPI document.
func (h *Handlers) Register(r chi.Router) {
	r.Get("/api/products", h.listProducts)
	r.Get("/api/shop", h.resolveShop)
	r.Post("/api/shipping-rates", h.shippingRates)
	r.Post("/api/orders", h.createOrder)
	r.Get("/api/orders/recent", h.recentOrders)
	r.Get("/api/printify/status", h.printifyStatus)
	r.Get("/.well-known/openapi.json", h.openAPIDoc())
}

func (h *Handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.CredentialConfigured() {
		middleware.RecordFallback("no_credential")
		writeJSON(w, ProductsEnvelope{
			Source:   SourceError,
			ShopID:   catalog.MockShopID(),
			Products: catalog.MockProducts(),
			Error:    "Printify API key not configured",
		}, http.StatusUnauthorized)
		return
	}
	writeJSON(w, h.svc.Products(r.Context()), http.StatusOK)
}

func (h *Handlers) resolveShop(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.CredentialConfigured() {
		writeJSON(w, ShopEnvelope{
			Source: SourceError,
			ShopID: catalog.MockShopID(),
			Error:  "Printify API key not configured",
		}, http.StatusUnauthorized)
		return
	}
	writeJSON(w, h.svc.Shop(r.Context()), http.StatusOK)
}

func (h *Handlers) shippingRates(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.CredentialConfigured() {
		writeJSON(w, ShippingEnvelope{
			Source:  SourceError,
			Options: []ShippingOption{},
			Error:   "Printify API key not configured",
		}, http.StatusUnauthorized)
		return
	}
	var body ShippingQuoteBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&body); err != nil {
		writeJSON(w, ShippingEnvelope{Source: SourceError, Options: []ShippingOption{}, Error: "invalid request body", ErrorDetails: err.Error()}, http.StatusBadRequest)
		return
	}
	if len(body.Items) == 0 {
		writeJSON(w, ShippingEnvelope{Source: SourceError, Options: []ShippingOption{}, Error: "cart is empty"}, http.StatusBadRequest)
		return
	}
	env, status := h.svc.ShippingRates(r.Context(), body)
	writeJSON(w, env, status)
}

func (h *Handlers) createOrder(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.CredentialConfigured() {
		writeJSON(w, OrderEnvelope{Source: SourceError, Error: "Printify API key not configured"}, http.StatusUnauthorized)
		return
	}
	var body OrderBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&body); err != nil {
		writeJSON(w, OrderEnvelope{Source: SourceError, Error: "invalid request body", ErrorDetails: err.Error()}, http.StatusBadRequest)
		return
	}
	if len(body.Items) == 0 {
		writeJSON(w, OrderEnvelope{Source: SourceError, Error: "cart is empty"}, http.StatusBadRequest)
		return
	}
	env, status := h.svc.CreateOrder(r.Context(), body)
	writeJSON(w, env, status)
}

func (h *Handlers) recentOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"orders": h.svc.RecentOrders(r.Context(), 20)}, http.StatusOK)
}

// printifyStatus reports whether a credential is configured without
// revealing it; only a bounded prefix ever leaves the process.
func (h *Handlers) printifyStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"configured":       h.cfg.CredentialConfigured(),
		"tokenHint":        h.cfg.CredentialHint(),
		"shopIdConfigured": h.cfg.PrintifyShopID != "",
		"env":              h.cfg.Env,
	}, http.StatusOK)
}

func (h *Handlers) openAPIDoc() http.HandlerFunc {
	reg := openapi.NewRegistry()
	reg.Register(openapi.Operation{Method: "GET", Path: "/api/products", Summary: "List catalog products", Tags: []string{"catalog"}})
	reg.Register(openapi.Operation{Method: "GET", Path: "/api/shop", Summary: "Resolve active Printify shop", Tags: []string{"catalog"}})
	reg.Register(openapi.Operation{Method: "POST", Path: "/api/shipping-rates", Summary: "Quote shipping for a cart", Tags: []string{"checkout"}})
	reg.Register(openapi.Operation{Method: "POST", Path: "/api/orders", Summary: "Submit an order for fulfillment", Tags: []string{"checkout"}})
	reg.Register(openapi.Operation{Method: "GET", Path: "/api/orders/recent", Summary: "Recent order submissions", Tags: []string{"ops"}})
	reg.Register(openapi.Operation{Method: "GET", Path: "/api/printify/status", Summary: "Credential diagnostic", Tags: []string{"ops"}})
	return reg.ServeHandler("storefront-api", "v1")
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
