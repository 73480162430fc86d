package storefront_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"merchstore/internal/orderlog"
	"merchstore/internal/printify"
	"merchstore/internal/storefront"
	"merchstore/pkg/config"
)

// ---- stub provider ----

type stubProvider struct {
	shops       []printify.Shop
	shopsErr    error
	products    []printify.Product
	productsErr error
	rates       printify.ShippingRates
	ratesErr    error
	order       printify.OrderResult
	orderErr    error
	panicOnList bool
	calls       int
}

func (s *stubProvider) ListShops(_ context.Context) ([]printify.Shop, error) {
	s.calls++
	return s.shops, s.shopsErr
}

func (s *stubProvider) ListProducts(_ context.Context, _ string) ([]printify.Product, error) {
	s.calls++
	if s.panicOnList {
		panic("corrupt catalog state")
	}
	return s.products, s.productsErr
}

func (s *stubProvider) GetShippingRates(_ context.Context, _ string, _ printify.ShippingQuoteRequest) (printify.ShippingRates, error) {
	s.calls++
	return s.rates, s.ratesErr
}

func (s *stubProvider) CreateOrder(_ context.Context, _ string, _ printify.OrderSubmission) (printify.OrderResult, error) {
	s.calls++
	return s.order, s.orderErr
}

// ---- helpers ----

func testCfg() config.Config {
	return config.Config{
		Env:             "dev",
		PrintifyAPIKey:  "test-key",
		PrintifyShopID:  "55",
		UpstreamTimeout: 5 * time.Second,
	}
}

func newRouter(cfg config.Config, api *stubProvider) chi.Router {
	log := zap.NewNop().Sugar()
	svc := storefront.NewService(cfg, log, api, orderlog.New(nil, log))
	r := chi.NewRouter()
	storefront.NewHandlers(cfg, log, svc).Register(r)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func teeProduct() printify.Product {
	enabled := true
	return printify.Product{
		ID:       "p1",
		Title:    "Tee",
		Tags:     []string{"Apparel"},
		Images:   []printify.Image{{Src: "http://x/a.png"}},
		Variants: []printify.Variant{{ID: 1, Price: 2999, IsEnabled: &enabled}},
	}
}

func quoteBody() storefront.ShippingQuoteBody {
	return storefront.ShippingQuoteBody{
		Address: printify.Address{FirstName: "A", LastName: "B", Country: "US", Address1: "1 Main St", City: "Austin", Zip: "73301"},
		Items:   []storefront.CartItem{{ProductID: "p1", VariantID: 1, Quantity: 1}},
	}
}

// ---- catalog listing ----

func TestListProducts_Live(t *testing.T) {
	api := &stubProvider{products: []printify.Product{teeProduct()}}
	r := newRouter(testCfg(), api)

	var env storefront.ProductsEnvelope
	rec := doJSON(t, r, http.MethodGet, "/api/products", nil, &env)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, storefront.SourcePrintify, env.Source)
	assert.Equal(t, "55", env.ShopID)
	assert.Empty(t, env.Error)
	require.Len(t, env.Products, 1)
	assert.Equal(t, "p1", env.Products[0].ID)
	assert.Equal(t, "Tee", env.Products[0].Name)
	assert.Equal(t, 29.99, env.Products[0].Price)
}

func TestListProducts_ProviderFailureDegradesToMock(t *testing.T) {
	api := &stubProvider{productsErr: &printify.ProviderError{StatusCode: 500, Endpoint: "/shops/55/products.json", Message: "upstream down"}}
	r := newRouter(testCfg(), api)

	var env storefront.ProductsEnvelope
	rec := doJSON(t, r, http.MethodGet, "/api/products", nil, &env)

	assert.Equal(t, http.StatusOK, rec.Code, "read path must stay renderable")
	assert.Equal(t, storefront.SourceMock, env.Source)
	assert.NotEmpty(t, env.Error)
	assert.Contains(t, env.ErrorDetails, "upstream down")
	assert.NotEmpty(t, env.Products)
}

func TestListProducts_ResolutionFailureDegradesToMock(t *testing.T) {
	cfg := testCfg()
	cfg.PrintifyShopID = "" // force live resolution
	api := &stubProvider{shopsErr: &printify.ProviderError{StatusCode: 401, Endpoint: "/shops.json", Message: "unauthorized"}}
	r := newRouter(cfg, api)

	var env storefront.ProductsEnvelope
	rec := doJSON(t, r, http.MethodGet, "/api/products", nil, &env)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, storefront.SourceMock, env.Source)
	assert.NotEmpty(t, env.Error)
	assert.NotEmpty(t, env.Products)
}

func TestListProducts_NoCredentialIs401AndNoNetworkCall(t *testing.T) {
	cfg := testCfg()
	cfg.PrintifyAPIKey = ""
	api := &stubProvider{}
	r := newRouter(cfg, api)

	var env storefront.ProductsEnvelope
	rec := doJSON(t, r, http.MethodGet, "/api/products", nil, &env)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, storefront.SourceError, env.Source)
	assert.NotEmpty(t, env.Error)
	assert.NotEmpty(t, env.Products, "envelope data must stay renderable")
	assert.Zero(t, api.calls)
}

func TestListProducts_PanicStillRendered(t *testing.T) {
	api := &stubProvider{panicOnList: true}
	r := newRouter(testCfg(), api)

	var env storefront.ProductsEnvelope
	rec := doJSON(t, r, http.MethodGet, "/api/products", nil, &env)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, storefront.SourceError, env.Source)
	assert.Contains(t, env.ErrorDetails, "corrupt catalog state")
	assert.NotEmpty(t, env.Products)
}

// ---- shop resolution ----

func TestShop_LiveResolution(t *testing.T) {
	cfg := testCfg()
	cfg.PrintifyShopID = ""
	api := &stubProvider{shops: []printify.Shop{{ID: json.Number("55"), Title: "Demo Shop"}}}
	r := newRouter(cfg, api)

	var env storefront.ShopEnvelope
	rec := doJSON(t, r, http.MethodGet, "/api/shop", nil, &env)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, storefront.SourcePrintify, env.Source)
	assert.Equal(t, "55", env.ShopID)
}

func TestShop_DegradesToMockShopID(t *testing.T) {
	cfg := testCfg()
	cfg.PrintifyShopID = ""
	api := &stubProvider{shopsErr: &printify.ProviderError{Endpoint: "/shops.json", Message: "timeout"}}
	r := newRouter(cfg, api)

	var env storefront.ShopEnvelope
	rec := doJSON(t, r, http.MethodGet, "/api/shop", nil, &env)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, storefront.SourceMock, env.Source)
	assert.NotEmpty(t, env.ShopID)
	assert.NotEmpty(t, env.Error)
}

// ---- shipping quotes ----

func TestShippingRates_Live(t *testing.T) {
	api := &stubProvider{rates: printify.ShippingRates{Standard: 429, Express: 1579}}
	r := newRouter(testCfg(), api)

	var env storefront.ShippingEnvelope
	rec := doJSON(t, r, http.MethodPost, "/api/shipping-rates", quoteBody(), &env)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, storefront.SourcePrintify, env.Source)
	require.Len(t, env.Options, 2)
	assert.Equal(t, "Standard", env.Options[0].Name)
	assert.Equal(t, 4.29, env.Options[0].Cost)
	assert.Equal(t, "Express", env.Options[1].Name)
	assert.Equal(t, 15.79, env.Options[1].Cost)
}

func TestShippingRates_FailureIsExplicitErrorNeverMock(t *testing.T) {
	api := &stubProvider{ratesErr: &printify.ProviderError{StatusCode: 502, Endpoint: "/shops/55/orders/shipping.json", Message: "bad gateway"}}
	r := newRouter(testCfg(), api)

	var env storefront.ShippingEnvelope
	rec := doJSON(t, r, http.MethodPost, "/api/shipping-rates", quoteBody(), &env)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, storefront.SourceError, env.Source)
	assert.NotEqual(t, storefront.SourceMock, env.Source)
	assert.NotEmpty(t, env.Error)
	assert.Empty(t, env.Options)
}

func TestShippingRates_EmptyCartRejected(t *testing.T) {
	r := newRouter(testCfg(), &stubProvider{})

	body := quoteBody()
	body.Items = nil
	rec := doJSON(t, r, http.MethodPost, "/api/shipping-rates", body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- orders ----

func TestCreateOrder_Live(t *testing.T) {
	api := &stubProvider{order: printify.OrderResult{ID: "ord_1", Status: "pending"}}
	r := newRouter(testCfg(), api)

	body := storefront.OrderBody{
		Address:        quoteBody().Address,
		Items:          quoteBody().Items,
		ShippingMethod: 1,
	}
	var env storefront.OrderEnvelope
	rec := doJSON(t, r, http.MethodPost, "/api/orders", body, &env)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, storefront.SourcePrintify, env.Source)
	require.NotNil(t, env.Order)
	assert.Equal(t, "ord_1", env.Order.ID)
	assert.Equal(t, "pending", env.Order.Status)
}

func TestCreateOrder_FailureIsExplicitErrorNeverMock(t *testing.T) {
	api := &stubProvider{orderErr: &printify.ProviderError{StatusCode: 500, Endpoint: "/shops/55/orders.json", Message: "order rejected"}}
	r := newRouter(testCfg(), api)

	body := storefront.OrderBody{Address: quoteBody().Address, Items: quoteBody().Items}
	var env storefront.OrderEnvelope
	rec := doJSON(t, r, http.MethodPost, "/api/orders", body, &env)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, storefront.SourceError, env.Source)
	assert.NotEqual(t, storefront.SourceMock, env.Source)
	assert.Nil(t, env.Order)
	assert.NotEmpty(t, env.Error)
	assert.Contains(t, env.ErrorDetails, "order rejected")
}

func TestCreateOrder_NoCredentialIs401AndNoNetworkCall(t *testing.T) {
	cfg := testCfg()
	cfg.PrintifyAPIKey = ""
	api := &stubProvider{}
	r := newRouter(cfg, api)

	rec := doJSON(t, r, http.MethodPost, "/api/orders", storefront.OrderBody{Items: quoteBody().Items}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, api.calls)
}

// ---- diagnostics ----

func TestPrintifyStatus_NeverRevealsFullCredential(t *testing.T) {
	cfg := testCfg()
	cfg.PrintifyAPIKey = "sk_live_super_secret_token_value"
	r := newRouter(cfg, &stubProvider{})

	var out map[string]any
	rec := doJSON(t, r, http.MethodGet, "/api/printify/status", nil, &out)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["configured"])
	assert.Equal(t, true, out["shopIdConfigured"])
	hint, _ := out["tokenHint"].(string)
	assert.NotEmpty(t, hint)
	assert.LessOrEqual(t, len(hint), 9)
	assert.NotContains(t, rec.Body.String(), "super_secret")
}

func TestRecentOrders_EmptyWhenTrailDisabled(t *testing.T) {
	r := newRouter(testCfg(), &stubProvider{})

	var out struct {
		Orders []json.RawMessage `json:"orders"`
	}
	rec := doJSON(t, r, http.MethodGet, "/api/orders/recent", nil, &out)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, out.Orders)
}

func TestOpenAPIDoc_ListsStorefrontOperations(t *testing.T) {
	r := newRouter(testCfg(), &stubProvider{})

	var doc map[string]any
	rec := doJSON(t, r, http.MethodGet, "/.well-known/openapi.json", nil, &doc)

	assert.Equal(t, http.StatusOK, rec.Code)
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/products")
	assert.Contains(t, paths, "/api/orders")
	assert.Contains(t, paths, "/api/shipping-rates")
}
