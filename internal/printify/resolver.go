// internal/printify/resolver.go
package printify

import (
	"context"
	"errors"

	"merchstore/pkg/config"
)

// ShopLister is the one upstream call shop resolution depends on.
type ShopLister interface {
	ListShops(ctx context.Context) ([]Shop, error)
}

// ShopResolver determines which Printify shop to operate against. A
// configured id wins without any network call; otherwise the first shop
// from a live listing is used. The result is request-scoped: nothing is
// cached across invocations.
type ShopResolver struct {
	configured string
	api        ShopLister
}

func NewShopResolver(cfg config.Config, api ShopLister) *ShopResolver {
	return &ShopResolver{configured: cfg.PrintifyShopID, api: api}
}

func (r *ShopResolver) Resolve(ctx context.Context) (string, error) {
	if r.configured != "" {
		return r.configured, nil
	}
	shops, err := r.api.ListShops(ctx)
	if err != nil {
		return "", &ResolutionError{Cause: err}
	}
	if len(shops) == 0 {
		return "", &ResolutionError{Cause: errors.New("account has no shops")}
	}
	return shops[0].ID.String(), nil
}
