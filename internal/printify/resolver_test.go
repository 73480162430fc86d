package printify_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchstore/internal/printify"
	"merchstore/pkg/config"
)

type stubShopLister struct {
	shops []printify.Shop
	err   error
	calls int
}

func (s *stubShopLister) ListShops(_ context.Context) ([]printify.Shop, error) {
	s.calls++
	return s.shops, s.err
}

func TestResolve_ConfiguredShopSkipsNetwork(t *testing.T) {
	lister := &stubShopLister{}
	r := printify.NewShopResolver(config.Config{PrintifyShopID: "99"}, lister)

	id, err := r.Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "99", id)
	assert.Zero(t, lister.calls)
}

func TestResolve_PicksFirstShopFromLiveListing(t *testing.T) {
	lister := &stubShopLister{shops: []printify.Shop{
		{ID: json.Number("55"), Title: "Demo Shop"},
		{ID: json.Number("77"), Title: "Second Shop"},
	}}
	r := printify.NewShopResolver(config.Config{}, lister)

	id, err := r.Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "55", id)
	assert.Equal(t, 1, lister.calls)
}

func TestResolve_NoShopsIsResolutionError(t *testing.T) {
	r := printify.NewShopResolver(config.Config{}, &stubShopLister{})

	_, err := r.Resolve(context.Background())

	var re *printify.ResolutionError
	require.ErrorAs(t, err, &re)
}

func TestResolve_ListFailureWrapsCause(t *testing.T) {
	cause := &printify.ProviderError{StatusCode: 401, Endpoint: "/shops.json", Message: "unauthorized"}
	r := printify.NewShopResolver(config.Config{}, &stubShopLister{err: cause})

	_, err := r.Resolve(context.Background())

	var re *printify.ResolutionError
	require.ErrorAs(t, err, &re)
	var pe *printify.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 401, pe.StatusCode)
}

func TestResolve_NoCachingAcrossCalls(t *testing.T) {
	lister := &stubShopLister{shops: []printify.Shop{{ID: json.Number("55")}}}
	r := printify.NewShopResolver(config.Config{}, lister)

	_, err := r.Resolve(context.Background())
	require.NoError(t, err)
	_, err = r.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, lister.calls)
}
