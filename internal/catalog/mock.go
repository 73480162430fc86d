// internal/catalog/mock.go
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed mockdata.yaml
var mockYAML []byte

type mockDataset struct {
	ShopID   string    `yaml:"shop_id"`
	Products []Product `yaml:"products"`
}

var mock mockDataset

func init() {
	if err := yaml.Unmarshal(mockYAML, &mock); err != nil {
		panic(fmt.Sprintf("catalog: embedded mock dataset: %v", err))
	}
}

// MockProducts returns the deterministic synthetic catalog. This data is
// never sent upstream and reaches callers only inside envelopes tagged
// source "mock" or "error".
func MockProducts() []Product {
	out := make([]Product, len(mock.Products))
	copy(out, mock.Products)
	return out
}

// MockShopID is the shop id reported alongside mock catalog data.
func MockShopID() string { return mock.ShopID }
