package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchstore/internal/catalog"
)

func TestMockProducts_ShapeAndDeterminism(t *testing.T) {
	first := catalog.MockProducts()
	second := catalog.MockProducts()

	require.GreaterOrEqual(t, len(first), 4)
	assert.Equal(t, first, second)

	categories := map[string]bool{}
	sawPartial := false
	for _, p := range first {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.Price, 0.0)
		assert.NotEmpty(t, p.Image)
		categories[p.Category] = true
		if p.Rating == nil || p.Reviews == nil || p.Description == "" {
			sawPartial = true
		}
	}
	assert.GreaterOrEqual(t, len(categories), 2, "mock catalog should span categories")
	assert.True(t, sawPartial, "mock catalog should include incomplete records")
}

func TestMockProducts_CallerCannotMutateDataset(t *testing.T) {
	got := catalog.MockProducts()
	got[0].Name = "tampered"
	assert.NotEqual(t, "tampered", catalog.MockProducts()[0].Name)
}

func TestMockShopID(t *testing.T) {
	assert.NotEmpty(t, catalog.MockShopID())
}
