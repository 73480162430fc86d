// internal/catalog/mapper.go
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"merchstore/internal/printify"
)

const defaultCategory = "Merch"

var centsPerDollar = decimal.NewFromInt(100)

// FromPrintify converts one upstream product into the storefront shape.
// Total and pure: any well-formed Printify record maps to a renderable
// product, with defaults filled in instead of failures. This is the only
// place catalog prices cross from cents to dollars.
func FromPrintify(p printify.Product) Product {
	out := Product{
		ID:          p.ID,
		Name:        p.Title,
		Description: p.Description,
		Category:    categoryFromTags(p.Tags),
	}
	for _, img := range p.Images {
		if img.Src != "" {
			out.Image = append(out.Image, img.Src)
		}
	}
	out.Price = Dollars(displayPrice(p.Variants))
	inStock := stockFlag(p.Variants)
	out.InStock = &inStock
	out.Sizes, out.Colors = optionTitles(p.Options)
	// Rating and reviews stay nil: Printify does not supply them.
	return out
}

// Dollars converts a cent amount to decimal dollars. Division happens in
// decimal space so 2999 comes out as exactly 29.99.
func Dollars(cents int64) float64 {
	f, _ := decimal.NewFromInt(cents).Div(centsPerDollar).Float64()
	return f
}

// displayPrice is the lowest price among enabled variants, in cents. A
// variant with no is_enabled flag counts as enabled. Products whose
// variants are all disabled still get a price so the card can render.
func displayPrice(variants []printify.Variant) int64 {
	best := int64(-1)
	for _, v := range variants {
		if v.IsEnabled != nil && !*v.IsEnabled {
			continue
		}
		if best < 0 || v.Price < best {
			best = v.Price
		}
	}
	if best < 0 {
		for _, v := range variants {
			if best < 0 || v.Price < best {
				best = v.Price
			}
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// stockFlag defaults to true when the provider omits availability
// entirely; otherwise it reports whether any enabled variant is
// available.
func stockFlag(variants []printify.Variant) bool {
	flagged := false
	for _, v := range variants {
		if v.IsEnabled == nil && v.IsAvailable == nil {
			continue
		}
		flagged = true
		enabled := v.IsEnabled == nil || *v.IsEnabled
		available := v.IsAvailable == nil || *v.IsAvailable
		if enabled && available {
			return true
		}
	}
	return !flagged
}

func optionTitles(options []printify.Option) (sizes, colors []string) {
	for _, o := range options {
		kind := strings.ToLower(o.Type)
		if kind == "" {
			kind = strings.ToLower(o.Name)
		}
		switch {
		case strings.Contains(kind, "size"):
			for _, v := range o.Values {
				sizes = append(sizes, v.Title)
			}
		case strings.Contains(kind, "color"), strings.Contains(kind, "colour"):
			for _, v := range o.Values {
				colors = append(colors, v.Title)
			}
		}
	}
	return sizes, colors
}

func categoryFromTags(tags []string) string {
	for _, t := range tags {
		if s := strings.TrimSpace(t); s != "" {
			return s
		}
	}
	return defaultCategory
}
