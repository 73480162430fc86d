// internal/catalog/product.go
package catalog

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Product is the storefront-facing shape the frontend renders. Price is
// decimal currency units (dollars), never cents. Optional fields are
// omitted entirely when absent rather than zeroed, so the UI can tell
// "no reviews yet" from "zero stars".
type Product struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Price       float64   `json:"price" yaml:"price"`
	Image       ImageList `json:"image" yaml:"image"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string    `json:"category" yaml:"category"`
	Sizes       []string  `json:"sizes,omitempty" yaml:"sizes,omitempty"`
	Colors      []string  `json:"colors,omitempty" yaml:"colors,omitempty"`
	Rating      *float64  `json:"rating,omitempty" yaml:"rating,omitempty"`
	Reviews     *int      `json:"reviews,omitempty" yaml:"reviews,omitempty"`
	InStock     *bool     `json:"inStock,omitempty" yaml:"inStock,omitempty"`
}

// ImageList keeps image URLs in upstream order. It serializes as a bare
// string when it holds exactly one URL and as an array otherwise, which
// is the shape the storefront cards expect.
type ImageList []string

func (l ImageList) MarshalJSON() ([]byte, error) {
	if len(l) == 1 {
		return json.Marshal(l[0])
	}
	return json.Marshal([]string(l))
}

func (l *ImageList) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*l = ImageList{s}
		return nil
	}
	var urls []string
	if err := json.Unmarshal(b, &urls); err != nil {
		return err
	}
	*l = ImageList(urls)
	return nil
}

func (l *ImageList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = ImageList{s}
		return nil
	}
	var urls []string
	if err := value.Decode(&urls); err != nil {
		return err
	}
	*l = ImageList(urls)
	return nil
}
