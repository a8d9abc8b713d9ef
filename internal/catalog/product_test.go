package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_DecodeUpstreamShape(t *testing.T) {
	raw := `{
		"id": 7,
		"title": "Shirt",
		"price": 19.99,
		"description": "Cotton",
		"category": "men's clothing",
		"image": "x.png",
		"rating": {"rate": 4.1, "count": 50}
	}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, Product{
		ID:          "7",
		Title:       "Shirt",
		Price:       19.99,
		Description: "Cotton",
		Category:    "men's clothing",
		Image:       "x.png",
		Rating:      Rating{Rate: 4.1, Count: 50},
	}, p)
}

func TestProductID_AcceptsString(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"sku-1"}`), &p))
	assert.Equal(t, ProductID("sku-1"), p.ID)
}

func TestProductID_RejectsObject(t *testing.T) {
	var p Product
	assert.Error(t, json.Unmarshal([]byte(`{"id":{"x":1}}`), &p))
}

func TestFormatPrice(t *testing.T) {
	cases := map[float64]string{
		19.99:  "$19.99",
		22.3:   "$22.3",
		64:     "$64",
		109.95: "$109.95",
		0:      "$0",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPrice(in))
	}
}
