package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ProductID is the upstream identifier in its textual form. Upstream sends
// numbers today; strings are accepted as well.
type ProductID string

func (id *ProductID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type Product struct {
	ID          ProductID `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Rating      Rating    `json:"rating"`
}

const currencySymbol = "$"

// FormatPrice renders a price the way the storefront shows it: the currency
// symbol followed by the shortest decimal form (19.99 -> "$19.99", 64 -> "$64").
func FormatPrice(price float64) string {
	return currencySymbol + strconv.FormatFloat(price, 'f', -1, 64)
}

// FormatRate renders a rating average in shortest decimal form.
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
