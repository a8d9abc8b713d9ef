package catalog

import "strings"

// AllCategories is the sentinel category meaning "no category filter".
const AllCategories = "all"

// ComputeVisible returns the products whose lower-cased title contains the
// normalized query and whose category equals category (or any category for
// AllCategories). Order follows dataset; dataset is never modified.
func ComputeVisible(dataset []Product, query, category string) []Product {
	q := NormalizeQuery(query)
	if category == "" {
		category = AllCategories
	}

	out := make([]Product, 0, len(dataset))
	for _, p := range dataset {
		if !strings.Contains(strings.ToLower(p.Title), q) {
			continue
		}
		if category != AllCategories && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Find resolves a card identifier to a product.
func Find(dataset []Product, id string) (Product, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, false
	}
	for _, p := range dataset {
		if string(p.ID) == id {
			return p, true
		}
	}
	return Product{}, false
}

// WithSentinel prepends AllCategories to the upstream categories. A sentinel
// sent by upstream is dropped so it appears exactly once, first.
func WithSentinel(categories []string) []string {
	out := make([]string, 0, len(categories)+1)
	out = append(out, AllCategories)
	for _, c := range categories {
		if c == AllCategories {
			continue
		}
		out = append(out, c)
	}
	return out
}
