package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() []Product {
	return []Product{
		{ID: "1", Title: "Fjallraven Backpack", Price: 109.95, Category: "men's clothing"},
		{ID: "2", Title: "Mens Casual Premium Slim Fit T-Shirts", Price: 22.3, Category: "men's clothing"},
		{ID: "5", Title: "John Hardy Women's Legends Bracelet", Price: 695, Category: "jewelery"},
		{ID: "9", Title: "WD 2TB Elements Portable Hard Drive", Price: 64, Category: "electronics"},
		{ID: "15", Title: "BIYLACLESEN Women's Snowboard Jacket", Price: 56.99, Category: "women's clothing"},
	}
}

func ids(ps []Product) []ProductID {
	out := make([]ProductID, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestComputeVisible_EmptyQueryAllReturnsDataset(t *testing.T) {
	ds := sampleDataset()

	got := ComputeVisible(ds, "", AllCategories)
	assert.Equal(t, ds, got)

	got = ComputeVisible(ds, "   ", "")
	assert.Equal(t, ds, got)
}

func TestComputeVisible_QueryIsTrimmedAndCaseInsensitive(t *testing.T) {
	got := ComputeVisible(sampleDataset(), "  WOMEN'S ", AllCategories)
	assert.Equal(t, []ProductID{"5", "15"}, ids(got))
}

func TestComputeVisible_CategoryIsExact(t *testing.T) {
	ds := sampleDataset()

	assert.Equal(t, []ProductID{"1", "2"}, ids(ComputeVisible(ds, "", "men's clothing")))
	assert.Empty(t, ComputeVisible(ds, "", "Men's Clothing"))
	assert.Empty(t, ComputeVisible(ds, "", "clothing"))
}

func TestComputeVisible_BothPredicatesMustHold(t *testing.T) {
	ds := sampleDataset()

	assert.Equal(t, []ProductID{"15"}, ids(ComputeVisible(ds, "jacket", "women's clothing")))
	assert.Empty(t, ComputeVisible(ds, "jacket", "men's clothing"))
}

func TestComputeVisible_NoMatchIsEmptyNotNil(t *testing.T) {
	got := ComputeVisible(sampleDataset(), "no such thing", AllCategories)
	require.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestComputeVisible_MembershipRule(t *testing.T) {
	ds := sampleDataset()
	queries := []string{"", "a", "WOMEN", " hard ", "t-shirts", "zzz"}
	categories := []string{AllCategories, "men's clothing", "jewelery", "electronics", "women's clothing", "toys"}

	for _, q := range queries {
		for _, c := range categories {
			got := ComputeVisible(ds, q, c)

			var want []ProductID
			for _, p := range ds {
				titleOK := strings.Contains(strings.ToLower(p.Title), strings.ToLower(strings.TrimSpace(q)))
				catOK := c == AllCategories || p.Category == c
				if titleOK && catOK {
					want = append(want, p.ID)
				}
			}

			if len(want) == 0 {
				assert.Empty(t, got, "q=%q c=%q", q, c)
			} else {
				assert.Equal(t, want, ids(got), "q=%q c=%q", q, c)
			}

			assert.Equal(t, got, ComputeVisible(ds, q, c), "not idempotent: q=%q c=%q", q, c)
		}
	}
}

func TestComputeVisible_DoesNotMutateDataset(t *testing.T) {
	ds := sampleDataset()
	before := append([]Product(nil), ds...)

	got := ComputeVisible(ds, "women", AllCategories)
	require.NotEmpty(t, got)
	got[0].Title = "changed"

	assert.Equal(t, before, ds)
}

func TestFind(t *testing.T) {
	ds := sampleDataset()

	p, ok := Find(ds, "9")
	require.True(t, ok)
	assert.Equal(t, "WD 2TB Elements Portable Hard Drive", p.Title)

	_, ok = Find(ds, "404")
	assert.False(t, ok)

	_, ok = Find(ds, "")
	assert.False(t, ok)
}

func TestWithSentinel(t *testing.T) {
	assert.Equal(t, []string{"all"}, WithSentinel(nil))
	assert.Equal(t,
		[]string{"all", "electronics", "jewelery"},
		WithSentinel([]string{"electronics", "jewelery"}),
	)
	assert.Equal(t,
		[]string{"all", "electronics"},
		WithSentinel([]string{"electronics", "all"}),
	)
}

func TestFailedState(t *testing.T) {
	s := Failed(assert.AnError)

	assert.False(t, s.Loaded())
	assert.Empty(t, s.Products)
	assert.Equal(t, []string{AllCategories}, s.Categories)
	assert.Empty(t, s.Visible("", AllCategories))
}
