package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CatalogBrowser/internal/catalog"
	"CatalogBrowser/internal/overlay"
)

func shirt() catalog.Product {
	return catalog.Product{
		ID:          "7",
		Title:       "Shirt",
		Price:       19.99,
		Description: "Cotton",
		Image:       "x.png",
		Category:    "men's clothing",
		Rating:      catalog.Rating{Rate: 4.1, Count: 50},
	}
}

func renderGrid(t *testing.T, products []catalog.Product, loc Locale) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, MustNew().Grid(&buf, products, loc))
	return buf.String()
}

func TestGrid_Empty(t *testing.T) {
	out := renderGrid(t, nil, English())

	assert.Contains(t, out, "No matching products.")
	assert.NotContains(t, out, "data-id")
	assert.Equal(t, 1, strings.Count(out, "<p"))
}

func TestGrid_EmptyArabic(t *testing.T) {
	loc, err := ParseLocale("ar")
	require.NoError(t, err)

	out := renderGrid(t, []catalog.Product{}, loc)
	assert.Contains(t, out, "لا توجد منتجات مطابقة.")
}

func TestGrid_Card(t *testing.T) {
	out := renderGrid(t, []catalog.Product{shirt()}, English())

	assert.Contains(t, out, `data-id="7"`)
	assert.Contains(t, out, `src="x.png"`)
	assert.Contains(t, out, `alt="Shirt"`)
	assert.Contains(t, out, ">Shirt</h3>")
	assert.Contains(t, out, "$19.99")
	assert.Contains(t, out, "4.1 (50)")
	assert.Contains(t, out, "men&#39;s clothing")
	assert.NotContains(t, out, "No matching products.")
}

func TestGrid_OneCardPerProductInOrder(t *testing.T) {
	a, b, c := shirt(), shirt(), shirt()
	b.ID, c.ID = "8", "9"

	out := renderGrid(t, []catalog.Product{c, a, b}, English())

	assert.Equal(t, 3, strings.Count(out, "data-id="))
	i9 := strings.Index(out, `data-id="9"`)
	i7 := strings.Index(out, `data-id="7"`)
	i8 := strings.Index(out, `data-id="8"`)
	assert.True(t, i9 < i7 && i7 < i8, "cards out of order:\n%s", out)
}

func TestGrid_EscapesProductFields(t *testing.T) {
	p := catalog.Product{
		ID:          `1"><b>`,
		Title:       `<script>alert("x")</script>`,
		Category:    `tools & 'parts'`,
		Image:       `x.png" onerror="alert(1)`,
		Description: "<i>ignored</i>",
	}

	out := renderGrid(t, []catalog.Product{p}, English())

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>")
	assert.NotContains(t, out, `onerror="alert`)
	assert.NotContains(t, out, "'parts'")
	assert.Contains(t, out, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;")
	assert.Contains(t, out, "tools &amp; &#39;parts&#39;")
}

func TestGrid_UnsafeImageURL(t *testing.T) {
	p := shirt()
	p.Image = "javascript:alert(1)"

	out := renderGrid(t, []catalog.Product{p}, English())
	assert.NotContains(t, out, "javascript:")
}

func TestFailure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustNew().Failure(&buf, English()))

	assert.Contains(t, buf.String(), "An error occurred while loading the products.")
	assert.NotContains(t, buf.String(), "data-id")
}

func TestPage_CategoryOptions(t *testing.T) {
	var buf bytes.Buffer
	err := MustNew().Page(&buf, PageData{
		Locale:     English(),
		Query:      `"quoted"`,
		Category:   "men's clothing",
		Categories: []string{"all", "electronics", "men's clothing"},
		Products:   []catalog.Product{shirt()},
	})
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, `<option value="all">All Categories</option>`)
	assert.Contains(t, out, `<option value="electronics">Electronics</option>`)
	assert.Contains(t, out, `<option value="men&#39;s clothing" selected>Men&#39;s clothing</option>`)
	assert.Contains(t, out, `value="&#34;quoted&#34;"`)
	assert.Contains(t, out, `class="modal hidden"`)
	assert.Contains(t, out, `data-id="7"`)
	assert.Contains(t, out, `dir="ltr"`)
}

func TestPage_OpenOverlay(t *testing.T) {
	var o overlay.Overlay
	o.Show(shirt())

	var buf bytes.Buffer
	err := MustNew().Page(&buf, PageData{
		Locale:     English(),
		Categories: []string{"all"},
		Products:   []catalog.Product{shirt()},
		Overlay:    o.View(),
	})
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, `class="modal"`)
	assert.Contains(t, out, `<img id="modalImage" src="x.png"`)
	assert.Contains(t, out, `<h2 id="modalTitle">Shirt</h2>`)
	assert.Contains(t, out, `<p id="modalPrice">$19.99</p>`)
	assert.Contains(t, out, `<p id="modalDescription">Cotton</p>`)
}

func TestPage_Failed(t *testing.T) {
	loc, err := ParseLocale("ar")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, MustNew().Page(&buf, PageData{
		Locale:     loc,
		Categories: []string{"all"},
		Failed:     true,
	}))
	out := buf.String()

	assert.Contains(t, out, "حدث خطأ أثناء تحميل المنتجات.")
	assert.NotContains(t, out, "لا توجد منتجات مطابقة.")
	assert.Contains(t, out, `dir="rtl"`)
	assert.Contains(t, out, "جميع الفئات")
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Men's clothing", Capitalize("men's clothing"))
	assert.Equal(t, "Électronique", Capitalize("électronique"))
	assert.Equal(t, "Jewelery", Capitalize("Jewelery"))
}

func TestMatchLocale(t *testing.T) {
	en := English()

	assert.Equal(t, "ar", MatchLocale("ar-EG,ar;q=0.9,en;q=0.5", en).Lang())
	assert.Equal(t, "en", MatchLocale("en-US", en).Lang())
	assert.Equal(t, "en", MatchLocale("", en).Lang())

	ar, err := ParseLocale("ar")
	require.NoError(t, err)
	assert.Equal(t, "ar", MatchLocale("", ar).Lang())
}

func TestParseLocale_Invalid(t *testing.T) {
	_, err := ParseLocale("not a locale!")
	assert.Error(t, err)
}

func TestScript_AppliesOnlyLatestResponses(t *testing.T) {
	js := Script()

	assert.Contains(t, js, "gridAbort.abort()")
	assert.Contains(t, js, "if (seq === gridSeq) grid.innerHTML = html;")
	assert.Contains(t, js, "pending = pending")
	assert.Contains(t, js, "if (v && seq === eventSeq) paint(v);")
}
