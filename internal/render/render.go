// Package render turns catalog data into HTML. Every product field goes
// through html/template's contextual escaping.
package render

import (
	"html/template"
	"io"
	"unicode"
	"unicode/utf8"

	"CatalogBrowser/internal/catalog"
	"CatalogBrowser/internal/overlay"
)

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	t := template.New("browser").Funcs(template.FuncMap{
		"price": catalog.FormatPrice,
		"rate":  catalog.FormatRate,
	})
	for _, src := range []string{cardTemplate, gridTemplate, failureTemplate, pageTemplate} {
		if _, err := t.Parse(src); err != nil {
			return nil, err
		}
	}
	return &Renderer{tmpl: t}, nil
}

// MustNew is New for package-level setup and tests.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

type gridData struct {
	Locale   Locale
	Products []catalog.Product
}

// Grid writes one card per product, or the "no matching products" message
// when products is empty.
func (r *Renderer) Grid(w io.Writer, products []catalog.Product, loc Locale) error {
	return r.tmpl.ExecuteTemplate(w, "grid", gridData{Locale: loc, Products: products})
}

// Failure writes the static message shown in place of the grid when the
// catalog could not be loaded.
func (r *Renderer) Failure(w io.Writer, loc Locale) error {
	return r.tmpl.ExecuteTemplate(w, "failure", gridData{Locale: loc})
}

type PageData struct {
	Locale     Locale
	Query      string
	Category   string
	Categories []string
	Products   []catalog.Product
	Failed     bool
	Overlay    overlay.View
}

type CategoryOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"-"`
}

type pageView struct {
	PageData
	Options []CategoryOption
}

func (r *Renderer) Page(w io.Writer, d PageData) error {
	return r.tmpl.ExecuteTemplate(w, "page", pageView{
		PageData: d,
		Options:  CategoryOptions(d.Categories, d.Category, d.Locale),
	})
}

// CategoryOptions builds the select options: the sentinel reads
// "All Categories", other labels get their first letter upper-cased.
func CategoryOptions(categories []string, selected string, loc Locale) []CategoryOption {
	if selected == "" {
		selected = catalog.AllCategories
	}
	out := make([]CategoryOption, 0, len(categories))
	for _, c := range categories {
		label := Capitalize(c)
		if c == catalog.AllCategories {
			label = loc.T(msgAllCategories)
		}
		out = append(out, CategoryOption{Value: c, Label: label, Selected: c == selected})
	}
	return out
}

func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func Stylesheet() string { return stylesheet }

func Script() string { return script }
