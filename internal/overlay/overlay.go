// Package overlay holds the product detail overlay: a single modal that is
// either closed or open on exactly one product.
package overlay

import (
	"errors"
	"fmt"

	"CatalogBrowser/internal/catalog"
)

var ErrUnknownEvent = errors.New("unknown overlay event")

type Kind string

const (
	KindCardClick     Kind = "card_click"
	KindClose         Kind = "close"
	KindBackdropClick Kind = "backdrop_click"
	KindKeyDown       Kind = "keydown"
)

// Click targets reported with KindBackdropClick.
const (
	TargetBackdrop = "backdrop"
	TargetPanel    = "panel"
)

const KeyEscape = "Escape"

type Event struct {
	Kind      Kind   `json:"type"`
	ProductID string `json:"id,omitempty"`
	Target    string `json:"target,omitempty"`
	Key       string `json:"key,omitempty"`
}

// Fields are the overlay display slots.
type Fields struct {
	Image       string `json:"image"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

type View struct {
	Open bool `json:"open"`
	Fields
}

// Lookup resolves a card identifier against the dataset.
type Lookup func(id string) (catalog.Product, bool)

// Overlay is not safe for concurrent use; callers serialize access.
type Overlay struct {
	selected *catalog.Product
	fields   Fields
}

func (o *Overlay) IsOpen() bool { return o.selected != nil }

func (o *Overlay) Selected() (catalog.Product, bool) {
	if o.selected == nil {
		return catalog.Product{}, false
	}
	return *o.selected, true
}

func (o *Overlay) View() View {
	return View{Open: o.IsOpen(), Fields: o.fields}
}

// Show opens the overlay on p, replacing whatever was shown before.
func (o *Overlay) Show(p catalog.Product) {
	o.fields = Fields{
		Image:       p.Image,
		Title:       p.Title,
		Price:       catalog.FormatPrice(p.Price),
		Description: p.Description,
	}
	o.selected = &p
}

// Close clears every display slot before hiding.
func (o *Overlay) Close() {
	o.fields = Fields{}
	o.selected = nil
}

// Dispatch applies one UI event and reports whether the view changed.
// Card clicks that do not resolve to a product are ignored.
func (o *Overlay) Dispatch(ev Event, lookup Lookup) (bool, error) {
	switch ev.Kind {
	case KindCardClick:
		p, ok := lookup(ev.ProductID)
		if !ok {
			return false, nil
		}
		o.Show(p)
		return true, nil

	case KindClose:
		return o.closeIfOpen(), nil

	case KindBackdropClick:
		if ev.Target != TargetBackdrop {
			return false, nil
		}
		return o.closeIfOpen(), nil

	case KindKeyDown:
		if ev.Key != KeyEscape {
			return false, nil
		}
		return o.closeIfOpen(), nil

	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}
}

func (o *Overlay) closeIfOpen() bool {
	if !o.IsOpen() {
		return false
	}
	o.Close()
	return true
}
