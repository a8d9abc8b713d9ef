package browser

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"CatalogBrowser/internal/catalog"
	"CatalogBrowser/internal/overlay"
	"CatalogBrowser/internal/render"
	"CatalogBrowser/internal/session"
	"CatalogBrowser/pkg/kit"
)

const maxEventBody = 4 << 10

type Server struct {
	State    catalog.State
	Renderer *render.Renderer
	Sessions *session.Manager
	Locale   render.Locale
	Log      *zap.Logger
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if !s.State.Loaded() {
		kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog not loaded", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) stylesheet(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write([]byte(render.Stylesheet()))
}

func (s *Server) script(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = w.Write([]byte(render.Script()))
}

func (s *Server) locale(r *http.Request) render.Locale {
	return render.MatchLocale(r.Header.Get("Accept-Language"), s.Locale)
}

type filterParams struct {
	Query    string
	Category string
}

func readFilter(r *http.Request) filterParams {
	q := r.URL.Query()
	category := q.Get("category")
	if category == "" {
		category = catalog.AllCategories
	}
	return filterParams{Query: q.Get("q"), Category: category}
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	f := readFilter(r)

	data := render.PageData{
		Locale:     s.locale(r),
		Query:      f.Query,
		Category:   f.Category,
		Categories: s.State.Categories,
		Failed:     !s.State.Loaded(),
	}
	if !data.Failed {
		data.Products = s.State.Visible(f.Query, f.Category)
	}
	if sess, ok := session.FromContext(r.Context()); ok {
		sess.With(func(o *overlay.Overlay) { data.Overlay = o.View() })
	}

	var buf bytes.Buffer
	if err := s.Renderer.Page(&buf, data); err != nil {
		s.renderFailed(w, "page", err)
		return
	}
	kit.WriteHTML(w, http.StatusOK, buf.Bytes())
}

// grid re-runs the filter for the current inputs and returns the fragment
// that replaces the grid content.
func (s *Server) grid(w http.ResponseWriter, r *http.Request) {
	loc := s.locale(r)

	var (
		buf bytes.Buffer
		err error
	)
	if s.State.Loaded() {
		f := readFilter(r)
		err = s.Renderer.Grid(&buf, s.State.Visible(f.Query, f.Category), loc)
	} else {
		err = s.Renderer.Failure(&buf, loc)
	}
	if err != nil {
		s.renderFailed(w, "grid", err)
		return
	}
	kit.WriteHTML(w, http.StatusOK, buf.Bytes())
}

func (s *Server) renderFailed(w http.ResponseWriter, what string, err error) {
	if s.Log != nil {
		s.Log.Error("render failed", zap.String("template", what), zap.Error(err))
	}
	http.Error(w, "server error", http.StatusInternalServerError)
}

// overlayView reports the visitor's overlay. Without a session it is closed.
func (s *Server) overlayView(w http.ResponseWriter, r *http.Request) {
	var v overlay.View
	if sess, ok := session.FromContext(r.Context()); ok {
		sess.With(func(o *overlay.Overlay) { v = o.View() })
	}
	kit.WriteJSON(w, http.StatusOK, v)
}

func (s *Server) overlayEvent(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusInternalServerError, "no session", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxEventBody)

	var ev overlay.Event
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	var (
		v   overlay.View
		err error
	)
	sess.With(func(o *overlay.Overlay) {
		_, err = o.Dispatch(ev, s.State.Find)
		v = o.View()
	})
	if errors.Is(err, overlay.ErrUnknownEvent) {
		kit.WriteError(w, r, http.StatusBadRequest, "unknown event", map[string]any{"type": ev.Kind})
		return
	}
	if err != nil {
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, v)
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	if !s.State.Loaded() {
		kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog not loaded", nil)
		return
	}
	f := readFilter(r)
	kit.WriteJSON(w, http.StatusOK, s.State.Visible(f.Query, f.Category))
}

func (s *Server) apiCategories(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, render.CategoryOptions(s.State.Categories, "", s.locale(r)))
}
