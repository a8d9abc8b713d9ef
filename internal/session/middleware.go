package session

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const CookieName = "catalog_session"

type ctxKey struct{}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok
}

type Manager struct {
	Store  *MemStore
	Tokens *TokenMaker
	TTL    time.Duration
	Secure bool
	Log    *zap.Logger
}

// Resume attaches the visitor's session when the cookie names a live one.
// It never starts a session, so read-only pages leave the store untouched.
func (m *Manager) Resume(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := m.resume(w, r); ok {
			r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, sess))
		}
		next.ServeHTTP(w, r)
	})
}

// Middleware attaches the visitor's session to the request context, starting
// a new one when the cookie is missing, forged or expired.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := m.resume(w, r)
		if !ok {
			var err error
			sess, err = m.start(w)
			if err != nil {
				if m.Log != nil {
					m.Log.Error("session start failed", zap.Error(err))
				}
				http.Error(w, "server error", http.StatusInternalServerError)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sess)))
	})
}

// resume looks up the cookie's session. A token past half its lifetime is
// re-issued so the cookie keeps pace with the sliding store TTL.
func (m *Manager) resume(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	id, exp, err := m.Tokens.Parse(c.Value)
	if err != nil {
		return nil, false
	}
	sess, ok := m.Store.Get(id)
	if !ok {
		return nil, false
	}

	if time.Until(exp) < m.TTL/2 {
		if err := m.issue(w, sess.ID); err != nil && m.Log != nil {
			m.Log.Warn("session refresh failed", zap.Error(err))
		}
	}
	return sess, true
}

func (m *Manager) start(w http.ResponseWriter) (*Session, error) {
	sess := m.Store.Create()
	if err := m.issue(w, sess.ID); err != nil {
		return nil, err
	}
	return sess, nil
}

func (m *Manager) issue(w http.ResponseWriter, id string) error {
	tok, err := m.Tokens.New(id, m.TTL)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.TTL.Seconds()),
	})
	return nil
}
