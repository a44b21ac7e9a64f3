package session

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "course-admin"
	tokenKey    = "authToken"
	viewKey     = "viewID"
)

// Manager owns the single client-side credential: the bearer token issued by
// the API on login, persisted in a cookie session under a fixed key. There is
// no expiry handling and no cross-tab invalidation.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	key := []byte(secret)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store}
}

// Token returns the stored bearer token, if any. A cookie that fails to
// decode is treated the same as no cookie at all.
func (m *Manager) Token(r *http.Request) (string, bool) {
	session, _ := m.store.Get(r, sessionName)

	token, ok := session.Values[tokenKey].(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func (m *Manager) Authenticated(r *http.Request) bool {
	_, ok := m.Token(r)
	return ok
}

// SetToken stores the bearer token and mints a fresh view id for the session.
// The view id is what server-side per-session state (the list controllers) is
// keyed by, so two browsers holding the same token never share view state.
func (m *Manager) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[tokenKey] = token
	session.Values[viewKey] = uuid.NewString()
	return session.Save(r, w)
}

// ViewID returns the session's view-state identifier.
func (m *Manager) ViewID(r *http.Request) (string, bool) {
	session, _ := m.store.Get(r, sessionName)

	id, ok := session.Values[viewKey].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	delete(session.Values, tokenKey)
	delete(session.Values, viewKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
