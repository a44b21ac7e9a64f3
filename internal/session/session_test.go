package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func requestWithCookies(target string, w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := m.SetToken(w, r, "h.p.s"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	next := requestWithCookies("/dashboard", w)
	tok, ok := m.Token(next)
	if !ok || tok != "h.p.s" {
		t.Fatalf("Token() = %q, %v; want h.p.s, true", tok, ok)
	}
	if !m.Authenticated(next) {
		t.Error("Authenticated() = false after SetToken")
	}
}

func TestTokenAbsent(t *testing.T) {
	m := NewManager("test-secret")

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if _, ok := m.Token(r); ok {
		t.Error("Token() reported a token on a bare request")
	}
	if m.Authenticated(r) {
		t.Error("Authenticated() = true on a bare request")
	}
}

func TestTamperedCookieTreatedAsAbsent(t *testing.T) {
	m := NewManager("test-secret")

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: "course-admin", Value: "garbage"})

	if _, ok := m.Token(r); ok {
		t.Error("Token() accepted a cookie that fails to decode")
	}
}

func TestSetTokenMintsFreshViewID(t *testing.T) {
	m := NewManager("test-secret")

	mint := func() string {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		if err := m.SetToken(w, r, "h.p.s"); err != nil {
			t.Fatalf("SetToken: %v", err)
		}
		id, ok := m.ViewID(requestWithCookies("/dashboard", w))
		if !ok || id == "" {
			t.Fatal("ViewID missing after SetToken")
		}
		return id
	}

	// same token, separate logins: each session gets its own view id
	if first, second := mint(), mint(); first == second {
		t.Errorf("two logins share view id %q", first)
	}
}

func TestClearDropsViewID(t *testing.T) {
	m := NewManager("test-secret")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := m.SetToken(w, r, "h.p.s"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	authed := requestWithCookies("/logout", w)
	cleared := httptest.NewRecorder()
	if err := m.Clear(cleared, authed); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	after := requestWithCookies("/dashboard", cleared)
	if _, ok := m.ViewID(after); ok {
		t.Error("ViewID survived Clear")
	}
}

func TestClear(t *testing.T) {
	m := NewManager("test-secret")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := m.SetToken(w, r, "h.p.s"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	authed := requestWithCookies("/logout", w)
	cleared := httptest.NewRecorder()
	if err := m.Clear(cleared, authed); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	after := requestWithCookies("/dashboard", cleared)
	if m.Authenticated(after) {
		t.Error("Authenticated() = true after Clear")
	}
}
