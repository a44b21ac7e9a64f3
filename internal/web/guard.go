package web

import (
	"context"
	"log"
	"net/http"

	"github.com/syauqi/course-admin/internal/client"
	"github.com/syauqi/course-admin/internal/token"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// RequireSession gates a route on the presence of a session token. It performs
// no validity check: an expired or forged token passes the guard, the API
// server is the one that rejects it. Unauthenticated navigation is redirected
// to the login view.
func (s *Server) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, ok := s.sessions.Token(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := client.WithToken(r.Context(), tok)

		// Claims are best effort: a payload that fails to decode is logged and
		// the view falls back to the unauthenticated defaults. The session is
		// not revoked over it.
		claims, err := token.Decode(tok)
		if err != nil {
			log.Printf("decode session token: %v", err)
		} else {
			ctx = context.WithValue(ctx, claimsContextKey, claims)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the decoded claims for the request, or nil when
// the token did not decode.
func ClaimsFromContext(r *http.Request) *token.Claims {
	claims, _ := r.Context().Value(claimsContextKey).(*token.Claims)
	return claims
}
