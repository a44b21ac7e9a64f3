package web

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/syauqi/course-admin/internal/client"
)

func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	if s.sessions.Authenticated(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := map[string]interface{}{
		"Error":   "",
		"Message": r.URL.Query().Get("message"),
		"Email":   "",
	}
	s.render(w, "login.html", data)
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		s.render(w, "login.html", map[string]interface{}{
			"Error": "Email and password are required",
			"Email": email,
		})
		return
	}

	tok, err := s.api.Login(r.Context(), email, password)
	if err != nil {
		log.Printf("login failed for %s: %v", email, err)

		message := "An error occurred. Please try again later."
		var apiErr *client.APIError
		if errors.Is(err, client.ErrInvalidCredentials) {
			message = "Invalid email or password"
		} else if errors.As(err, &apiErr) && apiErr.Message != "" {
			message = apiErr.Message
		}
		s.render(w, "login.html", map[string]interface{}{
			"Error": message,
			"Email": email,
		})
		return
	}

	if err := s.sessions.SetToken(w, r, tok); err != nil {
		log.Printf("save session for %s: %v", email, err)
		http.Error(w, "Error saving session", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) RegisterPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Error": "",
	}
	s.render(w, "register.html", data)
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if name == "" || email == "" || password == "" {
		s.render(w, "register.html", map[string]interface{}{
			"Error": "Name, email and password are required",
		})
		return
	}

	if err := s.api.Register(r.Context(), name, email, password); err != nil {
		log.Printf("registration failed for %s: %v", email, err)
		s.render(w, "register.html", map[string]interface{}{
			"Error": "Registration failed. Please try again.",
		})
		return
	}

	http.Redirect(w, r, "/login?message=You+can+now+login+with+your+account", http.StatusSeeOther)
}

// Logout invalidates the server-side session for the identity in the token's
// claims, then drops the local token. When the claims did not decode there is
// no identity to send upstream, so only the local session is cleared.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r)

	if claims != nil && claims.UUIDUser != "" {
		if err := s.api.Logout(r.Context(), claims.UUIDUser); err != nil {
			log.Printf("logout for %s: %v", claims.UUIDUser, err)
			http.Redirect(w, r, "/dashboard?error=logout_failed", http.StatusSeeOther)
			return
		}
	}

	s.dropViews(r)
	if err := s.sessions.Clear(w, r); err != nil {
		log.Printf("clear session: %v", err)
	}

	http.Redirect(w, r, "/login?message=You+have+been+logged+out", http.StatusSeeOther)
}
