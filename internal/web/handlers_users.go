package web

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/syauqi/course-admin/internal/client"
	"github.com/syauqi/course-admin/internal/model"
)

func (s *Server) DataUser(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r)

	var flash string
	users, err := s.api.ListUsers(r.Context())
	if err != nil {
		log.Printf("fetch users: %v", err)
		flash = "Failed to load data"
	}
	if queryErr := r.URL.Query().Get("error"); queryErr != "" {
		flash = queryErr
	}

	data := map[string]interface{}{
		"Claims":       claims,
		"IsInstructor": claims.IsInstructor(),
		"Users":        users,
		"Roles":        []model.Role{model.RoleInstructor, model.RoleStudent},
		"Error":        flash,
		"Message":      r.URL.Query().Get("message"),
	}
	s.render(w, "datauser.html", data)
}

func (s *Server) AddUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	payload := userPayloadFromForm(r)
	if payload.Name == "" || payload.Email == "" || payload.Password == "" {
		http.Redirect(w, r, "/datauser?error=Name%2C+email+and+password+are+required", http.StatusSeeOther)
		return
	}

	if _, err := s.api.CreateUser(r.Context(), payload); err != nil {
		log.Printf("add user: %v", err)
		http.Redirect(w, r, "/datauser?error=Failed+to+add+user", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/datauser?message=User+added+successfully", http.StatusSeeOther)
}

func (s *Server) EditUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Redirect(w, r, "/datauser?error=Invalid+user+id", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	// The payload type carries no identifier or timestamps, so server-managed
	// fields never reach the wire on update.
	payload := userPayloadFromForm(r)

	if _, err := s.api.UpdateUser(r.Context(), id, payload); err != nil {
		log.Printf("update user %s: %v", id, err)
		http.Redirect(w, r, "/datauser?error=Failed+to+update+user", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/datauser?message=User+updated+successfully", http.StatusSeeOther)
}

func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Redirect(w, r, "/datauser?error=Invalid+user+id", http.StatusSeeOther)
		return
	}

	if err := s.api.DeleteUser(r.Context(), id); err != nil {
		log.Printf("delete user %s: %v", id, err)
		http.Redirect(w, r, "/datauser?error=Failed+to+delete+user", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/datauser?message=User+deleted+successfully", http.StatusSeeOther)
}

func userPayloadFromForm(r *http.Request) client.UserPayload {
	return client.UserPayload{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		Role:     model.Role(r.FormValue("role")),
	}
}
