package web

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"sync"

	"github.com/syauqi/course-admin/internal/client"
	"github.com/syauqi/course-admin/internal/config"
	"github.com/syauqi/course-admin/internal/console"
	"github.com/syauqi/course-admin/internal/model"
	"github.com/syauqi/course-admin/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// sessionViews holds the list controllers owned by one browser session. The
// dashboard and the management view paginate independently.
type sessionViews struct {
	courses *console.Lister[model.Course]
	catalog *console.Lister[model.Course]
}

// Server wires the console's handlers to the resource client and the session
// manager. List state is per session, never shared across users: controllers
// live in a registry keyed by the view id minted at login and are dropped on
// logout.
type Server struct {
	api      *client.Client
	sessions *session.Manager
	tmpl     *template.Template

	limit        int
	fetchCourses console.FetchFunc[model.Course]

	mu    sync.Mutex
	views map[string]*sessionViews
}

func NewServer(cfg *config.Config, api *client.Client, sessions *session.Manager) *Server {
	limit := cfg.PageLimit
	if limit < 1 {
		limit = 5
	}

	return &Server{
		api:      api,
		sessions: sessions,
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
		limit:    limit,
		fetchCourses: func(ctx context.Context, page, limit int) (model.Page[model.Course], error) {
			return api.ListCourses(ctx, page, limit)
		},
		views: make(map[string]*sessionViews),
	}
}

// viewKey identifies the session owning the request's view state. Sessions
// created before view ids existed fall back to the token itself.
func (s *Server) viewKey(r *http.Request) string {
	if id, ok := s.sessions.ViewID(r); ok {
		return id
	}
	tok, _ := s.sessions.Token(r)
	return tok
}

// viewsFor returns the request's session-owned controllers, creating them on
// first use.
func (s *Server) viewsFor(r *http.Request) *sessionViews {
	key := s.viewKey(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.views[key]
	if !ok {
		v = &sessionViews{
			courses: console.NewLister(s.fetchCourses, s.limit),
			catalog: console.NewLister(s.fetchCourses, s.limit),
		}
		s.views[key] = v
	}
	return v
}

// dropViews forgets a session's view state. Called on logout so a later login
// starts from page 1 again.
func (s *Server) dropViews(r *http.Request) {
	key := s.viewKey(r)

	s.mu.Lock()
	delete(s.views, key)
	s.mu.Unlock()
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}

// Health reports whether the console itself is up. It says nothing about the
// upstream course API.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "online",
		"message": "Console is working correctly",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Error on encoding response", http.StatusInternalServerError)
	}
}
