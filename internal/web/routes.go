package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/syauqi/course-admin/internal/client"
	"github.com/syauqi/course-admin/internal/config"
	"github.com/syauqi/course-admin/internal/session"
)

func SetupRoutes(cfg *config.Config, api *client.Client, sessions *session.Manager) http.Handler {
	r := chi.NewRouter()

	// The console is a same-origin cookie app; only its own origin may make
	// credentialed requests. No wildcard: browsers reject * with credentials.
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r.Use(corsMiddleware.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(2 * time.Minute))

	s := NewServer(cfg, api, sessions)

	r.Get("/health", s.Health)

	// public routes
	r.Get("/", s.LoginPage)
	r.Get("/login", s.LoginPage)
	r.Post("/login", s.Login)
	r.Get("/register", s.RegisterPage)
	r.Post("/register", s.Register)

	// protected routes: every data-management view goes through the same
	// session guard as the dashboard
	r.Group(func(r chi.Router) {
		r.Use(s.RequireSession)

		r.Get("/dashboard", s.Dashboard)
		r.Post("/logout", s.Logout)

		r.Get("/datauser", s.DataUser)
		r.Post("/datauser/add", s.AddUser)
		r.Post("/datauser/{id}/edit", s.EditUser)
		r.Post("/datauser/{id}/delete", s.DeleteUser)

		r.Get("/datakursus", s.DataKursus)
		r.Post("/datakursus/add", s.AddCourse)
		r.Post("/datakursus/{id}/edit", s.EditCourse)
		r.Post("/datakursus/{id}/delete", s.DeleteCourse)
	})

	return r
}
