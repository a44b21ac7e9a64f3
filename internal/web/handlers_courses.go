package web

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/syauqi/course-admin/internal/client"
	"github.com/syauqi/course-admin/internal/console"
	"github.com/syauqi/course-admin/internal/model"
)

// navigate drives a list controller from the request's query parameters and
// reports whether the fetch succeeded. On failure the controller keeps its
// prior state and the page renders with a notice.
func navigate(r *http.Request, lister *console.Lister[model.Course]) error {
	ctx := r.Context()

	switch r.URL.Query().Get("nav") {
	case "next":
		return lister.Next(ctx)
	case "prev":
		return lister.Prev(ctx)
	}

	if p := r.URL.Query().Get("page"); p != "" {
		page, err := strconv.Atoi(p)
		if err == nil {
			return lister.Goto(ctx, page)
		}
	}

	return lister.Load(ctx)
}

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r)
	lister := s.viewsFor(r).courses

	flash := flashMessage(r)
	if err := navigate(r, lister); err != nil {
		log.Printf("fetch courses: %v", err)
		flash = "Failed to load courses"
	}

	courses, page, totalPages := lister.Snapshot()

	data := map[string]interface{}{
		"Claims":       claims,
		"IsInstructor": claims.IsInstructor(),
		"Courses":      courses,
		"Page":         page,
		"TotalPages":   totalPages,
		"HasNext":      page < totalPages,
		"HasPrev":      page > 1,
		"Error":        flash,
	}
	s.render(w, "dashboard.html", data)
}

func (s *Server) DataKursus(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r)
	lister := s.viewsFor(r).catalog

	flash := flashMessage(r)
	if err := navigate(r, lister); err != nil {
		log.Printf("fetch courses: %v", err)
		flash = "Failed to load courses data"
	}

	courses, page, totalPages := lister.Snapshot()

	data := map[string]interface{}{
		"Claims":       claims,
		"IsInstructor": claims.IsInstructor(),
		"Courses":      courses,
		"Page":         page,
		"TotalPages":   totalPages,
		"HasNext":      page < totalPages,
		"HasPrev":      page > 1,
		"Error":        flash,
		"Message":      r.URL.Query().Get("message"),
	}
	s.render(w, "datakursus.html", data)
}

func (s *Server) AddCourse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	payload := client.CoursePayload{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}
	if payload.Title == "" {
		http.Redirect(w, r, "/datakursus?error=Title+is+required", http.StatusSeeOther)
		return
	}

	if _, err := s.api.CreateCourse(r.Context(), payload); err != nil {
		log.Printf("add course: %v", err)
		http.Redirect(w, r, "/datakursus?error=Failed+to+add+course", http.StatusSeeOther)
		return
	}

	// Redirecting back to the list refetches the current page, so the view
	// reflects server state rather than an optimistic local insert.
	http.Redirect(w, r, "/datakursus?message=Course+added+successfully", http.StatusSeeOther)
}

func (s *Server) EditCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Redirect(w, r, "/datakursus?error=Invalid+course+id", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	payload := client.CoursePayload{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}

	if _, err := s.api.UpdateCourse(r.Context(), id, payload); err != nil {
		log.Printf("update course %s: %v", id, err)
		http.Redirect(w, r, "/datakursus?error=Failed+to+update+course", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/datakursus?message=Course+updated+successfully", http.StatusSeeOther)
}

func (s *Server) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Redirect(w, r, "/datakursus?error=Invalid+course+id", http.StatusSeeOther)
		return
	}

	if err := s.api.DeleteCourse(r.Context(), id); err != nil {
		log.Printf("delete course %s: %v", id, err)
		http.Redirect(w, r, "/datakursus?error=Failed+to+delete+course", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/datakursus?message=Course+deleted+successfully", http.StatusSeeOther)
}

func flashMessage(r *http.Request) string {
	return r.URL.Query().Get("error")
}
