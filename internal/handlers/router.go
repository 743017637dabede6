package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the full route table onto a chi router.
func NewRouter(h *Handler, staticDir string) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// registered before the subrouters so they inherit both handlers;
	// a matched path with the wrong verb falls through to the same tail
	router.NotFound(notFoundHandler(staticDir))
	router.MethodNotAllowed(notFoundHandler(staticDir))

	router.Get("/check", Health)
	router.Get("/api/info", Info)
	router.Get("/api/check-auth", h.CheckAuth)

	router.Post("/register", h.Register)
	router.Post("/login", h.Login)
	router.Post("/logout", h.Logout)

	router.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Get("/profile", h.Profile)
	})

	router.Route("/api/tasks", func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)
		r.Get("/{id}", h.GetTask)
		r.Put("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
	})

	router.Route("/api/projects", func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Get("/", h.ListProjects)
		r.Post("/", h.CreateProject)
		r.Delete("/{id}", h.DeleteProject)
	})

	router.Route("/api/admin", func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Use(h.AdminOnly)
		r.Get("/users", h.ListUsers)
		r.Get("/users/{userID}", h.GetUserProfile)
	})

	return router
}

func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func Info(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"project":     "Task Manager",
		"description": "Session-authenticated task and project management backend",
		"author":      "Askar, Bexultan, Aruzhan",
	})
}

// notFoundHandler keeps the API/HTML split: unmatched /api routes answer
// JSON, everything else is served from the static dir or a 404 page.
func notFoundHandler(staticDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(staticDir))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") {
			respondError(w, http.StatusNotFound, "Route not found")
			return
		}

		if r.Method == http.MethodGet && staticFileExists(staticDir, r.URL.Path) {
			fileServer.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("<h1>404 - Page Not Found</h1><p>The page you are looking for does not exist.</p><a href=\"/\">Go back to Home</a>"))
	}
}

func staticFileExists(staticDir, urlPath string) bool {
	cleaned := filepath.Clean("/" + urlPath)
	target := filepath.Join(staticDir, cleaned)
	if cleaned == "/" {
		target = filepath.Join(staticDir, "index.html")
	}
	info, err := os.Stat(target)
	return err == nil && !info.IsDir()
}
