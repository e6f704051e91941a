package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"todoapi/internal/store"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	store store.Store
}

// New creates a new Handlers instance.
func New(s store.Store) *Handlers {
	return &Handlers{store: s}
}

// Routes assembles the API router.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", h.Health)

	r.Get("/todos", h.ListTodos)
	r.Post("/todos", h.CreateTodo)
	r.Put("/todos/{id}", h.UpdateTodo)
	r.Delete("/todos/{id}", h.DeleteTodo)

	return r
}

// parseID extracts a positive integer ID from URL parameters.
func parseID(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// respondError sends a uniform {"error": message} body.
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}

// respondServerError logs the underlying cause and sends a generic 500.
// The cause is never leaked to the client.
func respondServerError(w http.ResponseWriter, message string, err error) {
	log.Printf("internal server error: %v", err)
	respondError(w, http.StatusInternalServerError, message)
}
