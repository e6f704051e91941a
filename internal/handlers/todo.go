package handlers

import (
	"errors"
	"net/http"

	"todoapi/internal/models"
	"todoapi/internal/store"
)

// todoList is the response envelope for the list endpoint.
type todoList struct {
	Todos []models.Todo `json:"todos"`
}

// ListTodos returns every todo, most recently created first.
func (h *Handlers) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.store.ListTodos(r.Context())
	if err != nil {
		respondServerError(w, "Failed to fetch todos", err)
		return
	}

	if todos == nil {
		todos = []models.Todo{}
	}

	respondJSON(w, http.StatusOK, todoList{Todos: todos})
}

// CreateTodo validates the payload and inserts a new todo.
func (h *Handlers) CreateTodo(w http.ResponseWriter, r *http.Request) {
	cmd, err := parseCreateTodo(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	todo := &models.Todo{
		Title:     cmd.Title,
		Completed: cmd.Completed,
	}

	if err := h.store.CreateTodo(r.Context(), todo); err != nil {
		respondServerError(w, "Failed to create todo", err)
		return
	}

	respondJSON(w, http.StatusCreated, todo)
}

// UpdateTodo applies a partial update to an existing todo. Unsupplied
// fields keep their stored values.
func (h *Handlers) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid todo id")
		return
	}

	cmd, err := parseUpdateTodo(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	todo := h.resolveTodo(w, r, id)
	if todo == nil {
		return
	}

	if cmd.Title != nil {
		todo.Title = *cmd.Title
	}
	if cmd.Completed != nil {
		todo.Completed = *cmd.Completed
	}

	// A row deleted between the resolve and this write surfaces as
	// store.ErrNotFound here; either way the mutation did not apply.
	if err := h.store.UpdateTodo(r.Context(), todo); err != nil {
		respondServerError(w, "Failed to update todo", err)
		return
	}

	respondJSON(w, http.StatusOK, todo)
}

// DeleteTodo removes an existing todo.
func (h *Handlers) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid todo id")
		return
	}

	todo := h.resolveTodo(w, r, id)
	if todo == nil {
		return
	}

	if err := h.store.DeleteTodo(r.Context(), todo.ID); err != nil {
		respondServerError(w, "Failed to delete todo", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// resolveTodo looks up the target of an id-scoped operation before any
// mutation runs. A missing todo is reported as a 404 and nil is returned;
// the caller must stop.
func (h *Handlers) resolveTodo(w http.ResponseWriter, r *http.Request, id int64) *models.Todo {
	todo, err := h.store.GetTodo(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Todo not found")
		} else {
			respondServerError(w, "Failed to fetch todo", err)
		}
		return nil
	}
	return todo
}
