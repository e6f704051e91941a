package store

import (
	"context"
	"errors"

	"todoapi/internal/models"
)

// ErrNotFound is returned when no todo exists with the requested id.
// The route layer translates it to a 404; any other store error is
// treated as unexpected.
var ErrNotFound = errors.New("todo not found")

// Store defines the interface for data persistence operations.
type Store interface {
	// Todo operations
	ListTodos(ctx context.Context) ([]models.Todo, error)
	GetTodo(ctx context.Context, id int64) (*models.Todo, error)
	CreateTodo(ctx context.Context, todo *models.Todo) error
	UpdateTodo(ctx context.Context, todo *models.Todo) error
	DeleteTodo(ctx context.Context, id int64) error

	// Ping reports whether the underlying database is reachable.
	Ping(ctx context.Context) error

	// Lifecycle
	Close() error
}
