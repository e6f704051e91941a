package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"todoapi/internal/models"
)

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store with the given database path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping runs a trivial query to verify the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// CreateTodo inserts a new todo and assigns its id and timestamps.
func (s *SQLiteStore) CreateTodo(ctx context.Context, todo *models.Todo) error {
	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (title, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, todo.Title, todo.Completed, now, now)
	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	todo.ID = id

	return nil
}

// GetTodo retrieves a todo by ID.
func (s *SQLiteStore) GetTodo(ctx context.Context, id int64) (*models.Todo, error) {
	todo := &models.Todo{}

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, completed, created_at, updated_at
		FROM todos WHERE id = ?
	`, id).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

// ListTodos retrieves all todos, most recently created first.
func (s *SQLiteStore) ListTodos(ctx context.Context) ([]models.Todo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, completed, created_at, updated_at
		FROM todos ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var todo models.Todo

		err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Completed,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}

		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

// UpdateTodo writes the todo's title and completed flag and refreshes
// updated_at. Returns ErrNotFound if the row no longer exists.
func (s *SQLiteStore) UpdateTodo(ctx context.Context, todo *models.Todo) error {
	todo.UpdatedAt = time.Now()

	result, err := s.db.ExecContext(ctx, `
		UPDATE todos
		SET title = ?, completed = ?, updated_at = ?
		WHERE id = ?
	`, todo.Title, todo.Completed, todo.UpdatedAt, todo.ID)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteTodo deletes a todo by ID. Returns ErrNotFound if the row no
// longer exists.
func (s *SQLiteStore) DeleteTodo(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
