package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// maxTitleLength is the upper bound on a todo title after trimming.
const maxTitleLength = 255

// CreateTodoCommand is the validated, coerced input for creating a todo.
type CreateTodoCommand struct {
	Title     string
	Completed bool
}

// UpdateTodoCommand is the validated input for a partial update.
// A nil field was absent from the request body.
type UpdateTodoCommand struct {
	Title     *string
	Completed *bool
}

type todoPayload struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// decodeBody decodes a single JSON object, rejecting unknown fields.
func decodeBody(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %s", err)
	}
	if dec.More() {
		return errors.New("request body must be a single JSON object")
	}
	return nil
}

// normalizeTitle trims surrounding whitespace and enforces length bounds.
func normalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", errors.New("title must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxTitleLength {
		return "", fmt.Errorf("title must be %d characters or fewer", maxTitleLength)
	}
	return trimmed, nil
}

// parseCreateTodo validates a create request body into a typed command.
// Completed defaults to false when omitted.
func parseCreateTodo(r io.Reader) (*CreateTodoCommand, error) {
	var payload todoPayload
	if err := decodeBody(r, &payload); err != nil {
		return nil, err
	}

	if payload.Title == nil {
		return nil, errors.New("title is required")
	}
	title, err := normalizeTitle(*payload.Title)
	if err != nil {
		return nil, err
	}

	cmd := &CreateTodoCommand{Title: title}
	if payload.Completed != nil {
		cmd.Completed = *payload.Completed
	}

	return cmd, nil
}

// parseUpdateTodo validates an update request body into a typed command.
// At least one of title or completed must be supplied.
func parseUpdateTodo(r io.Reader) (*UpdateTodoCommand, error) {
	var payload todoPayload
	if err := decodeBody(r, &payload); err != nil {
		return nil, err
	}

	if payload.Title == nil && payload.Completed == nil {
		return nil, errors.New("at least one of title or completed must be provided")
	}

	cmd := &UpdateTodoCommand{Completed: payload.Completed}
	if payload.Title != nil {
		title, err := normalizeTitle(*payload.Title)
		if err != nil {
			return nil, err
		}
		cmd.Title = &title
	}

	return cmd, nil
}
