package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "Buy milk", want: "Buy milk"},
		{name: "trims whitespace", in: "  Buy milk\t", want: "Buy milk"},
		{name: "empty", in: "", wantErr: true},
		{name: "whitespace only", in: "   ", wantErr: true},
		{name: "max length", in: strings.Repeat("a", 255), want: strings.Repeat("a", 255)},
		{name: "too long", in: strings.Repeat("a", 256), wantErr: true},
		{name: "too long before trim only", in: " " + strings.Repeat("a", 255) + " ", want: strings.Repeat("a", 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeTitle(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCreateTodo(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    CreateTodoCommand
		wantErr bool
	}{
		{name: "title only", body: `{"title":"Buy milk"}`, want: CreateTodoCommand{Title: "Buy milk"}},
		{name: "completed defaults false", body: `{"title":"x","completed":false}`, want: CreateTodoCommand{Title: "x"}},
		{name: "completed true", body: `{"title":"x","completed":true}`, want: CreateTodoCommand{Title: "x", Completed: true}},
		{name: "trims title", body: `{"title":"  Buy milk  "}`, want: CreateTodoCommand{Title: "Buy milk"}},
		{name: "empty object", body: `{}`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
		{name: "null title", body: `{"title":null}`, wantErr: true},
		{name: "empty title", body: `{"title":""}`, wantErr: true},
		{name: "whitespace title", body: `{"title":"  "}`, wantErr: true},
		{name: "completed without title", body: `{"completed":true}`, wantErr: true},
		{name: "unknown field", body: `{"title":"x","priority":"high"}`, wantErr: true},
		{name: "title wrong type", body: `{"title":42}`, wantErr: true},
		{name: "completed wrong type", body: `{"title":"x","completed":"yes"}`, wantErr: true},
		{name: "trailing garbage", body: `{"title":"x"}{}`, wantErr: true},
		{name: "not an object", body: `[1,2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := parseCreateTodo(strings.NewReader(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cmd)
		})
	}
}

func TestParseUpdateTodo(t *testing.T) {
	title := "Buy milk"
	done := true

	tests := []struct {
		name    string
		body    string
		want    UpdateTodoCommand
		wantErr bool
	}{
		{name: "title only", body: `{"title":"Buy milk"}`, want: UpdateTodoCommand{Title: &title}},
		{name: "completed only", body: `{"completed":true}`, want: UpdateTodoCommand{Completed: &done}},
		{name: "both fields", body: `{"title":"Buy milk","completed":true}`, want: UpdateTodoCommand{Title: &title, Completed: &done}},
		{name: "trims title", body: `{"title":" Buy milk "}`, want: UpdateTodoCommand{Title: &title}},
		{name: "no fields", body: `{}`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
		{name: "null fields count as absent", body: `{"title":null,"completed":null}`, wantErr: true},
		{name: "empty title", body: `{"title":""}`, wantErr: true},
		{name: "too long title", body: `{"title":"` + strings.Repeat("a", 256) + `"}`, wantErr: true},
		{name: "unknown field", body: `{"completed":true,"due":"tomorrow"}`, wantErr: true},
		{name: "completed wrong type", body: `{"completed":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := parseUpdateTodo(strings.NewReader(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cmd)
		})
	}
}
