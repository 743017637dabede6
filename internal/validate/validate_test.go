package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
)

func strptr(s string) *string {
	return &s
}

func TestCredentials(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		wantField string
	}{
		{"valid", "alice", "secret1", ""},
		{"short username", "al", "secret1", "username"},
		{"empty username", "", "secret1", "username"},
		{"short password", "alice", "12345", "password"},
		{"both short but username reported first", "al", "12345", "username"},
		// minimums count characters, not bytes
		{"two cyrillic letters rejected", "жж", "secret1", "username"},
		{"three cyrillic letters accepted", "жжж", "пароль", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Credentials(tt.username, tt.password)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestTaskCreate(t *testing.T) {
	tests := []struct {
		name      string
		req       models.CreateTaskRequest
		wantField string
	}{
		{"valid minimal", models.CreateTaskRequest{Title: "abc", Description: "def"}, ""},
		{"valid with due date", models.CreateTaskRequest{Title: "abc", Description: "def", DueDate: "2026-09-15"}, ""},
		{"valid with rfc3339 due date", models.CreateTaskRequest{Title: "abc", Description: "def", DueDate: "2026-09-15T10:00:00Z"}, ""},
		{"valid with project id", models.CreateTaskRequest{Title: "abc", Description: "def", ProjectID: "64b0c3f4e13e4a6f2a000001"}, ""},
		{"missing title", models.CreateTaskRequest{Description: "def"}, "title"},
		{"short title", models.CreateTaskRequest{Title: "ab", Description: "def"}, "title"},
		{"two cyrillic letters in title rejected", models.CreateTaskRequest{Title: "жж", Description: "def"}, "title"},
		{"three cyrillic letters in title accepted", models.CreateTaskRequest{Title: "дом", Description: "дела"}, ""},
		{"missing description", models.CreateTaskRequest{Title: "abc"}, "description"},
		{"bad due date", models.CreateTaskRequest{Title: "abc", Description: "def", DueDate: "not-a-date"}, "dueDate"},
		{"bad project id", models.CreateTaskRequest{Title: "abc", Description: "def", ProjectID: "zzz"}, "projectId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskCreate(tt.req)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestTaskUpdate(t *testing.T) {
	tests := []struct {
		name      string
		req       models.UpdateTaskRequest
		wantField string
	}{
		{"empty update passes validation", models.UpdateTaskRequest{}, ""},
		{"valid title", models.UpdateTaskRequest{Title: strptr("new title")}, ""},
		{"short title", models.UpdateTaskRequest{Title: strptr("ab")}, "title"},
		{"short description", models.UpdateTaskRequest{Description: strptr("x")}, "description"},
		{"valid status", models.UpdateTaskRequest{Status: strptr(models.StatusDone)}, ""},
		{"unknown status", models.UpdateTaskRequest{Status: strptr("Cancelled")}, "status"},
		{"clearing due date allowed", models.UpdateTaskRequest{DueDate: strptr("")}, ""},
		{"bad due date", models.UpdateTaskRequest{DueDate: strptr("tomorrow-ish")}, "dueDate"},
		{"clearing project allowed", models.UpdateTaskRequest{ProjectID: strptr("")}, ""},
		{"bad project id", models.UpdateTaskRequest{ProjectID: strptr("123")}, "projectId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskUpdate(tt.req)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestProjectCreate(t *testing.T) {
	require.NoError(t, ProjectCreate(models.CreateProjectRequest{Name: "Home"}))

	err := ProjectCreate(models.CreateProjectRequest{Name: "ab"})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "name", fieldErr.Field)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())

	_, err = ParseDate("01/02/2026")
	assert.Error(t, err)
}
