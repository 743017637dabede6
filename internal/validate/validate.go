// Package validate holds the pure field checks that run before any
// resource mutation reaches the repository.
package validate

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
	"github.com/alimkulovaskar/task-manager-backend/internal/repository"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
	minTitleLen    = 3
	minNameLen     = 3
)

// FieldError identifies the offending field; the route layer turns it
// into a 400 with the message as the body.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func fieldErr(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// runeLen counts characters, not bytes, so multibyte input is measured
// the way a user would count it.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func Credentials(username, password string) error {
	if runeLen(username) < minUsernameLen {
		return fieldErr("username", "Username must be at least %d characters", minUsernameLen)
	}
	if runeLen(password) < minPasswordLen {
		return fieldErr("password", "Password must be at least %d characters", minPasswordLen)
	}
	return nil
}

func TaskCreate(req models.CreateTaskRequest) error {
	if runeLen(req.Title) < minTitleLen {
		return fieldErr("title", "Title must be at least %d characters", minTitleLen)
	}
	if runeLen(req.Description) < minTitleLen {
		return fieldErr("description", "Description must be at least %d characters", minTitleLen)
	}
	if req.DueDate != "" {
		if _, err := ParseDate(req.DueDate); err != nil {
			return fieldErr("dueDate", "Invalid due date format")
		}
	}
	if req.ProjectID != "" && !repository.IsValidID(req.ProjectID) {
		return fieldErr("projectId", "Invalid project ID")
	}
	return nil
}

func TaskUpdate(req models.UpdateTaskRequest) error {
	if req.Title != nil && runeLen(*req.Title) < minTitleLen {
		return fieldErr("title", "Title must be at least %d characters", minTitleLen)
	}
	if req.Description != nil && runeLen(*req.Description) < minTitleLen {
		return fieldErr("description", "Description must be at least %d characters", minTitleLen)
	}
	if req.Status != nil && !validStatus(*req.Status) {
		return fieldErr("status", "Status must be one of: %s, %s, %s",
			models.StatusToDo, models.StatusInProgress, models.StatusDone)
	}
	if req.DueDate != nil && *req.DueDate != "" {
		if _, err := ParseDate(*req.DueDate); err != nil {
			return fieldErr("dueDate", "Invalid due date format")
		}
	}
	if req.ProjectID != nil && *req.ProjectID != "" && !repository.IsValidID(*req.ProjectID) {
		return fieldErr("projectId", "Invalid project ID")
	}
	return nil
}

func ProjectCreate(req models.CreateProjectRequest) error {
	if runeLen(req.Name) < minNameLen {
		return fieldErr("name", "Name must be at least %d characters", minNameLen)
	}
	return nil
}

// ParseDate accepts a calendar date with or without a time component.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %q", s)
}

func validStatus(s string) bool {
	switch s {
	case models.StatusToDo, models.StatusInProgress, models.StatusDone:
		return true
	}
	return false
}
