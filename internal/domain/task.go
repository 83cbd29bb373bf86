package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is a trackable unit of work. Deleting a task only clears IsActive;
// an inactive task is never reactivated.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates an active Task with a fresh ID. CreatedAt and UpdatedAt
// carry the same instant.
// Returns an error if validation fails.
func NewTask(title string, description *string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: cloneString(description),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTitle)
	}
	return nil
}

// Update replaces the title and description and refreshes UpdatedAt.
// The task is left untouched when the new title is invalid.
func (t *Task) Update(title string, description *string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTitle)
	}
	t.Title = title
	t.Description = cloneString(description)
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// Deactivate marks the task inactive and refreshes UpdatedAt.
func (t *Task) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	c.Description = cloneString(t.Description)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
