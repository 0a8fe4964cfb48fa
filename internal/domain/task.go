package domain

import (
	"fmt"
	"strings"
)

// Task validation errors
var (
	// ErrTaskTitleEmpty is returned when a task has no title or only whitespace.
	ErrTaskTitleEmpty = fmt.Errorf("%w: task title cannot be empty", ErrValidation)

	// ErrTaskIDInvalid is returned when a stored task carries a non-positive ID.
	ErrTaskIDInvalid = fmt.Errorf("%w: task ID must be positive", ErrInvalidID)
)

// Task is a single tracked item. The ID is assigned by the store and
// never changes afterwards.
type Task struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// NewTask builds an unsaved Task (ID 0) with Completed=false.
// An empty description is stored as nil.
func NewTask(title string, description *string) (*Task, error) {
	task := &Task{
		Title:       title,
		Description: normalizeDescription(description),
	}

	if err := task.validateContent(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks a stored Task, including its ID.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return NewValidationError("id", "must be positive", ErrTaskIDInvalid)
	}
	return t.validateContent()
}

func (t *Task) validateContent() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "is required", ErrTaskTitleEmpty)
	}
	return nil
}

// Clone returns a deep copy so callers never share the description pointer.
func (t *Task) Clone() *Task {
	c := *t
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	return &c
}

// TaskUpdate is a partial update. A nil field means "not provided";
// a non-nil field is applied even when it holds the zero value.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether no field is present.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Completed == nil
}

// Validate rejects a present-but-blank title. A present empty
// description is allowed and clears the field.
func (u TaskUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrTaskTitleEmpty)
	}
	return nil
}

// Apply validates u and writes its present fields onto t.
// t is left untouched when validation fails.
func (t *Task) Apply(u TaskUpdate) error {
	if err := u.Validate(); err != nil {
		return err
	}

	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = normalizeDescription(u.Description)
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	return nil
}

func normalizeDescription(d *string) *string {
	if d == nil || *d == "" {
		return nil
	}
	v := *d
	return &v
}
