package store

import (
	"errors"
	"fmt"

	"github.com/todocore/todo-app/internal/models"
)

// ErrNotFound is reported when a task does not exist, or exists but
// belongs to a different owner. The two cases are indistinguishable so
// that a lookup can never leak another owner's task IDs.
var ErrNotFound = errors.New("task not found")

// StorageFault wraps an underlying persistence failure. It is fatal to
// the current operation and is never retried.
type StorageFault struct {
	Op  string
	Err error
}

func (f *StorageFault) Error() string {
	return fmt.Sprintf("storage fault during %s: %v", f.Op, f.Err)
}

func (f *StorageFault) Unwrap() error {
	return f.Err
}

// TaskFilter holds filtering and pagination options for listing tasks.
// A zero Page or PageSize means no pagination.
type TaskFilter struct {
	Completed *bool
	Page      int
	PageSize  int
}

// TaskUpdate carries a partial update. Only non-nil fields are applied,
// so "absent" and "explicitly set" are distinguishable.
type TaskUpdate struct {
	Title  *string
	Detail *string
}

// TaskStore defines the interface for task persistence. Every method
// requires the owner ID; there is no code path that reads or mutates a
// task without an ownership check.
type TaskStore interface {
	// Insert stores a new task for the owner and assigns the next ID.
	// IDs are strictly increasing and never reused.
	Insert(ownerID, title string, detail *string) (*models.Task, error)

	// Get returns the owner's task, or ErrNotFound.
	Get(ownerID string, id uint64) (*models.Task, error)

	// List returns the owner's tasks in creation order, with the total
	// count before pagination.
	List(ownerID string, filter TaskFilter) ([]models.Task, int64, error)

	// Update applies the non-nil fields of update and refreshes the
	// task's UpdatedAt timestamp.
	Update(ownerID string, id uint64, update TaskUpdate) (*models.Task, error)

	// ToggleComplete flips the task's completed flag and refreshes
	// UpdatedAt.
	ToggleComplete(ownerID string, id uint64) (*models.Task, error)

	// Delete removes the task. Its ID is permanently retired.
	Delete(ownerID string, id uint64) error
}
