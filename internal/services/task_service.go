package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/todocore/todo-app/internal/constants"
	"github.com/todocore/todo-app/internal/models"
	"github.com/todocore/todo-app/internal/store"
)

// ErrTaskNotFound is returned when the requested task does not exist
// for the calling owner.
var ErrTaskNotFound = errors.New("task not found")

// Validation failure reasons
const (
	ReasonEmpty     = "empty"
	ReasonTooLong   = "too_long"
	ReasonInvalidID = "invalid_id"
)

// ValidationError reports caller-supplied data that fails a structural
// or length rule. It is always raised before the store is touched.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(reason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}

// Limits holds the configured field length ceilings. The console and
// web variants run with different values.
type Limits struct {
	TitleMax  int
	DetailMax int
}

// WebLimits returns the limits used by the web API.
func WebLimits() Limits {
	return Limits{TitleMax: constants.WebTitleMaxLen, DetailMax: constants.DetailMaxLen}
}

// ConsoleLimits returns the limits used by the console app.
func ConsoleLimits() Limits {
	return Limits{TitleMax: constants.ConsoleTitleMaxLen, DetailMax: constants.DetailMaxLen}
}

// TaskService validates caller input and translates store outcomes.
// All structural validation happens before any store call.
type TaskService struct {
	store  store.TaskStore
	limits Limits
}

// NewTaskService creates a new TaskService over the given store.
func NewTaskService(taskStore store.TaskStore, limits Limits) *TaskService {
	return &TaskService{
		store:  taskStore,
		limits: limits,
	}
}

// ListTasksInput represents filters for listing tasks.
type ListTasksInput struct {
	Completed *bool
	Page      int
	PageSize  int
}

// UpdateTaskInput represents a partial update. Nil fields are left
// unchanged.
type UpdateTaskInput struct {
	Title  *string
	Detail *string
}

// AddTask validates and creates a new task for the owner.
func (s *TaskService) AddTask(ownerID, title string, detail *string) (*models.Task, error) {
	trimmed, err := s.validateTitle(title)
	if err != nil {
		return nil, err
	}
	if err := s.validateDetail(detail); err != nil {
		return nil, err
	}

	task, err := s.store.Insert(ownerID, trimmed, detail)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// ViewTasks returns the owner's tasks in creation order.
func (s *TaskService) ViewTasks(ownerID string, input ListTasksInput) ([]models.Task, int64, error) {
	filter := store.TaskFilter{
		Completed: input.Completed,
		Page:      input.Page,
		PageSize:  input.PageSize,
	}

	tasks, total, err := s.store.List(ownerID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// GetTask returns a single task by ID.
func (s *TaskService) GetTask(ownerID string, id int64) (*models.Task, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	task, err := s.store.Get(ownerID, uint64(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// UpdateTask applies a partial update to an existing task.
func (s *TaskService) UpdateTask(ownerID string, id int64, input UpdateTaskInput) (*models.Task, error) {
	// ID shape is checked before any store lookup.
	if err := validateID(id); err != nil {
		return nil, err
	}

	update := store.TaskUpdate{Detail: input.Detail}
	if input.Title != nil {
		trimmed, err := s.validateTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		update.Title = &trimmed
	}
	if err := s.validateDetail(input.Detail); err != nil {
		return nil, err
	}

	task, err := s.store.Update(ownerID, uint64(id), update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// ToggleTask flips a task between pending and completed.
func (s *TaskService) ToggleTask(ownerID string, id int64) (*models.Task, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	task, err := s.store.ToggleComplete(ownerID, uint64(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to toggle task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task. Its ID is never reused.
func (s *TaskService) DeleteTask(ownerID string, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.store.Delete(ownerID, uint64(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// validateTitle trims the title and checks the length rules.
func (s *TaskService) validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", newValidationError(ReasonEmpty, "title cannot be empty")
	}
	// Limits count characters, not bytes.
	if utf8.RuneCountInString(trimmed) > s.limits.TitleMax {
		return "", newValidationError(ReasonTooLong,
			fmt.Sprintf("title exceeds %d characters", s.limits.TitleMax))
	}
	return trimmed, nil
}

func (s *TaskService) validateDetail(detail *string) error {
	if detail != nil && utf8.RuneCountInString(*detail) > s.limits.DetailMax {
		return newValidationError(ReasonTooLong,
			fmt.Sprintf("detail exceeds %d characters", s.limits.DetailMax))
	}
	return nil
}

func validateID(id int64) error {
	if id <= 0 {
		return newValidationError(ReasonInvalidID, "task ID must be a positive integer")
	}
	return nil
}
