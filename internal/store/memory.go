package store

import (
	"sync"
	"time"

	"github.com/todocore/todo-app/internal/models"
)

// MemoryStore is an in-memory TaskStore. It backs the console app and
// is safe for concurrent use by the web handlers. The ID counter is
// owned by the store instance and increments on every insert, so IDs
// are never reused after deletion.
type MemoryStore struct {
	mu     sync.Mutex
	tasks  map[uint64]models.Task
	order  []uint64
	nextID uint64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks:  make(map[uint64]models.Task),
		nextID: 1,
	}
}

// Insert stores a new task and assigns the next ID.
func (s *MemoryStore) Insert(ownerID, title string, detail *string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	task := models.Task{
		ID:        s.nextID,
		OwnerID:   ownerID,
		Title:     title,
		Detail:    copyDetail(detail),
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++

	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)

	result := cloneTask(task)
	return &result, nil
}

// Get returns the owner's task, or ErrNotFound.
func (s *MemoryStore) Get(ownerID string, id uint64) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.lookup(ownerID, id)
	if !ok {
		return nil, ErrNotFound
	}

	result := cloneTask(task)
	return &result, nil
}

// List returns the owner's tasks in insertion order.
func (s *MemoryStore) List(ownerID string, filter TaskFilter) ([]models.Task, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Task, 0, len(s.order))
	for _, id := range s.order {
		task := s.tasks[id]
		if task.OwnerID != ownerID {
			continue
		}
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		matched = append(matched, cloneTask(task))
	}

	total := int64(len(matched))

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset >= len(matched) {
			return []models.Task{}, total, nil
		}
		end := offset + filter.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[offset:end]
	}

	return matched, total, nil
}

// Update applies a partial update and refreshes UpdatedAt.
func (s *MemoryStore) Update(ownerID string, id uint64, update TaskUpdate) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.lookup(ownerID, id)
	if !ok {
		return nil, ErrNotFound
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Detail != nil {
		task.Detail = copyDetail(update.Detail)
	}
	task.UpdatedAt = time.Now()

	s.tasks[id] = task
	result := cloneTask(task)
	return &result, nil
}

// ToggleComplete flips the completed flag and refreshes UpdatedAt.
func (s *MemoryStore) ToggleComplete(ownerID string, id uint64) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.lookup(ownerID, id)
	if !ok {
		return nil, ErrNotFound
	}

	task.Completed = !task.Completed
	task.UpdatedAt = time.Now()

	s.tasks[id] = task
	result := cloneTask(task)
	return &result, nil
}

// Delete removes the task. The ID is never reassigned.
func (s *MemoryStore) Delete(ownerID string, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(ownerID, id); !ok {
		return ErrNotFound
	}

	delete(s.tasks, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// lookup returns the task only when the owner matches. Callers must
// hold the mutex.
func (s *MemoryStore) lookup(ownerID string, id uint64) (models.Task, bool) {
	task, ok := s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return models.Task{}, false
	}
	return task, true
}

// cloneTask returns a copy with no pointers into stored state.
func cloneTask(task models.Task) models.Task {
	task.Detail = copyDetail(task.Detail)
	return task
}

func copyDetail(detail *string) *string {
	if detail == nil {
		return nil
	}
	d := *detail
	return &d
}
