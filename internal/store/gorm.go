package store

import (
	"errors"

	"github.com/todocore/todo-app/internal/models"
	"gorm.io/gorm"
)

// GormStore is a GORM implementation of TaskStore backed by a tasks
// table. The autoincrement primary key provides the strictly
// increasing, never-reused ID sequence.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a TaskStore over the given database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Insert creates a new task row for the owner.
func (s *GormStore) Insert(ownerID, title string, detail *string) (*models.Task, error) {
	task := &models.Task{
		OwnerID: ownerID,
		Title:   title,
		Detail:  detail,
	}

	if err := s.db.Create(task).Error; err != nil {
		return nil, &StorageFault{Op: "insert", Err: err}
	}
	return task, nil
}

// Get finds the owner's task by ID. A task owned by someone else is
// reported as ErrNotFound, same as a missing row.
func (s *GormStore) Get(ownerID string, id uint64) (*models.Task, error) {
	var task models.Task
	err := s.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StorageFault{Op: "get", Err: err}
	}
	return &task, nil
}

// List returns the owner's tasks in creation order with the total count.
func (s *GormStore) List(ownerID string, filter TaskFilter) ([]models.Task, int64, error) {
	query := s.db.Model(&models.Task{}).Where("owner_id = ?", ownerID)

	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, &StorageFault{Op: "list", Err: err}
	}

	// Creation order: IDs are assigned in insertion order and never
	// reused, so ordering by ID is stable under later updates.
	listQuery := query.Order("id ASC")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}

	var tasks []models.Task
	if err := listQuery.Find(&tasks).Error; err != nil {
		return nil, 0, &StorageFault{Op: "list", Err: err}
	}

	return tasks, total, nil
}

// Update applies the non-nil fields of update inside a transaction.
func (s *GormStore) Update(ownerID string, id uint64, update TaskUpdate) (*models.Task, error) {
	var task models.Task

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND owner_id = ?", id, ownerID).First(&task).Error; err != nil {
			return err
		}

		if update.Title != nil {
			task.Title = *update.Title
		}
		if update.Detail != nil {
			task.Detail = update.Detail
		}

		return tx.Save(&task).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StorageFault{Op: "update", Err: err}
	}

	return &task, nil
}

// ToggleComplete flips the completed flag inside a transaction.
func (s *GormStore) ToggleComplete(ownerID string, id uint64) (*models.Task, error) {
	var task models.Task

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND owner_id = ?", id, ownerID).First(&task).Error; err != nil {
			return err
		}

		task.Completed = !task.Completed
		return tx.Save(&task).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StorageFault{Op: "toggle", Err: err}
	}

	return &task, nil
}

// Delete removes the owner's task. The autoincrement sequence is not
// reset, so the ID is never handed out again.
func (s *GormStore) Delete(ownerID string, id uint64) error {
	result := s.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Task{})
	if result.Error != nil {
		return &StorageFault{Op: "delete", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
