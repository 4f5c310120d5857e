package dto

import (
	"time"

	"github.com/todocore/todo-app/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Detail    *string   `json:"detail"`
	Completed bool      `json:"completed"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskResponse wraps a single task
type TaskResponse struct {
	Success bool    `json:"success"`
	Data    TaskDTO `json:"data"`
}

// TaskListResponse wraps a list of tasks with pagination metadata
type TaskListResponse struct {
	Success    bool      `json:"success"`
	Data       []TaskDTO `json:"data"`
	Page       int       `json:"page,omitempty"`
	PageSize   int       `json:"page_size,omitempty"`
	TotalCount int64     `json:"total_count"`
}

// DeleteResponse reports a successful deletion
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		Title:     task.Title,
		Detail:    task.Detail,
		Completed: task.Completed,
		OwnerID:   task.OwnerID,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// ToTaskResponse wraps a task in the standard response envelope
func ToTaskResponse(task models.Task) TaskResponse {
	return TaskResponse{
		Success: true,
		Data:    ToTaskDTO(task),
	}
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, page, pageSize int, totalCount int64) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}

	return TaskListResponse{
		Success:    true,
		Data:       items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
}
