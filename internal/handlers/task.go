package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/todocore/todo-app/internal/dto"
	apierrors "github.com/todocore/todo-app/internal/errors"
	"github.com/todocore/todo-app/internal/middleware"
	"github.com/todocore/todo-app/internal/services"
	"github.com/todocore/todo-app/internal/utils"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{
		service: service,
	}
}

// ListTasks returns all tasks for the authenticated user, in creation
// order. Supports optional completed and pagination query parameters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	input := services.ListTasksInput{}

	if completedStr := c.Query("completed"); completedStr != "" {
		completed, err := strconv.ParseBool(completedStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid completed filter")
			return
		}
		input.Completed = &completed
	}

	// Pagination applies only when requested; the default returns the
	// full list.
	if c.Query("page") != "" {
		params := utils.GetPaginationParams(c)
		input.Page = params.Page
		input.PageSize = params.Limit
	}

	tasks, total, err := h.service.ViewTasks(userID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, input.Page, input.PageSize, total))
}

// CreateTask creates a new task for the authenticated user
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Title  string  `json:"title"`
		Detail *string `json:"detail"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.service.AddTask(userID, req.Title, req.Detail)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(*task))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, taskID, ok := h.requireOwnerAndTaskID(c)
	if !ok {
		return
	}

	task, err := h.service.GetTask(userID, taskID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

// UpdateTask applies a partial update to an existing task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, taskID, ok := h.requireOwnerAndTaskID(c)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Title  *string `json:"title"`
		Detail *string `json:"detail"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.service.UpdateTask(userID, taskID, services.UpdateTaskInput{
		Title:  req.Title,
		Detail: req.Detail,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

// ToggleTask flips a task's completed flag
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	userID, taskID, ok := h.requireOwnerAndTaskID(c)
	if !ok {
		return
	}

	task, err := h.service.ToggleTask(userID, taskID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, taskID, ok := h.requireOwnerAndTaskID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTask(userID, taskID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
}

// requireOwnerAndTaskID extracts the authenticated user and the id
// path parameter. A malformed id never reaches the service.
func (h *TaskHandler) requireOwnerAndTaskID(c *gin.Context) (string, int64, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return "", 0, false
	}

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return "", 0, false
	}

	return userID, taskID, true
}

// respondError maps service errors onto HTTP statuses.
func (h *TaskHandler) respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		apierrors.BadRequest(c, validationErr.Message)
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	default:
		log.Printf("task handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
