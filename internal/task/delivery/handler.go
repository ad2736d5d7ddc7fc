package delivery

import (
	"errors"
	"net/http"

	"chomper-backend/internal/apperr"
	"chomper-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase     usecase.TaskUsecase
	templateUsecase usecase.TemplateUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase, templateUsecase usecase.TemplateUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase:     taskUsecase,
		templateUsecase: templateUsecase,
	}
}

// respondError maps core failures to HTTP statuses. NotFound covers tasks
// owned by someone else, so the response never reveals existence.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetTasks returns the user's currently visible tasks
// GET /api/tasks
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	tasks, err := h.taskUsecase.GetTasks(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")

	task, err := h.taskUsecase.GetTaskByID(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new one-off task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask edits task fields
// PATCH /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CompleteTask marks a task completed and reports newly unlocked achievements
// POST /api/tasks/:id/complete
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID := c.GetString("userID")

	task, unlocked, err := h.taskUsecase.CompleteTask(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"task":           task,
		"newly_unlocked": unlocked,
	})
}

// UncompleteTask reverts a completion
// POST /api/tasks/:id/uncomplete
func (h *TaskHandler) UncompleteTask(c *gin.Context) {
	userID := c.GetString("userID")

	task, err := h.taskUsecase.UncompleteTask(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// ClearCompleted removes the user's completed one-off tasks
// DELETE /api/tasks/completed
func (h *TaskHandler) ClearCompleted(c *gin.Context) {
	userID := c.GetString("userID")

	count, err := h.taskUsecase.ClearCompleted(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": count})
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.taskUsecase.DeleteTask(userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTemplates lists the user's recurring templates
// GET /api/templates
func (h *TaskHandler) GetTemplates(c *gin.Context) {
	userID := c.GetString("userID")

	templates, err := h.templateUsecase.GetTemplates(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// CreateTemplate creates a recurring template and its first instance
// POST /api/templates
func (h *TaskHandler) CreateTemplate(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateUsecase.CreateTemplate(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, template)
}

// UpdateTemplate edits a recurring template
// PATCH /api/templates/:id
func (h *TaskHandler) UpdateTemplate(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.TemplateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateUsecase.UpdateTemplate(userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

// DeleteTemplate removes a template and all tasks it generated
// DELETE /api/templates/:id
func (h *TaskHandler) DeleteTemplate(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.templateUsecase.DeleteTemplate(userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
