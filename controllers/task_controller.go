package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salahezzat120/task-manager-pro/config"
	"github.com/salahezzat120/task-manager-pro/middleware"
	"github.com/salahezzat120/task-manager-pro/models"
	"github.com/salahezzat120/task-manager-pro/services"
)

// TaskController handles the task CRUD surface. Authorization and status
// rules live in the services package; every handler goes through them so
// there is a single source of truth for both.
type TaskController struct{}

// Index lists the tasks assigned to the caller, ordered by due date, with
// optional status/priority/search filters.
func (tc *TaskController) Index(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	var tasks []models.Task
	if err := config.DB.
		Preload("Creator").Preload("Assignee").
		Where("assignee_id = ?", uid).
		Order("due_date ASC").
		Find(&tasks).Error; err != nil {
		config.Logger.Errorw("task listing failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load tasks"})
		return
	}

	opts := services.FilterOptions{
		Status:   services.Status(c.DefaultQuery("status", "all")),
		Priority: c.DefaultQuery("priority", "all"),
		Search:   c.Query("search"),
	}
	tasks = services.Filter(tasks, opts, time.Now().UTC())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.NewTaskResponses(tasks),
	})
}

// Store creates a task. The caller becomes the creator; the assignee is
// resolved by email and must already have an account.
func (tc *TaskController) Store(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "Validation failed", "error": err.Error()})
		return
	}

	due, err := req.Validate()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "Validation failed", "error": err.Error()})
		return
	}
	if services.DateOnly(due).Before(services.DateOnly(time.Now().UTC())) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "Validation failed", "error": "due date must be today or later"})
		return
	}

	var assignee models.User
	if err := config.DB.Where("email = ?", req.AssigneeEmail).First(&assignee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Assignee email not found. User must have an account in the system."})
		return
	}

	task := models.Task{
		CreatorID:   uid,
		AssigneeID:  assignee.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     due,
		Priority:    req.Priority,
	}
	if err := config.DB.Create(&task).Error; err != nil {
		config.Logger.Errorw("task creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Task creation failed"})
		return
	}

	config.DB.Preload("Creator").Preload("Assignee").First(&task, task.ID)

	config.Logger.Infow("task created",
		"taskID", task.ID,
		"creatorID", task.CreatorID,
		"assigneeID", task.AssigneeID,
	)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created successfully",
		"data":    models.NewTaskResponse(task),
	})
}

// Show returns a single task. Only the assignee may view it.
func (tc *TaskController) Show(c *gin.Context) {
	uid, task, ok := tc.loadTask(c)
	if !ok {
		return
	}

	if !services.CanRead(task, uid) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Unauthorized access to task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.NewTaskResponse(task),
	})
}

// Update applies a partial update. Only the assignee may edit; the
// completed_at timestamp tracks the is_completed flag.
func (tc *TaskController) Update(c *gin.Context) {
	uid, task, ok := tc.loadTask(c)
	if !ok {
		return
	}

	if !services.CanUpdate(task, uid) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "You can only edit tasks assigned to you"})
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "Validation failed", "error": err.Error()})
		return
	}
	due, err := req.Validate()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "Validation failed", "error": err.Error()})
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if due != nil {
		task.DueDate = *due
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.IsCompleted != nil {
		applyCompletion(&task, *req.IsCompleted)
	}

	if err := config.DB.Omit("Creator", "Assignee").Save(&task).Error; err != nil {
		config.Logger.Errorw("task update failed", "error", err, "taskID", task.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Task update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task updated successfully",
		"data":    models.NewTaskResponse(task),
	})
}

// Destroy deletes a task. The assignee and the creator may both delete.
func (tc *TaskController) Destroy(c *gin.Context) {
	uid, task, ok := tc.loadTask(c)
	if !ok {
		return
	}

	if !services.CanDelete(task, uid) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "You can only delete tasks assigned to you or created by you"})
		return
	}

	if err := config.DB.Delete(&task).Error; err != nil {
		config.Logger.Errorw("task deletion failed", "error", err, "taskID", task.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Task deletion failed"})
		return
	}

	config.Logger.Infow("task deleted", "taskID", task.ID, "uid", uid)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully",
	})
}

// ToggleComplete flips the completion flag, or sets it to the explicit
// value when the body carries one. Only the assignee may toggle.
func (tc *TaskController) ToggleComplete(c *gin.Context) {
	uid, task, ok := tc.loadTask(c)
	if !ok {
		return
	}

	if !services.CanToggleComplete(task, uid) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "You can only complete tasks assigned to you"})
		return
	}

	var req models.ToggleCompleteRequest
	_ = c.ShouldBindJSON(&req)

	target := !task.IsCompleted
	if req.IsCompleted != nil {
		target = *req.IsCompleted
	}
	applyCompletion(&task, target)

	if err := config.DB.Omit("Creator", "Assignee").Save(&task).Error; err != nil {
		config.Logger.Errorw("task toggle failed", "error", err, "taskID", task.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Task status update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task status updated successfully",
		"data":    models.NewTaskResponse(task),
	})
}

// Stats summarizes the caller's assigned tasks.
func (tc *TaskController) Stats(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	var tasks []models.Task
	if err := config.DB.Where("assignee_id = ?", uid).Find(&tasks).Error; err != nil {
		config.Logger.Errorw("stats query failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.Aggregate(tasks, time.Now().UTC()),
	})
}

// loadTask resolves the authenticated caller and the :id route parameter.
// It writes the error response itself when either is missing.
func (tc *TaskController) loadTask(c *gin.Context) (uint, models.Task, bool) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return 0, models.Task{}, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Task not found"})
		return 0, models.Task{}, false
	}

	var task models.Task
	if err := config.DB.Preload("Creator").Preload("Assignee").First(&task, uint(id)).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			config.Logger.Errorw("task lookup failed", "error", err, "taskID", id)
		}
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Task not found"})
		return 0, models.Task{}, false
	}

	return uid, task, true
}

// applyCompletion moves the task between the incomplete and complete
// states, keeping completed_at consistent with the flag.
func applyCompletion(task *models.Task, completed bool) {
	if completed && !task.IsCompleted {
		now := time.Now().UTC()
		task.CompletedAt = &now
	} else if !completed {
		task.CompletedAt = nil
	}
	task.IsCompleted = completed
}
