package handlers

import (
	"errors"
	"net/http"

	"career-path-api/internal/database"
	"career-path-api/internal/models"
	"career-path-api/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
}

// UpdateTaskRequest represents the request payload for updating a task
type UpdateTaskRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Active       *bool   `json:"active"`
	DisplayOrder *int    `json:"displayOrder"`
}

// GetCompetencyTasks handles GET /api/competencies/:id/tasks
func GetCompetencyTasks(c *gin.Context) {
	compID := c.Param("id")

	var comp models.Competency
	if err := database.GetDB().First(&comp, "id = ?", compID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Competency not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch competency"})
		}
		return
	}

	var tasks []models.Task
	if err := database.GetDB().Where("competency_id = ?", compID).
		Order("display_order asc, created_at asc").Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
	})
}

// CreateTask handles POST /api/competencies/:id/tasks
func CreateTask(c *gin.Context) {
	compID := c.Param("id")

	var comp models.Competency
	if err := database.GetDB().First(&comp, "id = ?", compID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Competency not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch competency"})
		}
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := models.Task{
		ID:           uuid.NewString(),
		CompetencyID: compID,
		Name:         req.Name,
		Description:  req.Description,
		Active:       true,
		DisplayOrder: req.DisplayOrder,
	}
	if err := database.GetDB().Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	broadcastChange(comp.TeamID, realtime.ActionInsert, "task", task.ID, task)
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/:id
func UpdateTask(c *gin.Context) {
	taskID := c.Param("id")

	var task models.Task
	if err := database.GetDB().First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Active != nil {
		task.Active = *req.Active
	}
	if req.DisplayOrder != nil {
		task.DisplayOrder = *req.DisplayOrder
	}

	if err := database.GetDB().Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	var comp models.Competency
	teamID := ""
	if err := database.GetDB().First(&comp, "id = ?", task.CompetencyID).Error; err == nil {
		teamID = comp.TeamID
	}
	broadcastChange(teamID, realtime.ActionUpdate, "task", task.ID, task)
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
// Hard delete: ratings for the task are removed with it.
func DeleteTask(c *gin.Context) {
	taskID := c.Param("id")

	var task models.Task
	if err := database.GetDB().First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("task_id = ?", taskID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&task).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	var comp models.Competency
	teamID := ""
	if err := database.GetDB().First(&comp, "id = ?", task.CompetencyID).Error; err == nil {
		teamID = comp.TeamID
	}
	broadcastChange(teamID, realtime.ActionDelete, "task", taskID, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
