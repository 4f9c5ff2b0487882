package handlers

import (
	"errors"
	"net/http"

	"career-path-api/internal/database"
	"career-path-api/internal/models"
	"career-path-api/internal/realtime"
	"career-path-api/internal/scoring"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertRatingRequest represents the payload for rating one task
type UpsertRatingRequest struct {
	TaskID  string         `json:"taskId" binding:"required"`
	Quarter models.Quarter `json:"quarter" binding:"required"`
	Value   int            `json:"value" binding:"required"`
}

// UpsertRating handles PUT /api/members/:id/ratings
// Writes one (member, task, quarter) rating; a later write for the same
// key overwrites the earlier one. No history is retained.
func UpsertRating(c *gin.Context) {
	memberID := c.Param("id")

	var member models.Member
	if err := database.GetDB().First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch member"})
		}
		return
	}

	var req UpsertRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Quarter.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quarter must be one of Q1, Q2, Q3, Q4"})
		return
	}
	if req.Value < scoring.RatingMin || req.Value > scoring.RatingMax {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating value must be between 1 and 10"})
		return
	}

	var task models.Task
	if err := database.GetDB().First(&task, "id = ?", req.TaskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid taskId: task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate taskId"})
		}
		return
	}

	rating := models.Rating{
		ID:       uuid.NewString(),
		MemberID: memberID,
		TaskID:   req.TaskID,
		Quarter:  req.Quarter,
		Value:    req.Value,
	}

	// Last write wins on the (member, task, quarter) key
	result := database.GetDB().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}, {Name: "task_id"}, {Name: "quarter"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rating)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rating"})
		return
	}

	// On conflict the stored row keeps its original id; return what's there
	var stored models.Rating
	if err := database.GetDB().Where("member_id = ? AND task_id = ? AND quarter = ?",
		memberID, req.TaskID, req.Quarter).First(&stored).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rating"})
		return
	}

	broadcastChange(member.TeamID, realtime.ActionUpdate, "rating", stored.ID, stored)
	c.JSON(http.StatusOK, stored)
}

// GetMemberRatings handles GET /api/members/:id/ratings?quarter=
// Returns the member's ratings, optionally filtered to one quarter.
func GetMemberRatings(c *gin.Context) {
	memberID := c.Param("id")

	var member models.Member
	if err := database.GetDB().First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch member"})
		}
		return
	}

	query := database.GetDB().Where("member_id = ?", memberID)
	if q := c.Query("quarter"); q != "" {
		quarter := models.Quarter(q)
		if !quarter.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quarter must be one of Q1, Q2, Q3, Q4"})
			return
		}
		query = query.Where("quarter = ?", quarter)
	}

	var ratings []models.Rating
	if err := query.Order("quarter asc, task_id asc").Find(&ratings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings": ratings,
		"count":   len(ratings),
	})
}
