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

// CreateMemberRequest represents the request payload for adding a member
type CreateMemberRequest struct {
	Name        string       `json:"name" binding:"required"`
	Role        models.Role  `json:"role" binding:"required"`
	Level       models.Level `json:"level"`
	TargetLevel models.Level `json:"targetLevel"`
}

// UpdateMemberRequest represents the request payload for updating a member
type UpdateMemberRequest struct {
	Name        *string       `json:"name"`
	Role        *models.Role  `json:"role"`
	Level       *models.Level `json:"level"`
	TargetLevel *models.Level `json:"targetLevel"`
}

// GetTeamMembers handles GET /api/teams/:id/members
func GetTeamMembers(c *gin.Context) {
	teamID := c.Param("id")

	var team models.Team
	if err := database.GetDB().First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
		}
		return
	}

	var members []models.Member
	if err := database.GetDB().Where("team_id = ?", teamID).Order("created_at asc").Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"count":   len(members),
	})
}

// CreateMember handles POST /api/teams/:id/members
func CreateMember(c *gin.Context) {
	teamID := c.Param("id")

	var team models.Team
	if err := database.GetDB().First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
		}
		return
	}

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	level := req.Level
	if level == "" {
		level = models.LevelJunior
	}

	member := models.Member{
		ID:          uuid.NewString(),
		TeamID:      teamID,
		Name:        req.Name,
		Role:        req.Role,
		Level:       level,
		TargetLevel: req.TargetLevel,
	}
	if err := database.GetDB().Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}

	broadcastChange(teamID, realtime.ActionInsert, "member", member.ID, member)
	c.JSON(http.StatusCreated, member)
}

// UpdateMember handles PUT /api/members/:id
func UpdateMember(c *gin.Context) {
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

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}
		member.Role = *req.Role
	}
	if req.Level != nil {
		member.Level = *req.Level
	}
	if req.TargetLevel != nil {
		member.TargetLevel = *req.TargetLevel
	}

	if err := database.GetDB().Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	broadcastChange(member.TeamID, realtime.ActionUpdate, "member", member.ID, member)
	c.JSON(http.StatusOK, member)
}

// DeleteMember handles DELETE /api/members/:id
func DeleteMember(c *gin.Context) {
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

	if err := database.GetDB().Delete(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}

	broadcastChange(member.TeamID, realtime.ActionDelete, "member", member.ID, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}
