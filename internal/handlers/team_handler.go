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

// CreateTeamRequest represents the request payload for creating a team
type CreateTeamRequest struct {
	Client      string `json:"client" binding:"required"`
	Description string `json:"description"`
}

// UpdateTeamRequest represents the request payload for updating a team
type UpdateTeamRequest struct {
	Client      *string `json:"client"`
	Description *string `json:"description"`
}

// GetTeams handles GET /api/teams
// Returns all teams with their members
func GetTeams(c *gin.Context) {
	var teams []models.Team
	if err := database.GetDB().Preload("Members").Order("created_at asc").Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teams"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"teams": teams,
		"count": len(teams),
	})
}

// GetTeamByID handles GET /api/teams/:id
func GetTeamByID(c *gin.Context) {
	teamID := c.Param("id")

	var team models.Team
	if err := database.GetDB().Preload("Members").First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
		}
		return
	}

	c.JSON(http.StatusOK, team)
}

// CreateTeam handles POST /api/teams
func CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team := models.Team{
		ID:          uuid.NewString(),
		Client:      req.Client,
		Description: req.Description,
	}
	if err := database.GetDB().Create(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}

	broadcastChange(team.ID, realtime.ActionInsert, "team", team.ID, team)
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam handles PUT /api/teams/:id
func UpdateTeam(c *gin.Context) {
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

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Client != nil {
		team.Client = *req.Client
	}
	if req.Description != nil {
		team.Description = *req.Description
	}

	if err := database.GetDB().Save(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team"})
		return
	}

	broadcastChange(team.ID, realtime.ActionUpdate, "team", team.ID, team)
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /api/teams/:id
// Removes the team and its members
func DeleteTeam(c *gin.Context) {
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

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).Delete(&models.Member{}).Error; err != nil {
			return err
		}
		return tx.Delete(&team).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team"})
		return
	}

	broadcastChange(teamID, realtime.ActionDelete, "team", teamID, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted"})
}
