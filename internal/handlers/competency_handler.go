package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"career-path-api/internal/catalog"
	"career-path-api/internal/database"
	"career-path-api/internal/models"
	"career-path-api/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCompetencyRequest represents the payload for a team-scoped competency
type CreateCompetencyRequest struct {
	Key          string      `json:"key"` // optional; reusing a role default's key overrides it for the team
	Name         string      `json:"name" binding:"required"`
	Weight       int         `json:"weight" binding:"required,min=1,max=100"`
	Role         models.Role `json:"role" binding:"required"`
	DisplayOrder int         `json:"displayOrder"`
}

// UpdateCompetencyRequest represents the payload for editing a competency
type UpdateCompetencyRequest struct {
	Name         *string `json:"name"`
	Weight       *int    `json:"weight"`
	DisplayOrder *int    `json:"displayOrder"`
}

// GetCompetencies handles GET /api/competencies?role=&teamId=
// Returns the resolved catalog: role defaults merged with team overrides,
// soft-deleted entries excluded.
func GetCompetencies(c *gin.Context) {
	role := models.Role(c.Query("role"))
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid role query param is required"})
		return
	}
	teamID := c.Query("teamId")

	comps, err := catalogResolver().Resolve(role, teamID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve competencies"})
		return
	}

	resp := gin.H{
		"competencies": comps,
		"count":        len(comps),
		"weightSum":    catalog.WeightSum(comps),
	}
	if len(comps) == 0 {
		resp["warning"] = "competencies not configured for this role"
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTeamCompetency handles POST /api/teams/:id/competencies
func CreateTeamCompetency(c *gin.Context) {
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

	var req CreateCompetencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	key := req.Key
	if key == "" {
		key = uuid.NewString()
	}

	// A team may define the same key only once per role; a key shared with
	// a role default is the override case and is allowed.
	var existing models.Competency
	err := database.GetDB().Where("key = ? AND role = ? AND team_id = ?", key, req.Role, teamID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Competency %s already exists for this team", key)})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check competency"})
		return
	}

	comp := models.Competency{
		ID:           uuid.NewString(),
		Key:          key,
		Name:         req.Name,
		Weight:       req.Weight,
		Role:         req.Role,
		TeamID:       teamID,
		Active:       true,
		DisplayOrder: req.DisplayOrder,
	}
	if err := database.GetDB().Create(&comp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create competency"})
		return
	}

	catalogResolver().Invalidate()
	broadcastChange(teamID, realtime.ActionInsert, "competency", comp.ID, comp)
	c.JSON(http.StatusCreated, comp)
}

// UpdateCompetency handles PUT /api/competencies/:id
func UpdateCompetency(c *gin.Context) {
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

	var req UpdateCompetencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		comp.Name = *req.Name
	}
	if req.Weight != nil {
		if *req.Weight < 1 || *req.Weight > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Weight must be between 1 and 100"})
			return
		}
		comp.Weight = *req.Weight
	}
	if req.DisplayOrder != nil {
		comp.DisplayOrder = *req.DisplayOrder
	}

	if err := database.GetDB().Save(&comp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update competency"})
		return
	}

	catalogResolver().Invalidate()
	broadcastChange(comp.TeamID, realtime.ActionUpdate, "competency", comp.ID, comp)
	c.JSON(http.StatusOK, comp)
}

// DeleteCompetency handles DELETE /api/competencies/:id
// Soft delete: the row stays so existing ratings keep their context, the
// catalog just stops returning it.
func DeleteCompetency(c *gin.Context) {
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

	comp.Active = false
	if err := database.GetDB().Save(&comp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete competency"})
		return
	}

	catalogResolver().Invalidate()
	broadcastChange(comp.TeamID, realtime.ActionDelete, "competency", comp.ID, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Competency deactivated"})
}
