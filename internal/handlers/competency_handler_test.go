package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"career-path-api/internal/database"
	"career-path-api/internal/models"
	"career-path-api/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestGetCompetencies_ResolvedCatalog(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db
	seedEvaluationFixture(t, db)

	r, token := protectedRouter(t)
	r.GET("/api/competencies", GetCompetencies)

	w := doJSON(t, r, http.MethodGet, "/api/competencies?role=developer", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Competencies []models.Competency `json:"competencies"`
		Count        int                 `json:"count"`
		WeightSum    int                 `json:"weightSum"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	require.Equal(t, 100, resp.WeightSum)
}

func TestGetCompetencies_RequiresValidRole(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r, token := protectedRouter(t)
	r.GET("/api/competencies", GetCompetencies)

	w := doJSON(t, r, http.MethodGet, "/api/competencies?role=astronaut", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTeamCompetency_OverridesRoleDefault(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db
	seedEvaluationFixture(t, db)

	r, token := protectedRouter(t)
	r.POST("/api/teams/:id/competencies", CreateTeamCompetency)
	r.GET("/api/competencies", GetCompetencies)

	// reuse the role default's key to override it for team-1
	w := doJSON(t, r, http.MethodPost, "/api/teams/team-1/competencies", token, map[string]any{
		"key":    "tech",
		"name":   "Technical (team scope)",
		"weight": 30,
		"role":   "developer",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/competencies?role=developer&teamId=team-1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Competencies []models.Competency `json:"competencies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Competencies, 2)

	var names []string
	for _, comp := range resp.Competencies {
		names = append(names, comp.Name)
	}
	require.Contains(t, names, "Technical (team scope)")
	require.NotContains(t, names, "Technical")
}

func TestDeleteCompetency_SoftDeleteHidesFromCatalog(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db
	seedEvaluationFixture(t, db)

	r, token := protectedRouter(t)
	r.DELETE("/api/competencies/:id", DeleteCompetency)
	r.GET("/api/competencies", GetCompetencies)

	w := doJSON(t, r, http.MethodDelete, "/api/competencies/developer-tech", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// the row survives, deactivated
	var comp models.Competency
	require.NoError(t, db.First(&comp, "id = ?", "developer-tech").Error)
	require.False(t, comp.Active)

	w = doJSON(t, r, http.MethodGet, "/api/competencies?role=developer", token, nil)
	var resp struct {
		Competencies []models.Competency `json:"competencies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Competencies, 1)
	require.Equal(t, "collab", resp.Competencies[0].Key)
}

func TestTaskCRUD(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db
	seedEvaluationFixture(t, db)

	r, token := protectedRouter(t)
	r.POST("/api/competencies/:id/tasks", CreateTask)
	r.GET("/api/competencies/:id/tasks", GetCompetencyTasks)
	r.DELETE("/api/tasks/:id", DeleteTask)

	w := doJSON(t, r, http.MethodPost, "/api/competencies/developer-tech/tasks", token, map[string]string{
		"name":        "Incident handling",
		"description": "On-call response quality",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/api/competencies/developer-tech/tasks", token, nil)
	var resp struct {
		Tasks []models.Task `json:"tasks"`
		Count int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Count) // two from the fixture plus the new one

	w = doJSON(t, r, http.MethodDelete, "/api/tasks/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// hard delete: the row is gone entirely
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Task{}).Where("id = ?", created.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestDeleteTask_RemovesRatings(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db
	seedEvaluationFixture(t, db)

	require.NoError(t, db.Create(&models.Rating{ID: "r-1", MemberID: "m-1", TaskID: "t-1", Quarter: models.Q4, Value: 8}).Error)

	r, token := protectedRouter(t)
	r.DELETE("/api/tasks/:id", DeleteTask)

	w := doJSON(t, r, http.MethodDelete, "/api/tasks/t-1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Rating{}).Where("task_id = ?", "t-1").Count(&count).Error)
	require.Zero(t, count)
}
