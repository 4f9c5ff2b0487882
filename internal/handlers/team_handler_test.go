package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"career-path-api/internal/auth"
	"career-path-api/internal/database"
	"career-path-api/internal/middleware"
	"career-path-api/internal/models"
	"career-path-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func protectedRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.JWTAuthMiddleware())

	token, err := auth.GenerateToken("u-1", "alice")
	require.NoError(t, err)
	return r, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndListTeams(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r, token := protectedRouter(t)
	r.POST("/api/teams", CreateTeam)
	r.GET("/api/teams", GetTeams)

	w := doJSON(t, r, http.MethodPost, "/api/teams", token, map[string]string{
		"client":      "Acme Corp",
		"description": "Payments squad",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Acme Corp", created.Client)

	w = doJSON(t, r, http.MethodGet, "/api/teams", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Teams []models.Team `json:"teams"`
		Count int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
}

func TestCreateTeam_MissingClient(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r, token := protectedRouter(t)
	r.POST("/api/teams", CreateTeam)

	w := doJSON(t, r, http.MethodPost, "/api/teams", token, map[string]string{"description": "no client"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteTeam_RemovesMembers(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	team := models.Team{ID: "team-1", Client: "Acme"}
	require.NoError(t, db.Create(&team).Error)
	member := models.Member{ID: "m-1", TeamID: "team-1", Name: "Bob", Role: models.RoleDeveloper, Level: models.LevelJunior}
	require.NoError(t, db.Create(&member).Error)

	r, token := protectedRouter(t)
	r.DELETE("/api/teams/:id", DeleteTeam)

	w := doJSON(t, r, http.MethodDelete, "/api/teams/team-1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Member{}).Where("team_id = ?", "team-1").Count(&count).Error)
	require.Zero(t, count)
}

func TestUpdateMember(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	require.NoError(t, db.Create(&models.Team{ID: "team-1", Client: "Acme"}).Error)
	member := models.Member{ID: "m-1", TeamID: "team-1", Name: "Bob", Role: models.RoleDeveloper, Level: models.LevelJunior}
	require.NoError(t, db.Create(&member).Error)

	r, token := protectedRouter(t)
	r.PUT("/api/members/:id", UpdateMember)

	w := doJSON(t, r, http.MethodPut, "/api/members/m-1", token, map[string]string{
		"level":       "ssr",
		"targetLevel": "sr",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Member
	require.NoError(t, db.First(&updated, "id = ?", "m-1").Error)
	require.Equal(t, models.LevelSemiSenior, updated.Level)
	require.Equal(t, models.LevelSenior, updated.TargetLevel)
}

func TestCreateMember_InvalidRole(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	require.NoError(t, db.Create(&models.Team{ID: "team-1", Client: "Acme"}).Error)

	r, token := protectedRouter(t)
	r.POST("/api/teams/:id/members", CreateMember)

	w := doJSON(t, r, http.MethodPost, "/api/teams/team-1/members", token, map[string]string{
		"name": "Bob",
		"role": "astronaut",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
