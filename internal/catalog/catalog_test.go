package catalog

import (
	"testing"

	"career-path-api/internal/models"
	"career-path-api/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCatalog(t *testing.T, db *gorm.DB, comps ...models.Competency) {
	t.Helper()
	for i := range comps {
		require.NoError(t, db.Create(&comps[i]).Error)
	}
}

func TestResolve_RoleDefaultsOnly(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	seedCatalog(t, db,
		models.Competency{ID: "developer-tech", Key: "tech", Name: "Technical", Weight: 60, Role: models.RoleDeveloper, Active: true, DisplayOrder: 0},
		models.Competency{ID: "developer-collab", Key: "collab", Name: "Collaboration", Weight: 40, Role: models.RoleDeveloper, Active: true, DisplayOrder: 1},
		models.Competency{ID: "qa-testdomain", Key: "testdomain", Name: "Testing Domain", Weight: 100, Role: models.RoleQA, Active: true},
	)

	comps, err := NewResolver(db).Resolve(models.RoleDeveloper, "")
	require.NoError(t, err)
	require.Len(t, comps, 2)
	require.Equal(t, "tech", comps[0].Key)
	require.Equal(t, "collab", comps[1].Key)
}

func TestResolve_UnionsTeamScoped(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	seedCatalog(t, db,
		models.Competency{ID: "developer-tech", Key: "tech", Name: "Technical", Weight: 60, Role: models.RoleDeveloper, Active: true, DisplayOrder: 0},
		models.Competency{ID: "c-1", Key: "domain", Name: "Team Domain", Weight: 40, Role: models.RoleDeveloper, TeamID: "team-1", Active: true, DisplayOrder: 1},
		models.Competency{ID: "c-2", Key: "other", Name: "Other Team", Weight: 40, Role: models.RoleDeveloper, TeamID: "team-2", Active: true},
	)

	comps, err := NewResolver(db).Resolve(models.RoleDeveloper, "team-1")
	require.NoError(t, err)
	require.Len(t, comps, 2)
	require.Equal(t, "tech", comps[0].Key)
	require.Equal(t, "domain", comps[1].Key)
}

func TestResolve_TeamOverridesRoleDefaultByKey(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	seedCatalog(t, db,
		models.Competency{ID: "developer-tech", Key: "tech", Name: "Technical", Weight: 60, Role: models.RoleDeveloper, Active: true, DisplayOrder: 0},
		models.Competency{ID: "c-1", Key: "tech", Name: "Technical (team)", Weight: 30, Role: models.RoleDeveloper, TeamID: "team-1", Active: true, DisplayOrder: 0},
		models.Competency{ID: "developer-collab", Key: "collab", Name: "Collaboration", Weight: 40, Role: models.RoleDeveloper, Active: true, DisplayOrder: 1},
	)

	comps, err := NewResolver(db).Resolve(models.RoleDeveloper, "team-1")
	require.NoError(t, err)
	require.Len(t, comps, 2)
	require.Equal(t, "Technical (team)", comps[0].Name)
	require.Equal(t, 30, comps[0].Weight)
	require.Equal(t, "collab", comps[1].Key)

	// the other team still sees the role default
	other, err := NewResolver(db).Resolve(models.RoleDeveloper, "team-2")
	require.NoError(t, err)
	require.Len(t, other, 2)
	require.Equal(t, "Technical", other[0].Name)
}

func TestResolve_ExcludesSoftDeleted(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	seedCatalog(t, db,
		models.Competency{ID: "developer-tech", Key: "tech", Name: "Technical", Weight: 60, Role: models.RoleDeveloper, Active: true},
		models.Competency{ID: "developer-gone", Key: "gone", Name: "Deactivated", Weight: 40, Role: models.RoleDeveloper, Active: false},
	)

	comps, err := NewResolver(db).Resolve(models.RoleDeveloper, "")
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Equal(t, "tech", comps[0].Key)
}

func TestResolve_CachesUntilInvalidated(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	seedCatalog(t, db,
		models.Competency{ID: "developer-tech", Key: "tech", Name: "Technical", Weight: 60, Role: models.RoleDeveloper, Active: true},
	)

	r := NewResolver(db)
	comps, err := r.Resolve(models.RoleDeveloper, "")
	require.NoError(t, err)
	require.Len(t, comps, 1)

	seedCatalog(t, db,
		models.Competency{ID: "developer-new", Key: "new", Name: "New", Weight: 40, Role: models.RoleDeveloper, Active: true},
	)

	// memoized result until a write invalidates
	comps, err = r.Resolve(models.RoleDeveloper, "")
	require.NoError(t, err)
	require.Len(t, comps, 1)

	r.Invalidate()
	comps, err = r.Resolve(models.RoleDeveloper, "")
	require.NoError(t, err)
	require.Len(t, comps, 2)
}

func TestSnapshot_LoadsActiveTasks(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	seedCatalog(t, db,
		models.Competency{ID: "developer-tech", Key: "tech", Name: "Technical", Weight: 100, Role: models.RoleDeveloper, Active: true},
	)
	require.NoError(t, db.Create(&models.Task{ID: "t-1", CompetencyID: "developer-tech", Name: "Code review", Active: true, DisplayOrder: 0}).Error)
	require.NoError(t, db.Create(&models.Task{ID: "t-2", CompetencyID: "developer-tech", Name: "Old task", Active: false, DisplayOrder: 1}).Error)

	comps, tasksByComp, err := NewResolver(db).Snapshot(models.RoleDeveloper, "")
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Len(t, tasksByComp["developer-tech"], 1)
	require.Equal(t, "t-1", tasksByComp["developer-tech"][0].ID)
}

func TestWeightSum(t *testing.T) {
	require.Equal(t, 0, WeightSum(nil))
	require.Equal(t, 100, WeightSum([]models.Competency{{Weight: 60}, {Weight: 40}}))
	require.Equal(t, 90, WeightSum([]models.Competency{{Weight: 50}, {Weight: 40}}))
}
