// Package catalog resolves the applicable competency set for a (role, team)
// pair: role-default competencies merged with the team's custom ones,
// soft-deleted entries excluded.
package catalog

import (
	"time"

	"career-path-api/internal/cache"
	"career-path-api/internal/models"

	"gorm.io/gorm"
)

// cacheTTL bounds how stale a resolved catalog may be. Writes invalidate
// eagerly; the TTL is a backstop.
const cacheTTL = 30 * time.Second

type cacheKey struct {
	Role   models.Role
	TeamID string
}

// Resolver loads and memoizes resolved competency catalogs.
type Resolver struct {
	db    *gorm.DB
	cache *cache.SimpleCache[cacheKey, []models.Competency]
}

// NewResolver creates a Resolver backed by the given database handle.
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{
		db:    db,
		cache: cache.NewSimpleCache[cacheKey, []models.Competency](cache.Options{ConcurrencySafe: true}),
	}
}

// Resolve returns the active competencies applicable to a role within a
// team: role defaults (empty team_id) unioned with competencies scoped to
// teamID. When a team-scoped competency shares a key with a role default,
// the team-scoped one wins. Ordering is display order, then insertion.
func (r *Resolver) Resolve(role models.Role, teamID string) ([]models.Competency, error) {
	key := cacheKey{Role: role, TeamID: teamID}
	if comps, ok := r.cache.Get(key); ok {
		return comps, nil
	}

	var rows []models.Competency
	q := r.db.Where("role = ? AND active = ?", role, true)
	if teamID == "" {
		q = q.Where("team_id = ''")
	} else {
		q = q.Where("(team_id = '' OR team_id = ?)", teamID)
	}
	if err := q.Order("display_order asc, created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	comps := mergeOverrides(rows)
	r.cache.Set(key, comps, cacheTTL)
	return comps, nil
}

// mergeOverrides deduplicates by key, letting a team-scoped row replace a
// role default in place so the original position is kept.
func mergeOverrides(rows []models.Competency) []models.Competency {
	out := make([]models.Competency, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, c := range rows {
		if i, seen := index[c.Key]; seen {
			if c.TeamID != "" {
				out[i] = c
			}
			continue
		}
		index[c.Key] = len(out)
		out = append(out, c)
	}
	return out
}

// Snapshot resolves the catalog and loads the active tasks under each
// competency, the consistent view the scoring engine computes over.
func (r *Resolver) Snapshot(role models.Role, teamID string) ([]models.Competency, map[string][]models.Task, error) {
	comps, err := r.Resolve(role, teamID)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]string, 0, len(comps))
	for _, c := range comps {
		ids = append(ids, c.ID)
	}

	tasksByComp := make(map[string][]models.Task, len(comps))
	if len(ids) > 0 {
		var tasks []models.Task
		if err := r.db.Where("competency_id IN ? AND active = ?", ids, true).
			Order("display_order asc, created_at asc").Find(&tasks).Error; err != nil {
			return nil, nil, err
		}
		for _, t := range tasks {
			tasksByComp[t.CompetencyID] = append(tasksByComp[t.CompetencyID], t)
		}
	}

	return comps, tasksByComp, nil
}

// Invalidate drops all memoized catalogs. Called after any competency
// write; resolution is cheap enough that finer-grained eviction isn't
// worth tracking.
func (r *Resolver) Invalidate() {
	r.cache.Clear()
}

// WeightSum totals the weights of a resolved catalog. The system does not
// enforce that weights sum to 100; callers use this to surface a warning
// when they don't.
func WeightSum(comps []models.Competency) int {
	sum := 0
	for _, c := range comps {
		sum += c.Weight
	}
	return sum
}
