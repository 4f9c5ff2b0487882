package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"career-path-api/internal/catalog"
	"career-path-api/internal/database"
	"career-path-api/internal/models"
	"career-path-api/internal/report"
	"career-path-api/internal/scoring"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// computeDecision loads a consistent snapshot for the member and runs the
// scoring engine over it. All I/O happens here; the engine itself stays
// pure.
func computeDecision(memberID string) (report.Decision, int, error) {
	db := database.GetDB()

	var member models.Member
	if err := db.First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return report.Decision{}, http.StatusNotFound, errors.New("Member not found")
		}
		return report.Decision{}, http.StatusInternalServerError, errors.New("Failed to fetch member")
	}

	var team models.Team
	if err := db.First(&team, "id = ?", member.TeamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return report.Decision{}, http.StatusNotFound, errors.New("Team not found")
		}
		return report.Decision{}, http.StatusInternalServerError, errors.New("Failed to fetch team")
	}

	comps, tasksByComp, err := catalogResolver().Snapshot(member.Role, member.TeamID)
	if err != nil {
		return report.Decision{}, http.StatusInternalServerError, errors.New("Failed to resolve competencies")
	}

	var allRatings []models.Rating
	if err := db.Where("member_id = ?", memberID).Find(&allRatings).Error; err != nil {
		return report.Decision{}, http.StatusInternalServerError, errors.New("Failed to fetch ratings")
	}

	// Ratings for tasks outside the snapshot belong to deactivated
	// competencies or tasks; they are excluded from the decision, not
	// treated as data faults.
	inSnapshot := make(map[string]struct{})
	for _, tasks := range tasksByComp {
		for _, t := range tasks {
			inSnapshot[t.ID] = struct{}{}
		}
	}
	byQuarter := make(map[models.Quarter][]models.Rating)
	skipped := 0
	for _, r := range allRatings {
		if _, ok := inSnapshot[r.TaskID]; !ok {
			skipped++
			continue
		}
		byQuarter[r.Quarter] = append(byQuarter[r.Quarter], r)
	}

	quarterTotals := make(map[models.Quarter]float64, len(models.Quarters))
	var q4Breakdown []scoring.CompetencyResult
	for _, q := range models.Quarters {
		results, total, err := scoring.ComputeQuarter(comps, tasksByComp, byQuarter[q])
		if err != nil {
			return report.Decision{}, http.StatusUnprocessableEntity,
				fmt.Errorf("cannot compute decision for %s: %w", q, err)
		}
		quarterTotals[q] = total
		if q == models.Q4 {
			q4Breakdown = results
		}
	}

	q4 := quarterTotals[models.Q4]
	annual := scoring.AnnualAverage(quarterTotals[models.Q1], quarterTotals[models.Q2],
		quarterTotals[models.Q3], quarterTotals[models.Q4])

	var warnings []string
	if len(comps) == 0 {
		warnings = append(warnings, "competencies not configured for this role")
	} else if sum := catalog.WeightSum(comps); sum != 100 {
		warnings = append(warnings, fmt.Sprintf("competency weights sum to %d, not 100; the weighted total is the raw sum", sum))
	}
	if skipped > 0 {
		warnings = append(warnings, fmt.Sprintf("%d rating(s) excluded: their tasks or competencies were deactivated", skipped))
	}

	return report.Decision{
		Member:        member,
		Team:          team,
		Breakdown:     q4Breakdown,
		QuarterTotals: quarterTotals,
		Q4Score:       q4,
		AnnualAverage: annual,
		Status:        scoring.Classify(q4),
		Warnings:      warnings,
	}, http.StatusOK, nil
}

// GetDecision handles GET /api/members/:id/decision
// Returns the full computed decision: per-competency Q4 breakdown,
// quarter totals, annual average and status.
func GetDecision(c *gin.Context) {
	decision, status, err := computeDecision(c.Param("id"))
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, decision)
}

// GetDecisionReport handles GET /api/members/:id/report
// Returns the plain-text export of the decision.
func GetDecisionReport(c *gin.Context) {
	decision, status, err := computeDecision(c.Param("id"))
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, report.Generate(decision))
}
