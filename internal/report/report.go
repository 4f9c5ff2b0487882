// Package report renders computed promotion decisions into a plain-text
// export. Presentation only; all figures arrive precomputed.
package report

import (
	"fmt"
	"strings"

	"career-path-api/internal/models"
	"career-path-api/internal/scoring"
)

// Decision carries everything the formatter needs about one member's
// promotion decision.
type Decision struct {
	Member        models.Member              `json:"member"`
	Team          models.Team                `json:"team"`
	Breakdown     []scoring.CompetencyResult `json:"perCompetencyBreakdown"`
	QuarterTotals map[models.Quarter]float64 `json:"quarterTotals"`
	Q4Score       float64                    `json:"q4WeightedScore"`
	AnnualAverage float64                    `json:"annualAverage"`
	Status        scoring.DecisionStatus     `json:"status"`
	Warnings      []string                   `json:"warnings,omitempty"`
}

var statusLabels = map[scoring.DecisionStatus]string{
	scoring.StatusApproved:    "PROMOTION APPROVED",
	scoring.StatusPending:     "PROMOTION PENDING",
	scoring.StatusNotApproved: "PROMOTION NOT APPROVED",
}

// Generate renders the decision as a downloadable text report.
func Generate(d Decision) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Report - %s\n", d.Member.Name)
	fmt.Fprintf(&b, "Team: %s - %s\n", d.Team.Client, d.Team.Description)
	fmt.Fprintf(&b, "Role: %s - Level: %s -> %s\n", d.Member.Role, d.Member.Level, d.Member.TargetLevel)
	fmt.Fprintf(&b, "Q4 weighted score: %.2f/100\n", d.Q4Score)
	fmt.Fprintf(&b, "Annual average: %.2f/100\n", d.AnnualAverage)
	fmt.Fprintf(&b, "Required threshold: %.0f (pending from %.0f)\n", scoring.ApprovalThreshold, scoring.PendingThreshold)
	fmt.Fprintf(&b, "Status: %s\n", statusLabels[d.Status])

	b.WriteString("\nCompetency breakdown (Q4):\n")
	for _, c := range d.Breakdown {
		fmt.Fprintf(&b, "  %-40s weight %3d%%  score %.1f/10  weighted %.2f\n",
			c.Name, c.Weight, c.Score, c.WeightedScore)
	}

	b.WriteString("\nQuarter totals:\n")
	for _, q := range models.Quarters {
		fmt.Fprintf(&b, "  %s: %.2f\n", q, d.QuarterTotals[q])
	}

	if len(d.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range d.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	return b.String()
}
