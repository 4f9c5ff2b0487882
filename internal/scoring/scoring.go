// Package scoring implements the competency scoring and promotion decision
// engine. Every function here is a pure computation over an in-memory
// snapshot of competencies, tasks and ratings: no I/O, no shared state.
// Loading a consistent snapshot and re-running on new data is the caller's
// job.
package scoring

import (
	"fmt"

	"career-path-api/internal/models"
)

// Rating bounds. 0 is never a valid value; absence of a rating means
// "not yet rated" and is excluded from averages rather than counted as 0.
const (
	RatingMin = 1
	RatingMax = 10
)

// CompetencyResult is the per-competency breakdown produced for one quarter.
type CompetencyResult struct {
	CompetencyID  string  `json:"competencyId"`
	Name          string  `json:"name"`
	Weight        int     `json:"weight"`
	Score         float64 `json:"score"`         // mean of rated tasks, 0-10
	WeightedScore float64 `json:"weightedScore"` // (score/10) * weight
}

// CompetencyScore returns the arithmetic mean of the ratings recorded for
// the given tasks. Tasks with no rating are excluded from both numerator
// and denominator. A competency with no tasks or no rated tasks scores 0.
//
// Every rating must belong to one of the tasks and carry a value in
// [RatingMin, RatingMax]; otherwise the computation aborts.
func CompetencyScore(tasks []models.Task, ratings []models.Rating) (float64, error) {
	taskSet := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		taskSet[t.ID] = struct{}{}
	}

	sum := 0
	count := 0
	for _, r := range ratings {
		if r.Value < RatingMin || r.Value > RatingMax {
			return 0, fmt.Errorf("%w: task %s got %d", ErrInvalidRatingValue, r.TaskID, r.Value)
		}
		if _, ok := taskSet[r.TaskID]; !ok {
			return 0, fmt.Errorf("%w: task %s", ErrUnknownTask, r.TaskID)
		}
		sum += r.Value
		count++
	}

	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

// ComputeQuarter computes the per-competency breakdown and the weighted
// total for a single quarter. tasksByCompetency maps competency id to its
// tasks; ratings are the member's ratings for that quarter across all
// competencies.
//
// Each competency contributes (score/10)*weight. Competencies with no
// rated tasks contribute 0 but their weight stays in play: unrated work
// earns nothing, it is not excluded from the weight base. The total is the
// raw weighted sum with no renormalization, so it can exceed 100 or fall
// short when weights don't sum to 100.
func ComputeQuarter(competencies []models.Competency, tasksByCompetency map[string][]models.Task, ratings []models.Rating) ([]CompetencyResult, float64, error) {
	compSet := make(map[string]struct{}, len(competencies))
	for _, c := range competencies {
		compSet[c.ID] = struct{}{}
	}

	// Route each rating to its competency, rejecting strays up front so
	// no partial breakdown is ever returned.
	taskToComp := make(map[string]string)
	for compID, tasks := range tasksByCompetency {
		for _, t := range tasks {
			taskToComp[t.ID] = compID
		}
	}

	ratingsByComp := make(map[string][]models.Rating)
	for _, r := range ratings {
		if r.Value < RatingMin || r.Value > RatingMax {
			return nil, 0, fmt.Errorf("%w: task %s got %d", ErrInvalidRatingValue, r.TaskID, r.Value)
		}
		compID, ok := taskToComp[r.TaskID]
		if !ok {
			return nil, 0, fmt.Errorf("%w: task %s", ErrUnknownTask, r.TaskID)
		}
		if _, ok := compSet[compID]; !ok {
			return nil, 0, fmt.Errorf("%w: competency %s", ErrUnknownCompetency, compID)
		}
		ratingsByComp[compID] = append(ratingsByComp[compID], r)
	}

	results := make([]CompetencyResult, 0, len(competencies))
	total := 0.0
	for _, c := range competencies {
		score, err := CompetencyScore(tasksByCompetency[c.ID], ratingsByComp[c.ID])
		if err != nil {
			return nil, 0, err
		}
		weighted := (score / 10) * float64(c.Weight)
		results = append(results, CompetencyResult{
			CompetencyID:  c.ID,
			Name:          c.Name,
			Weight:        c.Weight,
			Score:         score,
			WeightedScore: weighted,
		})
		total += weighted
	}

	return results, total, nil
}

// QuarterWeightedTotal sums the weighted contributions of an already
// computed breakdown.
func QuarterWeightedTotal(results []CompetencyResult) float64 {
	total := 0.0
	for _, r := range results {
		total += r.WeightedScore
	}
	return total
}

// AnnualAverage combines the four quarterly weighted totals into a single
// annual figure: a plain unweighted mean. Quarters with no data count as 0
// rather than being excluded, so a member evaluated late in the year has
// their annual average pulled down.
func AnnualAverage(q1, q2, q3, q4 float64) float64 {
	return (q1 + q2 + q3 + q4) / 4
}
