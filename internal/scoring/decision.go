package scoring

// DecisionStatus represents the outcome of a promotion decision
type DecisionStatus string

const (
	StatusApproved    DecisionStatus = "approved"
	StatusPending     DecisionStatus = "pending"
	StatusNotApproved DecisionStatus = "notApproved"
)

// Promotion thresholds on the 0-100 weighted scale. The decision rule is
// the fixed-percentage mode: approve at 80, pending at 70. The alternate
// level-sensitive rule from earlier revisions of the process is not
// implemented; see DESIGN.md.
const (
	ApprovalThreshold = 80.0
	PendingThreshold  = 70.0
)

// Classify maps a weighted score to a promotion status. Recomputed each
// time, no persisted state. The thresholds partition the whole range:
// exactly one status is returned for any input.
func Classify(score float64) DecisionStatus {
	switch {
	case score >= ApprovalThreshold:
		return StatusApproved
	case score >= PendingThreshold:
		return StatusPending
	default:
		return StatusNotApproved
	}
}
