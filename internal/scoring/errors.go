package scoring

import "errors"

var (
	// ErrInvalidRatingValue is returned when a rating outside [1,10] is
	// encountered. The engine rejects it rather than clamping; no partial
	// total is produced.
	ErrInvalidRatingValue = errors.New("invalid rating value")

	// ErrUnknownTask is returned when a rating references a task that is
	// not part of the snapshot passed in.
	ErrUnknownTask = errors.New("rating references unknown task")

	// ErrUnknownCompetency is returned when a task maps to a competency
	// that is not part of the snapshot passed in.
	ErrUnknownCompetency = errors.New("task references unknown competency")
)
