package models

import (
	"gorm.io/gorm"
)

// Quarter represents one of the four fixed evaluation periods.
// No calendar semantics are attached.
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// Quarters lists the evaluation periods in order.
var Quarters = []Quarter{Q1, Q2, Q3, Q4}

// Valid reports whether q is one of the four known quarters.
func (q Quarter) Valid() bool {
	switch q {
	case Q1, Q2, Q3, Q4:
		return true
	}
	return false
}

// Rating represents an evaluator's 1-10 score for one task, one member,
// one quarter. At most one rating exists per (member, task, quarter);
// writes are upserts with last-write-wins, no history retained.
type Rating struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	MemberID string  `json:"memberId" gorm:"column:member_id;not null;uniqueIndex:idx_member_task_quarter"`
	TaskID   string  `json:"taskId" gorm:"column:task_id;not null;uniqueIndex:idx_member_task_quarter"`
	Quarter  Quarter `json:"quarter" gorm:"not null;uniqueIndex:idx_member_task_quarter"`
	Value    int     `json:"value" gorm:"not null"` // 1-10; 0 is never valid
	gorm.Model
}

// TableName specifies the table name for Rating Model
func (Rating) TableName() string {
	return "ratings"
}
