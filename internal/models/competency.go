package models

import (
	"gorm.io/gorm"
)

// Competency represents a named skill area within a role, carrying a
// percentage weight. Role-default competencies have an empty TeamID;
// team-specific custom competencies are scoped to one team. Key is the
// logical identifier used when merging catalogs: a team-scoped competency
// reusing a role default's key overrides it for that team.
// Deactivation is a soft delete: evaluations referencing the competency
// survive, the catalog just stops returning it.
type Competency struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Key          string `json:"key" gorm:"not null;uniqueIndex:idx_comp_key_role_team"`
	Name         string `json:"name" gorm:"not null"`
	Weight       int    `json:"weight" gorm:"not null"` // percentage, 0-100
	Role         Role   `json:"role" gorm:"not null;index;uniqueIndex:idx_comp_key_role_team"`
	TeamID       string `json:"teamId" gorm:"column:team_id;index;uniqueIndex:idx_comp_key_role_team"` // empty = role default
	Active       bool   `json:"active" gorm:"not null"`
	DisplayOrder int    `json:"displayOrder" gorm:"column:display_order;default:0"`
	Tasks        []Task `json:"tasks,omitempty" gorm:"foreignKey:CompetencyID"`
	gorm.Model
}

// TableName specifies the table name for Competency Model
func (Competency) TableName() string {
	return "competencies"
}

// Task represents an individually rated unit of work under a competency.
// Unlike competencies, tasks are hard-deleted.
type Task struct {
	ID           string `json:"id" gorm:"primaryKey"`
	CompetencyID string `json:"competencyId" gorm:"column:competency_id;index;not null"`
	Name         string `json:"name" gorm:"not null"`
	Description  string `json:"description"`
	Active       bool   `json:"active" gorm:"not null"`
	DisplayOrder int    `json:"displayOrder" gorm:"column:display_order;default:0"`
	gorm.Model
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}
