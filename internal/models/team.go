package models

import (
	"gorm.io/gorm"
)

// Role represents the job function of a member. Fixed set.
type Role string

const (
	RoleDeveloper       Role = "developer"
	RoleQA              Role = "qa"
	RoleProductOwner    Role = "productowner"
	RoleScrumMaster     Role = "scrummaster"
	RoleUXUI            Role = "uxui"
	RoleDeliveryManager Role = "deliverymanager"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDeveloper, RoleQA, RoleProductOwner, RoleScrumMaster, RoleUXUI, RoleDeliveryManager:
		return true
	}
	return false
}

// Level represents a member's seniority level
type Level string

const (
	LevelJunior     Level = "jr"
	LevelSemiSenior Level = "ssr"
	LevelSenior     Level = "sr"
)

// Team represents a delivery team
type Team struct {
	ID          string   `json:"id" gorm:"primaryKey"`
	Client      string   `json:"client" gorm:"not null"`
	Description string   `json:"description"`
	Members     []Member `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	gorm.Model
}

// TableName specifies the table name for Team Model
func (Team) TableName() string {
	return "teams"
}

// Member represents a person being evaluated. Belongs to exactly one team.
type Member struct {
	ID          string `json:"id" gorm:"primaryKey"`
	TeamID      string `json:"teamId" gorm:"column:team_id;index;not null"`
	Name        string `json:"name" gorm:"not null"`
	Role        Role   `json:"role" gorm:"not null"`
	Level       Level  `json:"level" gorm:"not null;default:'jr'"`
	TargetLevel Level  `json:"targetLevel" gorm:"column:target_level"`
	gorm.Model
}

// TableName specifies the table name for Member Model
func (Member) TableName() string {
	return "members"
}
