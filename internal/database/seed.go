package database

import (
	"fmt"

	"career-path-api/internal/models"

	"gorm.io/gorm"
)

type seedCompetency struct {
	Slug   string
	Name   string
	Weight int
}

// Role-default competency catalog. Weights sum to 100 per role. Slugs are
// stable so reseeding an existing database is a no-op.
var roleDefaults = map[models.Role][]seedCompetency{
	models.RoleDeveloper: {
		{"tech", "Technical Knowledge", 20},
		{"quality", "Code Quality", 15},
		{"problem", "Problem Solving", 15},
		{"performance", "Performance & Optimization", 10},
		{"collaboration", "Collaboration & Communication", 15},
		{"autonomy", "Autonomy & Ownership", 10},
		{"business", "Business Domain Knowledge", 10},
		{"innovation", "Innovation & Continuous Improvement", 5},
	},
	models.RoleQA: {
		{"testdomain", "Testing Domain", 20},
		{"testdesign", "Test Case Design", 15},
		{"automation", "Test Automation", 15},
		{"bugs", "Defect Detection & Documentation", 15},
		{"collaboration", "Collaboration & Communication", 15},
		{"autonomy", "Autonomy & Ownership", 10},
		{"business", "Business Domain Knowledge", 10},
	},
	models.RoleProductOwner: {
		{"product", "Product Management", 20},
		{"requirements", "Requirements Definition", 15},
		{"stakeholder", "Stakeholder Management", 15},
		{"roadmap", "Roadmap Planning", 15},
		{"collaboration", "Collaboration & Communication", 15},
		{"business", "Business Domain Knowledge", 10},
		{"innovation", "Innovation & Continuous Improvement", 10},
	},
	models.RoleScrumMaster: {
		{"agile", "Agile/Scrum Knowledge", 20},
		{"facilitation", "Ceremony Facilitation", 15},
		{"coaching", "Team Coaching", 15},
		{"impediments", "Impediment Management", 15},
		{"collaboration", "Collaboration & Communication", 15},
		{"problem", "Problem Solving", 10},
		{"autonomy", "Autonomy & Ownership", 10},
	},
	models.RoleUXUI: {
		{"design", "Design Skills", 20},
		{"usability", "User-Centered Approach", 20},
		{"tools", "Tooling Mastery (Figma, XD)", 15},
		{"prototyping", "Prototyping & Wireframing", 15},
		{"collaboration", "Collaboration & Communication", 15},
		{"problem", "Problem Solving", 10},
		{"innovation", "Innovation & Continuous Improvement", 5},
	},
	models.RoleDeliveryManager: {
		{"planning", "Planning & Scheduling", 20},
		{"risk", "Risk Management", 15},
		{"budget", "Budget Control", 15},
		{"stakeholder", "Stakeholder Management", 15},
		{"collaboration", "Collaboration & Communication", 15},
		{"problem", "Problem Solving", 10},
		{"business", "Business Domain Knowledge", 10},
	},
}

// SeedRoleDefaults installs the role-default competencies. Idempotent:
// existing rows (matched by id) are left untouched so manager edits and
// soft deletes survive restarts.
func SeedRoleDefaults(db *gorm.DB) error {
	for role, comps := range roleDefaults {
		for i, sc := range comps {
			comp := models.Competency{
				ID:           fmt.Sprintf("%s-%s", role, sc.Slug),
				Key:          sc.Slug,
				Name:         sc.Name,
				Weight:       sc.Weight,
				Role:         role,
				Active:       true,
				DisplayOrder: i,
			}
			if err := db.Where("id = ?", comp.ID).FirstOrCreate(&comp).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
