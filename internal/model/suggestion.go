package model

// Suggestion is curated activity content for one skill, applicable to the
// inclusive age band [MinAge, MaxAge]. Static reference data, seeded once.
// swagger:model Suggestion
type Suggestion struct {
	BaseModel
	SkillID     uint   `gorm:"index;not null" json:"skill_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	MinAge      int    `gorm:"not null" json:"min_age"`
	MaxAge      int    `gorm:"not null" json:"max_age"`

	Skill *SkillCategory `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

func (Suggestion) TableName() string {
	return "suggestions"
}
