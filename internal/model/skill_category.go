package model

// SkillCategory is a named developmental domain (Literacy, Numeracy, ...).
// The catalog is seeded once at migration time and treated as immutable.
// swagger:model SkillCategory
type SkillCategory struct {
	BaseModel
	Name string `gorm:"size:80;unique;not null" json:"name"`
}

func (SkillCategory) TableName() string {
	return "skill_categories"
}
