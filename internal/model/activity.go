package model

import "time"

// Activity is one logged activity for a child. ActivityDate is the logical
// date the activity happened, distinct from CreatedAt. The skill set is fixed
// at creation (explicit ids or keyword auto-mapping) and never recomputed.
// swagger:model Activity
type Activity struct {
	BaseModel
	ChildID         uint      `gorm:"index;not null" json:"child_id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Notes           string    `gorm:"type:text" json:"notes"`
	DurationMinutes *int      `json:"duration_minutes"`
	ActivityDate    time.Time `gorm:"type:date;index;not null" json:"activity_date"`

	Skills []SkillCategory `gorm:"many2many:activity_skills;" json:"skills"`
}

func (Activity) TableName() string {
	return "activities"
}

// ActivitySkill is the join row between activities and skill categories.
// One skill tag at most per (activity, skill) pair.
type ActivitySkill struct {
	ActivityID      uint `gorm:"primaryKey"`
	SkillCategoryID uint `gorm:"primaryKey"`
}

func (ActivitySkill) TableName() string {
	return "activity_skills"
}
