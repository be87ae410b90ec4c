package model

import "time"

// Reflection is a dated parent journal note attached to a child.
// swagger:model
type Reflection struct {
	UUIDBase
	ChildID   uint      `gorm:"index;not null" json:"child_id"`
	EntryDate time.Time `gorm:"type:date;not null" json:"entry_date"`
	Mood      string    `gorm:"size:40" json:"mood"`
	Note      string    `gorm:"type:text" json:"note"`

	Child *Child `gorm:"foreignKey:ChildID" json:"child,omitempty"`
}

func (Reflection) TableName() string {
	return "reflections"
}
