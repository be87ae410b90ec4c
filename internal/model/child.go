package model

import "time"

// Child is one child profile owned by a parent account.
// swagger:model Child
type Child struct {
	BaseModel
	UserID      uint       `gorm:"index;not null" json:"-"`
	Name        string     `gorm:"size:120;not null" json:"name"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`

	Activities []Activity `gorm:"foreignKey:ChildID" json:"-"`
}

func (Child) TableName() string {
	return "children"
}

// Age returns full years as of today, nil when date_of_birth is unset.
func (c *Child) Age() *int {
	return c.AgeAt(time.Now())
}

func (c *Child) AgeAt(now time.Time) *int {
	if c.DateOfBirth == nil {
		return nil
	}
	dob := *c.DateOfBirth
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return &years
}
