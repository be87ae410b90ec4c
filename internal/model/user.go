package model

// swagger:model User
type User struct {
	BaseModel
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`

	Children []Child `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
