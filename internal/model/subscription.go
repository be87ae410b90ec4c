package model

import "time"

// Subscription is the one plan row per user, created lazily as free.
// swagger:model Subscription
type Subscription struct {
	BaseModel
	UserID     uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Plan       string     `gorm:"size:20;not null;default:'free'" json:"plan"`
	StartedAt  time.Time  `json:"started_at"`
	EndsAt     *time.Time `json:"ends_at"`
	CanceledAt *time.Time `json:"canceled_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
