package repository

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/plan"
	"errors"
	"time"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

// GetOrCreate returns the user's subscription, creating a free one if absent.
func (r *SubscriptionRepository) GetOrCreate(userID uint) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Where("user_id = ?", userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub = model.Subscription{
			UserID:    userID,
			Plan:      plan.Free,
			StartedAt: time.Now(),
		}
		if err := r.DB.Create(&sub).Error; err != nil {
			return nil, err
		}
		return &sub, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Save(sub *model.Subscription) error {
	return r.DB.Save(sub).Error
}

// ListUserIDsByPlan feeds the monthly snapshot archiver.
func (r *SubscriptionRepository) ListUserIDsByPlan(planName string) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Subscription{}).Where("plan = ?", planName).Pluck("user_id", &ids).Error
	return ids, err
}
