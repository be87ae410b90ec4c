package repository

import (
	"earlyledge_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(activity *model.Activity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepository) Update(activity *model.Activity) error {
	return r.DB.Save(activity).Error
}

func (r *ActivityRepository) Delete(id uint) error {
	return r.DB.Select("Skills").Delete(&model.Activity{BaseModel: model.BaseModel{ID: id}}).Error
}

func (r *ActivityRepository) FindByID(id uint) (*model.Activity, error) {
	var activity model.Activity
	err := r.DB.Preload("Skills").First(&activity, id).Error
	return &activity, err
}

// FindForUser resolves an activity through its child's owner.
func (r *ActivityRepository) FindForUser(id, userID uint) (*model.Activity, error) {
	var activity model.Activity
	err := r.DB.Preload("Skills").
		Joins("JOIN children ON children.id = activities.child_id").
		Where("activities.id = ? AND children.user_id = ?", id, userID).
		First(&activity).Error
	return &activity, err
}

// ListForUser returns all activities across the user's children, newest
// first, optionally restricted to one child.
func (r *ActivityRepository) ListForUser(userID uint, childID *uint) ([]model.Activity, error) {
	var activities []model.Activity
	q := r.DB.Preload("Skills").
		Joins("JOIN children ON children.id = activities.child_id").
		Where("children.user_id = ?", userID)
	if childID != nil {
		q = q.Where("activities.child_id = ?", *childID)
	}
	err := q.Order("activities.activity_date desc, activities.created_at desc").Find(&activities).Error
	return activities, err
}

// ListForChildInRange returns a child's activities with activity_date in
// [from, to] inclusive, newest first, skills preloaded.
func (r *ActivityRepository) ListForChildInRange(childID uint, from, to time.Time) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.Preload("Skills").
		Where("child_id = ? AND activity_date BETWEEN ? AND ?", childID, dateOnly(from), dateOnly(to)).
		Order("activity_date desc, created_at desc").
		Find(&activities).Error
	return activities, err
}

// ReplaceSkills sets the activity's skill tags, dropping any previous ones.
func (r *ActivityRepository) ReplaceSkills(activity *model.Activity, skills []model.SkillCategory) error {
	return r.DB.Model(activity).Association("Skills").Replace(skills)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
