package repository

import (
	"earlyledge_backend/internal/model"

	"gorm.io/gorm"
)

type ReflectionRepository struct {
	DB *gorm.DB
}

func NewReflectionRepository(db *gorm.DB) *ReflectionRepository {
	return &ReflectionRepository{DB: db}
}

func (r *ReflectionRepository) Save(reflection *model.Reflection) error {
	return r.DB.Save(reflection).Error
}

func (r *ReflectionRepository) Delete(id string) error {
	return r.DB.Delete(&model.Reflection{}, "id = ?", id).Error
}

// FindForUser resolves a reflection through its child's owner.
func (r *ReflectionRepository) FindForUser(id string, userID uint) (*model.Reflection, error) {
	var reflection model.Reflection
	err := r.DB.Joins("JOIN children ON children.id = reflections.child_id").
		Where("reflections.id = ? AND children.user_id = ?", id, userID).
		First(&reflection).Error
	return &reflection, err
}

func (r *ReflectionRepository) ListForChild(childID uint) ([]model.Reflection, error) {
	var reflections []model.Reflection
	err := r.DB.Where("child_id = ?", childID).Order("entry_date desc").Find(&reflections).Error
	return reflections, err
}
