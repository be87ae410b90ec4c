package repository

import (
	"earlyledge_backend/internal/model"

	"gorm.io/gorm"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

// ListAll returns the full catalog in its natural order (name ascending).
func (r *SkillRepository) ListAll() ([]model.SkillCategory, error) {
	var skills []model.SkillCategory
	err := r.DB.Order("name asc").Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) FindByName(name string) (*model.SkillCategory, error) {
	var skill model.SkillCategory
	err := r.DB.Where("name = ?", name).First(&skill).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) FindByIDs(ids []uint) ([]model.SkillCategory, error) {
	var skills []model.SkillCategory
	err := r.DB.Where("id IN ?", ids).Find(&skills).Error
	return skills, err
}
