package repository

import (
	"earlyledge_backend/internal/model"

	"gorm.io/gorm"
)

type ChildRepository struct {
	DB *gorm.DB
}

func NewChildRepository(db *gorm.DB) *ChildRepository {
	return &ChildRepository{DB: db}
}

func (r *ChildRepository) Create(child *model.Child) error {
	return r.DB.Create(child).Error
}

func (r *ChildRepository) Update(child *model.Child) error {
	return r.DB.Save(child).Error
}

func (r *ChildRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Child{}, id).Error
}

// FindForUser scopes the lookup to the owning account so one parent can never
// address another parent's child.
func (r *ChildRepository) FindForUser(id, userID uint) (*model.Child, error) {
	var child model.Child
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&child).Error
	return &child, err
}

func (r *ChildRepository) ListForUser(userID uint) ([]model.Child, error) {
	var children []model.Child
	err := r.DB.Where("user_id = ?", userID).Order("name asc").Find(&children).Error
	return children, err
}

func (r *ChildRepository) CountForUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Child{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
