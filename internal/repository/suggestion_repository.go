package repository

import (
	"earlyledge_backend/internal/model"

	"gorm.io/gorm"
)

type SuggestionRepository struct {
	DB *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{DB: db}
}

// FindForSkillsInAgeRange returns curated suggestions for the named skills
// whose age band intersects [minAge, maxAge], in the catalog's natural
// order: skill name ascending, then title ascending. A known age is passed
// as minAge == maxAge, which reduces the filter to band containment.
func (r *SuggestionRepository) FindForSkillsInAgeRange(skillNames []string, minAge, maxAge int) ([]model.Suggestion, error) {
	if len(skillNames) == 0 {
		return nil, nil
	}
	var suggestions []model.Suggestion
	err := r.DB.Preload("Skill").
		Joins("JOIN skill_categories ON skill_categories.id = suggestions.skill_id").
		Where("skill_categories.name IN ?", skillNames).
		Where("suggestions.min_age <= ? AND suggestions.max_age >= ?", maxAge, minAge).
		Order("skill_categories.name asc, suggestions.title asc").
		Find(&suggestions).Error
	return suggestions, err
}

// ListFiltered backs the basic suggestion list endpoint, in the catalog's
// natural order: skill name ascending, then title ascending. Both filters
// are optional; age < 0 disables the age filter.
func (r *SuggestionRepository) ListFiltered(skillID *uint, age int) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	q := r.DB.Preload("Skill").
		Joins("JOIN skill_categories ON skill_categories.id = suggestions.skill_id")
	if skillID != nil {
		q = q.Where("suggestions.skill_id = ?", *skillID)
	}
	if age >= 0 {
		q = q.Where("suggestions.min_age <= ? AND suggestions.max_age >= ?", age, age)
	}
	err := q.Order("skill_categories.name asc, suggestions.title asc").Find(&suggestions).Error
	return suggestions, err
}
