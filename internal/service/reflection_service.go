package service

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/repository"
	"time"
)

// ReflectionService manages dated parent journal notes per child.
type ReflectionService struct {
	ReflectionRepo *repository.ReflectionRepository
	ChildRepo      *repository.ChildRepository
}

func NewReflectionService(reflectionRepo *repository.ReflectionRepository, childRepo *repository.ChildRepository) *ReflectionService {
	return &ReflectionService{ReflectionRepo: reflectionRepo, ChildRepo: childRepo}
}

// ReflectionInput carries the writable reflection fields.
type ReflectionInput struct {
	ChildID   uint
	EntryDate time.Time
	Mood      string
	Note      string
}

func (s *ReflectionService) Create(userID uint, input ReflectionInput) (*model.Reflection, error) {
	if _, err := s.ChildRepo.FindForUser(input.ChildID, userID); err != nil {
		return nil, err
	}
	reflection := &model.Reflection{
		ChildID:   input.ChildID,
		EntryDate: dateOf(input.EntryDate),
		Mood:      input.Mood,
		Note:      input.Note,
	}
	if err := s.ReflectionRepo.Save(reflection); err != nil {
		return nil, err
	}
	return reflection, nil
}

func (s *ReflectionService) Update(userID uint, id string, input ReflectionInput) (*model.Reflection, error) {
	reflection, err := s.ReflectionRepo.FindForUser(id, userID)
	if err != nil {
		return nil, err
	}
	reflection.EntryDate = dateOf(input.EntryDate)
	reflection.Mood = input.Mood
	reflection.Note = input.Note
	if err := s.ReflectionRepo.Save(reflection); err != nil {
		return nil, err
	}
	return reflection, nil
}

func (s *ReflectionService) Delete(userID uint, id string) error {
	reflection, err := s.ReflectionRepo.FindForUser(id, userID)
	if err != nil {
		return err
	}
	return s.ReflectionRepo.Delete(reflection.ID)
}

// ListForChild returns a child's reflections, newest entry date first.
func (s *ReflectionService) ListForChild(userID, childID uint) ([]model.Reflection, error) {
	if _, err := s.ChildRepo.FindForUser(childID, userID); err != nil {
		return nil, err
	}
	return s.ReflectionRepo.ListForChild(childID)
}
