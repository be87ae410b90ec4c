package service

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/repository"
	"earlyledge_backend/internal/util"
	"time"
)

// ChildService manages child profiles, enforcing the plan's profile cap.
type ChildService struct {
	ChildRepo *repository.ChildRepository
	Plans     *PlanService
}

func NewChildService(childRepo *repository.ChildRepository, plans *PlanService) *ChildService {
	return &ChildService{ChildRepo: childRepo, Plans: plans}
}

// ChildUpdate carries the editable child fields.
type ChildUpdate struct {
	Name        string
	DateOfBirth *time.Time
}

// Create adds a child profile if the user's plan still has room.
func (s *ChildService) Create(userID uint, child *model.Child) error {
	ok, err := s.Plans.CanAddChild(userID)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrChildLimitReached
	}
	child.UserID = userID
	return s.ChildRepo.Create(child)
}

func (s *ChildService) List(userID uint) ([]model.Child, error) {
	return s.ChildRepo.ListForUser(userID)
}

func (s *ChildService) Get(userID, childID uint) (*model.Child, error) {
	return s.ChildRepo.FindForUser(childID, userID)
}

// Update changes name and date of birth. Ownership is checked first, so the
// update can never move a child between accounts.
func (s *ChildService) Update(userID, childID uint, upd ChildUpdate) (*model.Child, error) {
	child, err := s.ChildRepo.FindForUser(childID, userID)
	if err != nil {
		return nil, err
	}
	child.Name = upd.Name
	child.DateOfBirth = upd.DateOfBirth
	if err := s.ChildRepo.Update(child); err != nil {
		return nil, err
	}
	return child, nil
}

func (s *ChildService) Delete(userID, childID uint) error {
	child, err := s.ChildRepo.FindForUser(childID, userID)
	if err != nil {
		return err
	}
	return s.ChildRepo.Delete(child.ID)
}
