package service

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/repository"
	"time"
)

// ActivityService owns the activity log. Skill tags are resolved exactly once
// at creation, either from explicit ids or from the keyword mapper; updates
// never re-run the auto-mapping.
type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	ChildRepo    *repository.ChildRepository
	SkillRepo    *repository.SkillRepository
	SkillMap     *SkillMapService
	Plans        *PlanService
}

func NewActivityService(
	activityRepo *repository.ActivityRepository,
	childRepo *repository.ChildRepository,
	skillRepo *repository.SkillRepository,
	skillMap *SkillMapService,
	plans *PlanService,
) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		ChildRepo:    childRepo,
		SkillRepo:    skillRepo,
		SkillMap:     skillMap,
		Plans:        plans,
	}
}

// ActivityInput carries the writable activity fields. SkillIDs are honored
// only when non-empty; a nil or empty slice triggers keyword auto-mapping.
type ActivityInput struct {
	ChildID         uint
	Title           string
	Notes           string
	DurationMinutes *int
	ActivityDate    time.Time
	SkillIDs        []uint
}

// Create logs an activity for one of the user's children.
func (s *ActivityService) Create(userID uint, input ActivityInput) (*model.Activity, error) {
	if _, err := s.ChildRepo.FindForUser(input.ChildID, userID); err != nil {
		return nil, err
	}

	skills, err := s.resolveSkills(input)
	if err != nil {
		return nil, err
	}

	activity := &model.Activity{
		ChildID:         input.ChildID,
		Title:           input.Title,
		Notes:           input.Notes,
		DurationMinutes: input.DurationMinutes,
		ActivityDate:    dateOf(input.ActivityDate),
		Skills:          skills,
	}
	if err := s.ActivityRepo.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Update edits an activity. The skill set is replaced only when explicit ids
// are sent; text edits keep the tags the activity already has and never
// re-run the auto-mapping.
func (s *ActivityService) Update(userID, activityID uint, input ActivityInput) (*model.Activity, error) {
	activity, err := s.ActivityRepo.FindForUser(activityID, userID)
	if err != nil {
		return nil, err
	}

	activity.Title = input.Title
	activity.Notes = input.Notes
	activity.DurationMinutes = input.DurationMinutes
	activity.ActivityDate = dateOf(input.ActivityDate)

	if len(input.SkillIDs) > 0 {
		skills, err := s.SkillRepo.FindByIDs(input.SkillIDs)
		if err != nil {
			return nil, err
		}
		if err := s.ActivityRepo.ReplaceSkills(activity, skills); err != nil {
			return nil, err
		}
		activity.Skills = skills
	}

	if err := s.ActivityRepo.Update(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) Delete(userID, activityID uint) error {
	activity, err := s.ActivityRepo.FindForUser(activityID, userID)
	if err != nil {
		return err
	}
	return s.ActivityRepo.Delete(activity.ID)
}

func (s *ActivityService) Get(userID, activityID uint) (*model.Activity, error) {
	return s.ActivityRepo.FindForUser(activityID, userID)
}

// List returns the user's activities, newest first, optionally scoped to one
// child and always clamped to the plan's visibility window.
func (s *ActivityService) List(userID uint, childID *uint) ([]model.Activity, error) {
	if childID != nil {
		if _, err := s.ChildRepo.FindForUser(*childID, userID); err != nil {
			return nil, err
		}
	}

	activities, err := s.ActivityRepo.ListForUser(userID, childID)
	if err != nil {
		return nil, err
	}

	vis, err := s.Plans.VisibilityStart(userID)
	if err != nil {
		return nil, err
	}
	if vis == nil {
		return activities, nil
	}

	visible := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if !a.ActivityDate.Before(*vis) {
			visible = append(visible, a)
		}
	}
	return visible, nil
}

func (s *ActivityService) resolveSkills(input ActivityInput) ([]model.SkillCategory, error) {
	if len(input.SkillIDs) > 0 {
		return s.SkillRepo.FindByIDs(input.SkillIDs)
	}
	return s.SkillMap.MapSkills(input.Title + " " + input.Notes)
}
