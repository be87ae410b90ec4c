package service

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/repository"
	"time"
)

const recentActivityCap = 10

// DashboardService builds the weekly overview for one child: activity count,
// zero-filled per-skill counts, missing skills and the most recent entries.
type DashboardService struct {
	ChildRepo    *repository.ChildRepository
	ActivityRepo *repository.ActivityRepository
	SkillRepo    *repository.SkillRepository
}

func NewDashboardService(childRepo *repository.ChildRepository, activityRepo *repository.ActivityRepository, skillRepo *repository.SkillRepository) *DashboardService {
	return &DashboardService{ChildRepo: childRepo, ActivityRepo: activityRepo, SkillRepo: skillRepo}
}

// Weekly covers the rolling 7-day window ending today, inclusive on both
// ends. Every catalog skill appears in the counts even at zero.
func (s *DashboardService) Weekly(userID, childID uint) (*model.WeeklyDashboard, error) {
	if _, err := s.ChildRepo.FindForUser(childID, userID); err != nil {
		return nil, err
	}

	catalog, err := s.SkillRepo.ListAll()
	if err != nil {
		return nil, err
	}

	today := dateOf(time.Now())
	from := today.AddDate(0, 0, -6)
	activities, err := s.ActivityRepo.ListForChildInRange(childID, from, today)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(catalog))
	for _, activity := range activities {
		for _, sk := range activity.Skills {
			counts[sk.Name]++
		}
	}

	dashboard := &model.WeeklyDashboard{
		ActivityCount: len(activities),
		SkillCounts:   make([]model.SkillCount, 0, len(catalog)),
		MissingSkills: []string{},
	}
	for _, sk := range catalog {
		dashboard.SkillCounts = append(dashboard.SkillCounts, model.SkillCount{
			SkillID: sk.ID,
			Skill:   sk.Name,
			Count:   counts[sk.Name],
		})
		if counts[sk.Name] == 0 {
			dashboard.MissingSkills = append(dashboard.MissingSkills, sk.Name)
		}
	}

	limit := len(activities)
	if limit > recentActivityCap {
		limit = recentActivityCap
	}
	dashboard.RecentActivities = make([]model.RecentActivity, 0, limit)
	for _, activity := range activities[:limit] {
		names := make([]string, 0, len(activity.Skills))
		for _, sk := range activity.Skills {
			names = append(names, sk.Name)
		}
		dashboard.RecentActivities = append(dashboard.RecentActivities, model.RecentActivity{
			ID:              activity.ID,
			Title:           activity.Title,
			ActivityDate:    activity.ActivityDate.Format("2006-01-02"),
			DurationMinutes: activity.DurationMinutes,
			Skills:          names,
		})
	}

	return dashboard, nil
}
