package service

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/plan"
	"earlyledge_backend/internal/repository"
	"earlyledge_backend/internal/util"
	"time"
)

// PlanService is the single place that answers plan-aware questions. Views
// and services call these helpers instead of reaching into the limits table.
type PlanService struct {
	SubscriptionRepo *repository.SubscriptionRepository
	ChildRepo        *repository.ChildRepository
}

func NewPlanService(subscriptionRepo *repository.SubscriptionRepository, childRepo *repository.ChildRepository) *PlanService {
	return &PlanService{SubscriptionRepo: subscriptionRepo, ChildRepo: childRepo}
}

func (s *PlanService) Limits(userID uint) (plan.Limits, error) {
	sub, err := s.SubscriptionRepo.GetOrCreate(userID)
	if err != nil {
		return plan.Limits{}, err
	}
	return plan.LimitsFor(sub.Plan), nil
}

// Info returns the JSON-friendly plan description served by /me/plan.
func (s *PlanService) Info(userID uint) (*model.PlanInfo, error) {
	sub, err := s.SubscriptionRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	limits := plan.LimitsFor(sub.Plan)

	info := &model.PlanInfo{
		Plan:                    sub.Plan,
		IsPlus:                  sub.Plan == plan.Plus,
		MaxChildren:             limits.MaxChildren,
		VisibilityDays:          limits.VisibilityDays,
		PersonalizedSuggestions: limits.PersonalizedSuggestions,
		PrintableReports:        limits.PrintableReports,
		LongTermTrends:          limits.LongTermTrends,
		StartedAt:               sub.StartedAt.Format(time.RFC3339),
		UpgradeURL:              "/pricing",
	}
	if sub.EndsAt != nil {
		ends := sub.EndsAt.Format(time.RFC3339)
		info.EndsAt = &ends
	}
	return info, nil
}

// VisibilityStart returns the earliest date the user may see data for.
// Nil means unrestricted (all-time).
func (s *PlanService) VisibilityStart(userID uint) (*time.Time, error) {
	limits, err := s.Limits(userID)
	if err != nil {
		return nil, err
	}
	if limits.VisibilityDays == nil {
		return nil, nil
	}
	start := time.Now().AddDate(0, 0, -*limits.VisibilityDays)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	return &start, nil
}

// CanAddChild checks the child-profile cap for the user's tier.
func (s *PlanService) CanAddChild(userID uint) (bool, error) {
	limits, err := s.Limits(userID)
	if err != nil {
		return false, err
	}
	count, err := s.ChildRepo.CountForUser(userID)
	if err != nil {
		return false, err
	}
	return count < int64(limits.MaxChildren), nil
}

// SetPlan upgrades or downgrades a user (admin path).
func (s *PlanService) SetPlan(userID uint, planName string) (*model.Subscription, error) {
	if !plan.Valid(planName) {
		return nil, util.ErrInvalidPlan
	}
	sub, err := s.SubscriptionRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	sub.Plan = planName
	sub.StartedAt = time.Now()
	sub.EndsAt = nil
	sub.CanceledAt = nil
	if err := s.SubscriptionRepo.Save(sub); err != nil {
		return nil, err
	}
	return sub, nil
}
