package service

import (
	"earlyledge_backend/internal/plan"
	"earlyledge_backend/internal/util"
	"errors"
	"testing"
	"time"
)

func TestLimitsDefaultToFree(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "new@example.com")
	plans := newPlanService(db)

	limits, err := plans.Limits(user.ID)
	if err != nil {
		t.Fatalf("Limits error: %v", err)
	}
	if limits.MaxChildren != 1 {
		t.Fatalf("MaxChildren = %d, want 1", limits.MaxChildren)
	}
	if limits.VisibilityDays == nil || *limits.VisibilityDays != 90 {
		t.Fatalf("VisibilityDays = %v, want 90", limits.VisibilityDays)
	}
	if limits.PersonalizedSuggestions || limits.PrintableReports || limits.LongTermTrends {
		t.Fatalf("free plan granted plus features: %+v", limits)
	}
}

func TestSetPlanUpgrade(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "upgrade@example.com")
	plans := newPlanService(db)

	sub, err := plans.SetPlan(user.ID, plan.Plus)
	if err != nil {
		t.Fatalf("SetPlan error: %v", err)
	}
	if sub.Plan != plan.Plus {
		t.Fatalf("plan = %s, want plus", sub.Plan)
	}

	info, err := plans.Info(user.ID)
	if err != nil {
		t.Fatalf("Info error: %v", err)
	}
	if !info.IsPlus || info.MaxChildren != 5 || info.VisibilityDays != nil {
		t.Fatalf("info = %+v, want unrestricted plus", info)
	}
	if !info.PersonalizedSuggestions || !info.PrintableReports || !info.LongTermTrends {
		t.Fatalf("plus info missing features: %+v", info)
	}
}

func TestSetPlanRejectsUnknown(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "bogus@example.com")
	plans := newPlanService(db)

	if _, err := plans.SetPlan(user.ID, "platinum"); !errors.Is(err, util.ErrInvalidPlan) {
		t.Fatalf("err = %v, want ErrInvalidPlan", err)
	}
}

func TestVisibilityStart(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "vis@example.com")
	plans := newPlanService(db)

	start, err := plans.VisibilityStart(user.ID)
	if err != nil {
		t.Fatalf("VisibilityStart error: %v", err)
	}
	if start == nil {
		t.Fatal("free plan should have a visibility start")
	}
	wantDay := time.Now().AddDate(0, 0, -90)
	if start.Year() != wantDay.Year() || start.YearDay() != wantDay.YearDay() {
		t.Fatalf("start = %v, want the day 90 days back", start)
	}
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Fatalf("start = %v, want midnight", start)
	}

	if _, err := plans.SetPlan(user.ID, plan.Plus); err != nil {
		t.Fatalf("SetPlan error: %v", err)
	}
	start, err = plans.VisibilityStart(user.ID)
	if err != nil {
		t.Fatalf("VisibilityStart error: %v", err)
	}
	if start != nil {
		t.Fatalf("plus plan start = %v, want nil", start)
	}
}

func TestCanAddChildCap(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "cap@example.com")
	plans := newPlanService(db)

	ok, err := plans.CanAddChild(user.ID)
	if err != nil || !ok {
		t.Fatalf("CanAddChild = %v err=%v, want true", ok, err)
	}

	createChild(t, db, user.ID, "First", 5)
	ok, err = plans.CanAddChild(user.ID)
	if err != nil || ok {
		t.Fatalf("CanAddChild after cap = %v err=%v, want false", ok, err)
	}

	if _, err := plans.SetPlan(user.ID, plan.Plus); err != nil {
		t.Fatalf("SetPlan error: %v", err)
	}
	ok, err = plans.CanAddChild(user.ID)
	if err != nil || !ok {
		t.Fatalf("CanAddChild on plus = %v err=%v, want true", ok, err)
	}
}
