package repository

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/testutil"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"
)

func seedChildWithActivities(t *testing.T, db *gorm.DB, dates ...time.Time) *model.Child {
	t.Helper()
	user := &model.User{Email: "repo@example.com", Password: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	child := &model.Child{UserID: user.ID, Name: "Ada"}
	if err := db.Create(child).Error; err != nil {
		t.Fatalf("create child: %v", err)
	}
	for i, d := range dates {
		activity := &model.Activity{ChildID: child.ID, Title: fmt.Sprintf("Activity %d", i), ActivityDate: d}
		if err := db.Create(activity).Error; err != nil {
			t.Fatalf("create activity: %v", err)
		}
	}
	return child
}

func TestListForChildInRangeInclusiveBounds(t *testing.T) {
	db := testutil.OpenTestDB(t)

	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	child := seedChildWithActivities(t, db, day(1), day(5), day(10), day(11))

	repo := NewActivityRepository(db)
	got, err := repo.ListForChildInRange(child.ID, day(1), day(10))
	if err != nil {
		t.Fatalf("ListForChildInRange error: %v", err)
	}
	// Both endpoints are included; the day-11 entry is not.
	if len(got) != 3 {
		t.Fatalf("got %d activities, want 3", len(got))
	}
	if !got[0].ActivityDate.Equal(day(10)) || !got[2].ActivityDate.Equal(day(1)) {
		t.Fatalf("order = [%v .. %v], want newest first", got[0].ActivityDate, got[2].ActivityDate)
	}
}

func TestReplaceSkills(t *testing.T) {
	db := testutil.OpenTestDB(t)

	literacy := model.SkillCategory{Name: "Literacy"}
	physical := model.SkillCategory{Name: "Physical"}
	for _, sk := range []*model.SkillCategory{&literacy, &physical} {
		if err := db.Create(sk).Error; err != nil {
			t.Fatalf("create skill: %v", err)
		}
	}

	child := seedChildWithActivities(t, db)
	activity := &model.Activity{
		ChildID:      child.ID,
		Title:        "Story time",
		ActivityDate: time.Now(),
		Skills:       []model.SkillCategory{literacy},
	}
	repo := NewActivityRepository(db)
	if err := repo.Create(activity); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.ReplaceSkills(activity, []model.SkillCategory{physical}); err != nil {
		t.Fatalf("ReplaceSkills error: %v", err)
	}

	reloaded, err := repo.FindByID(activity.ID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if len(reloaded.Skills) != 1 || reloaded.Skills[0].Name != "Physical" {
		t.Fatalf("skills = %+v, want only Physical", reloaded.Skills)
	}
}
