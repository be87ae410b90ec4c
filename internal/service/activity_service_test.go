package service

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/plan"
	"earlyledge_backend/internal/repository"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newActivityService(db *gorm.DB) *ActivityService {
	skillRepo := repository.NewSkillRepository(db)
	return NewActivityService(
		repository.NewActivityRepository(db),
		repository.NewChildRepository(db),
		skillRepo,
		NewSkillMapService(skillRepo),
		newPlanService(db),
	)
}

func skillNames(skills []model.SkillCategory) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

func TestActivityCreateAutoMapsSkills(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "log@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)
	svc := newActivityService(db)

	activity, err := svc.Create(user.ID, ActivityInput{
		ChildID:      child.ID,
		Title:        "Read a dinosaur book",
		Notes:        "Counted the dinosaurs on each page",
		ActivityDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got := skillNames(activity.Skills)
	want := []string{"Literacy", "Numeracy"}
	if len(got) != len(want) {
		t.Fatalf("skills = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("skills = %v, want %v", got, want)
		}
	}
}

func TestActivityCreateFallsBackWhenNoKeywordMatches(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "fallback@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)
	svc := newActivityService(db)

	activity, err := svc.Create(user.ID, ActivityInput{
		ChildID:      child.ID,
		Title:        "Afternoon nap",
		ActivityDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got := skillNames(activity.Skills); len(got) != 1 || got[0] != FallbackSkill {
		t.Fatalf("skills = %v, want [%s]", got, FallbackSkill)
	}
}

func TestActivityCreateEmptySkillIDsAutoMaps(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "emptyids@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)
	svc := newActivityService(db)

	// An empty slice is not an explicit assignment; the classifier runs
	// exactly as if skill_ids had been omitted.
	activity, err := svc.Create(user.ID, ActivityInput{
		ChildID:      child.ID,
		Title:        "Read a dinosaur book",
		ActivityDate: time.Now(),
		SkillIDs:     []uint{},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got := skillNames(activity.Skills); len(got) != 1 || got[0] != "Literacy" {
		t.Fatalf("skills with empty skill_ids = %v, want [Literacy]", got)
	}
}

func TestActivityCreateExplicitSkillsSkipMapping(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "explicit@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)
	svc := newActivityService(db)

	var physical model.SkillCategory
	if err := db.Where("name = ?", "Physical").First(&physical).Error; err != nil {
		t.Fatalf("load skill: %v", err)
	}

	activity, err := svc.Create(user.ID, ActivityInput{
		ChildID:      child.ID,
		Title:        "Read a book", // would auto-map to Literacy
		ActivityDate: time.Now(),
		SkillIDs:     []uint{physical.ID},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got := skillNames(activity.Skills); len(got) != 1 || got[0] != "Physical" {
		t.Fatalf("skills = %v, want [Physical]", got)
	}
}

func TestActivityUpdateKeepsTagsOnTextEdit(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "edit@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)
	svc := newActivityService(db)

	activity, err := svc.Create(user.ID, ActivityInput{
		ChildID:      child.ID,
		Title:        "Read a book",
		ActivityDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// A rename that would classify differently must not touch the tags.
	updated, err := svc.Update(user.ID, activity.ID, ActivityInput{
		ChildID:      child.ID,
		Title:        "Bike ride in the park",
		ActivityDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got := skillNames(updated.Skills); len(got) != 1 || got[0] != "Literacy" {
		t.Fatalf("skills after text edit = %v, want [Literacy]", got)
	}

	// An empty skill_ids slice on update is not an explicit assignment
	// either; the tags stay put.
	updated, err = svc.Update(user.ID, activity.ID, ActivityInput{
		ChildID:      child.ID,
		Title:        "Bike ride in the park",
		ActivityDate: time.Now(),
		SkillIDs:     []uint{},
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got := skillNames(updated.Skills); len(got) != 1 || got[0] != "Literacy" {
		t.Fatalf("skills after empty skill_ids update = %v, want [Literacy]", got)
	}

	reloaded, err := svc.Get(user.ID, activity.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got := skillNames(reloaded.Skills); len(got) != 1 || got[0] != "Literacy" {
		t.Fatalf("persisted skills = %v, want [Literacy]", got)
	}
}

func TestActivityUpdateReplacesTagsWhenExplicit(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "retag@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)
	svc := newActivityService(db)

	activity, err := svc.Create(user.ID, ActivityInput{
		ChildID:      child.ID,
		Title:        "Read a book",
		ActivityDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	var numeracy model.SkillCategory
	if err := db.Where("name = ?", "Numeracy").First(&numeracy).Error; err != nil {
		t.Fatalf("load skill: %v", err)
	}

	updated, err := svc.Update(user.ID, activity.ID, ActivityInput{
		ChildID:      child.ID,
		Title:        "Read a book",
		ActivityDate: time.Now(),
		SkillIDs:     []uint{numeracy.ID},
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got := skillNames(updated.Skills); len(got) != 1 || got[0] != "Numeracy" {
		t.Fatalf("skills = %v, want [Numeracy]", got)
	}
}

func TestActivityListClampsToVisibilityWindow(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "window@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)
	svc := newActivityService(db)

	createActivity(t, db, child.ID, "Recent walk", 5, "Physical")
	createActivity(t, db, child.ID, "Old story", 120, "Literacy")

	// Free plan sees only the last 90 days.
	activities, err := svc.List(user.ID, nil)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(activities) != 1 || activities[0].Title != "Recent walk" {
		t.Fatalf("free list = %v, want only the recent entry", skillTitles(activities))
	}

	setPlan(t, db, user.ID, plan.Plus)
	activities, err = svc.List(user.ID, nil)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("plus list = %v, want both entries", skillTitles(activities))
	}
}

func skillTitles(activities []model.Activity) []string {
	titles := make([]string, 0, len(activities))
	for _, a := range activities {
		titles = append(titles, a.Title)
	}
	return titles
}
