package service

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/repository"
	"earlyledge_backend/internal/testutil"
	"testing"
	"time"

	"gorm.io/gorm"
)

func openSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.OpenTestDB(t)
	for _, name := range []string{
		"Literacy", "Numeracy", "Creativity", "Physical",
		"Social/Emotional", "Practical Life", "Critical Thinking",
	} {
		if err := db.Create(&model.SkillCategory{Name: name}).Error; err != nil {
			t.Fatalf("seed skill %s: %v", name, err)
		}
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Password: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createChild(t *testing.T, db *gorm.DB, userID uint, name string, age int) *model.Child {
	t.Helper()
	child := &model.Child{UserID: userID, Name: name}
	if age >= 0 {
		dob := time.Now().AddDate(-age, 0, -30)
		child.DateOfBirth = &dob
	}
	if err := db.Create(child).Error; err != nil {
		t.Fatalf("create child: %v", err)
	}
	return child
}

func createActivity(t *testing.T, db *gorm.DB, childID uint, title string, daysAgo int, skillNames ...string) *model.Activity {
	t.Helper()
	var skills []model.SkillCategory
	if len(skillNames) > 0 {
		if err := db.Where("name IN ?", skillNames).Find(&skills).Error; err != nil {
			t.Fatalf("load skills: %v", err)
		}
		if len(skills) != len(skillNames) {
			t.Fatalf("unknown skill in %v", skillNames)
		}
	}
	date := time.Now().AddDate(0, 0, -daysAgo)
	activity := &model.Activity{
		ChildID:      childID,
		Title:        title,
		ActivityDate: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		Skills:       skills,
	}
	if err := db.Create(activity).Error; err != nil {
		t.Fatalf("create activity: %v", err)
	}
	return activity
}

func setPlan(t *testing.T, db *gorm.DB, userID uint, planName string) {
	t.Helper()
	subs := repository.NewSubscriptionRepository(db)
	plans := NewPlanService(subs, repository.NewChildRepository(db))
	if _, err := plans.SetPlan(userID, planName); err != nil {
		t.Fatalf("set plan %s: %v", planName, err)
	}
}

func newPlanService(db *gorm.DB) *PlanService {
	return NewPlanService(repository.NewSubscriptionRepository(db), repository.NewChildRepository(db))
}
