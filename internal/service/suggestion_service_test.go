package service

import (
	"context"
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/repository"
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func newSuggestionService(db *gorm.DB) *SuggestionService {
	return NewSuggestionService(
		repository.NewSuggestionRepository(db),
		repository.NewChildRepository(db),
		nil,
	)
}

func seedSuggestion(t *testing.T, db *gorm.DB, skillName, title string, minAge, maxAge int) {
	t.Helper()
	var skill model.SkillCategory
	if err := db.Where("name = ?", skillName).First(&skill).Error; err != nil {
		t.Fatalf("load skill %s: %v", skillName, err)
	}
	sug := &model.Suggestion{SkillID: skill.ID, Title: title, MinAge: minAge, MaxAge: maxAge}
	if err := db.Create(sug).Error; err != nil {
		t.Fatalf("seed suggestion %s: %v", title, err)
	}
}

func TestSuggestionListFiltersByAgeBand(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "browse@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)

	seedSuggestion(t, db, "Literacy", "Bedtime story", 3, 6)
	seedSuggestion(t, db, "Literacy", "Chapter book club", 8, 12)
	seedSuggestion(t, db, "Numeracy", "Count the stairs", 4, 7)

	svc := newSuggestionService(db)
	views, err := svc.List(user.ID, child.ID, nil)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("views = %v, want the two age-5 entries", views)
	}
	for _, v := range views {
		if v.Title == "Chapter book club" {
			t.Fatalf("out-of-band suggestion returned: %v", views)
		}
	}
}

func TestSuggestionListOrderedBySkillThenTitle(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "order@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)

	// Seeded out of order on purpose.
	seedSuggestion(t, db, "Numeracy", "Count the stairs", 3, 8)
	seedSuggestion(t, db, "Literacy", "Storytime", 3, 8)
	seedSuggestion(t, db, "Literacy", "Alphabet hunt", 3, 8)

	svc := newSuggestionService(db)
	views, err := svc.List(user.ID, child.ID, nil)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	want := []string{"Alphabet hunt", "Storytime", "Count the stairs"}
	if len(views) != len(want) {
		t.Fatalf("views = %v, want %d entries", views, len(want))
	}
	for i, title := range want {
		if views[i].Title != title {
			t.Fatalf("views[%d].Title = %q, want %q", i, views[i].Title, title)
		}
	}
}

func TestSuggestionListSkillFilter(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "filter@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)

	seedSuggestion(t, db, "Literacy", "Bedtime story", 3, 6)
	seedSuggestion(t, db, "Numeracy", "Count the stairs", 4, 7)

	var numeracy model.SkillCategory
	if err := db.Where("name = ?", "Numeracy").First(&numeracy).Error; err != nil {
		t.Fatalf("load skill: %v", err)
	}

	svc := newSuggestionService(db)
	views, err := svc.List(user.ID, child.ID, &numeracy.ID)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(views) != 1 || views[0].Title != "Count the stairs" {
		t.Fatalf("views = %v, want only the Numeracy entry", views)
	}
}

func TestSuggestionListEmptyWithoutBirthDate(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "nodob@example.com")
	child := createChild(t, db, user.ID, "Ada", -1)

	seedSuggestion(t, db, "Literacy", "Bedtime story", 0, 12)

	svc := newSuggestionService(db)
	views, err := svc.List(user.ID, child.ID, nil)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if views == nil || len(views) != 0 {
		t.Fatalf("views = %v, want an empty list", views)
	}
}

func TestDailySuggestionsCapAndOwnership(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "daily@example.com")
	other := createUser(t, db, "stranger@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)

	for i := 0; i < 6; i++ {
		seedSuggestion(t, db, "Literacy", fmt.Sprintf("Story %d", i), 3, 8)
	}

	svc := newSuggestionService(db)
	views, err := svc.Daily(context.Background(), user.ID, child.ID)
	if err != nil {
		t.Fatalf("Daily error: %v", err)
	}
	if len(views) != dailySuggestionCount {
		t.Fatalf("daily picks = %d, want %d", len(views), dailySuggestionCount)
	}

	if _, err := svc.Daily(context.Background(), other.ID, child.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("cross-account daily err = %v, want record not found", err)
	}
}
