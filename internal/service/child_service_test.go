package service

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/plan"
	"earlyledge_backend/internal/repository"
	"earlyledge_backend/internal/util"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func newChildService(db *gorm.DB) *ChildService {
	return NewChildService(repository.NewChildRepository(db), newPlanService(db))
}

func TestChildCreateEnforcesPlanCap(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "parent@example.com")
	svc := newChildService(db)

	if err := svc.Create(user.ID, &model.Child{Name: "First"}); err != nil {
		t.Fatalf("first child: %v", err)
	}
	err := svc.Create(user.ID, &model.Child{Name: "Second"})
	if !errors.Is(err, util.ErrChildLimitReached) {
		t.Fatalf("second child on free plan err = %v, want ErrChildLimitReached", err)
	}

	setPlan(t, db, user.ID, plan.Plus)
	if err := svc.Create(user.ID, &model.Child{Name: "Second"}); err != nil {
		t.Fatalf("second child on plus: %v", err)
	}
}

func TestChildOwnershipScoping(t *testing.T) {
	db := openSeededDB(t)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	child := createChild(t, db, owner.ID, "Ada", 5)

	svc := newChildService(db)

	if _, err := svc.Get(other.ID, child.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("cross-account get err = %v, want record not found", err)
	}
	if err := svc.Delete(other.ID, child.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("cross-account delete err = %v, want record not found", err)
	}

	got, err := svc.Get(owner.ID, child.ID)
	if err != nil || got.Name != "Ada" {
		t.Fatalf("owner get = %+v err=%v", got, err)
	}
}

func TestChildUpdate(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "edit@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)

	svc := newChildService(db)
	updated, err := svc.Update(user.ID, child.ID, ChildUpdate{Name: "Ada L.", DateOfBirth: nil})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Name != "Ada L." || updated.DateOfBirth != nil {
		t.Fatalf("updated = %+v", updated)
	}
	if updated.Age() != nil {
		t.Fatal("age should be unknown after clearing date of birth")
	}
}
