package service

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/plan"
	"earlyledge_backend/internal/repository"
	"earlyledge_backend/internal/util"
	"earlyledge_backend/pkg/pdfgen"
	"errors"
	"testing"
	"time"
)

func TestResolveTimeRange(t *testing.T) {
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)

	start, applied := resolveTimeRange(RangeLast30Days, today)
	if applied != RangeLast30Days || !start.Equal(today.AddDate(0, 0, -30)) {
		t.Fatalf("last30days -> %v %q", start, applied)
	}

	start, applied = resolveTimeRange(RangeThisYear, today)
	if applied != RangeThisYear || start.Month() != time.January || start.Day() != 1 {
		t.Fatalf("thisyear -> %v %q", start, applied)
	}

	// Unknown selectors fall back to the 90-day default.
	start, applied = resolveTimeRange("bogus", today)
	if applied != RangeLast3Months || !start.Equal(today.AddDate(0, 0, -90)) {
		t.Fatalf("bogus -> %v %q", start, applied)
	}
}

func TestPerWeekRate(t *testing.T) {
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	// 10 activities over 90 days is 0.777... per week, rounded to 0.8.
	if got := perWeekRate(10, today.AddDate(0, 0, -90), today); got != 0.8 {
		t.Fatalf("perWeekRate(10, 90d) = %v, want 0.8", got)
	}

	// Ranges under a week are floored to one week.
	if got := perWeekRate(3, today.AddDate(0, 0, -2), today); got != 3.0 {
		t.Fatalf("perWeekRate(3, 2d) = %v, want 3", got)
	}

	if got := perWeekRate(0, today.AddDate(0, 0, -30), today); got != 0.0 {
		t.Fatalf("perWeekRate(0, 30d) = %v, want 0", got)
	}
}

func TestSkillDistributionTieOrder(t *testing.T) {
	activities := activitiesWithSkills(
		[]string{"Physical"},
		[]string{"Literacy", "Numeracy"},
		[]string{"Literacy"},
		[]string{"Numeracy"},
	)

	dist := skillDistribution(activities)
	// Literacy and Numeracy tie at 2; Literacy was seen first. Physical
	// trails at 1.
	want := []struct {
		skill string
		count int
	}{{"Literacy", 2}, {"Numeracy", 2}, {"Physical", 1}}
	if len(dist) != len(want) {
		t.Fatalf("dist = %v, want 3 entries", dist)
	}
	for i, w := range want {
		if dist[i].Skill != w.skill || dist[i].Count != w.count {
			t.Fatalf("dist[%d] = %+v, want %+v", i, dist[i], w)
		}
	}
}

func TestMonthlySeriesIncludesEmptyMonths(t *testing.T) {
	start := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	activities := []model.Activity{
		{ActivityDate: time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
			Skills: []model.SkillCategory{{Name: "Literacy"}}},
		{ActivityDate: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
			Skills: []model.SkillCategory{{Name: "Physical"}}},
	}

	series := monthlySeries(activities, start, today)
	wantMonths := []string{"January 2026", "February 2026", "March 2026"}
	if len(series) != len(wantMonths) {
		t.Fatalf("series = %v, want %d months", series, len(wantMonths))
	}
	for i, label := range wantMonths {
		if series[i].Month != label {
			t.Fatalf("series[%d].Month = %q, want %q", i, series[i].Month, label)
		}
	}
	if series[0].Skills["Literacy"] != 1 {
		t.Fatalf("January skills = %v", series[0].Skills)
	}
	if len(series[1].Skills) != 0 {
		t.Fatalf("February should be empty, got %v", series[1].Skills)
	}
	if series[2].Skills["Physical"] != 1 {
		t.Fatalf("March skills = %v", series[2].Skills)
	}
}

func TestBuildSnapshotUnmappedBucket(t *testing.T) {
	monthStart := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	activities := []model.Activity{
		{Title: "Story time", ActivityDate: monthStart.AddDate(0, 0, 3),
			Skills: []model.SkillCategory{{Name: "Literacy"}}},
		{Title: "Free play", ActivityDate: monthStart.AddDate(0, 0, 5)},
	}

	snap := buildSnapshot("Ada", monthStart, activities)
	if snap.MonthLabel != "February 2026" || snap.TotalActivities != 2 {
		t.Fatalf("snapshot header = %+v", snap)
	}
	if snap.Activities[0].Date != "2026-02-04" {
		t.Fatalf("activity date = %s", snap.Activities[0].Date)
	}

	// Name-ascending with the skill-less bucket labeled Unmapped.
	if len(snap.Distribution) != 2 {
		t.Fatalf("distribution = %v", snap.Distribution)
	}
	if snap.Distribution[0].Skill != "Literacy" || snap.Distribution[1].Skill != "Unmapped" {
		t.Fatalf("distribution order = %v", snap.Distribution)
	}
	if snap.Distribution[1].Count != 1 {
		t.Fatalf("unmapped count = %d, want 1", snap.Distribution[1].Count)
	}
}

func TestSlug(t *testing.T) {
	if got := slug("Ada Lovelace"); got != "ada-lovelace" {
		t.Fatalf("slug = %q", got)
	}
	if got := slug(""); got != "child" {
		t.Fatalf("empty slug = %q", got)
	}
}

func TestBuildReportTotalsAndVisibility(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "report@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)

	svc := &ReportService{
		ChildRepo:    repository.NewChildRepository(db),
		ActivityRepo: repository.NewActivityRepository(db),
		Plans:        newPlanService(db),
		Renderer:     pdfgen.NewRenderer(),
	}

	d1, d2 := 65, 60
	a1 := createActivity(t, db, child.ID, "Story time", 2, "Literacy")
	a1.DurationMinutes = &d1
	if err := db.Save(a1).Error; err != nil {
		t.Fatalf("save: %v", err)
	}
	a2 := createActivity(t, db, child.ID, "Bike ride", 4, "Physical")
	a2.DurationMinutes = &d2
	if err := db.Save(a2).Error; err != nil {
		t.Fatalf("save: %v", err)
	}

	summary, err := svc.Build(user.ID, child.ID, RangeLast30Days)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if summary.TotalActivities != 2 {
		t.Fatalf("total = %d, want 2", summary.TotalActivities)
	}
	if summary.TotalHours != 2 || summary.RemainingMinutes != 5 {
		t.Fatalf("duration = %dh %dm, want 2h 5m", summary.TotalHours, summary.RemainingMinutes)
	}
	// Free plan always flags limited visibility.
	if !summary.VisibilityLimited {
		t.Fatal("free plan report should be visibility limited")
	}
	if summary.TimeRange != RangeLast30Days {
		t.Fatalf("time range = %q", summary.TimeRange)
	}
}

func TestBuildClampExcludesActivitiesBeforeVisibilityStart(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "clamp@example.com")
	child := createChild(t, db, user.ID, "Ada", 5)

	svc := &ReportService{
		ChildRepo:    repository.NewChildRepository(db),
		ActivityRepo: repository.NewActivityRepository(db),
		Plans:        newPlanService(db),
		Renderer:     pdfgen.NewRenderer(),
	}

	createActivity(t, db, child.ID, "Story time", 0, "Literacy")
	createActivity(t, db, child.ID, "Old bike ride", 120, "Physical")

	// Even the widest selector must not reach past the free plan's 90-day
	// visibility start.
	summary, err := svc.Build(user.ID, child.ID, RangeThisYear)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if summary.TimeRange != RangeThisYear {
		t.Fatalf("time range = %q, want %q", summary.TimeRange, RangeThisYear)
	}
	if !summary.VisibilityLimited {
		t.Fatal("free plan report should be visibility limited")
	}
	if summary.TotalActivities != 1 {
		t.Fatalf("total = %d, want only the recent activity", summary.TotalActivities)
	}
	for _, entry := range summary.SkillDistribution {
		if entry.Skill == "Physical" {
			t.Fatalf("clamped-out skill in distribution: %v", summary.SkillDistribution)
		}
	}
	for _, bucket := range summary.MonthlySeries {
		if bucket.Skills["Physical"] != 0 {
			t.Fatalf("clamped-out skill in %s bucket: %v", bucket.Month, bucket.Skills)
		}
	}
}

func TestMonthlySnapshotRequiresPrintableReports(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "freepdf@example.com")
	child := createChild(t, db, user.ID, "Sam", 5)

	svc := &ReportService{
		ChildRepo:    repository.NewChildRepository(db),
		ActivityRepo: repository.NewActivityRepository(db),
		Plans:        newPlanService(db),
		Renderer:     pdfgen.NewRenderer(),
	}

	if _, err := svc.MonthlySnapshot(user.ID, child.ID, "2026-02"); !errors.Is(err, util.ErrPlanRequired) {
		t.Fatalf("snapshot on free plan err = %v, want ErrPlanRequired", err)
	}
}

func TestMonthlyPDFFilename(t *testing.T) {
	db := openSeededDB(t)
	user := createUser(t, db, "pluspdf@example.com")
	setPlan(t, db, user.ID, plan.Plus)
	child := createChild(t, db, user.ID, "Ada Lovelace", 5)
	createActivity(t, db, child.ID, "Story time", 1, "Literacy")

	svc := &ReportService{
		ChildRepo:    repository.NewChildRepository(db),
		ActivityRepo: repository.NewActivityRepository(db),
		Plans:        newPlanService(db),
		Renderer:     pdfgen.NewRenderer(),
	}

	month := time.Now().Format("2006-01")
	data, filename, err := svc.MonthlyPDF(user.ID, child.ID, month)
	if err != nil {
		t.Fatalf("MonthlyPDF error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty PDF output")
	}
	want := "earlyledge-ada-lovelace-" + month + ".pdf"
	if filename != want {
		t.Fatalf("filename = %q, want %q", filename, want)
	}
}
