package service

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/repository"
	"earlyledge_backend/internal/util"
	"earlyledge_backend/pkg/pdfgen"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Report time-range selectors. Anything unrecognized falls back to the
// 90-day default without erroring.
const (
	RangeLast30Days  = "last30days"
	RangeLast3Months = "last3months"
	RangeThisYear    = "thisyear"
)

// ReportService aggregates a child's activities into the multi-range report
// payload and the monthly snapshot content for PDF export.
type ReportService struct {
	ChildRepo    *repository.ChildRepository
	ActivityRepo *repository.ActivityRepository
	Plans        *PlanService
	Renderer     pdfgen.Renderer
}

func NewReportService(childRepo *repository.ChildRepository, activityRepo *repository.ActivityRepository, plans *PlanService, renderer pdfgen.Renderer) *ReportService {
	return &ReportService{ChildRepo: childRepo, ActivityRepo: activityRepo, Plans: plans, Renderer: renderer}
}

// Build computes the report for one child over the requested range, clamped
// to the plan's visibility window.
func (s *ReportService) Build(userID, childID uint, timeRange string) (*model.ReportSummary, error) {
	if _, err := s.ChildRepo.FindForUser(childID, userID); err != nil {
		return nil, err
	}

	today := dateOf(time.Now())
	start, applied := resolveTimeRange(timeRange, today)

	vis, err := s.Plans.VisibilityStart(userID)
	if err != nil {
		return nil, err
	}
	limited := vis != nil
	if vis != nil && vis.After(start) {
		start = *vis
	}

	activities, err := s.ActivityRepo.ListForChildInRange(childID, start, today)
	if err != nil {
		return nil, err
	}

	totalMinutes := 0
	for _, a := range activities {
		if a.DurationMinutes != nil {
			totalMinutes += *a.DurationMinutes
		}
	}

	distribution := skillDistribution(activities)

	summary := &model.ReportSummary{
		TimeRange:         applied,
		VisibilityLimited: limited,
		TotalActivities:   len(activities),
		TotalHours:        totalMinutes / 60,
		RemainingMinutes:  totalMinutes % 60,
		ActivitiesPerWeek: perWeekRate(len(activities), start, today),
		SkillDistribution: distribution,
		Highlights:        growthHighlights(distribution),
		MonthlySeries:     monthlySeries(activities, start, today),
	}
	return summary, nil
}

// resolveTimeRange maps a selector to its start date and echoes the selector
// actually applied.
func resolveTimeRange(timeRange string, today time.Time) (time.Time, string) {
	switch timeRange {
	case RangeLast30Days:
		return today.AddDate(0, 0, -30), RangeLast30Days
	case RangeThisYear:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location()), RangeThisYear
	default:
		return today.AddDate(0, 0, -90), RangeLast3Months
	}
}

// perWeekRate divides the activity count by the number of weeks in range,
// flooring the denominator at one week, rounded to 1 decimal.
func perWeekRate(count int, start, today time.Time) float64 {
	days := int(today.Sub(start).Hours() / 24)
	weeks := float64(days) / 7
	if weeks < 1 {
		weeks = 1
	}
	return math.Round(float64(count)/weeks*10) / 10
}

// skillDistribution counts activities per skill across the whole range,
// descending; ties keep first-seen order. An activity with N skills adds 1
// to each of the N counters.
func skillDistribution(activities []model.Activity) []model.SkillCount {
	counts := make(map[string]int)
	ids := make(map[string]uint)
	var seen []string
	for _, activity := range activities {
		for _, sk := range activity.Skills {
			if _, ok := counts[sk.Name]; !ok {
				seen = append(seen, sk.Name)
				ids[sk.Name] = sk.ID
			}
			counts[sk.Name]++
		}
	}

	dist := make([]model.SkillCount, 0, len(seen))
	for _, name := range seen {
		dist = append(dist, model.SkillCount{SkillID: ids[name], Skill: name, Count: counts[name]})
	}
	// Stable sort keeps the first-seen order between equal counts.
	sort.SliceStable(dist, func(i, j int) bool { return dist[i].Count > dist[j].Count })
	return dist
}

// growthHighlights builds the narrative bullets for the report header.
func growthHighlights(distribution []model.SkillCount) []string {
	var highlights []string
	if len(distribution) > 0 && distribution[0].Count > 0 {
		highlights = append(highlights, fmt.Sprintf("%s is the most practiced skill this period.", distribution[0].Skill))
	}
	if len(distribution) >= 3 {
		highlights = append(highlights, fmt.Sprintf("Balanced exploration across %d skill areas.", len(distribution)))
	}
	if len(distribution) == 0 {
		highlights = append(highlights, "No skill-tagged activities yet. Log a few to see growth trends.")
	}
	return highlights
}

// monthlySeries produces one bucket per calendar month from the range
// start's month through the current month, labeled "January 2006". Months
// without data still appear, with an empty skill map.
func monthlySeries(activities []model.Activity, start, today time.Time) []model.MonthlyBucket {
	var series []model.MonthlyBucket
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	end := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	for !cursor.After(end) {
		next := cursor.AddDate(0, 1, 0)
		skills := make(map[string]int)
		for _, activity := range activities {
			d := activity.ActivityDate
			if d.Before(cursor) || !d.Before(next) || d.After(today) {
				continue
			}
			for _, sk := range activity.Skills {
				skills[sk.Name]++
			}
		}
		series = append(series, model.MonthlyBucket{
			Month:  cursor.Format("January 2006"),
			Skills: skills,
		})
		cursor = next
	}
	return series
}

// MonthlySnapshot builds the structured content for the printable monthly
// report. month is a "2006-01" token; the caller validates its shape.
// Requires the plan's printable_reports flag.
func (s *ReportService) MonthlySnapshot(userID, childID uint, month string) (*model.MonthlySnapshot, error) {
	limits, err := s.Plans.Limits(userID)
	if err != nil {
		return nil, err
	}
	if !limits.PrintableReports {
		return nil, util.ErrPlanRequired
	}

	child, err := s.ChildRepo.FindForUser(childID, userID)
	if err != nil {
		return nil, err
	}

	monthStart, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return nil, err
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	activities, err := s.ActivityRepo.ListForChildInRange(childID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	return buildSnapshot(child.Name, monthStart, activities), nil
}

func buildSnapshot(childName string, monthStart time.Time, activities []model.Activity) *model.MonthlySnapshot {
	snap := &model.MonthlySnapshot{
		ChildName:       childName,
		MonthLabel:      monthStart.Format("January 2006"),
		TotalActivities: len(activities),
	}

	counts := make(map[string]int)
	for _, activity := range activities {
		names := make([]string, 0, len(activity.Skills))
		for _, sk := range activity.Skills {
			names = append(names, sk.Name)
			counts[sk.Name]++
		}
		if len(activity.Skills) == 0 {
			counts[""]++
		}
		snap.Activities = append(snap.Activities, model.SnapshotActivity{
			Date:   activity.ActivityDate.Format("2006-01-02"),
			Title:  activity.Title,
			Skills: names,
		})
	}

	snap.Distribution = snapshotDistribution(counts)
	return snap
}

// snapshotDistribution lists skill buckets by name ascending, with the
// empty-name bucket rendered as "Unmapped".
func snapshotDistribution(counts map[string]int) []model.SkillCount {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	dist := make([]model.SkillCount, 0, len(names))
	for _, name := range names {
		label := name
		if label == "" {
			label = "Unmapped"
		}
		dist = append(dist, model.SkillCount{Skill: label, Count: counts[name]})
	}
	return dist
}

// MonthlyPDF renders the snapshot to PDF bytes plus the download filename.
func (s *ReportService) MonthlyPDF(userID, childID uint, month string) ([]byte, string, error) {
	snap, err := s.MonthlySnapshot(userID, childID, month)
	if err != nil {
		return nil, "", err
	}

	data, err := s.Renderer.RenderMonthly(snapshotDocument(snap))
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("earlyledge-%s-%s.pdf", slug(snap.ChildName), month)
	return data, filename, nil
}

func snapshotDocument(snap *model.MonthlySnapshot) pdfgen.MonthlyReport {
	report := pdfgen.MonthlyReport{
		ChildName:       snap.ChildName,
		MonthLabel:      snap.MonthLabel,
		TotalActivities: snap.TotalActivities,
	}
	for _, a := range snap.Activities {
		report.Activities = append(report.Activities, pdfgen.ActivityLine{
			Date:   a.Date,
			Title:  a.Title,
			Skills: a.Skills,
		})
	}
	for _, d := range snap.Distribution {
		report.Distribution = append(report.Distribution, pdfgen.DistributionLine{
			Skill: d.Skill,
			Count: d.Count,
		})
	}
	return report
}

func slug(name string) string {
	out := strings.ToLower(strings.TrimSpace(name))
	out = strings.ReplaceAll(out, " ", "-")
	out = strings.ReplaceAll(out, "/", "-")
	if out == "" {
		out = "child"
	}
	return out
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
