package service

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/repository"
	"earlyledge_backend/internal/util"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// AnalysisWindowDays is the lookback for the skill-analysis view.
const AnalysisWindowDays = 14

const (
	richSkillCap          = 3
	defaultMinAge         = 4
	defaultMaxAge         = 8
	noActivityText        = "No activities logged in the last two weeks yet. Add a few and we'll map out the skill balance."
	genericEncouragement  = "Keep logging activities to build a picture of skill coverage."
	placeholderDuration   = "All ages"
	placeholderDescFormat = "Try a simple everyday activity that builds %s skills together."
)

// suggestionLookup is the slice of the suggestion repository the ranker needs.
type suggestionLookup interface {
	FindForSkillsInAgeRange(skillNames []string, minAge, maxAge int) ([]model.Suggestion, error)
}

// AnalysisService computes the 14-day skill usage tiers and the ranked,
// age-appropriate suggestion list for one child.
type AnalysisService struct {
	ChildRepo    *repository.ChildRepository
	ActivityRepo *repository.ActivityRepository
	SkillRepo    *repository.SkillRepository
	Suggestions  suggestionLookup
	Plans        *PlanService
}

func NewAnalysisService(
	childRepo *repository.ChildRepository,
	activityRepo *repository.ActivityRepository,
	skillRepo *repository.SkillRepository,
	suggestionRepo *repository.SuggestionRepository,
	plans *PlanService,
) *AnalysisService {
	return &AnalysisService{
		ChildRepo:    childRepo,
		ActivityRepo: activityRepo,
		SkillRepo:    skillRepo,
		Suggestions:  suggestionRepo,
		Plans:        plans,
	}
}

// Analyze builds the skill-analysis payload. Requires the plan's
// personalized_suggestions flag.
func (s *AnalysisService) Analyze(userID, childID uint) (*model.SkillAnalysis, error) {
	limits, err := s.Plans.Limits(userID)
	if err != nil {
		return nil, err
	}
	if !limits.PersonalizedSuggestions {
		return nil, util.ErrPlanRequired
	}

	child, err := s.ChildRepo.FindForUser(childID, userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.SkillRepo.ListAll()
	if err != nil {
		return nil, err
	}
	catalogNames := make([]string, len(catalog))
	for i, sk := range catalog {
		catalogNames[i] = sk.Name
	}

	today := time.Now()
	from := today.AddDate(0, 0, -AnalysisWindowDays)
	if vis, err := s.Plans.VisibilityStart(userID); err != nil {
		return nil, err
	} else if vis != nil && vis.After(from) {
		from = *vis
	}

	activities, err := s.ActivityRepo.ListForChildInRange(childID, from, today)
	if err != nil {
		return nil, err
	}

	rich, missing := classifySkillUsage(activities, catalogNames)
	if rich == nil {
		rich = []string{}
	}
	if missing == nil {
		missing = []string{}
	}

	analysis := &model.SkillAnalysis{
		RichSkills:    rich,
		MissingSkills: missing,
		Suggestions:   []model.SuggestionView{},
	}

	if len(activities) == 0 {
		// Terminal early-return path: nothing exercised, everything missing.
		analysis.AnalysisText = noActivityText
		return analysis, nil
	}

	analysis.AnalysisText = buildAnalysisText(rich, missing)

	// Without a date of birth the age filter widens to the default 4-8 band.
	minAge, maxAge := defaultMinAge, defaultMaxAge
	if a := child.Age(); a != nil {
		minAge, maxAge = *a, *a
	}
	views, err := s.rankSuggestions(rich, missing, catalogNames, minAge, maxAge)
	if err != nil {
		return nil, err
	}
	analysis.Suggestions = views

	return analysis, nil
}

// classifySkillUsage partitions catalog skills by distinct-activity usage.
// rich: count >= 2, sorted by count descending (ties keep catalog order),
// capped to the top 3. missing: zero-count skills first, then one-count
// skills, both in catalog order.
func classifySkillUsage(activities []model.Activity, catalogNames []string) (rich, missing []string) {
	counts := make(map[string]int, len(catalogNames))
	for _, activity := range activities {
		for _, sk := range activity.Skills {
			counts[sk.Name]++
		}
	}

	if len(activities) == 0 {
		return nil, append([]string(nil), catalogNames...)
	}

	ordered := append([]string(nil), catalogNames...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[ordered[i]] > counts[ordered[j]]
	})

	var zero, low []string
	for _, name := range ordered {
		switch {
		case counts[name] >= 2:
			if len(rich) < richSkillCap {
				rich = append(rich, name)
			}
		case counts[name] == 1:
			low = append(low, name)
		default:
			zero = append(zero, name)
		}
	}

	missing = append(zero, low...)
	return rich, missing
}

// buildAnalysisText names up to two rich skills (joined "and") and up to two
// missing skills (joined "or").
func buildAnalysisText(rich, missing []string) string {
	switch {
	case len(rich) > 0 && len(missing) > 0:
		return fmt.Sprintf(
			"Recent activities show strong %s practice. Consider adding some %s activities next.",
			joinSkills(rich, "and"), joinSkills(missing, "or"),
		)
	case len(rich) > 0:
		return fmt.Sprintf(
			"Great coverage of %s lately. Keep exploring the other skill areas too.",
			joinSkills(rich, "and"),
		)
	default:
		return genericEncouragement
	}
}

func joinSkills(names []string, joiner string) string {
	if len(names) == 1 {
		return names[0]
	}
	return names[0] + " " + joiner + " " + names[1]
}

// rankSuggestions emits curated suggestions for missing skills first, then
// rich skills, then the rest of the catalog, and finally synthesizes a
// placeholder for every catalog skill still uncovered so no skill is
// silently dropped.
func (s *AnalysisService) rankSuggestions(rich, missing, catalogNames []string, minAge, maxAge int) ([]model.SuggestionView, error) {
	inTier := make(map[string]bool, len(rich)+len(missing))
	for _, name := range missing {
		inTier[name] = true
	}
	for _, name := range rich {
		inTier[name] = true
	}
	var others []string
	for _, name := range catalogNames {
		if !inTier[name] {
			others = append(others, name)
		}
	}

	views := make([]model.SuggestionView, 0, len(catalogNames))
	covered := make(map[string]bool, len(catalogNames))
	for _, group := range [][]string{missing, rich, others} {
		found, err := s.Suggestions.FindForSkillsInAgeRange(group, minAge, maxAge)
		if err != nil {
			return nil, err
		}
		for _, sug := range found {
			views = append(views, suggestionView(sug))
			covered[sug.Skill.Name] = true
		}
	}

	// Reconciliation pass: every catalog skill must be visible even when no
	// curated content fits the child's age.
	for _, name := range catalogNames {
		if !covered[name] {
			views = append(views, placeholderSuggestion(name))
		}
	}

	return views, nil
}

func suggestionView(sug model.Suggestion) model.SuggestionView {
	name := ""
	if sug.Skill != nil {
		name = sug.Skill.Name
	}
	return model.SuggestionView{
		ID:            strconv.FormatUint(uint64(sug.ID), 10),
		Title:         sug.Title,
		Description:   sug.Description,
		SkillName:     name,
		DurationRange: fmt.Sprintf("%d-%d years", sug.MinAge, sug.MaxAge),
	}
}

func placeholderSuggestion(skillName string) model.SuggestionView {
	return model.SuggestionView{
		ID:            placeholderID(skillName),
		Title:         "Explore " + skillName,
		Description:   fmt.Sprintf(placeholderDescFormat, skillName),
		SkillName:     skillName,
		DurationRange: placeholderDuration,
	}
}

func placeholderID(skillName string) string {
	id := strings.ToLower(skillName)
	id = strings.ReplaceAll(id, " ", "-")
	id = strings.ReplaceAll(id, "/", "-")
	return id
}
