package service

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/repository"
	"strings"
)

// keywordRule maps one skill category to the substrings that imply it.
// Declaration order is the evaluation and output order, so the table must
// stay a slice, not a map.
type keywordRule struct {
	Skill    string
	Keywords []string
}

var keywordRules = []keywordRule{
	{"Literacy", []string{"read", "book", "story", "letter", "phonics", "write"}},
	{"Numeracy", []string{"count", "math", "numbers", "add", "subtract", "measure"}},
	{"Creativity", []string{"draw", "paint", "lego", "craft", "music", "build"}},
	{"Physical", []string{"run", "bike", "park", "jump", "soccer", "dance"}},
	{"Social/Emotional", []string{"share", "friend", "feelings", "kind", "cooperate", "help"}},
	{"Practical Life", []string{"cook", "clean", "fold", "garden", "laundry", "table"}},
	{"Critical Thinking", []string{"puzzle", "solve", "experiment", "plan", "strategy", "why"}},
}

// FallbackSkill is assigned when no keyword rule matches at all.
const FallbackSkill = "Critical Thinking"

// MatchSkillNames maps free text to skill names by case-insensitive substring
// matching, in rule-table order. Empty result means no rule matched; the
// fallback is applied by the caller against the live catalog.
func MatchSkillNames(text string) []string {
	lowered := strings.ToLower(text)
	var matched []string
	for _, rule := range keywordRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				matched = append(matched, rule.Skill)
				break
			}
		}
	}
	return matched
}

// SkillMapService resolves keyword matches against the seeded catalog.
type SkillMapService struct {
	SkillRepo *repository.SkillRepository
}

func NewSkillMapService(skillRepo *repository.SkillRepository) *SkillMapService {
	return &SkillMapService{SkillRepo: skillRepo}
}

// MapSkills classifies an activity's title+notes text. Skills named by the
// rule table but missing from the catalog are skipped; if nothing matches,
// the fallback skill is returned when seeded, otherwise nothing.
func (s *SkillMapService) MapSkills(text string) ([]model.SkillCategory, error) {
	var mapped []model.SkillCategory
	for _, name := range MatchSkillNames(text) {
		skill, err := s.SkillRepo.FindByName(name)
		if err != nil {
			continue
		}
		mapped = append(mapped, *skill)
	}

	if len(mapped) == 0 {
		fallback, err := s.SkillRepo.FindByName(FallbackSkill)
		if err == nil {
			mapped = append(mapped, *fallback)
		}
	}

	return mapped, nil
}
