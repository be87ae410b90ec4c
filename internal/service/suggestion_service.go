package service

import (
	"context"
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/repository"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"
)

const dailySuggestionCount = 3

// SuggestionService backs the suggestion browser and the rotating daily
// picks. The daily picks are cached in Redis until local midnight so a child
// sees the same three all day; a nil client just skips the cache.
type SuggestionService struct {
	SuggestionRepo *repository.SuggestionRepository
	ChildRepo      *repository.ChildRepository
	Redis          *redis.Client
}

func NewSuggestionService(suggestionRepo *repository.SuggestionRepository, childRepo *repository.ChildRepository, rdb *redis.Client) *SuggestionService {
	return &SuggestionService{SuggestionRepo: suggestionRepo, ChildRepo: childRepo, Redis: rdb}
}

// List returns age-appropriate suggestions for one child, optionally
// filtered to a single skill. A child without a date of birth gets an empty
// list, since no age band can be matched.
func (s *SuggestionService) List(userID, childID uint, skillID *uint) ([]model.SuggestionView, error) {
	child, err := s.ChildRepo.FindForUser(childID, userID)
	if err != nil {
		return nil, err
	}

	age := child.Age()
	if age == nil {
		return []model.SuggestionView{}, nil
	}

	suggestions, err := s.SuggestionRepo.ListFiltered(skillID, *age)
	if err != nil {
		return nil, err
	}

	views := make([]model.SuggestionView, 0, len(suggestions))
	for _, sug := range suggestions {
		views = append(views, suggestionView(sug))
	}
	return views, nil
}

// Daily returns up to three random age-appropriate suggestions, stable for
// the rest of the calendar day.
func (s *SuggestionService) Daily(ctx context.Context, userID, childID uint) ([]model.SuggestionView, error) {
	key := fmt.Sprintf("suggestions:daily:%d:%s", childID, time.Now().Format("2006-01-02"))

	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var cached []model.SuggestionView
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				// Ownership still has to hold even on a cache hit.
				if _, err := s.ChildRepo.FindForUser(childID, userID); err != nil {
					return nil, err
				}
				return cached, nil
			}
		}
	}

	views, err := s.List(userID, childID, nil)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(views), func(i, j int) {
		views[i], views[j] = views[j], views[i]
	})
	if len(views) > dailySuggestionCount {
		views = views[:dailySuggestionCount]
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(views); err == nil {
			s.Redis.Set(ctx, key, raw, untilMidnight(time.Now()))
		}
	}
	return views, nil
}

func untilMidnight(now time.Time) time.Duration {
	midnight := dateOf(now).AddDate(0, 0, 1)
	return midnight.Sub(now)
}
