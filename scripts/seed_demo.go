// Seed a demo account with children and a month of activities.
//
// The skill catalog and curated suggestions are seeded automatically on
// every boot; this script only adds throwaway demo data for local testing.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"earlyledge_backend/internal/config"
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/service"
	"earlyledge_backend/pkg/database"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

var demoTitles = []string{
	"Read story together",
	"Playing with building blocks",
	"Drawing and coloring",
	"Nature walk in the park",
	"Cooking simple recipes",
	"Sorting shapes and colors",
	"Dancing to music",
	"Puzzle solving time",
	"Counting games",
	"Bike riding practice",
	"Playing board games with friends",
	"Gardening activities",
}

var demoNotes = []string{
	"Child was very engaged and asked lots of questions.",
	"We had so much fun exploring together!",
	"Child showed great creativity and imagination.",
	"Great opportunity for learning and bonding.",
	"Child demonstrated improved focus and attention.",
}

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	user := model.User{Email: "demo@earlyledge.test", Password: string(hashed)}
	if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
		log.Fatalf("failed to create demo user: %v", err)
	}

	dob := time.Now().AddDate(-6, 0, 0)
	child := model.Child{UserID: user.ID, Name: "Demo Child", DateOfBirth: &dob}
	if err := db.Where(model.Child{UserID: user.ID, Name: child.Name}).FirstOrCreate(&child).Error; err != nil {
		log.Fatalf("failed to create demo child: %v", err)
	}

	var skills []model.SkillCategory
	if err := db.Find(&skills).Error; err != nil {
		log.Fatalf("failed to load skill catalog: %v", err)
	}
	byName := make(map[string]model.SkillCategory, len(skills))
	for _, s := range skills {
		byName[s.Name] = s
	}

	today := time.Now()
	for i := 0; i < 30; i++ {
		title := demoTitles[rand.Intn(len(demoTitles))]
		notes := demoNotes[rand.Intn(len(demoNotes))]
		duration := 15 + rand.Intn(60)
		date := today.AddDate(0, 0, -rand.Intn(35))

		activity := model.Activity{
			ChildID:         child.ID,
			Title:           title,
			Notes:           notes,
			DurationMinutes: &duration,
			ActivityDate:    time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		}
		for _, name := range service.MatchSkillNames(title + " " + notes) {
			if skill, ok := byName[name]; ok {
				activity.Skills = append(activity.Skills, skill)
			}
		}
		if len(activity.Skills) == 0 {
			if fallback, ok := byName[service.FallbackSkill]; ok {
				activity.Skills = append(activity.Skills, fallback)
			}
		}
		if err := db.Create(&activity).Error; err != nil {
			log.Fatalf("failed to create activity: %v", err)
		}
	}

	log.Printf("Seeded demo account %s with child %q and 30 activities", user.Email, child.Name)
}
