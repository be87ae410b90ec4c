package model

// Derived, per-request types for the dashboard, skill-analysis and report
// views. Never persisted.

type SkillCount struct {
	SkillID uint   `json:"skill_id"`
	Skill   string `json:"skill"`
	Count   int    `json:"count"`
}

// SuggestionView is one ranked suggestion entry. ID is the database id for
// curated content and a slug derived from the skill name for synthesized
// placeholders.
type SuggestionView struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	SkillName     string `json:"skill_name"`
	DurationRange string `json:"duration_range"`
}

// SkillAnalysis partitions the catalog by usage over the analysis window.
// Rich skills (count >= 2, top 3) never reappear in the missing list.
type SkillAnalysis struct {
	RichSkills    []string         `json:"rich_skills"`
	MissingSkills []string         `json:"missing_skills"`
	AnalysisText  string           `json:"analysis_text"`
	Suggestions   []SuggestionView `json:"suggestions"`
}

type RecentActivity struct {
	ID              uint     `json:"id"`
	Title           string   `json:"title"`
	ActivityDate    string   `json:"activity_date"`
	DurationMinutes *int     `json:"duration_minutes"`
	Skills          []string `json:"skills"`
}

type WeeklyDashboard struct {
	ActivityCount    int              `json:"activity_count"`
	SkillCounts      []SkillCount     `json:"skill_counts"`
	MissingSkills    []string         `json:"missing_skills"`
	RecentActivities []RecentActivity `json:"recent_activities"`
}

// MonthlyBucket is one calendar month of the report chart series.
type MonthlyBucket struct {
	Month  string         `json:"month"`
	Skills map[string]int `json:"skills"`
}

type ReportSummary struct {
	TimeRange         string          `json:"time_range"`
	VisibilityLimited bool            `json:"visibility_limited"`
	TotalActivities   int             `json:"total_activities"`
	TotalHours        int             `json:"total_hours"`
	RemainingMinutes  int             `json:"remaining_minutes"`
	ActivitiesPerWeek float64         `json:"activities_per_week"`
	SkillDistribution []SkillCount    `json:"skill_distribution"`
	Highlights        []string        `json:"highlights"`
	MonthlySeries     []MonthlyBucket `json:"monthly_series"`
}

// MonthlySnapshot is the structured content handed to the PDF renderer.
type MonthlySnapshot struct {
	ChildName       string
	MonthLabel      string
	TotalActivities int
	Activities      []SnapshotActivity
	Distribution    []SkillCount
}

type SnapshotActivity struct {
	Date   string
	Title  string
	Skills []string
}

// PlanInfo is the JSON-friendly description of a user's plan and limits.
type PlanInfo struct {
	Plan                    string  `json:"plan"`
	IsPlus                  bool    `json:"is_plus"`
	MaxChildren             int     `json:"max_children"`
	VisibilityDays          *int    `json:"visibility_days"`
	PersonalizedSuggestions bool    `json:"personalized_suggestions"`
	PrintableReports        bool    `json:"printable_reports"`
	LongTermTrends          bool    `json:"long_term_trends"`
	StartedAt               string  `json:"started_at"`
	EndsAt                  *string `json:"ends_at"`
	UpgradeURL              string  `json:"upgrade_url"`
}
