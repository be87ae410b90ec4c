package plan

// Plan definitions and limits for EarlyLedge subscription tiers. All
// plan-related constants live here so adding a tier or adjusting a limit is a
// one-place change. The table is initialized once and never mutated.

const (
	Free = "free"
	Plus = "plus"
)

// Limits describes what one tier allows. A nil VisibilityDays means
// unrestricted (all-time) access to charts, insights and reports.
type Limits struct {
	MaxChildren             int
	VisibilityDays          *int
	PersonalizedSuggestions bool
	PrintableReports        bool
	LongTermTrends          bool
}

var freeVisibilityDays = 90

var planLimits = map[string]Limits{
	Free: {
		MaxChildren:             1,
		VisibilityDays:          &freeVisibilityDays,
		PersonalizedSuggestions: false,
		PrintableReports:        false,
		LongTermTrends:          false,
	},
	Plus: {
		MaxChildren:             5,
		VisibilityDays:          nil,
		PersonalizedSuggestions: true,
		PrintableReports:        true,
		LongTermTrends:          true,
	},
}

// LimitsFor returns the limits for a plan name, falling back to the free tier
// for anything unknown.
func LimitsFor(name string) Limits {
	if l, ok := planLimits[name]; ok {
		return l
	}
	return planLimits[Free]
}

// Valid reports whether name is a known plan.
func Valid(name string) bool {
	_, ok := planLimits[name]
	return ok
}
