// Package model contains domain records passed between layers.
package model

// ExperienceLevel is the ordinal seniority tier of a freelancer or a
// job requirement.
type ExperienceLevel string

// Known experience tiers, ordered from junior to senior.
const (
	LevelEntry        ExperienceLevel = "Entry"
	LevelIntermediate ExperienceLevel = "Intermediate"
	LevelAdvanced     ExperienceLevel = "Advanced"
	LevelExpert       ExperienceLevel = "Expert"
)

// Tier boundaries in whole years of experience.
const (
	maxEntryYears        = 2
	maxIntermediateYears = 5
	maxAdvancedYears     = 10
)

// Fixed ordinal table for experience tiers.
const (
	ordinalEntry        = 1
	ordinalIntermediate = 2
	ordinalAdvanced     = 3
	ordinalExpert       = 4
)

// LevelForYears maps years of experience onto a tier. The boundaries
// are fixed: <=2 Entry, <=5 Intermediate, <=10 Advanced, else Expert.
func LevelForYears(years int) ExperienceLevel {
	switch {
	case years <= maxEntryYears:
		return LevelEntry
	case years <= maxIntermediateYears:
		return LevelIntermediate
	case years <= maxAdvancedYears:
		return LevelAdvanced
	default:
		return LevelExpert
	}
}

// Ordinal returns the fixed 1..4 ordinal for a level. Unrecognized
// levels fall back to Intermediate.
func (l ExperienceLevel) Ordinal() int {
	switch l {
	case LevelEntry:
		return ordinalEntry
	case LevelIntermediate:
		return ordinalIntermediate
	case LevelAdvanced:
		return ordinalAdvanced
	case LevelExpert:
		return ordinalExpert
	default:
		return ordinalIntermediate
	}
}

// Engagement records one past project between a freelancer and a client.
// Engagements are append-only within a corpus and are the only link
// between freelancers and clients.
type Engagement struct {
	ProjectID    string   `json:"project_id"`
	ClientID     string   `json:"client_id"`
	Title        string   `json:"title"`
	Skills       []string `json:"skills"`
	DurationDays int      `json:"duration_days"`
	Budget       float64  `json:"budget"`
	Rating       int      `json:"rating"` // 0..5 inclusive
}

// Freelancer is one corpus entry. Records are immutable during a
// scoring session; the corpus is replaced wholesale on retrain.
type Freelancer struct {
	ID                string          `json:"freelancer_id"`
	Name              string          `json:"name"`
	Country           string          `json:"country"`
	Skills            []string        `json:"skills"`
	HourlyRate        float64         `json:"hourly_rate"`
	ExperienceYears   int             `json:"experience_years"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	CompletedProjects int             `json:"completed_projects"`
	AvgRating         float64         `json:"avg_rating"`
	Availability      string          `json:"availability"`
	PastProjects      []Engagement    `json:"past_projects"`
}
