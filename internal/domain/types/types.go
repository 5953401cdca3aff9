// Package types contains common types used across the application
package types

// Recommendation is one ranked candidate returned to callers.
type Recommendation struct {
	Rank              int      `json:"rank"`
	FreelancerID      string   `json:"freelancer_id"`
	Name              string   `json:"name"`
	MatchScore        float64  `json:"match_score"` // 0-100 percentage
	Skills            []string `json:"skills"`
	HourlyRate        float64  `json:"hourly_rate"`
	ExperienceLevel   string   `json:"experience_level"`
	CompletedProjects int      `json:"completed_projects"`
	AvgRating         float64  `json:"avg_rating"`
}
