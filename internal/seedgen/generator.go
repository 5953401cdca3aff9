// Package seedgen produces a deterministic sample corpus for local
// development and load testing. The same seed always yields the same
// JSON files.
package seedgen

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/hirelance/matchd/internal/domain/model"
	"github.com/hirelance/matchd/pkg/logger"
)

// Skill pools by specialization. Freelancers draw most skills from one
// pool so the generated corpus has meaningful clusters instead of
// uniform noise.
var skillPools = [][]string{
	{"python", "django", "flask", "fastapi", "postgresql"},
	{"javascript", "typescript", "react", "nodejs", "graphql"},
	{"go", "kubernetes", "docker", "terraform", "aws"},
	{"java", "spring", "kafka", "mysql", "elasticsearch"},
	{"swift", "kotlin", "flutter", "firebase", "mobile"},
	{"machine-learning", "tensorflow", "pytorch", "pandas", "numpy"},
}

var firstNames = []string{
	"Alex", "Sam", "Jordan", "Taylor", "Morgan", "Casey", "Riley",
	"Jamie", "Avery", "Quinn", "Dana", "Robin", "Kai", "Noor", "Lena",
}

var lastNames = []string{
	"Chen", "Patel", "Garcia", "Kim", "Novak", "Silva", "Okafor",
	"Haddad", "Ivanov", "Larsen", "Mori", "Costa", "Ahmed", "Weber",
}

var countries = []string{
	"USA", "India", "Brazil", "Germany", "Ukraine", "Nigeria",
	"Philippines", "Canada", "Poland", "Argentina",
}

var availabilities = []string{"full-time", "part-time", "contract"}

var projectAdjectives = []string{
	"Realtime", "Scalable", "Internal", "Customer-facing", "Legacy",
	"Greenfield", "Distributed",
}

var projectNouns = []string{
	"Dashboard", "API", "Pipeline", "Marketplace", "CRM", "Billing System",
	"Analytics Platform", "Mobile App",
}

// Generation ranges.
const (
	minExperienceYears = 1
	maxExperienceYears = 15
	minHourlyRate      = 15.0
	maxHourlyRate      = 150.0
	minSkills          = 3
	maxSkills          = 6
	minEngagements     = 2
	maxEngagements     = 8
	minDurationDays    = 7
	maxDurationDays    = 180
	minProjectBudget   = 500.0
	maxProjectBudget   = 20000.0
	minTimelineDays    = 7
	maxTimelineDays    = 90
	crossPoolChance    = 0.25
	fixedBudgetChance  = 0.3
)

// Generate builds the corpus in memory. Freelancer and client IDs are
// sequential; project IDs are name-based UUIDs so they are stable
// across runs with the same seed.
func Generate(ctx context.Context, cfg *Config) ([]model.Freelancer, []model.Job, *Stats, error) {
	if cfg.NumFreelancers < 1 || cfg.NumClients < 1 {
		return nil, nil, nil, fmt.Errorf("%w: need at least one freelancer and one client", ErrInvalidConfig)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	stats := &Stats{}

	clientIDs := make([]string, cfg.NumClients)
	for i := range clientIDs {
		clientIDs[i] = fmt.Sprintf("C%04d", i+1)
	}

	freelancers := make([]model.Freelancer, cfg.NumFreelancers)
	for i := range freelancers {
		freelancers[i] = generateFreelancer(rng, i+1, clientIDs, stats)
	}

	jobs := make([]model.Job, cfg.NumJobs)
	for i := range jobs {
		jobs[i] = generateJob(rng, i+1, clientIDs)
	}
	stats.FreelancersGenerated = len(freelancers)
	stats.JobsGenerated = len(jobs)

	logger.Get().Info(ctx, "generated sample corpus",
		logger.Int("freelancers", stats.FreelancersGenerated),
		logger.Int("jobs", stats.JobsGenerated),
		logger.Int("engagements", stats.EngagementsGenerated),
	)
	return freelancers, jobs, stats, nil
}

func generateFreelancer(rng *rand.Rand, seq int, clientIDs []string, stats *Stats) model.Freelancer {
	id := fmt.Sprintf("F%04d", seq)
	pool := skillPools[rng.Intn(len(skillPools))]
	skills := pickSkills(rng, pool)

	years := minExperienceYears + rng.Intn(maxExperienceYears-minExperienceYears+1)
	level := model.LevelForYears(years)

	// Seniors charge more; the ordinal nudges the rate upward.
	rate := minHourlyRate + rng.Float64()*(maxHourlyRate-minHourlyRate)
	rate = round2(rate * (0.7 + 0.15*float64(level.Ordinal())))
	if rate > maxHourlyRate {
		rate = maxHourlyRate
	}

	engagements := generateEngagements(rng, id, skills, clientIDs)
	stats.EngagementsGenerated += len(engagements)

	ratingSum := 0
	for _, e := range engagements {
		ratingSum += e.Rating
	}
	avgRating := 0.0
	if len(engagements) > 0 {
		avgRating = round2(float64(ratingSum) / float64(len(engagements)))
	}

	return model.Freelancer{
		ID:                id,
		Name:              firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
		Country:           countries[rng.Intn(len(countries))],
		Skills:            skills,
		HourlyRate:        rate,
		ExperienceYears:   years,
		ExperienceLevel:   level,
		CompletedProjects: len(engagements) + rng.Intn(20),
		AvgRating:         avgRating,
		Availability:      availabilities[rng.Intn(len(availabilities))],
		PastProjects:      engagements,
	}
}

func generateEngagements(rng *rand.Rand, freelancerID string, skills []string, clientIDs []string) []model.Engagement {
	count := minEngagements + rng.Intn(maxEngagements-minEngagements+1)
	engagements := make([]model.Engagement, count)
	for i := range engagements {
		projectSkills := skills[:minInt(len(skills), 2+rng.Intn(2))]
		engagements[i] = model.Engagement{
			ProjectID:    projectID(freelancerID, i),
			ClientID:     clientIDs[rng.Intn(len(clientIDs))],
			Title:        projectTitle(rng),
			Skills:       projectSkills,
			DurationDays: minDurationDays + rng.Intn(maxDurationDays-minDurationDays+1),
			Budget:       round2(minProjectBudget + rng.Float64()*(maxProjectBudget-minProjectBudget)),
			Rating:       2 + rng.Intn(4), // 2..5, skewed away from failed projects
		}
	}
	return engagements
}

func generateJob(rng *rand.Rand, seq int, clientIDs []string) model.Job {
	pool := skillPools[rng.Intn(len(skillPools))]
	skills := pickSkills(rng, pool)

	budget := model.Budget{Type: model.BudgetHourly}
	if rng.Float64() < fixedBudgetChance {
		budget.Type = model.BudgetFixed
		budget.Amount = round2(minProjectBudget + rng.Float64()*(maxProjectBudget-minProjectBudget))
	} else {
		lo := minHourlyRate + rng.Float64()*(maxHourlyRate-minHourlyRate)/2
		budget.MinRate = round2(lo)
		budget.MaxRate = round2(lo + rng.Float64()*(maxHourlyRate-lo))
	}

	years := minExperienceYears + rng.Intn(maxExperienceYears-minExperienceYears+1)

	return model.Job{
		ID:              fmt.Sprintf("J%04d", seq),
		ClientID:        clientIDs[rng.Intn(len(clientIDs))],
		Title:           projectTitle(rng),
		SkillsRequired:  skills,
		Budget:          budget,
		ExperienceLevel: model.LevelForYears(years),
		TimelineDays:    minTimelineDays + rng.Intn(maxTimelineDays-minTimelineDays+1),
	}
}

// pickSkills draws mostly from one pool, occasionally crossing into
// another so vocabularies overlap between specializations.
func pickSkills(rng *rand.Rand, pool []string) []string {
	count := minSkills + rng.Intn(maxSkills-minSkills+1)
	seen := make(map[string]bool, count)
	skills := make([]string, 0, count)
	for len(skills) < count {
		source := pool
		if rng.Float64() < crossPoolChance {
			source = skillPools[rng.Intn(len(skillPools))]
		}
		s := source[rng.Intn(len(source))]
		if !seen[s] {
			seen[s] = true
			skills = append(skills, s)
		}
	}
	return skills
}

// projectID derives a stable name-based UUID so rerunning the
// generator with the same seed yields an identical corpus.
func projectID(freelancerID string, index int) string {
	name := fmt.Sprintf("matchd-project-%s-%d", freelancerID, index)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

func projectTitle(rng *rand.Rand) string {
	return projectAdjectives[rng.Intn(len(projectAdjectives))] + " " + projectNouns[rng.Intn(len(projectNouns))]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
