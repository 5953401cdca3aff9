// Package match implements the content-based compatibility scorer.
package match

import (
	"math"
	"sort"

	"github.com/hirelance/matchd/internal/domain/feature"
	"github.com/hirelance/matchd/internal/domain/model"
)

// Fixed feature weights. They must sum to exactly 1.0 so the overall
// score stays in [0,1].
const (
	skillsWeight     = 0.5
	experienceWeight = 0.2
	rateWeight       = 0.15
	ratingWeight     = 0.15
)

// DefaultTopN is the number of candidates returned when the caller
// does not ask for a specific count.
const DefaultTopN = 5

// WeightSum returns the sum of the fixed feature weights.
func WeightSum() float64 {
	return skillsWeight + experienceWeight + rateWeight + ratingWeight
}

// Candidate couples a freelancer record with its fitted feature vector.
type Candidate struct {
	Freelancer model.Freelancer
	Features   feature.FreelancerVector
}

// Match is one scored candidate. Score is in [0,1]; presentation as a
// 0-100 percentage happens at the edge.
type Match struct {
	FreelancerID string
	Score        float64
	Freelancer   model.Freelancer
}

// Scorer computes job-to-freelancer compatibility from normalized
// feature vectors.
type Scorer struct{}

// NewScorer creates a content-based scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the weighted compatibility between a job and one
// freelancer. Every sub-score is in [0,1], so the result is too.
func (s *Scorer) Score(job feature.JobVector, fr feature.FreelancerVector) float64 {
	skillScore := skillSimilarity(job.Skills, fr.Skills)
	budgetScore := budgetCompatibility(job.HourlyRate, fr.HourlyRate)
	experienceScore := experienceCompatibility(job.ExperienceLevel, fr.ExperienceLevel)
	// Reputation stands alone; it is not compared against any job attribute.
	ratingScore := fr.AvgRating

	return skillsWeight*skillScore +
		rateWeight*budgetScore +
		experienceWeight*experienceScore +
		ratingWeight*ratingScore
}

// Rank scores every candidate against the job and returns the top N,
// ordered by score descending with freelancer id ascending as the
// deterministic tie-break. topN <= 0 falls back to DefaultTopN.
func (s *Scorer) Rank(job feature.JobVector, candidates []Candidate, topN int) []Match {
	if topN <= 0 {
		topN = DefaultTopN
	}

	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		matches[i] = Match{
			FreelancerID: c.Freelancer.ID,
			Score:        s.Score(job, c.Features),
			Freelancer:   c.Freelancer,
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].FreelancerID < matches[j].FreelancerID
	})

	if len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}

// skillSimilarity is the cosine similarity between the two skill
// vectors. Returns exactly 0 when either side has zero magnitude.
func skillSimilarity(job, fr []float64) float64 {
	var dot, jobNorm, frNorm float64
	n := len(job)
	if len(fr) < n {
		n = len(fr)
	}
	for i := 0; i < n; i++ {
		dot += job[i] * fr[i]
	}
	for _, x := range job {
		jobNorm += x * x
	}
	for _, x := range fr {
		frNorm += x * x
	}
	if jobNorm == 0 || frNorm == 0 {
		return 0
	}
	return dot / (math.Sqrt(jobNorm) * math.Sqrt(frNorm))
}

// budgetCompatibility is 1 minus the distance between the normalized
// rates; identical rates score 1.
func budgetCompatibility(jobRate, frRate float64) float64 {
	return 1 - math.Abs(jobRate-frRate)
}

// experienceCompatibility is 1 when the freelancer meets or exceeds
// the requirement, otherwise the ratio of levels. A zero requirement
// cannot occur under the fixed ordinal table but is guarded anyway.
func experienceCompatibility(jobLevel, frLevel float64) float64 {
	if frLevel >= jobLevel {
		return 1
	}
	if jobLevel <= 0 {
		return 0
	}
	return frLevel / jobLevel
}
