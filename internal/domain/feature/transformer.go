package feature

import (
	"github.com/hirelance/matchd/internal/domain/model"
)

// Normalization constants for experience-level ordinals and the
// fixed-budget rate placeholder.
const (
	levelOrdinalDivisor = 4
	// Fixed-budget jobs carry no hourly rate; the midpoint of the
	// normalized range stands in for it. A deliberate simplification,
	// not an estimate.
	fixedBudgetRate = 0.5
)

// FreelancerVector is the normalized representation of one freelancer.
// Fixed-shape on purpose: every field is in [0,1] and the skills slice
// lives in the shared vocabulary space.
type FreelancerVector struct {
	Skills          []float64
	HourlyRate      float64
	ExperienceYears float64
	ExperienceLevel float64
	AvgRating       float64
}

// JobVector is the normalized representation of one job posting.
type JobVector struct {
	Skills          []float64
	HourlyRate      float64
	ExperienceLevel float64
}

// Preprocessor owns the fitted vocabulary and scalers. It is stateless
// after Fit; a second Fit call fully replaces the prior state.
type Preprocessor struct {
	vocab        *Vocabulary
	rateScaler   MinMaxScaler
	yearsScaler  MinMaxScaler
	ratingScaler MinMaxScaler
	fitted       bool
}

// NewPreprocessor creates an unfitted preprocessor.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{}
}

// Fit builds the skill vocabulary and the rate/experience/rating
// scalers from the freelancer corpus. The same corpus must later feed
// TransformFreelancer; cross-corpus scaling is a bug.
func (p *Preprocessor) Fit(corpus []model.Freelancer) error {
	if len(corpus) == 0 {
		return ErrEmptyCorpus
	}

	docs := make([][]string, len(corpus))
	rates := make([]float64, len(corpus))
	years := make([]float64, len(corpus))
	ratings := make([]float64, len(corpus))
	for i, f := range corpus {
		docs[i] = f.Skills
		rates[i] = f.HourlyRate
		years[i] = float64(f.ExperienceYears)
		ratings[i] = f.AvgRating
	}

	p.vocab = fitVocabulary(docs)
	p.rateScaler = MinMaxScaler{}
	p.yearsScaler = MinMaxScaler{}
	p.ratingScaler = MinMaxScaler{}
	p.rateScaler.Fit(rates)
	p.yearsScaler.Fit(years)
	p.ratingScaler.Fit(ratings)
	p.fitted = true
	return nil
}

// Fitted reports whether Fit has completed.
func (p *Preprocessor) Fitted() bool {
	return p.fitted
}

// TransformFreelancer maps a freelancer record into the fitted space.
func (p *Preprocessor) TransformFreelancer(f model.Freelancer) (FreelancerVector, error) {
	if !p.fitted {
		return FreelancerVector{}, ErrNotFitted
	}
	return FreelancerVector{
		Skills:          p.vocab.Vectorize(f.Skills),
		HourlyRate:      p.rateScaler.Transform(f.HourlyRate),
		ExperienceYears: p.yearsScaler.Transform(float64(f.ExperienceYears)),
		ExperienceLevel: normalizeLevel(f.ExperienceLevel),
		AvgRating:       p.ratingScaler.Transform(f.AvgRating),
	}, nil
}

// TransformJob maps a job posting into the fitted space. Hourly
// budgets use the scaled midpoint of the range; fixed budgets fall
// back to the constant placeholder rate.
func (p *Preprocessor) TransformJob(j model.Job) (JobVector, error) {
	if !p.fitted {
		return JobVector{}, ErrNotFitted
	}

	rate := fixedBudgetRate
	if j.Budget.Type == model.BudgetHourly {
		rate = p.rateScaler.Transform(j.Budget.HourlyMidpoint())
	}

	return JobVector{
		Skills:          p.vocab.Vectorize(j.SkillsRequired),
		HourlyRate:      rate,
		ExperienceLevel: normalizeLevel(j.ExperienceLevel),
	}, nil
}

// SkillTerms returns the fitted vocabulary's skill terms for external
// discovery endpoints.
func (p *Preprocessor) SkillTerms() ([]string, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	return p.vocab.Terms(), nil
}

// VocabularySize returns the number of fitted skill terms.
func (p *Preprocessor) VocabularySize() int {
	if !p.fitted {
		return 0
	}
	return p.vocab.Size()
}

// normalizeLevel maps a tier's 1..4 ordinal into (0,1].
func normalizeLevel(l model.ExperienceLevel) float64 {
	return float64(l.Ordinal()) / levelOrdinalDivisor
}
