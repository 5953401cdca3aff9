package model

import (
	"errors"
	"fmt"
	"strings"
)

// Budget variant discriminators.
const (
	BudgetHourly = "hourly"
	BudgetFixed  = "fixed"
)

// ErrMalformedBudget marks a budget that is neither well-formed hourly
// nor well-formed fixed. This is a hard input-validation failure and
// must be surfaced before any scoring is attempted.
var ErrMalformedBudget = errors.New("malformed budget variant")

// Budget is the mutually exclusive hourly-range / fixed-amount variant
// carried by a job posting.
type Budget struct {
	Type    string  `json:"type"`
	MinRate float64 `json:"min_rate,omitempty"`
	MaxRate float64 `json:"max_rate,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
}

// Validate checks that exactly one variant is well-formed.
func (b Budget) Validate() error {
	switch b.Type {
	case BudgetHourly:
		if b.MinRate < 0 || b.MaxRate < 0 {
			return fmt.Errorf("%w: negative hourly rate", ErrMalformedBudget)
		}
		if b.MaxRate > 0 && b.MaxRate < b.MinRate {
			return fmt.Errorf("%w: max_rate below min_rate", ErrMalformedBudget)
		}
		return nil
	case BudgetFixed:
		if b.Amount <= 0 {
			return fmt.Errorf("%w: fixed budget requires a positive amount", ErrMalformedBudget)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown type %q", ErrMalformedBudget, b.Type)
	}
}

// HourlyMidpoint returns the midpoint of the hourly range. An absent
// min defends as 0 and an absent max collapses to min, so a partially
// filled record still yields a usable rate.
func (b Budget) HourlyMidpoint() float64 {
	minRate := b.MinRate
	maxRate := b.MaxRate
	if maxRate <= 0 {
		maxRate = minRate
	}
	return (minRate + maxRate) / 2
}

// Job is a posting to match freelancers against. Jobs are ephemeral:
// constructed per request, consumed by transformation, then discarded.
type Job struct {
	ID              string          `json:"job_id,omitempty"`
	ClientID        string          `json:"client_id,omitempty"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"` // ignored by scoring
	SkillsRequired  []string        `json:"skills_required"`
	Budget          Budget          `json:"budget"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	TimelineDays    int             `json:"timeline_days"` // accepted but unused by scoring
	CreatedAt       string          `json:"created_at,omitempty"`
}

// Validate checks the fields scoring depends on. Description and
// timeline are accepted as-is; timeline only needs to be positive.
func (j Job) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return errors.New("missing title")
	}
	if len(j.SkillsRequired) == 0 {
		return errors.New("missing skills_required")
	}
	if err := j.Budget.Validate(); err != nil {
		return err
	}
	if j.TimelineDays <= 0 {
		return errors.New("timeline_days must be positive")
	}
	return nil
}
