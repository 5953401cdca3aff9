// Package repository defines the corpus store interface and errors.
package repository

import (
	"context"

	"github.com/hirelance/matchd/internal/domain/model"
)

// Store provides read access to the freelancer/job corpus. The
// matching core only reads from it; the corpus is replaced wholesale,
// never partially mutated.
type Store interface {
	// Freelancers returns the full freelancer corpus in stable order.
	Freelancers(ctx context.Context) []model.Freelancer

	// Jobs returns the job postings held alongside the corpus.
	Jobs(ctx context.Context) []model.Job

	// FreelancerByID returns a single freelancer.
	// Returns ErrNotFound if the id is unknown.
	FreelancerByID(ctx context.Context, id string) (model.Freelancer, error)

	// FreelancersBySkill returns freelancers carrying the given skill.
	FreelancersBySkill(ctx context.Context, skill string) []model.Freelancer

	// FreelancersByLevel returns freelancers at the given tier.
	FreelancersByLevel(ctx context.Context, level model.ExperienceLevel) []model.Freelancer

	// FreelancersByRate returns freelancers with an hourly rate in [min, max].
	FreelancersByRate(ctx context.Context, minRate, maxRate float64) []model.Freelancer

	// Count returns the number of freelancers in the corpus.
	Count(ctx context.Context) int
}
