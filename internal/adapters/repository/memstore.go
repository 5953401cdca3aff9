package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/hirelance/matchd/internal/domain/model"
)

// MemStore is an in-memory corpus snapshot, optionally loaded from
// JSON files. Load and Replace swap the whole snapshot under one lock;
// readers never observe a half-replaced corpus.
type MemStore struct {
	mu          sync.RWMutex
	freelancers []model.Freelancer
	jobs        []model.Job
	byID        map[string]int

	freelancersPath string
	jobsPath        string
}

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithFreelancersPath sets the JSON file holding the freelancer corpus.
func WithFreelancersPath(path string) Option {
	return func(s *MemStore) {
		if path != "" {
			s.freelancersPath = path
		}
	}
}

// WithJobsPath sets the JSON file holding sample job postings.
func WithJobsPath(path string) Option {
	return func(s *MemStore) {
		if path != "" {
			s.jobsPath = path
		}
	}
}

// NewMemStore creates an empty corpus store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		byID: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the configured JSON files and replaces the snapshot. The
// jobs file is optional; the freelancer file is not.
func (s *MemStore) Load(ctx context.Context) error {
	if s.freelancersPath == "" {
		return fmt.Errorf("%w: no freelancers path configured", ErrLoadCorpus)
	}

	var freelancers []model.Freelancer
	if err := readJSONFile(s.freelancersPath, &freelancers); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadCorpus, err)
	}

	var jobs []model.Job
	if s.jobsPath != "" {
		if err := readJSONFile(s.jobsPath, &jobs); err != nil {
			return fmt.Errorf("%w: %w", ErrLoadCorpus, err)
		}
	}

	s.Replace(freelancers, jobs)
	return nil
}

// Replace swaps in a new corpus snapshot.
func (s *MemStore) Replace(freelancers []model.Freelancer, jobs []model.Job) {
	byID := make(map[string]int, len(freelancers))
	for i, f := range freelancers {
		byID[f.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.freelancers = freelancers
	s.jobs = jobs
	s.byID = byID
}

// Freelancers returns the full freelancer corpus in stable order.
func (s *MemStore) Freelancers(ctx context.Context) []model.Freelancer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.freelancers
}

// Jobs returns the job postings held alongside the corpus.
func (s *MemStore) Jobs(ctx context.Context) []model.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs
}

// FreelancerByID returns a single freelancer or ErrNotFound.
func (s *MemStore) FreelancerByID(ctx context.Context, id string) (model.Freelancer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return model.Freelancer{}, ErrNotFound
	}
	return s.freelancers[i], nil
}

// FreelancersBySkill returns freelancers carrying the given skill.
func (s *MemStore) FreelancersBySkill(ctx context.Context, skill string) []model.Freelancer {
	return s.filter(func(f model.Freelancer) bool {
		return slices.Contains(f.Skills, skill)
	})
}

// FreelancersByLevel returns freelancers at the given tier.
func (s *MemStore) FreelancersByLevel(ctx context.Context, level model.ExperienceLevel) []model.Freelancer {
	return s.filter(func(f model.Freelancer) bool {
		return f.ExperienceLevel == level
	})
}

// FreelancersByRate returns freelancers with an hourly rate in [min, max].
func (s *MemStore) FreelancersByRate(ctx context.Context, minRate, maxRate float64) []model.Freelancer {
	return s.filter(func(f model.Freelancer) bool {
		return f.HourlyRate >= minRate && f.HourlyRate <= maxRate
	})
}

// Count returns the number of freelancers in the corpus.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.freelancers)
}

func (s *MemStore) filter(keep func(model.Freelancer) bool) []model.Freelancer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Freelancer
	for _, f := range s.freelancers {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
