// Package app provides the core business service that implements
// the dependencies required by the HTTP API.
package app

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hirelance/matchd/internal/adapters/repository"
	"github.com/hirelance/matchd/internal/domain/collab"
	"github.com/hirelance/matchd/internal/domain/feature"
	"github.com/hirelance/matchd/internal/domain/match"
	"github.com/hirelance/matchd/internal/domain/model"
	"github.com/hirelance/matchd/internal/domain/types"
	"github.com/hirelance/matchd/pkg/logger"
	"github.com/hirelance/matchd/pkg/metrics"
)

const percentScale = 100

// Service is the owned recommendation model. All derived state
// (vocabulary, scalers, feature vectors, interaction matrix) is
// rebuilt wholesale by Train and swapped in under one lock, so readers
// never observe a half-rebuilt model.
type Service struct {
	mu     sync.RWMutex
	corpus repository.Store
	scorer *match.Scorer

	// Trained snapshot, replaced atomically by Train.
	pre        *feature.Preprocessor
	affinity   *collab.Model
	candidates []match.Candidate
	trained    bool
	trainedAt  time.Time

	// Configuration
	topN int

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTopN sets the default number of recommendations per request.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// New constructs a Service over the given corpus store.
func New(corpus repository.Store, opts ...Option) *Service {
	s := &Service{
		corpus: corpus,
		scorer: match.NewScorer(),
		topN:   match.DefaultTopN,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Trained reports whether the model is ready to serve.
func (s *Service) Trained() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trained
}

// Train rebuilds all derived state from the current corpus: skill
// vocabulary, scalers, per-freelancer feature vectors and the
// interaction matrix. The rebuild is stop-the-world; the new snapshot
// replaces the old one atomically. A second call fully replaces prior
// state, there is no incremental update.
func (s *Service) Train(ctx context.Context) error {
	if s.logger == nil {
		s.logger = logger.Get()
	}

	start := time.Now()
	freelancers := s.corpus.Freelancers(ctx)

	pre := feature.NewPreprocessor()
	if err := pre.Fit(freelancers); err != nil {
		metrics.RecordTrainingError()
		return fmt.Errorf("fit preprocessor: %w", err)
	}

	candidates := make([]match.Candidate, len(freelancers))
	for i, f := range freelancers {
		vec, err := pre.TransformFreelancer(f)
		if err != nil {
			metrics.RecordTrainingError()
			return fmt.Errorf("transform freelancer %s: %w", f.ID, err)
		}
		candidates[i] = match.Candidate{Freelancer: f, Features: vec}
	}

	affinity := collab.NewModel()
	affinity.Train(freelancers)

	s.mu.Lock()
	s.pre = pre
	s.candidates = candidates
	s.affinity = affinity
	s.trained = true
	s.trainedAt = time.Now()
	s.mu.Unlock()

	durationMs := float64(time.Since(start).Milliseconds())
	metrics.RecordTrainingRun(durationMs, s.trainedAt.Unix())
	metrics.UpdateModelShape(len(candidates), affinity.Clients(), pre.VocabularySize())

	s.logger.Info(ctx, "trained recommendation model",
		logger.Int("freelancers", len(candidates)),
		logger.Int("clients", affinity.Clients()),
		logger.Int("vocabulary", pre.VocabularySize()),
		logger.Float64("durationMs", durationMs),
	)
	return nil
}

// Recommend ranks the corpus against a job by content-based scoring
// alone. Returns ErrNotTrained before the first Train.
func (s *Service) Recommend(ctx context.Context, job model.Job, topN int) ([]types.Recommendation, error) {
	start := time.Now()
	matches, err := s.rankContent(job, topN)
	if err != nil {
		return nil, err
	}

	recs := make([]types.Recommendation, len(matches))
	for i, m := range matches {
		recs[i] = toRecommendation(i+1, m.Freelancer, round2(m.Score*percentScale))
	}

	metrics.RecordRecommendation("content")
	metrics.RecordRecommendationLatency(float64(time.Since(start).Milliseconds()))
	if len(recs) == 0 {
		metrics.RecordEmptyRecommendation()
	}
	return recs, nil
}

// RecommendHybrid ranks by content score, then re-ranks with the
// collaborative affinity model for the given client. When the client
// is unknown or has no history the content ranking is returned
// unchanged; hybrid requests never fail on missing history.
func (s *Service) RecommendHybrid(ctx context.Context, job model.Job, clientID string, collaborativeWeight float64, topN int) ([]types.Recommendation, error) {
	start := time.Now()
	matches, err := s.rankContent(job, topN)
	if err != nil {
		return nil, err
	}

	content := make([]collab.Scored, len(matches))
	byID := make(map[string]model.Freelancer, len(matches))
	for i, m := range matches {
		content[i] = collab.Scored{FreelancerID: m.FreelancerID, Score: round2(m.Score * percentScale)}
		byID[m.FreelancerID] = m.Freelancer
	}

	s.mu.RLock()
	affinity := s.affinity
	s.mu.RUnlock()

	predictions, err := affinity.PredictForClient(clientID, collab.DefaultTopN)
	if err != nil {
		return nil, err
	}
	if len(predictions) == 0 {
		// No history for this client; serve the content ranking as-is.
		metrics.RecordCollaborativeFallback()
	}

	blended, err := affinity.Blend(clientID, content, collaborativeWeight)
	if err != nil {
		return nil, err
	}

	recs := make([]types.Recommendation, 0, len(blended))
	for _, b := range blended {
		f, ok := byID[b.FreelancerID]
		if !ok {
			// Entry surfaced by the collaborative side only.
			f, err = s.corpus.FreelancerByID(ctx, b.FreelancerID)
			if err != nil {
				continue
			}
		}
		recs = append(recs, toRecommendation(len(recs)+1, f, round2(b.Score)))
	}

	metrics.RecordRecommendation("hybrid")
	metrics.RecordRecommendationLatency(float64(time.Since(start).Milliseconds()))
	return recs, nil
}

// RecommendForClient predicts freelancers for a client purely from
// collaborative filtering. An unknown client or one without history
// yields an empty list.
func (s *Service) RecommendForClient(ctx context.Context, clientID string, topN int) ([]types.Recommendation, error) {
	s.mu.RLock()
	trained := s.trained
	affinity := s.affinity
	s.mu.RUnlock()
	if !trained {
		return nil, ErrNotTrained
	}

	predictions, err := affinity.PredictForClient(clientID, topN)
	if err != nil {
		return nil, err
	}

	recs := make([]types.Recommendation, 0, len(predictions))
	for _, p := range predictions {
		f, err := s.corpus.FreelancerByID(ctx, p.FreelancerID)
		if err != nil {
			continue
		}
		recs = append(recs, toRecommendation(len(recs)+1, f, round2(p.MatchScore)))
	}

	metrics.RecordRecommendation("collaborative")
	if len(recs) == 0 {
		metrics.RecordEmptyRecommendation()
	}
	return recs, nil
}

// Skills returns the fitted vocabulary's skill terms.
func (s *Service) Skills(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.trained {
		return nil, ErrNotTrained
	}
	terms, err := s.pre.SkillTerms()
	if err != nil {
		return nil, fmt.Errorf("skill terms: %w", err)
	}
	return terms, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"trained": s.trained,
		"topN":    s.topN,
	}
	if s.trained {
		stats["freelancers"] = len(s.candidates)
		stats["clients"] = s.affinity.Clients()
		stats["vocabularySize"] = s.pre.VocabularySize()
		stats["trainedAt"] = s.trainedAt.UTC().Format(time.RFC3339)

		metrics.UpdateModelShape(len(s.candidates), s.affinity.Clients(), s.pre.VocabularySize())
	}
	return stats
}

// rankContent transforms the job and ranks the trained candidates.
func (s *Service) rankContent(job model.Job, topN int) ([]match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.trained {
		return nil, ErrNotTrained
	}
	if topN <= 0 {
		topN = s.topN
	}

	jobVec, err := s.pre.TransformJob(job)
	if err != nil {
		return nil, fmt.Errorf("transform job: %w", err)
	}
	return s.scorer.Rank(jobVec, s.candidates, topN), nil
}

func toRecommendation(rank int, f model.Freelancer, score float64) types.Recommendation {
	return types.Recommendation{
		Rank:              rank,
		FreelancerID:      f.ID,
		Name:              f.Name,
		MatchScore:        score,
		Skills:            f.Skills,
		HourlyRate:        f.HourlyRate,
		ExperienceLevel:   string(f.ExperienceLevel),
		CompletedProjects: f.CompletedProjects,
		AvgRating:         f.AvgRating,
	}
}

// round2 rounds to two decimals for presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
