// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/hirelance/matchd/internal/app"
	"github.com/hirelance/matchd/internal/domain/model"
	"github.com/hirelance/matchd/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Recommend ranks the corpus against a job by content-based scoring.
	Recommend(ctx context.Context, job model.Job, topN int) ([]Recommendation, error)

	// RecommendHybrid re-ranks the content result with collaborative
	// affinity for the given client.
	RecommendHybrid(ctx context.Context, job model.Job, clientID string, collaborativeWeight float64, topN int) ([]Recommendation, error)

	// RecommendForClient predicts freelancers from interaction history alone.
	RecommendForClient(ctx context.Context, clientID string, topN int) ([]Recommendation, error)

	// Skills returns the fitted skill vocabulary.
	Skills(ctx context.Context) ([]string, error)

	// Train rebuilds the model from the current corpus.
	Train(ctx context.Context) error

	// Trained reports whether the model is ready to serve.
	Trained() bool
}

// Recommendation mirrors the read shape returned by ranking queries.
type Recommendation = types.Recommendation

// Options carry request-handling limits and defaults.
type Options struct {
	// TopN is the default number of recommendations per request.
	TopN int

	// MaxTopN caps the top_n request parameter.
	MaxTopN int

	// CollaborativeWeight is the default hybrid blend weight.
	CollaborativeWeight float64
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	recommendHandler *RecommendHandler
	clientsHandler   *ClientsHandler
	skillsHandler    *SkillsHandler
	trainHandler     *TrainHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts Options) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(deps),
		statsHandler:     NewStatsHandler(statsProvider),
		recommendHandler: NewRecommendHandler(deps, opts),
		clientsHandler:   NewClientsHandler(deps, opts),
		skillsHandler:    NewSkillsHandler(deps),
		trainHandler:     NewTrainHandler(deps, statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/recommend", MetricsMiddleware(s.recommendHandler.HandleRecommend, "recommend"))
	mux.HandleFunc("/clients/", MetricsMiddleware(s.clientsHandler.HandleClientRecommendations, "clients"))
	mux.HandleFunc("/skills", MetricsMiddleware(s.skillsHandler.HandleGetSkills, "skills"))
	mux.HandleFunc("/train", MetricsMiddleware(s.trainHandler.HandleTrain, "train"))
}

// jobSummary echoes the parsed job back in recommendation responses.
type jobSummary struct {
	JobID           string   `json:"job_id,omitempty"`
	Title           string   `json:"title"`
	SkillsRequired  []string `json:"skills_required"`
	ExperienceLevel string   `json:"experience_level"`
}

type recommendResponse struct {
	Job             jobSummary       `json:"job"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalMatches    int              `json:"total_matches"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps service errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, app.ErrNotTrained) {
		writeError(w, http.StatusServiceUnavailable, "not_trained", WrapKind(op, ErrNotTrained, err))
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
}

// parseTopN reads the top_n query parameter. Zero means "use default";
// the handler layer clamps to the configured maximum.
func parseTopN(r *http.Request, fallback, maxTopN int) (int, error) {
	raw := r.URL.Query().Get("top_n")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New("top_n must be a positive integer")
	}
	if n > maxTopN {
		return 0, errors.New("top_n exceeds the configured maximum")
	}
	return n, nil
}
