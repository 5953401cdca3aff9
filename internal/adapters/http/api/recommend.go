// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/hirelance/matchd/internal/domain/model"
)

// RecommendHandler handles job-based recommendation requests.
type RecommendHandler struct {
	deps Dependencies
	opts Options
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps Dependencies, opts Options) *RecommendHandler {
	return &RecommendHandler{deps: deps, opts: opts}
}

// HandleRecommend handles POST /recommend requests. The body is a job
// posting; query parameters select the mode:
//
//	top_n              number of results (default from config)
//	use_collaborative  "true" enables the hybrid re-rank
//	client_id          required when use_collaborative is set
//	cf_weight          blend weight in [0, 1], default from config
func (h *RecommendHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	const op = "api.recommend"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var job model.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	if err := job.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_job", WrapKind(op, ErrBadRequest, err))
		return
	}

	topN, err := parseTopN(r, h.opts.TopN, h.opts.MaxTopN)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	q := r.URL.Query()
	useCollaborative := strings.EqualFold(q.Get("use_collaborative"), "true")
	clientID := q.Get("client_id")
	if clientID == "" {
		clientID = job.ClientID
	}

	weight := h.opts.CollaborativeWeight
	if raw := q.Get("cf_weight"); raw != "" {
		weight, err = strconv.ParseFloat(raw, 64)
		if err != nil || weight < 0 || weight > 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
	}

	var recs []Recommendation
	if useCollaborative && clientID != "" {
		recs, err = h.deps.RecommendHybrid(r.Context(), job, clientID, weight, topN)
	} else {
		recs, err = h.deps.Recommend(r.Context(), job, topN)
	}
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	if recs == nil {
		recs = []Recommendation{}
	}

	writeJSON(w, http.StatusOK, recommendResponse{
		Job: jobSummary{
			JobID:           job.ID,
			Title:           job.Title,
			SkillsRequired:  job.SkillsRequired,
			ExperienceLevel: string(job.ExperienceLevel),
		},
		Recommendations: recs,
		TotalMatches:    len(recs),
	})
}
