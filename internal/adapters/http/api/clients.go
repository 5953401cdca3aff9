// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// ClientsHandler handles per-client collaborative recommendations.
type ClientsHandler struct {
	deps Dependencies
	opts Options
}

// NewClientsHandler creates a new clients handler.
func NewClientsHandler(deps Dependencies, opts Options) *ClientsHandler {
	return &ClientsHandler{deps: deps, opts: opts}
}

// HandleClientRecommendations handles
// GET /clients/{client_id}/recommendations?top_n=N requests. A client
// with no interaction history gets an empty list, not an error.
func (h *ClientsHandler) HandleClientRecommendations(w http.ResponseWriter, r *http.Request) {
	const op = "api.client_recommendations"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/clients/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "recommendations" {
		http.NotFound(w, r)
		return
	}
	clientID := parts[0]

	topN, err := parseTopN(r, h.opts.TopN, h.opts.MaxTopN)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	recs, err := h.deps.RecommendForClient(r.Context(), clientID, topN)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	if recs == nil {
		recs = []Recommendation{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"client_id":       clientID,
		"recommendations": recs,
		"total_matches":   len(recs),
	})
}
