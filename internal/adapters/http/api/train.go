// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// TrainHandler triggers a model rebuild on demand.
type TrainHandler struct {
	deps          Dependencies
	statsProvider StatsProvider
}

// NewTrainHandler creates a new train handler.
func NewTrainHandler(deps Dependencies, statsProvider StatsProvider) *TrainHandler {
	return &TrainHandler{deps: deps, statsProvider: statsProvider}
}

// HandleTrain handles POST /train requests. Training is synchronous;
// the response carries the rebuilt model's stats.
func (h *TrainHandler) HandleTrain(w http.ResponseWriter, r *http.Request) {
	const op = "api.train"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	if err := h.deps.Train(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "train_failed", Wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "trained",
		"stats":  h.statsProvider.GetStats(),
	})
}
