// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// SkillsHandler exposes the fitted skill vocabulary.
type SkillsHandler struct {
	deps Dependencies
}

// NewSkillsHandler creates a new skills handler.
func NewSkillsHandler(deps Dependencies) *SkillsHandler {
	return &SkillsHandler{deps: deps}
}

// HandleGetSkills handles GET /skills requests.
func (h *SkillsHandler) HandleGetSkills(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_skills"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	skills, err := h.deps.Skills(r.Context())
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	if skills == nil {
		skills = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"skills": skills,
		"count":  len(skills),
	})
}
