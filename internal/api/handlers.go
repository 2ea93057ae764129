package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/planshift/planshift/internal/domain"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	status := http.StatusOK
	if !s.health.IsHealthy() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]interface{}{
		"healthy": s.health.IsHealthy(),
		"checks":  s.health.Statuses(),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	cfg := s.engine.Config()
	st := s.engine.State()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version": s.version,
		"active_plan": map[string]string{
			"id":   s.tracker.Last().String(),
			"name": s.tracker.ActivePlanName(),
		},
		"idle_seconds": s.idle.IdleSeconds(),
		"afk": map[string]interface{}{
			"config": cfg,
			"state":  afkStateJSON(st),
		},
	})
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.registry.Plans()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"plans": plans})
}

func (s *Server) handleGetActive(w http.ResponseWriter, r *http.Request) {
	id, err := s.registry.Active()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"id":   id.String(),
		"name": s.tracker.ActivePlanName(),
	})
}

func (s *Server) handleSetActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	if err := s.registry.SetActive(id); err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			writeError(w, http.StatusNotFound, "power plan not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.tracker.Note(id, domain.ChangeManual)

	writeJSON(w, http.StatusOK, map[string]string{
		"id":   id.String(),
		"name": s.tracker.ActivePlanName(),
	})
}

func (s *Server) handleGetAfk(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"config": s.engine.Config(),
		"state":  afkStateJSON(s.engine.State()),
	})
}

func (s *Server) handleUpdateAfk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TimeoutMinutes *uint   `json:"timeout_minutes"`
		TargetPlan     *string `json:"target_plan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.TimeoutMinutes == nil && req.TargetPlan == nil {
		writeError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	if req.TargetPlan != nil {
		target := domain.NoPlan // empty string clears the target
		if *req.TargetPlan != "" {
			parsed, err := uuid.Parse(*req.TargetPlan)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid target plan id")
				return
			}
			target = parsed
		}
		s.engine.SetTarget(target)
	}
	if req.TimeoutMinutes != nil {
		s.engine.SetTimeout(*req.TimeoutMinutes)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"config": s.engine.Config(),
		"state":  afkStateJSON(s.engine.State()),
	})
}

func (s *Server) handleDisableAfk(w http.ResponseWriter, r *http.Request) {
	s.engine.Disable()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"config": s.engine.Config(),
		"state":  afkStateJSON(s.engine.State()),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	changes, err := s.history.PlanHistory(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"changes": changes})
}

// afkStateJSON renders the runtime state with a readable phase and the
// previous plan only while it is meaningful.
func afkStateJSON(st domain.AfkState) map[string]interface{} {
	out := map[string]interface{}{"phase": st.Phase.String()}
	if st.Phase == domain.AfkForced {
		out["previous_plan"] = st.PreviousPlan.String()
	}
	return out
}
