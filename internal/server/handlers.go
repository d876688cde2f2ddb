package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/claude/tb3/internal/calc"
	"github.com/claude/tb3/internal/lifts"
	"github.com/claude/tb3/internal/models"
	"github.com/claude/tb3/internal/plates"
	"github.com/claude/tb3/internal/schedule"
	"github.com/claude/tb3/internal/templates"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	data, err := s.db.LoadAppData(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if data.ActiveProgram == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no active program"})
		return
	}

	liftEntries := lifts.Current(data)
	hash := schedule.SourceHash(data.ActiveProgram, liftEntries, data.Profile)

	s.schedMu.Lock()
	if s.schedHash == hash && s.sched != nil {
		sched := s.sched
		s.schedMu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"hash": hash, "schedule": sched})
		return
	}
	s.schedMu.Unlock()

	sched, err := schedule.Generate(data.ActiveProgram, liftEntries, data.Profile, schedule.Inventories{
		Barbell: data.BarbellInventory,
		Belt:    data.BeltInventory,
	})
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	s.schedMu.Lock()
	s.schedHash = hash
	s.sched = sched
	s.schedMu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"hash": hash, "schedule": sched})
}

func (s *Server) handleLifts(w http.ResponseWriter, r *http.Request) {
	data, err := s.db.LoadAppData(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, lifts.Current(data))
}

func (s *Server) handlePercentages(w http.ResponseWriter, r *http.Request) {
	max, err := strconv.ParseFloat(r.URL.Query().Get("max"), 64)
	if err != nil || max <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "max parameter required"})
		return
	}

	increment := 5.0
	if v := r.URL.Query().Get("increment"); v != "" {
		if increment, err = strconv.ParseFloat(v, 64); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid increment"})
			return
		}
	} else if profile := s.loadProfile(r); profile != nil {
		increment = profile.RoundingIncrement
	}

	writeJSON(w, http.StatusOK, calc.PercentageTable(max, increment))
}

func (s *Server) handlePlates(w http.ResponseWriter, r *http.Request) {
	weight, err := strconv.ParseFloat(r.URL.Query().Get("weight"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weight parameter required"})
		return
	}

	data, err := s.db.LoadAppData(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	var result plates.Result
	if r.URL.Query().Get("belt") == "true" {
		result = plates.Belt(weight, data.BeltInventory)
	} else {
		barWeight := data.Profile.BarbellWeight
		if v := r.URL.Query().Get("bar"); v != "" {
			if barWeight, err = strconv.ParseFloat(v, 64); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid bar weight"})
				return
			}
		}
		result = plates.Barbell(weight, barWeight, data.BarbellInventory)
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid days"})
			return
		}
		writeJSON(w, http.StatusOK, templates.ForDays(days))
		return
	}
	writeJSON(w, http.StatusOK, templates.All)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	tpl := templates.Get(chi.URLParam(r, "id"))
	if tpl == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

// loadProfile fetches the stored profile, or nil on any failure. Used where
// the profile only supplies defaults.
func (s *Server) loadProfile(r *http.Request) *models.UserProfile {
	data, err := s.db.LoadAppData(r.Context())
	if err != nil {
		return nil
	}
	return data.Profile
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
