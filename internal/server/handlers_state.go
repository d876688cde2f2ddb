package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/claude/tb3/internal/calc"
	"github.com/claude/tb3/internal/models"
	"github.com/claude/tb3/internal/templates"
	"github.com/claude/tb3/internal/validate"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	data, err := s.db.LoadAppData(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, data.Profile)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if profile.Unit != "lbs" && profile.Unit != "kg" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unit must be lbs or kg"})
		return
	}
	if profile.MaxType != "training" && profile.MaxType != "true" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "maxType must be training or true"})
		return
	}
	if profile.RoundingIncrement <= 0 || profile.BarbellWeight <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "roundingIncrement and barbellWeight must be positive"})
		return
	}

	data, err := s.db.LoadAppData(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	data.Profile = &profile
	if err := s.db.SaveAppData(r.Context(), data); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.invalidateSchedule()
	writeJSON(w, http.StatusOK, data.Profile)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	data, err := s.db.LoadAppData(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if data.ActiveProgram == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no active program"})
		return
	}
	writeJSON(w, http.StatusOK, data.ActiveProgram)
}

func (s *Server) handlePutProgram(w http.ResponseWriter, r *http.Request) {
	var program models.ActiveProgram
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	tpl := templates.Get(program.TemplateID)
	if tpl == nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "unknown template: " + program.TemplateID})
		return
	}
	for key, selection := range program.LiftSelections {
		if err := checkSelection(tpl, key, selection); err != "" {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err})
			return
		}
	}
	if program.CurrentWeek < 1 {
		program.CurrentWeek = 1
	}
	if program.CurrentSession < 1 {
		program.CurrentSession = 1
	}
	if program.LastModified == "" {
		program.LastModified = nowISO()
	}

	data, err := s.db.LoadAppData(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	data.ActiveProgram = &program
	if err := s.db.SaveAppData(r.Context(), data); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.invalidateSchedule()
	writeJSON(w, http.StatusOK, data.ActiveProgram)
}

// checkSelection verifies one lift selection against its template slot.
// Returns an error message, or "" when valid.
func checkSelection(tpl *templates.Template, key string, selection []string) string {
	for _, slot := range tpl.LiftSlots {
		if slot.Key != key {
			continue
		}
		if len(selection) < slot.MinLifts || len(selection) > slot.MaxLifts {
			return fmt.Sprintf("selection %s must have between %d and %d lifts",
				key, slot.MinLifts, slot.MaxLifts)
		}
		return ""
	}
	return "unknown selection slot: " + key
}

func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	data, err := s.db.LoadAppData(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	data.ActiveProgram = nil
	if err := s.db.SaveAppData(r.Context(), data); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.invalidateSchedule()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListMaxTests(w http.ResponseWriter, r *http.Request) {
	tests, err := s.db.ListMaxTests(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if tests == nil {
		tests = []models.OneRepMaxTest{}
	}
	writeJSON(w, http.StatusOK, tests)
}

func (s *Server) handleAddMaxTest(w http.ResponseWriter, r *http.Request) {
	var test models.OneRepMaxTest
	if err := json.NewDecoder(r.Body).Decode(&test); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if test.Weight <= models.MinTestWeight || test.Weight > models.MaxTestWeight {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weight out of range"})
		return
	}
	if test.Reps < models.MinTestReps || test.Reps > models.MaxTestReps {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reps out of range"})
		return
	}
	if test.LiftName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "liftName is required"})
		return
	}
	if test.MaxType != "training" && test.MaxType != "true" {
		if profile := s.loadProfile(r); profile != nil {
			test.MaxType = profile.MaxType
		} else {
			test.MaxType = "training"
		}
	}
	if test.Date == "" {
		test.Date = time.Now().UTC().Format("2006-01-02")
	}
	if test.LastModified == "" {
		test.LastModified = nowISO()
	}

	test.CalculatedMax = calc.OneRepMax(test.Weight, test.Reps)
	if test.MaxType == "training" {
		test.WorkingMax = calc.TrainingMax(test.CalculatedMax)
	} else {
		test.WorkingMax = test.CalculatedMax
	}

	stored, err := s.db.InsertMaxTest(r.Context(), test)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.invalidateSchedule()
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.db.ListSessions(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if sessions == nil {
		sessions = []models.SessionRecord{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleAddSession(w http.ResponseWriter, r *http.Request) {
	var session models.SessionRecord
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if len(session.Notes) > models.MaxNotesLen {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "notes exceed 500 character limit"})
		return
	}
	if session.Date == "" {
		session.Date = time.Now().UTC().Format("2006-01-02")
	}
	if session.Status == "" {
		session.Status = "completed"
	}
	if session.LastModified == "" {
		session.LastModified = nowISO()
	}

	stored, err := s.db.InsertSession(r.Context(), session)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	data, err := s.db.LoadAppData(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validate.AppData(data))
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 2<<20))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "import file too large (max 1MB)"})
		return
	}

	result, err := validate.Import(raw)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	commit := r.URL.Query().Get("commit") == "true"
	if !commit {
		writeJSON(w, http.StatusOK, map[string]any{"committed": false, "preview": result.Preview})
		return
	}

	// Round-trip the migrated document through the typed model before
	// overwriting state.
	encoded, err := json.Marshal(result.Data)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	var data models.AppData
	if err := json.Unmarshal(encoded, &data); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "could not parse backup file"})
		return
	}
	if err := s.db.SaveAppData(r.Context(), &data); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.invalidateSchedule()
	writeJSON(w, http.StatusOK, map[string]any{"committed": true, "preview": result.Preview})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.db.LoadAppData(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	var doc map[string]any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	doc["tb3_export"] = true
	doc["exportDate"] = nowISO()

	w.Header().Set("Content-Disposition", `attachment; filename="tb3-backup.json"`)
	writeJSON(w, http.StatusOK, doc)
}

func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
