// Package models defines the persisted data shapes of the TB3 tracker.
// JSON field names match the backup/export document format, so an exported
// file round-trips through these types unchanged.
package models

import "encoding/json"

// CurrentSchemaVersion is the schema version this build reads and writes.
// Older documents are upgraded by internal/appschema; newer ones are rejected
// by the import gate.
const CurrentSchemaVersion = 3

// BodyweightLift is the one lift loaded on a dip belt instead of a barbell.
const BodyweightLift = "Weighted Pull-up"

// OneRepMaxTest is a single recorded max test. Tests are never edited, only
// superseded by a newer test with a later date.
type OneRepMaxTest struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"` // ISO 8601 day, e.g. "2025-01-01"
	LiftName      string  `json:"liftName"`
	Weight        float64 `json:"weight"`
	Reps          int     `json:"reps"`
	CalculatedMax float64 `json:"calculatedMax"`
	MaxType       string  `json:"maxType"` // "training" or "true"
	WorkingMax    float64 `json:"workingMax"`
	LastModified  string  `json:"lastModified"`
}

// DerivedLiftEntry is the current state of one lift, recomputed from the
// full max-test history whenever it is needed.
type DerivedLiftEntry struct {
	Name         string  `json:"name"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	OneRepMax    float64 `json:"oneRepMax"`
	WorkingMax   float64 `json:"workingMax"`
	IsBodyweight bool    `json:"isBodyweight"`
	TestDate     string  `json:"testDate"`
}

// UserProfile holds settings that drive derivation and presentation.
type UserProfile struct {
	Unit               string  `json:"unit"`
	MaxType            string  `json:"maxType"` // "training" or "true"
	RoundingIncrement  float64 `json:"roundingIncrement"`
	BarbellWeight      float64 `json:"barbellWeight"`
	RestTimerDefault   int     `json:"restTimerDefault"` // seconds, 0 = auto
	VoiceAnnouncements bool    `json:"voiceAnnouncements"`
	VoiceName          *string `json:"voiceName"`
}

// PlateInventory is the set of plates the user owns, counted per side of a
// barbell. Belt loading uses the same shape without doubling.
type PlateInventory struct {
	Plates []InventoryPlate `json:"plates"`
}

// InventoryPlate is one denomination with an available count.
type InventoryPlate struct {
	Weight    float64 `json:"weight"`
	Available int     `json:"available"`
}

// ActiveProgram is the user's in-progress training cycle.
type ActiveProgram struct {
	TemplateID     string              `json:"templateId"`
	StartDate      string              `json:"startDate"`
	CurrentWeek    int                 `json:"currentWeek"`
	CurrentSession int                 `json:"currentSession"`
	LiftSelections map[string][]string `json:"liftSelections"`
	LastModified   string              `json:"lastModified"`
}

// SessionRecord is one completed (or abandoned) training session. Exercises
// is the client's per-set log, carried opaquely so backups round-trip without
// the server needing to understand the set format.
type SessionRecord struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	TemplateID    string          `json:"templateId"`
	Week          int             `json:"week"`
	SessionNumber int             `json:"sessionNumber"`
	Status        string          `json:"status"`
	StartedAt     string          `json:"startedAt"`
	CompletedAt   string          `json:"completedAt"`
	Notes         string          `json:"notes"`
	Exercises     json.RawMessage `json:"exercises,omitempty"`
	LastModified  string          `json:"lastModified"`
}

// AppData is the whole persisted application state.
type AppData struct {
	SchemaVersion    int             `json:"schemaVersion"`
	Profile          *UserProfile    `json:"profile"`
	BarbellInventory PlateInventory  `json:"barbellInventory"`
	BeltInventory    PlateInventory  `json:"beltInventory"`
	ActiveProgram    *ActiveProgram  `json:"activeProgram"`
	SessionHistory   []SessionRecord `json:"sessionHistory"`
	MaxTestHistory   []OneRepMaxTest `json:"maxTestHistory"`
}
