package models

// KnownLifts is the closed set of lift names the templates reference.
// Validation flags anything else as a warning, not an error.
var KnownLifts = map[string]bool{
	"Squat":          true,
	"Front Squat":    true,
	"Bench":          true,
	"Incline Bench":  true,
	"Deadlift":       true,
	"Military Press": true,
	"Barbell Row":    true,
	BodyweightLift:   true,
}

// Bounds accepted for max-test entries. Anything outside is either a
// validation warning (loaded state) or an import rejection.
const (
	MinTestWeight = 0
	MaxTestWeight = 1500
	MinTestReps   = 1
	MaxTestReps   = 15
	MaxNotesLen   = 500
)

// DefaultProfile returns the profile a fresh install starts with.
func DefaultProfile() *UserProfile {
	return &UserProfile{
		Unit:              "lbs",
		MaxType:           "training",
		RoundingIncrement: 5,
		BarbellWeight:     45,
		RestTimerDefault:  0,
	}
}

// DefaultBarbellInventory is one side of a typical home rack.
func DefaultBarbellInventory() PlateInventory {
	return PlateInventory{Plates: []InventoryPlate{
		{Weight: 45, Available: 4},
		{Weight: 35, Available: 2},
		{Weight: 25, Available: 2},
		{Weight: 10, Available: 2},
		{Weight: 5, Available: 2},
		{Weight: 2.5, Available: 2},
		{Weight: 1.25, Available: 2},
	}}
}

// DefaultBeltInventory is the plates usable on a dip belt.
func DefaultBeltInventory() PlateInventory {
	return PlateInventory{Plates: []InventoryPlate{
		{Weight: 45, Available: 2},
		{Weight: 25, Available: 2},
		{Weight: 10, Available: 2},
		{Weight: 5, Available: 2},
		{Weight: 2.5, Available: 2},
	}}
}

// DefaultAppData returns a fresh, valid application state.
func DefaultAppData() *AppData {
	return &AppData{
		SchemaVersion:    CurrentSchemaVersion,
		Profile:          DefaultProfile(),
		BarbellInventory: DefaultBarbellInventory(),
		BeltInventory:    DefaultBeltInventory(),
		SessionHistory:   []SessionRecord{},
		MaxTestHistory:   []OneRepMaxTest{},
	}
}
