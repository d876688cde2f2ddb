package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/claude/tb3/internal/appschema"
	"github.com/claude/tb3/internal/models"
)

// maxImportBytes caps backup files well above any real export's size.
const maxImportBytes = 1_000_000

// unsafeKeys are object keys that smuggle prototype-pollution payloads
// through JSON. A backup containing one anywhere is rejected outright,
// never sanitized.
var unsafeKeys = map[string]bool{
	"__proto__":   true,
	"prototype":   true,
	"constructor": true,
}

// ImportData runs the full rejection gate over a raw backup file and
// returns the parsed document. Every failure closes the import with a
// specific reason; nothing is coerced or partially accepted.
func ImportData(raw []byte) (map[string]any, error) {
	if len(raw) > maxImportBytes {
		return nil, errors.New("import file too large (max 1MB)")
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.New("could not parse backup file")
	}

	if sentinel, _ := doc["tb3_export"].(bool); !sentinel {
		return nil, errors.New("not a TB3 backup")
	}

	version, ok := doc["schemaVersion"].(float64)
	if !ok {
		return nil, errors.New("invalid version field")
	}
	if int(version) > models.CurrentSchemaVersion {
		return nil, errors.New("backup was created by a newer version of the app")
	}

	if err := checkSafe(doc); err != nil {
		return nil, err
	}

	if _, ok := doc["profile"].(map[string]any); !ok {
		return nil, errors.New("backup is missing profile")
	}
	sessions, ok := doc["sessionHistory"].([]any)
	if !ok {
		return nil, errors.New("backup is missing session history")
	}
	maxTests, _ := doc["maxTestHistory"].([]any)

	for _, item := range maxTests {
		test, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, _ := test["id"].(string)
		if w, ok := test["weight"].(float64); ok && (w <= models.MinTestWeight || w > models.MaxTestWeight) {
			return nil, fmt.Errorf("Weight out of range in max test %s", id)
		}
		if r, ok := test["reps"].(float64); ok &&
			(r != math.Trunc(r) || int(r) < models.MinTestReps || int(r) > models.MaxTestReps) {
			return nil, fmt.Errorf("Reps out of range in max test %s", id)
		}
	}

	for _, item := range sessions {
		session, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if notes, ok := session["notes"].(string); ok && len(notes) > models.MaxNotesLen {
			id, _ := session["id"].(string)
			return nil, fmt.Errorf("session %s notes exceed 500 character limit", id)
		}
	}

	if err := checkDuplicateIDs(sessions, "Duplicate session ID"); err != nil {
		return nil, err
	}
	if err := checkDuplicateIDs(maxTests, "Duplicate max test ID"); err != nil {
		return nil, err
	}

	return doc, nil
}

func checkSafe(v any) error {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			if unsafeKeys[k] {
				return errors.New("backup contains unsafe content")
			}
			if err := checkSafe(child); err != nil {
				return err
			}
		}
	case []any:
		for _, child := range val {
			if err := checkSafe(child); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkDuplicateIDs(entries []any, label string) error {
	seen := map[string]bool{}
	for _, item := range entries {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := entry["id"].(string)
		if !ok {
			continue
		}
		if seen[id] {
			return fmt.Errorf("%s: %s", label, id)
		}
		seen[id] = true
	}
	return nil
}

// Preview summarizes an import for user confirmation before commit.
type Preview struct {
	Sessions int `json:"sessions"`
	MaxTests int `json:"maxTests"`
	Lifts    int `json:"lifts"`
}

// ImportResult is a validated, migrated backup ready to commit.
type ImportResult struct {
	Data    map[string]any `json:"data"`
	Preview Preview        `json:"preview"`
}

// Import composes the rejection gate with the schema migration chain and
// builds the confirmation preview. The returned document is always at the
// current schema version.
func Import(raw []byte) (*ImportResult, error) {
	doc, err := ImportData(raw)
	if err != nil {
		return nil, err
	}

	doc, err = appschema.MigrateData(doc, models.CurrentSchemaVersion)
	if err != nil {
		return nil, err
	}

	sessions, _ := doc["sessionHistory"].([]any)
	maxTests, _ := doc["maxTestHistory"].([]any)
	liftNames := map[string]bool{}
	for _, item := range maxTests {
		if test, ok := item.(map[string]any); ok {
			if name, ok := test["liftName"].(string); ok {
				liftNames[name] = true
			}
		}
	}

	return &ImportResult{
		Data: doc,
		Preview: Preview{
			Sessions: len(sessions),
			MaxTests: len(maxTests),
			Lifts:    len(liftNames),
		},
	}, nil
}
