package schedule

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/claude/tb3/internal/models"
)

// fingerprint collects every input that can change the computed schedule's
// content. Anything not listed here must not affect Generate's output.
type fingerprint struct {
	TemplateID        string              `json:"templateId"`
	LiftSelections    map[string][]string `json:"liftSelections"`
	Lifts             []liftFingerprint   `json:"lifts"`
	MaxType           string              `json:"maxType"`
	RoundingIncrement float64             `json:"roundingIncrement"`
	BarbellWeight     float64             `json:"barbellWeight"`
}

type liftFingerprint struct {
	Name         string  `json:"name"`
	WorkingMax   float64 `json:"workingMax"`
	IsBodyweight bool    `json:"isBodyweight"`
}

// SourceHash returns a stable fingerprint of the schedule's inputs. Equal
// inputs always hash equal (encoding/json emits map keys sorted, and the
// lift list is sorted here), so callers can memoize Generate on this value.
func SourceHash(program *models.ActiveProgram, liftEntries []models.DerivedLiftEntry, profile *models.UserProfile) string {
	fp := fingerprint{
		TemplateID:        program.TemplateID,
		LiftSelections:    program.LiftSelections,
		MaxType:           profile.MaxType,
		RoundingIncrement: profile.RoundingIncrement,
		BarbellWeight:     profile.BarbellWeight,
	}

	fp.Lifts = make([]liftFingerprint, 0, len(liftEntries))
	for _, e := range liftEntries {
		fp.Lifts = append(fp.Lifts, liftFingerprint{
			Name:         e.Name,
			WorkingMax:   e.WorkingMax,
			IsBodyweight: e.IsBodyweight,
		})
	}
	sort.Slice(fp.Lifts, func(i, j int) bool { return fp.Lifts[i].Name < fp.Lifts[j].Name })

	// Marshal of this struct cannot fail.
	data, _ := json.Marshal(fp)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
