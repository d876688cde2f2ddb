// Package appschema upgrades persisted application documents across schema
// versions. It works on the raw JSON object form because a document can only
// be decoded into the typed models once it is at the current version.
package appschema

import (
	"errors"
	"fmt"
)

// step upgrades a document in place from one version to the next. Steps must
// be idempotent on fields that already exist.
type step func(doc map[string]any)

// steps[n] upgrades vn to vn+1.
var steps = map[int]step{
	1: func(doc map[string]any) {
		p := profileOf(doc)
		if _, ok := p["voiceAnnouncements"]; !ok {
			p["voiceAnnouncements"] = false
		}
	},
	2: func(doc map[string]any) {
		p := profileOf(doc)
		if _, ok := p["voiceName"]; !ok {
			p["voiceName"] = nil
		}
	},
}

func profileOf(doc map[string]any) map[string]any {
	if p, ok := doc["profile"].(map[string]any); ok {
		return p
	}
	p := map[string]any{}
	doc["profile"] = p
	return p
}

// Version reads the document's schema version. Absent or zero means v1.
func Version(doc map[string]any) int {
	switch v := doc["schemaVersion"].(type) {
	case float64:
		if int(v) > 0 {
			return int(v)
		}
	case int:
		if v > 0 {
			return v
		}
	}
	return 1
}

// MigrateData upgrades a document to targetVersion by applying single-step
// upgraders in order. A missing step is fatal: it means the document was
// written by a newer client than this build understands how to bridge.
// The input is not mutated.
func MigrateData(doc map[string]any, targetVersion int) (map[string]any, error) {
	if doc == nil {
		return nil, errors.New("cannot migrate nil data")
	}

	out := deepCopy(doc).(map[string]any)
	v := Version(out)
	for v < targetVersion {
		up, ok := steps[v]
		if !ok {
			return nil, fmt.Errorf("No migration from v%d to v%d", v, v+1)
		}
		up(out)
		v++
		out["schemaVersion"] = v
	}
	return out, nil
}

func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = deepCopy(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = deepCopy(child)
		}
		return out
	default:
		return v
	}
}
