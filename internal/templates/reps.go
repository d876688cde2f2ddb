package templates

import (
	"encoding/json"
	"fmt"
)

// Reps is a per-set rep prescription. Most weeks prescribe a single count;
// peak weeks can prescribe a non-uniform ladder (Gladiator week 6 runs
// 3/2/1/3/2). It marshals as a bare number when uniform and as an array
// otherwise, matching the backup document format.
type Reps []int

// Of returns a uniform prescription.
func Of(n int) Reps { return Reps{n} }

// Uniform reports whether every set shares one rep count.
func (r Reps) Uniform() bool { return len(r) == 1 }

func (r Reps) MarshalJSON() ([]byte, error) {
	if len(r) == 1 {
		return json.Marshal(r[0])
	}
	return json.Marshal([]int(r))
}

func (r *Reps) UnmarshalJSON(data []byte) error {
	var single int
	if err := json.Unmarshal(data, &single); err == nil {
		*r = Reps{single}
		return nil
	}
	var many []int
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("repsPerSet must be a number or an array of numbers")
	}
	*r = many
	return nil
}
