// Package plates solves plate loading against a discrete inventory, for a
// two-sided barbell and for a one-sided dip belt. Loading is never an error:
// an impossible target comes back as a result with Achievable=false and the
// nearest weight the inventory can actually build.
package plates

import (
	"strconv"
	"strings"

	"github.com/claude/tb3/internal/models"
)

// epsilon absorbs float drift from fractional denominations (1.25, 2.5).
const epsilon = 1e-6

// Plate is one denomination actually loaded, with how many of it.
type Plate struct {
	Weight float64 `json:"weight"`
	Count  int     `json:"count"`
}

// Result describes one plate computation.
type Result struct {
	Achievable        bool     `json:"achievable"`
	Plates            []Plate  `json:"plates"`
	DisplayText       string   `json:"displayText"`
	IsBarOnly         bool     `json:"isBarOnly,omitempty"`
	IsBelowBar        bool     `json:"isBelowBar,omitempty"`
	IsBodyweightOnly  bool     `json:"isBodyweightOnly,omitempty"`
	NearestAchievable *float64 `json:"nearestAchievable,omitempty"`
}

// Barbell computes the per-side plate load for a total barbell weight.
func Barbell(totalWeight, barWeight float64, inv models.PlateInventory) Result {
	if totalWeight <= 0 {
		return Result{Plates: []Plate{}, DisplayText: "Not achievable"}
	}
	if diff := totalWeight - barWeight; diff > -epsilon && diff < epsilon {
		return Result{Achievable: true, IsBarOnly: true, Plates: []Plate{}, DisplayText: "Bar only"}
	}
	if totalWeight < barWeight {
		return Result{IsBelowBar: true, Plates: []Plate{}, DisplayText: "Below bar weight"}
	}

	perSide := (totalWeight - barWeight) / 2
	used, sum := greedy(perSide, inv)
	if perSide-sum <= epsilon {
		return Result{
			Achievable:  true,
			Plates:      used,
			DisplayText: displayText(used, "per side"),
		}
	}

	nearest := best(perSide, inv)*2 + barWeight
	return Result{
		Plates:            []Plate{},
		DisplayText:       "Not achievable",
		NearestAchievable: &nearest,
	}
}

// Belt computes the plate load hung from a dip belt. Weight is matched
// directly: no doubling, no bar offset.
func Belt(totalWeight float64, inv models.PlateInventory) Result {
	if totalWeight <= 0 {
		return Result{Achievable: true, IsBodyweightOnly: true, Plates: []Plate{}, DisplayText: "Bodyweight only"}
	}

	used, sum := greedy(totalWeight, inv)
	if totalWeight-sum <= epsilon {
		return Result{
			Achievable:  true,
			Plates:      used,
			DisplayText: displayText(used, "on belt"),
		}
	}

	nearest := best(totalWeight, inv)
	return Result{
		Plates:            []Plate{},
		DisplayText:       "Not achievable",
		NearestAchievable: &nearest,
	}
}

// greedy consumes the largest denomination that still fits until the target
// is met or nothing fits, respecting available counts.
func greedy(target float64, inv models.PlateInventory) ([]Plate, float64) {
	used := []Plate{}
	sum := 0.0
	for _, d := range sortedDesc(inv) {
		if d.Available <= 0 || d.Weight <= 0 {
			continue
		}
		count := 0
		for count < d.Available && target-sum-d.Weight > -epsilon {
			sum += d.Weight
			count++
		}
		if count > 0 {
			used = append(used, Plate{Weight: d.Weight, Count: count})
		}
	}
	return used, sum
}

// best finds the largest per-side sum not exceeding target that the inventory
// can actually build. The greedy descent can miss it (taking a big plate can
// block an exact smaller combination), so this walks every count choice per
// denomination. Denomination lists are small; the search is bounded by
// count+1 choices per denomination.
func best(target float64, inv models.PlateInventory) float64 {
	denoms := sortedDesc(inv)
	bestSum := 0.0
	var walk func(i int, sum float64)
	walk = func(i int, sum float64) {
		if sum > bestSum {
			bestSum = sum
		}
		if i == len(denoms) || target-bestSum <= epsilon {
			return
		}
		d := denoms[i]
		if d.Weight <= 0 {
			walk(i+1, sum)
			return
		}
		maxCount := int((target - sum + epsilon) / d.Weight)
		if maxCount > d.Available {
			maxCount = d.Available
		}
		for c := maxCount; c >= 0; c-- {
			walk(i+1, sum+float64(c)*d.Weight)
		}
	}
	walk(0, 0)
	return bestSum
}

func sortedDesc(inv models.PlateInventory) []models.InventoryPlate {
	denoms := make([]models.InventoryPlate, len(inv.Plates))
	copy(denoms, inv.Plates)
	for i := 1; i < len(denoms); i++ {
		for j := i; j > 0 && denoms[j].Weight > denoms[j-1].Weight; j-- {
			denoms[j], denoms[j-1] = denoms[j-1], denoms[j]
		}
	}
	return denoms
}

func displayText(used []Plate, suffix string) string {
	parts := make([]string, 0, len(used))
	for _, p := range used {
		if p.Count > 1 {
			parts = append(parts, strconv.Itoa(p.Count)+"x"+formatWeight(p.Weight))
		} else {
			parts = append(parts, formatWeight(p.Weight))
		}
	}
	return strings.Join(parts, " + ") + " " + suffix
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
