package workouts

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// AddSet appends an empty set numbered after the existing ones.
func AddSet(sets []Set) []Set {
	return append(sets, Set{SetNumber: len(sets) + 1})
}

// RemoveSet removes the set at index and renumbers the rest.
// The last remaining set is never removed.
func RemoveSet(sets []Set, index int) []Set {
	if len(sets) <= 1 || index < 0 || index >= len(sets) {
		return sets
	}

	remaining := make([]Set, 0, len(sets)-1)
	remaining = append(remaining, sets[:index]...)
	remaining = append(remaining, sets[index+1:]...)
	return RenumberSets(remaining)
}

// RenumberSets numbers the sets 1..N in their current order.
func RenumberSets(sets []Set) []Set {
	renumbered := make([]Set, len(sets))
	for i, s := range sets {
		s.SetNumber = i + 1
		renumbered[i] = s
	}
	return renumbered
}

// PrepareSets orders incoming sets by their given number, keeping the request
// order for ties and missing numbers, and makes the numbering dense.
func PrepareSets(sets []Set) []Set {
	ordered := make([]Set, len(sets))
	copy(ordered, sets)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SetNumber < ordered[j].SetNumber
	})
	return RenumberSets(ordered)
}

// ValidateSets rejects an empty list and any set without positive weight and reps.
// All problems are reported together.
func ValidateSets(sets []Set) error {
	if len(sets) == 0 {
		return fmt.Errorf("%w: at least one set is required", ErrInvalidSet)
	}

	var err error
	for i, s := range sets {
		if s.Weight <= 0 {
			err = multierr.Append(err, fmt.Errorf("%w: set %d: weight must be greater than 0", ErrInvalidSet, i+1))
		}
		if s.Reps <= 0 {
			err = multierr.Append(err, fmt.Errorf("%w: set %d: reps must be greater than 0", ErrInvalidSet, i+1))
		}
	}
	return err
}

// LegacyProjection is what gets stored in the scalar weight and reps of a log with sets:
// the average set weight and the total reps.
func LegacyProjection(sets []Set) (float64, int) {
	if len(sets) == 0 {
		return 0, 0
	}

	var weightSum float64
	var totalReps int
	for _, s := range sets {
		weightSum += s.Weight
		totalReps += s.Reps
	}
	return weightSum / float64(len(sets)), totalReps
}
