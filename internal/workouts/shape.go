package workouts

import "sort"

// Shape is the read-time shape of a stored log: either LegacySet or DetailedSets.
type Shape interface {
	isShape()
}

// LegacySet is a log from before per-set logging, only scalar weight and reps.
type LegacySet struct {
	Weight float64
	Reps   int
}

// DetailedSets is a log with one or more sets.
type DetailedSets struct {
	Sets []Set
}

func (LegacySet) isShape()    {}
func (DetailedSets) isShape() {}

func (l StoredLog) Shape() Shape {
	if len(l.Sets) > 0 {
		return DetailedSets{Sets: l.Sets}
	}
	return LegacySet{Weight: l.Weight, Reps: l.Reps}
}

// Normalize turns a stored log of either shape into a Log with a non-empty,
// ascending list of sets. A legacy log becomes a single unassisted set.
func Normalize(stored StoredLog) Log {
	log := Log{
		ID:           stored.ID,
		UserID:       stored.UserID,
		ExerciseID:   stored.ExerciseID,
		ExerciseName: stored.ExerciseName,
		LoggedAt:     stored.LoggedAt,
	}

	switch shape := stored.Shape().(type) {
	case DetailedSets:
		sets := make([]Set, len(shape.Sets))
		copy(sets, shape.Sets)
		sort.SliceStable(sets, func(i, j int) bool {
			return sets[i].SetNumber < sets[j].SetNumber
		})
		log.Sets = sets
	case LegacySet:
		log.Sets = []Set{{
			SetNumber: 1,
			Weight:    shape.Weight,
			Reps:      shape.Reps,
			Assisted:  false,
		}}
	}

	return log
}

func NormalizeAll(stored []StoredLog) []Log {
	logs := make([]Log, 0, len(stored))
	for _, s := range stored {
		logs = append(logs, Normalize(s))
	}
	return logs
}
