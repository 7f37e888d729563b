package workouts

// EffectiveWeight is the heaviest set of a log.
func EffectiveWeight(log Log) float64 {
	var heaviest float64
	for i, s := range log.Sets {
		if i == 0 || s.Weight > heaviest {
			heaviest = s.Weight
		}
	}
	return heaviest
}

// PersonalRecord is the max effective weight over the logs.
// Reports false when there are no logs, there is no record then, not a zero one.
func PersonalRecord(logs []Log) (float64, bool) {
	if len(logs) == 0 {
		return 0, false
	}

	pr := EffectiveWeight(logs[0])
	for _, l := range logs[1:] {
		if w := EffectiveWeight(l); w > pr {
			pr = w
		}
	}
	return pr, true
}

// LastWorkout takes logs ordered newest first, and describes the first one.
func LastWorkout(logs []Log) (*LastWorkoutView, bool) {
	if len(logs) == 0 {
		return nil, false
	}

	last := logs[0]
	view := &LastWorkoutView{
		LogID:    last.ID,
		LoggedAt: last.LoggedAt,
		Sets:     last.Sets,
	}
	for _, s := range last.Sets {
		if s.Assisted {
			view.HasAssisted = true
			break
		}
	}
	return view, true
}

// ExerciseRecords computes the record and last workout for every exercise.
// Exercises come in catalog order; exercises that only appear in the logs are appended.
// Logs must be ordered newest first.
func ExerciseRecords(exercises []ExerciseRef, logs []Log) []ExerciseRecord {
	byExercise := make(map[string][]Log)
	var logOnly []ExerciseRef
	known := make(map[string]bool, len(exercises))
	for _, ex := range exercises {
		known[ex.ID] = true
	}

	for _, l := range logs {
		if _, seen := byExercise[l.ExerciseID]; !seen && !known[l.ExerciseID] {
			logOnly = append(logOnly, ExerciseRef{ID: l.ExerciseID, Name: l.ExerciseName})
		}
		byExercise[l.ExerciseID] = append(byExercise[l.ExerciseID], l)
	}

	all := make([]ExerciseRef, 0, len(exercises)+len(logOnly))
	all = append(all, exercises...)
	all = append(all, logOnly...)

	records := make([]ExerciseRecord, 0, len(all))
	for _, ex := range all {
		exLogs := byExercise[ex.ID]
		record := ExerciseRecord{
			ExerciseID:   ex.ID,
			ExerciseName: ex.Name,
		}
		if pr, ok := PersonalRecord(exLogs); ok {
			record.HasRecord = true
			record.PersonalRecord = &pr
		}
		if last, ok := LastWorkout(exLogs); ok {
			record.LastWorkout = last
		}
		records = append(records, record)
	}

	return records
}
