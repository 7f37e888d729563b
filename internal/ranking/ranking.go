package ranking

import (
	"errors"
	"fmt"
	"time"
)

var ErrNotAuthorized = errors.New("not authorized to view this user")

// UserProgress is a row of the PR ranking, ordered by total PR weight.
type UserProgress struct {
	UserID               string  `json:"userId" db:"user_id"`
	UserName             string  `json:"userName" db:"user_name"`
	UserEmail            string  `json:"userEmail" db:"user_email"`
	TotalPRWeight        float64 `json:"totalPrWeight" db:"total_pr_weight"`
	TotalExercisesWithPR int64   `json:"totalExercisesWithPr" db:"total_exercises_with_pr"`
	TotalVolume          float64 `json:"totalVolume" db:"total_volume"`
	RecentVolume         float64 `json:"recentVolume" db:"recent_volume"`
	PRCount              int64   `json:"prCount" db:"pr_count"`
}

func (u UserProgress) RankedUserID() string { return u.UserID }

// Progression is a row of the progression ranking, ordered by average progression percentage.
type Progression struct {
	UserID                       string  `json:"userId" db:"user_id"`
	UserName                     string  `json:"userName" db:"user_name"`
	UserEmail                    string  `json:"userEmail" db:"user_email"`
	TotalProgressionPercentage   float64 `json:"totalProgressionPercentage" db:"total_progression_percentage"`
	AverageProgressionPercentage float64 `json:"averageProgressionPercentage" db:"average_progression_percentage"`
	ExercisesWithProgression     int64   `json:"exercisesWithProgression" db:"exercises_with_progression"`
	TotalPRWeight                float64 `json:"totalPrWeight" db:"total_pr_weight"`
	FirstTotalWeight             float64 `json:"firstTotalWeight" db:"first_total_weight"`
}

func (p Progression) RankedUserID() string { return p.UserID }

type ExerciseProgress struct {
	ExerciseID      string     `json:"exerciseId" db:"exercise_id"`
	ExerciseName    string     `json:"exerciseName" db:"exercise_name"`
	PRWeight        float64    `json:"prWeight" db:"pr_weight"`
	PRDate          *time.Time `json:"prDate" db:"pr_date"`
	TotalWorkouts   int64      `json:"totalWorkouts" db:"total_workouts"`
	LastWorkoutDate *time.Time `json:"lastWorkoutDate" db:"last_workout_date"`
}

type WeightPoint struct {
	Date         time.Time `json:"date" db:"date"`
	MaxWeight    float64   `json:"maxWeight" db:"max_weight"`
	ExerciseID   string    `json:"exerciseId" db:"exercise_id"`
	ExerciseName string    `json:"exerciseName" db:"exercise_name"`
}

// Ranked is a row of an already ordered ranking list.
type Ranked interface {
	RankedUserID() string
}

// RankPosition is the 1-based position of the user in the list, 0 when absent.
// The list is taken as ordered by the store, it is never re-sorted.
func RankPosition[T Ranked](list []T, userID string) int {
	for i, row := range list {
		if row.RankedUserID() == userID {
			return i + 1
		}
	}
	return 0
}

func FormatRank(position int) string {
	if position <= 0 {
		return "-"
	}
	return fmt.Sprintf("#%d", position)
}

// FormatWeight is used for weights and percentages.
func FormatWeight(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func FormatVolume(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
