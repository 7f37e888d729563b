package workouts

import (
	"errors"
	"time"

	"github.com/2beens/gymtracker/internal/catalog"
)

var (
	ErrNotAuthorized     = errors.New("not authorized to change this log")
	ErrInvalidSet        = errors.New("invalid set")
	ErrInvalidCardio     = errors.New("invalid cardio log")
	ErrLogNotFound       = errors.New("workout log not found")
	ErrCardioNotFound    = errors.New("cardio log not found")
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrInvalidExerciseID = errors.New("invalid exercise id")
	ErrWrongExerciseType = errors.New("exercise type does not match the log")
)

type Set struct {
	SetNumber int     `json:"setNumber"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Assisted  bool    `json:"assisted"`
}

// StoredLog is a workout log as read from the store. Logs written before per-set
// logging have no sets, only the scalar weight and reps.
type StoredLog struct {
	ID           string
	UserID       string
	ExerciseID   string
	ExerciseName string
	Weight       float64
	Reps         int
	LoggedAt     time.Time
	Sets         []Set
}

// Log is a normalized workout log: it always has at least one set, ordered by set number.
type Log struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ExerciseID   string    `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	LoggedAt     time.Time `json:"loggedAt"`
	Sets         []Set     `json:"sets"`
}

type LogRequest struct {
	ExerciseID string `json:"exerciseId" validate:"required,uuid"`
	Sets       []Set  `json:"sets"`
}

type UpdateLogRequest struct {
	Sets []Set `json:"sets"`
}

type LastWorkoutView struct {
	LogID       string    `json:"logId"`
	LoggedAt    time.Time `json:"loggedAt"`
	Sets        []Set     `json:"sets"`
	HasAssisted bool      `json:"hasAssisted"`
}

// ExerciseRef is the part of a catalog exercise the records need.
type ExerciseRef struct {
	ID   string
	Name string
	Type catalog.ExerciseType
}

type ExerciseRecord struct {
	ExerciseID     string           `json:"exerciseId"`
	ExerciseName   string           `json:"exerciseName"`
	HasRecord      bool             `json:"hasRecord"`
	PersonalRecord *float64         `json:"personalRecord"`
	LastWorkout    *LastWorkoutView `json:"lastWorkout"`
}
