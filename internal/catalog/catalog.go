package catalog

import (
	"errors"
	"time"
)

var (
	ErrAdminOnly        = errors.New("admin only")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrAssigneeNotFound = errors.New("assignee not found")
	// ErrPartialWrite wraps failures after the exercise row itself was written.
	ErrPartialWrite = errors.New("exercise saved partially")
)

type ExerciseType string

const (
	ExerciseTypeStrength ExerciseType = "strength"
	ExerciseTypeCardio   ExerciseType = "cardio"

	defaultCardioSuggestedReps = "Tempo: minutos"
)

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Assignee is an assigned user, as shown to admins.
type Assignee struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type Assignment struct {
	ExerciseID string
	UserID     string
}

type Exercise struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	SuggestedReps string        `json:"suggestedReps"`
	ExerciseType  ExerciseType  `json:"exerciseType"`
	Categories    []CategoryRef `json:"categories"`
	CreatedBy     *string       `json:"createdBy"`
	CreatedAt     time.Time     `json:"createdAt"`
	// only filled for admins
	AssignedUsers []Assignee `json:"assignedUsers,omitempty"`
	IsHidden      bool       `json:"isHidden"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=60"`
}

type ExerciseRequest struct {
	Name          string       `json:"name" validate:"required,max=120"`
	SuggestedReps string       `json:"suggestedReps" validate:"max=120"`
	ExerciseType  ExerciseType `json:"exerciseType" validate:"omitempty,oneof=strength cardio"`
	// nil means "leave as is" on update
	CategoryIDs *[]string `json:"categoryIds" validate:"omitempty,dive,uuid"`
	AssigneeIDs *[]string `json:"assignedUserIds" validate:"omitempty,dive,uuid"`
}

type AssignmentsRequest struct {
	UserIDs []string `json:"userIds" validate:"dive,uuid"`
}

type PreferenceRequest struct {
	IsHidden bool `json:"isHidden"`
}
