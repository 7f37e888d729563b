package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/catalog"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Exercise(ctx context.Context, exerciseID string) (*ExerciseRef, error)
	CreateLog(ctx context.Context, log StoredLog) error
	UpdateLog(ctx context.Context, logID string, weight float64, reps int, sets []Set) error
	LogOwner(ctx context.Context, logID string) (string, error)
	DeleteLog(ctx context.Context, logID string) error
	GetLog(ctx context.Context, logID string) (*StoredLog, error)
	ListLogs(ctx context.Context, userID string, exerciseID string) ([]StoredLog, error)
	CreateCardio(ctx context.Context, parent StoredLog, cardio CardioLog) error
	UpdateCardio(ctx context.Context, cardio CardioLog) error
	GetCardio(ctx context.Context, cardioID string) (*CardioLog, error)
	ListCardio(ctx context.Context, userID string, exerciseID string) ([]CardioLog, error)
}

type exerciseLister interface {
	ListExercises(ctx context.Context, identity auth.Identity, includeHidden bool) ([]catalog.Exercise, error)
}

// cacheInvalidator is told about every change to workout data.
type cacheInvalidator interface {
	Invalidate(ctx context.Context)
}

type Service struct {
	repo           workoutsRepo
	exercises      exerciseLister
	invalidator    cacheInvalidator
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	repo workoutsRepo,
	exercises exerciseLister,
	invalidator cacheInvalidator,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		exercises:      exercises,
		invalidator:    invalidator,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) CreateLog(ctx context.Context, identity auth.Identity, req LogRequest) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.logs.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if identity.UserID == "" {
		return nil, auth.ErrNotAuthenticated
	}
	if err := ValidateSets(req.Sets); err != nil {
		return nil, err
	}
	if err := s.requireExerciseType(ctx, req.ExerciseID, catalog.ExerciseTypeStrength); err != nil {
		return nil, err
	}

	sets := PrepareSets(req.Sets)
	weight, reps := LegacyProjection(sets)
	stored := StoredLog{
		ID:         uuid.NewString(),
		UserID:     identity.UserID,
		ExerciseID: req.ExerciseID,
		Weight:     weight,
		Reps:       reps,
		LoggedAt:   s.now(),
		Sets:       sets,
	}
	span.SetAttributes(attribute.String("log.id", stored.ID))

	if err := s.repo.CreateLog(ctx, stored); err != nil {
		return nil, fmt.Errorf("create log: %w", err)
	}
	s.changed(ctx, "strength")

	return s.getLog(ctx, stored.ID)
}

func (s *Service) UpdateLog(ctx context.Context, identity auth.Identity, logID string, sets []Set) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.logs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", logID))

	if err := s.checkOwner(ctx, identity, logID); err != nil {
		return nil, err
	}
	if err := ValidateSets(sets); err != nil {
		return nil, err
	}

	prepared := PrepareSets(sets)
	weight, reps := LegacyProjection(prepared)
	if err := s.repo.UpdateLog(ctx, logID, weight, reps, prepared); err != nil {
		return nil, fmt.Errorf("update log: %w", err)
	}
	s.changed(ctx, "")

	return s.getLog(ctx, logID)
}

func (s *Service) DeleteLog(ctx context.Context, identity auth.Identity, logID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.logs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", logID))

	if err := s.checkOwner(ctx, identity, logID); err != nil {
		return err
	}
	if err := s.repo.DeleteLog(ctx, logID); err != nil {
		return fmt.Errorf("delete log: %w", err)
	}
	s.changed(ctx, "")
	return nil
}

// ListLogs returns the user's normalized strength logs, newest first.
func (s *Service) ListLogs(ctx context.Context, identity auth.Identity, exerciseID string) ([]Log, error) {
	if identity.UserID == "" {
		return nil, auth.ErrNotAuthenticated
	}

	stored, err := s.repo.ListLogs(ctx, identity.UserID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return NormalizeAll(stored), nil
}

// Records returns the personal record and last workout for every visible strength exercise,
// plus any other exercise the user has logged.
func (s *Service) Records(ctx context.Context, identity auth.Identity) (_ []ExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.records")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := s.ListLogs(ctx, identity, "")
	if err != nil {
		return nil, err
	}

	var refs []ExerciseRef
	exercises, err := s.exercises.ListExercises(ctx, identity, true)
	if err != nil {
		// records of logged exercises can still be shown
		log.Errorf("records [%s], list exercises: %s", identity.UserID, err)
	}
	for _, ex := range exercises {
		if ex.ExerciseType == catalog.ExerciseTypeStrength {
			refs = append(refs, ExerciseRef{ID: ex.ID, Name: ex.Name, Type: ex.ExerciseType})
		}
	}

	return ExerciseRecords(refs, logs), nil
}

func (s *Service) CreateCardio(ctx context.Context, identity auth.Identity, req CardioRequest) (_ *CardioLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.cardio.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if identity.UserID == "" {
		return nil, auth.ErrNotAuthenticated
	}

	exercise, err := s.repo.Exercise(ctx, req.ExerciseID)
	if err != nil {
		return nil, err
	}
	if exercise.Type != catalog.ExerciseTypeCardio {
		return nil, fmt.Errorf("%w: %s is not a cardio exercise", ErrWrongExerciseType, exercise.Name)
	}

	cardio := CardioLog{
		ID:              uuid.NewString(),
		DurationMinutes: req.DurationMinutes,
		Speed:           req.Speed,
		Resistance:      req.Resistance,
		Incline:         req.Incline,
	}
	cardio.ApplyFields(FieldsFor(exercise.Name))
	if err := cardio.Validate(); err != nil {
		return nil, err
	}

	parent := StoredLog{
		ID:         uuid.NewString(),
		UserID:     identity.UserID,
		ExerciseID: req.ExerciseID,
		LoggedAt:   s.now(),
	}
	span.SetAttributes(attribute.String("cardio.id", cardio.ID), attribute.String("log.id", parent.ID))

	if err := s.repo.CreateCardio(ctx, parent, cardio); err != nil {
		return nil, fmt.Errorf("create cardio log: %w", err)
	}
	s.changed(ctx, "cardio")

	return s.repo.GetCardio(ctx, cardio.ID)
}

func (s *Service) UpdateCardio(ctx context.Context, identity auth.Identity, cardioID string, update CardioUpdate) (_ *CardioLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.cardio.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("cardio.id", cardioID))

	cardio, err := s.ownCardio(ctx, identity, cardioID)
	if err != nil {
		return nil, err
	}

	cardio.Merge(update)
	cardio.ApplyFields(FieldsFor(cardio.ExerciseName))
	if err := cardio.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateCardio(ctx, *cardio); err != nil {
		return nil, fmt.Errorf("update cardio log: %w", err)
	}
	s.changed(ctx, "")

	return s.repo.GetCardio(ctx, cardioID)
}

// DeleteCardio deletes the parent workout log, the cardio detail goes with it.
func (s *Service) DeleteCardio(ctx context.Context, identity auth.Identity, cardioID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.cardio.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("cardio.id", cardioID))

	cardio, err := s.ownCardio(ctx, identity, cardioID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteLog(ctx, cardio.WorkoutLogID); err != nil {
		return fmt.Errorf("delete cardio log: %w", err)
	}
	s.changed(ctx, "")
	return nil
}

func (s *Service) ListCardio(ctx context.Context, identity auth.Identity, exerciseID string) ([]CardioLog, error) {
	if identity.UserID == "" {
		return nil, auth.ErrNotAuthenticated
	}

	logs, err := s.repo.ListCardio(ctx, identity.UserID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("list cardio logs: %w", err)
	}
	return logs, nil
}

// checkOwner fails with ErrNotAuthorized when the log does not exist or belongs to someone else.
func (s *Service) checkOwner(ctx context.Context, identity auth.Identity, logID string) error {
	if identity.UserID == "" {
		return auth.ErrNotAuthenticated
	}

	ownerID, err := s.repo.LogOwner(ctx, logID)
	if errors.Is(err, ErrLogNotFound) {
		return ErrNotAuthorized
	}
	if err != nil {
		return fmt.Errorf("get log owner: %w", err)
	}
	if ownerID != identity.UserID {
		return ErrNotAuthorized
	}
	return nil
}

func (s *Service) ownCardio(ctx context.Context, identity auth.Identity, cardioID string) (*CardioLog, error) {
	if identity.UserID == "" {
		return nil, auth.ErrNotAuthenticated
	}

	cardio, err := s.repo.GetCardio(ctx, cardioID)
	if errors.Is(err, ErrCardioNotFound) {
		return nil, ErrNotAuthorized
	}
	if err != nil {
		return nil, fmt.Errorf("get cardio log: %w", err)
	}
	if cardio.UserID != identity.UserID {
		return nil, ErrNotAuthorized
	}
	return cardio, nil
}

// requireExerciseType fails with ErrWrongExerciseType unless the exercise is of the wanted type.
func (s *Service) requireExerciseType(ctx context.Context, exerciseID string, want catalog.ExerciseType) error {
	exercise, err := s.repo.Exercise(ctx, exerciseID)
	if err != nil {
		return err
	}
	if exercise.Type != want {
		return fmt.Errorf("%w: %s is a %s exercise", ErrWrongExerciseType, exercise.Name, exercise.Type)
	}
	return nil
}

func (s *Service) getLog(ctx context.Context, logID string) (*Log, error) {
	stored, err := s.repo.GetLog(ctx, logID)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}
	normalized := Normalize(*stored)
	return &normalized, nil
}

// changed counts new logs by kind (empty kind for edits) and drops cached aggregations.
func (s *Service) changed(ctx context.Context, kind string) {
	if kind != "" && s.metricsManager != nil {
		s.metricsManager.CounterWorkoutLogs.WithLabelValues(kind).Inc()
	}
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
}
