package ranking

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=ranking_test

type rankingRepo interface {
	UserProgressMetrics(ctx context.Context) ([]UserProgress, error)
	ProgressionRanking(ctx context.Context) ([]Progression, error)
	UserExerciseProgress(ctx context.Context, userID string) ([]ExerciseProgress, error)
	WeightProgression(ctx context.Context, userID, exerciseID string) ([]WeightPoint, error)
}

type Service struct {
	repo  rankingRepo
	cache *Cache
}

func NewService(repo rankingRepo, cache *Cache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

// PRRanking is the list of users ordered by total PR weight, as the store orders it.
func (s *Service) PRRanking(ctx context.Context) ([]UserProgress, error) {
	var prs []UserProgress
	if s.cache.get(prRankingKey, &prs) {
		return prs, nil
	}

	prs, err := s.repo.UserProgressMetrics(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.set(prRankingKey, prs)
	return prs, nil
}

// ProgressionRanking is the list of users ordered by average progression, as the store orders it.
func (s *Service) ProgressionRanking(ctx context.Context) ([]Progression, error) {
	var progression []Progression
	if s.cache.get(progressionRankingKey, &progression) {
		return progression, nil
	}

	progression, err := s.repo.ProgressionRanking(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.set(progressionRankingKey, progression)
	return progression, nil
}

func (s *Service) ExerciseProgress(ctx context.Context, userID string) ([]ExerciseProgress, error) {
	key := exerciseProgressPrefix + userID

	var progress []ExerciseProgress
	if s.cache.get(key, &progress) {
		return progress, nil
	}

	progress, err := s.repo.UserExerciseProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.set(key, progress)
	return progress, nil
}

func (s *Service) Dashboard(ctx context.Context, identity auth.Identity) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.ranking.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if identity.UserID == "" {
		return nil, auth.ErrNotAuthenticated
	}
	span.SetAttributes(attribute.String("user.id", identity.UserID))

	prs, err := s.PRRanking(ctx)
	if err != nil {
		return nil, fmt.Errorf("pr ranking: %w", err)
	}
	progression, err := s.ProgressionRanking(ctx)
	if err != nil {
		return nil, fmt.Errorf("progression ranking: %w", err)
	}
	exercises, err := s.ExerciseProgress(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("exercise progress: %w", err)
	}

	dashboard := BuildDashboard(identity.UserID, prs, progression, exercises)
	return &dashboard, nil
}

// WeightProgression returns the user's best weight per day for an exercise.
// Only admins may look at another user.
func (s *Service) WeightProgression(ctx context.Context, identity auth.Identity, userID, exerciseID string) (_ []WeightPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.ranking.weight_progression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if identity.UserID == "" {
		return nil, auth.ErrNotAuthenticated
	}
	if userID == "" {
		userID = identity.UserID
	}
	if userID != identity.UserID && !identity.IsAdmin {
		return nil, ErrNotAuthorized
	}
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("exercise.id", exerciseID),
	)

	points, err := s.repo.WeightProgression(ctx, userID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("weight progression: %w", err)
	}
	if points == nil {
		points = []WeightPoint{}
	}
	return points, nil
}
