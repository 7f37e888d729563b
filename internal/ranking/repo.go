package ranking

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Repo reads the aggregations computed by the stored functions in the database.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UserProgressMetrics(ctx context.Context) (_ []UserProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ranking.user_progress_metrics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT user_id, user_name, user_email, total_pr_weight, total_exercises_with_pr,
		       total_volume, recent_volume, pr_count
		FROM get_user_progress_metrics()
	`)
	if err != nil {
		return nil, fmt.Errorf("get user progress metrics: %w", err)
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[UserProgress])
}

func (r *Repo) ProgressionRanking(ctx context.Context) (_ []Progression, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ranking.progression_ranking")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT user_id, user_name, user_email, total_progression_percentage,
		       average_progression_percentage, exercises_with_progression,
		       total_pr_weight, first_total_weight
		FROM get_progression_ranking()
	`)
	if err != nil {
		return nil, fmt.Errorf("get progression ranking: %w", err)
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[Progression])
}

func (r *Repo) UserExerciseProgress(ctx context.Context, userID string) (_ []ExerciseProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ranking.user_exercise_progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT exercise_id, exercise_name, pr_weight, pr_date, total_workouts, last_workout_date
		FROM get_user_exercise_progress($1)
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("get user exercise progress: %w", err)
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[ExerciseProgress])
}

// WeightProgression returns the best weight per day. An empty exerciseID means all exercises.
func (r *Repo) WeightProgression(ctx context.Context, userID, exerciseID string) (_ []WeightPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ranking.weight_progression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("exercise.id", exerciseID),
	)

	var exerciseParam *string
	if exerciseID != "" {
		exerciseParam = &exerciseID
	}

	rows, err := r.db.Query(ctx, `
		SELECT date, max_weight, exercise_id, exercise_name
		FROM get_weight_progression($1, $2)
	`, userID, exerciseParam)
	if err != nil {
		return nil, fmt.Errorf("get weight progression: %w", err)
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[WeightPoint])
}
