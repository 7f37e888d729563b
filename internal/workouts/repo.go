package workouts

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/catalog"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// withTx runs fn in a transaction, committed only if fn returns no error.
func (r *Repo) withTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	return fn(tx)
}

// Exercise returns the name and type of the exercise. The name picks the cardio fields.
func (r *Repo) Exercise(ctx context.Context, exerciseID string) (_ *ExerciseRef, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ref := &ExerciseRef{ID: exerciseID}
	var exerciseType string
	err = r.db.QueryRow(ctx, `
		SELECT name, exercise_type FROM exercises WHERE id = $1
	`, exerciseID).Scan(&ref.Name, &exerciseType)
	if pkg.IsNoRowsError(err) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	ref.Type = catalog.ExerciseType(exerciseType)
	return ref, nil
}

// CreateLog inserts the log and its sets in one transaction.
func (r *Repo) CreateLog(ctx context.Context, log StoredLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", log.UserID),
		attribute.String("exercise.id", log.ExerciseID),
		attribute.Int("sets", len(log.Sets)),
	)

	return r.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO workout_logs (id, user_id, exercise_id, weight, reps, logged_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			log.ID, log.UserID, log.ExerciseID, log.Weight, log.Reps, log.LoggedAt,
		)
		if pkg.IsForeignKeyViolationError(err) {
			return ErrExerciseNotFound
		}
		if err != nil {
			return err
		}
		return insertSets(ctx, tx, log.ID, log.Sets)
	})
}

// UpdateLog rewrites the scalar projection and replaces all sets of the log.
func (r *Repo) UpdateLog(ctx context.Context, logID string, weight float64, reps int, sets []Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", logID), attribute.Int("sets", len(sets)))

	return r.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE workout_logs SET weight = $1, reps = $2
			WHERE id = $3
			  AND NOT EXISTS (SELECT 1 FROM cardio_logs c WHERE c.workout_log_id = workout_logs.id)
		`, weight, reps, logID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrLogNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM workout_sets WHERE workout_log_id = $1`, logID); err != nil {
			return fmt.Errorf("delete sets: %w", err)
		}
		return insertSets(ctx, tx, logID, sets)
	})
}

func insertSets(ctx context.Context, tx pgx.Tx, logID string, sets []Set) error {
	if len(sets) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, s := range sets {
		batch.Queue(`
			INSERT INTO workout_sets (id, workout_log_id, set_number, weight, reps, assisted)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.NewString(), logID, s.SetNumber, s.Weight, s.Reps, s.Assisted)
	}

	results := tx.SendBatch(ctx, batch)
	for range sets {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("insert set: %w", err)
		}
	}
	return results.Close()
}

// LogOwner returns the user owning the strength log. Cardio parents are not found here,
// they are reached through their cardio log.
func (r *Repo) LogOwner(ctx context.Context, logID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.owner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", logID))

	var userID string
	err = r.db.QueryRow(ctx, `
		SELECT user_id
		FROM workout_logs
		WHERE id = $1
		  AND NOT EXISTS (SELECT 1 FROM cardio_logs c WHERE c.workout_log_id = workout_logs.id)
	`, logID).Scan(&userID)
	if pkg.IsNoRowsError(err) {
		return "", ErrLogNotFound
	}
	return userID, err
}

// DeleteLog deletes the log, its sets and cardio detail go with it.
func (r *Repo) DeleteLog(ctx context.Context, logID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", logID))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_logs WHERE id = $1`, logID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

const selectStrengthLogs = `
	SELECT wl.id,
	       wl.user_id,
	       wl.exercise_id,
	       e.name,
	       wl.weight,
	       wl.reps,
	       wl.logged_at,
	       COALESCE((SELECT jsonb_agg(jsonb_build_object(
	                            'setNumber', s.set_number,
	                            'weight', s.weight,
	                            'reps', s.reps,
	                            'assisted', s.assisted) ORDER BY s.set_number)
	                 FROM workout_sets s
	                 WHERE s.workout_log_id = wl.id), '[]'::jsonb)
	FROM workout_logs wl
	         JOIN exercises e ON e.id = wl.exercise_id
	WHERE NOT EXISTS (SELECT 1 FROM cardio_logs c WHERE c.workout_log_id = wl.id)
`

func (r *Repo) GetLog(ctx context.Context, logID string) (_ *StoredLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", logID))

	log, err := scanStoredLog(r.db.QueryRow(ctx, selectStrengthLogs+` AND wl.id = $1`, logID))
	if pkg.IsNoRowsError(err) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

// ListLogs returns the user's strength logs, newest first, optionally for one exercise only.
func (r *Repo) ListLogs(ctx context.Context, userID string, exerciseID string) (_ []StoredLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID), attribute.String("exercise.id", exerciseID))

	var exerciseFilter *string
	if exerciseID != "" {
		exerciseFilter = &exerciseID
	}

	rows, err := r.db.Query(ctx, selectStrengthLogs+`
		AND wl.user_id = $1
		AND ($2::uuid IS NULL OR wl.exercise_id = $2::uuid)
		ORDER BY wl.logged_at DESC
	`, userID, exerciseFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]StoredLog, 0)
	for rows.Next() {
		log, err := scanStoredLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

func scanStoredLog(row pgx.Row) (*StoredLog, error) {
	log := &StoredLog{}
	if err := row.Scan(
		&log.ID,
		&log.UserID,
		&log.ExerciseID,
		&log.ExerciseName,
		&log.Weight,
		&log.Reps,
		&log.LoggedAt,
		&log.Sets,
	); err != nil {
		return nil, err
	}
	return log, nil
}

// CreateCardio inserts the parent log, with weight and reps zeroed, then the cardio detail.
func (r *Repo) CreateCardio(ctx context.Context, parent StoredLog, cardio CardioLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.cardio.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", parent.UserID),
		attribute.String("exercise.id", parent.ExerciseID),
	)

	return r.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO workout_logs (id, user_id, exercise_id, weight, reps, logged_at)
			VALUES ($1, $2, $3, 0, 0, $4)
		`, parent.ID, parent.UserID, parent.ExerciseID, parent.LoggedAt)
		if pkg.IsForeignKeyViolationError(err) {
			return ErrExerciseNotFound
		}
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO cardio_logs (id, workout_log_id, duration_minutes, speed, resistance, incline)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, cardio.ID, parent.ID, cardio.DurationMinutes, cardio.Speed, cardio.Resistance, cardio.Incline)
		return err
	})
}

func (r *Repo) UpdateCardio(ctx context.Context, cardio CardioLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.cardio.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("cardio.id", cardio.ID))

	tag, err := r.db.Exec(ctx, `
		UPDATE cardio_logs
		SET duration_minutes = $1, speed = $2, resistance = $3, incline = $4
		WHERE id = $5
	`, cardio.DurationMinutes, cardio.Speed, cardio.Resistance, cardio.Incline, cardio.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCardioNotFound
	}
	return nil
}

const selectCardioLogs = `
	SELECT c.id,
	       c.workout_log_id,
	       wl.user_id,
	       wl.exercise_id,
	       e.name,
	       c.duration_minutes,
	       c.speed,
	       c.resistance,
	       c.incline,
	       wl.logged_at,
	       c.created_at
	FROM cardio_logs c
	         JOIN workout_logs wl ON wl.id = c.workout_log_id
	         JOIN exercises e ON e.id = wl.exercise_id
`

func (r *Repo) GetCardio(ctx context.Context, cardioID string) (_ *CardioLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.cardio.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("cardio.id", cardioID))

	cardio, err := scanCardio(r.db.QueryRow(ctx, selectCardioLogs+` WHERE c.id = $1`, cardioID))
	if pkg.IsNoRowsError(err) {
		return nil, ErrCardioNotFound
	}
	if err != nil {
		return nil, err
	}
	return cardio, nil
}

// ListCardio returns the user's cardio logs, newest first.
func (r *Repo) ListCardio(ctx context.Context, userID string, exerciseID string) (_ []CardioLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.cardio.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID), attribute.String("exercise.id", exerciseID))

	var exerciseFilter *string
	if exerciseID != "" {
		exerciseFilter = &exerciseID
	}

	rows, err := r.db.Query(ctx, selectCardioLogs+`
		WHERE wl.user_id = $1
		  AND ($2::uuid IS NULL OR wl.exercise_id = $2::uuid)
		ORDER BY c.created_at DESC
	`, userID, exerciseFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]CardioLog, 0)
	for rows.Next() {
		cardio, err := scanCardio(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *cardio)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

func scanCardio(row pgx.Row) (*CardioLog, error) {
	c := &CardioLog{}
	if err := row.Scan(
		&c.ID,
		&c.WorkoutLogID,
		&c.UserID,
		&c.ExerciseID,
		&c.ExerciseName,
		&c.DurationMinutes,
		&c.Speed,
		&c.Resistance,
		&c.Incline,
		&c.LoggedAt,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return c, nil
}
