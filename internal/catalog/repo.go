package catalog

import (
	"context"
	"fmt"

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

func (r *Repo) ListCategories(ctx context.Context) (_ []Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.categories.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, created_at
		FROM categories
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *Repo) CreateCategory(ctx context.Context, name string) (_ *Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.categories.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", name))

	c := &Category{ID: uuid.NewString(), Name: name}
	err = r.db.QueryRow(ctx, `
		INSERT INTO categories (id, name)
		VALUES ($1, $2)
		RETURNING created_at
	`, c.ID, c.Name).Scan(&c.CreatedAt)
	if pkg.IsUniqueViolationError(err) {
		return nil, ErrCategoryExists
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repo) DeleteCategory(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.categories.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// ListExercises returns the catalog ordered by name, with categories.
func (r *Repo) ListExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, suggested_reps, exercise_type, created_by, created_at, categories
		FROM get_exercises_with_categories()
	`)
	if err != nil {
		return nil, fmt.Errorf("get exercises with categories: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, *ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *Repo) GetExercise(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	ex, err := scanExercise(r.db.QueryRow(ctx, `
		SELECT id, name, suggested_reps, exercise_type, created_by, created_at, categories
		FROM get_exercises_with_categories()
		WHERE id = $1
	`, id))
	if pkg.IsNoRowsError(err) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return ex, nil
}

func (r *Repo) CreateExercise(ctx context.Context, ex Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercises.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", ex.Name))

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercises (id, name, suggested_reps, exercise_type, created_by)
		VALUES ($1, $2, $3, $4, $5)
	`,
		ex.ID, ex.Name, ex.SuggestedReps, string(ex.ExerciseType), ex.CreatedBy,
	)
	return err
}

func (r *Repo) UpdateExercise(ctx context.Context, ex Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", ex.ID))

	tag, err := r.db.Exec(ctx, `
		UPDATE exercises
		SET name = $1, suggested_reps = $2, exercise_type = $3
		WHERE id = $4
	`,
		ex.Name, ex.SuggestedReps, string(ex.ExerciseType), ex.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) DeleteExercise(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// ReplaceCategories removes all category links of the exercise, then links the given ones.
// The two statements are independent.
func (r *Repo) ReplaceCategories(ctx context.Context, exerciseID string, categoryIDs []string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercises.replace_categories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise.id", exerciseID),
		attribute.Int("categories", len(categoryIDs)),
	)

	if _, err := r.db.Exec(ctx, `DELETE FROM exercise_categories WHERE exercise_id = $1`, exerciseID); err != nil {
		return fmt.Errorf("unlink categories: %w", err)
	}
	return r.LinkCategories(ctx, exerciseID, categoryIDs)
}

func (r *Repo) LinkCategories(ctx context.Context, exerciseID string, categoryIDs []string) (err error) {
	if len(categoryIDs) == 0 {
		return nil
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercises.link_categories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercise_categories (exercise_id, category_id)
		SELECT $1::uuid, c::uuid FROM unnest($2::text[]) AS c
		ON CONFLICT DO NOTHING
	`, exerciseID, categoryIDs)
	if pkg.IsForeignKeyViolationError(err) {
		return ErrCategoryNotFound
	}
	return err
}

func (r *Repo) ListAssignments(ctx context.Context) (_ []Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.assignments.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT exercise_id, user_id
		FROM exercise_assignments
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]Assignment, 0)
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ExerciseID, &a.UserID); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// AssignedExerciseIDs returns the ids of the exercises assigned to the given user.
func (r *Repo) AssignedExerciseIDs(ctx context.Context, userID string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.assignments.by_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	return r.exerciseIDs(ctx, `SELECT exercise_id FROM exercise_assignments WHERE user_id = $1`, userID)
}

// ReplaceAssignments swaps all assignments of the exercise for one per user. The delete and
// the inserts share a transaction, so a bad assignee leaves the old assignments in place.
func (r *Repo) ReplaceAssignments(ctx context.Context, exerciseID string, userIDs []string, assignedBy string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.assignments.replace")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise.id", exerciseID),
		attribute.Int("users", len(userIDs)),
	)

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM exercise_assignments WHERE exercise_id = $1`, exerciseID); err != nil {
			return fmt.Errorf("delete assignments: %w", err)
		}
		return insertAssignments(ctx, tx, exerciseID, userIDs, assignedBy)
	})
}

func (r *Repo) InsertAssignments(ctx context.Context, exerciseID string, userIDs []string, assignedBy string) (err error) {
	if len(userIDs) == 0 {
		return nil
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.assignments.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return insertAssignments(ctx, r.db, exerciseID, userIDs, assignedBy)
}

// batchSender is either the pool or a transaction.
type batchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

func insertAssignments(ctx context.Context, db batchSender, exerciseID string, userIDs []string, assignedBy string) (err error) {
	if len(userIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, userID := range userIDs {
		batch.Queue(`
			INSERT INTO exercise_assignments (id, exercise_id, user_id, assigned_by)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (exercise_id, user_id) DO NOTHING
		`, uuid.NewString(), exerciseID, userID, assignedBy)
	}

	results := db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for range userIDs {
		if _, err := results.Exec(); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return ErrAssigneeNotFound
			}
			return err
		}
	}
	return nil
}

func (r *Repo) HiddenExerciseIDs(ctx context.Context, userID string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.preferences.hidden")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	return r.exerciseIDs(ctx, `
		SELECT exercise_id FROM exercise_preferences
		WHERE user_id = $1 AND is_hidden
	`, userID)
}

func (r *Repo) SetPreference(ctx context.Context, userID, exerciseID string, isHidden bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.preferences.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("exercise.id", exerciseID),
		attribute.Bool("hidden", isHidden),
	)

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercise_preferences (id, user_id, exercise_id, is_hidden)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, exercise_id) DO UPDATE SET is_hidden = EXCLUDED.is_hidden
	`, uuid.NewString(), userID, exerciseID, isHidden)
	if pkg.IsForeignKeyViolationError(err) {
		return ErrExerciseNotFound
	}
	return err
}

func (r *Repo) exerciseIDs(ctx context.Context, query string, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	ex := &Exercise{}
	var exerciseType string
	if err := row.Scan(
		&ex.ID,
		&ex.Name,
		&ex.SuggestedReps,
		&exerciseType,
		&ex.CreatedBy,
		&ex.CreatedAt,
		&ex.Categories,
	); err != nil {
		return nil, err
	}
	ex.ExerciseType = ExerciseType(exerciseType)
	if ex.Categories == nil {
		ex.Categories = []CategoryRef{}
	}
	return ex, nil
}
