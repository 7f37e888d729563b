package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/profiles"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=catalog_test

type catalogRepo interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, name string) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListExercises(ctx context.Context) ([]Exercise, error)
	GetExercise(ctx context.Context, id string) (*Exercise, error)
	CreateExercise(ctx context.Context, ex Exercise) error
	UpdateExercise(ctx context.Context, ex Exercise) error
	DeleteExercise(ctx context.Context, id string) error
	LinkCategories(ctx context.Context, exerciseID string, categoryIDs []string) error
	ReplaceCategories(ctx context.Context, exerciseID string, categoryIDs []string) error

	ListAssignments(ctx context.Context) ([]Assignment, error)
	AssignedExerciseIDs(ctx context.Context, userID string) ([]string, error)
	InsertAssignments(ctx context.Context, exerciseID string, userIDs []string, assignedBy string) error
	ReplaceAssignments(ctx context.Context, exerciseID string, userIDs []string, assignedBy string) error

	HiddenExerciseIDs(ctx context.Context, userID string) ([]string, error)
	SetPreference(ctx context.Context, userID, exerciseID string, isHidden bool) error
}

type profilesLister interface {
	List(ctx context.Context) ([]profiles.Profile, error)
}

type Service struct {
	repo     catalogRepo
	profiles profilesLister
}

func NewService(repo catalogRepo, profiles profilesLister) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
	}
}

func (s *Service) ListCategories(ctx context.Context, identity auth.Identity) ([]Category, error) {
	if identity.UserID == "" {
		return nil, auth.ErrNotAuthenticated
	}
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, identity auth.Identity, name string) (*Category, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}
	return s.repo.CreateCategory(ctx, strings.TrimSpace(name))
}

func (s *Service) DeleteCategory(ctx context.Context, identity auth.Identity, id string) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}
	return s.repo.DeleteCategory(ctx, id)
}

// ListExercises returns the exercises visible to the user.
// If the assignments cannot be read, a non-admin only gets what is positively assigned to them,
// and nothing at all if that cannot be read either.
func (s *Service) ListExercises(ctx context.Context, identity auth.Identity, includeHidden bool) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Bool("admin", identity.IsAdmin),
		attribute.Bool("include-hidden", includeHidden),
	)

	if identity.UserID == "" {
		return nil, auth.ErrNotAuthenticated
	}

	exercises, err := s.repo.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	var visible []Exercise
	assignments, err := s.repo.ListAssignments(ctx)
	switch {
	case err == nil:
		var assignees map[string]Assignee
		if identity.IsAdmin {
			assignees = s.assignees(ctx)
		}
		visible = Visible(exercises, assignments, identity.UserID, identity.IsAdmin, assignees)
	case identity.IsAdmin:
		log.Errorf("list exercises, get assignments (admin): %s", err)
		visible = Visible(exercises, nil, identity.UserID, true, nil)
	default:
		log.Errorf("list exercises, get assignments, falling back to own assignments: %s", err)
		assignedIDs, ownErr := s.repo.AssignedExerciseIDs(ctx, identity.UserID)
		if ownErr != nil {
			log.Errorf("list exercises, get own assignments [%s]: %s", identity.UserID, ownErr)
			return []Exercise{}, nil
		}
		visible = onlyAssigned(exercises, assignedIDs)
	}
	span.SetAttributes(attribute.Int("visible", len(visible)))

	return s.applyPreferences(ctx, identity.UserID, visible, includeHidden), nil
}

func (s *Service) assignees(ctx context.Context) map[string]Assignee {
	all, err := s.profiles.List(ctx)
	if err != nil {
		log.Errorf("list exercises, get profiles: %s", err)
		return nil
	}
	assignees := make(map[string]Assignee, len(all))
	for _, p := range all {
		name := ""
		if p.Name != nil {
			name = *p.Name
		}
		assignees[p.ID] = Assignee{UserID: p.ID, Name: name, Email: p.Email}
	}
	return assignees
}

func (s *Service) applyPreferences(ctx context.Context, userID string, exercises []Exercise, includeHidden bool) []Exercise {
	hiddenIDs, err := s.repo.HiddenExerciseIDs(ctx, userID)
	if err != nil {
		log.Errorf("list exercises, get preferences [%s]: %s", userID, err)
		return exercises
	}
	if len(hiddenIDs) == 0 {
		return exercises
	}

	hidden := make(map[string]bool, len(hiddenIDs))
	for _, id := range hiddenIDs {
		hidden[id] = true
	}

	filtered := make([]Exercise, 0, len(exercises))
	for _, ex := range exercises {
		ex.IsHidden = hidden[ex.ID]
		if ex.IsHidden && !includeHidden {
			continue
		}
		filtered = append(filtered, ex)
	}
	return filtered
}

// CreateExercise inserts the exercise, then its category links, then its assignments.
// The steps are independent; a failure after the first one leaves a partial write behind.
func (s *Service) CreateExercise(ctx context.Context, identity auth.Identity, req ExerciseRequest) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.exercises.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	ex := exerciseFromRequest(req)
	ex.ID = uuid.NewString()
	ex.CreatedBy = &identity.UserID
	span.SetAttributes(attribute.String("exercise.id", ex.ID))

	if err := s.repo.CreateExercise(ctx, ex); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	if req.CategoryIDs != nil {
		if err := s.repo.LinkCategories(ctx, ex.ID, *req.CategoryIDs); err != nil {
			return nil, fmt.Errorf("%w: link categories to %s: %v", ErrPartialWrite, ex.ID, err)
		}
	}
	if req.AssigneeIDs != nil {
		if err := s.repo.InsertAssignments(ctx, ex.ID, *req.AssigneeIDs, identity.UserID); err != nil {
			return nil, fmt.Errorf("%w: assign exercise %s: %v", ErrPartialWrite, ex.ID, err)
		}
	}

	return s.repo.GetExercise(ctx, ex.ID)
}

// UpdateExercise updates the exercise row; category and assignee lists replace the
// existing ones only when present in the request.
func (s *Service) UpdateExercise(ctx context.Context, identity auth.Identity, id string, req ExerciseRequest) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	ex := exerciseFromRequest(req)
	ex.ID = id
	if err := s.repo.UpdateExercise(ctx, ex); err != nil {
		return nil, err
	}
	if req.CategoryIDs != nil {
		if err := s.repo.ReplaceCategories(ctx, id, *req.CategoryIDs); err != nil {
			return nil, fmt.Errorf("%w: replace categories of %s: %v", ErrPartialWrite, id, err)
		}
	}
	if req.AssigneeIDs != nil {
		if err := s.repo.ReplaceAssignments(ctx, id, *req.AssigneeIDs, identity.UserID); err != nil {
			return nil, fmt.Errorf("%w: replace assignments of %s: %v", ErrPartialWrite, id, err)
		}
	}

	return s.repo.GetExercise(ctx, id)
}

func (s *Service) DeleteExercise(ctx context.Context, identity auth.Identity, id string) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}
	return s.repo.DeleteExercise(ctx, id)
}

func (s *Service) UpdateAssignments(ctx context.Context, identity auth.Identity, exerciseID string, userIDs []string) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}
	if _, err := s.repo.GetExercise(ctx, exerciseID); err != nil {
		return err
	}
	return s.repo.ReplaceAssignments(ctx, exerciseID, userIDs, identity.UserID)
}

func (s *Service) SetPreference(ctx context.Context, identity auth.Identity, exerciseID string, isHidden bool) error {
	if identity.UserID == "" {
		return auth.ErrNotAuthenticated
	}
	return s.repo.SetPreference(ctx, identity.UserID, exerciseID, isHidden)
}

func exerciseFromRequest(req ExerciseRequest) Exercise {
	ex := Exercise{
		Name:          strings.TrimSpace(req.Name),
		SuggestedReps: strings.TrimSpace(req.SuggestedReps),
		ExerciseType:  req.ExerciseType,
	}
	if ex.ExerciseType == "" {
		ex.ExerciseType = ExerciseTypeStrength
	}
	if ex.ExerciseType == ExerciseTypeCardio && ex.SuggestedReps == "" {
		ex.SuggestedReps = defaultCardioSuggestedReps
	}
	return ex
}

func requireAdmin(identity auth.Identity) error {
	if identity.UserID == "" {
		return auth.ErrNotAuthenticated
	}
	if !identity.IsAdmin {
		return ErrAdminOnly
	}
	return nil
}
