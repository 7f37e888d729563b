package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog_test

type catalogService interface {
	ListCategories(ctx context.Context, identity auth.Identity) ([]Category, error)
	CreateCategory(ctx context.Context, identity auth.Identity, name string) (*Category, error)
	DeleteCategory(ctx context.Context, identity auth.Identity, id string) error
	ListExercises(ctx context.Context, identity auth.Identity, includeHidden bool) ([]Exercise, error)
	CreateExercise(ctx context.Context, identity auth.Identity, req ExerciseRequest) (*Exercise, error)
	UpdateExercise(ctx context.Context, identity auth.Identity, id string, req ExerciseRequest) (*Exercise, error)
	DeleteExercise(ctx context.Context, identity auth.Identity, id string) error
	UpdateAssignments(ctx context.Context, identity auth.Identity, exerciseID string, userIDs []string) error
	SetPreference(ctx context.Context, identity auth.Identity, exerciseID string, isHidden bool) error
}

type Handler struct {
	service  catalogService
	validate *validator.Validate
}

func NewHandler(service catalogService) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.categories.list")
	defer span.End()

	identity, _ := auth.IdentityFromContext(ctx)
	categories, err := h.service.ListCategories(ctx, identity)
	if err != nil {
		writeError(w, err, "list categories")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.categories.create")
	defer span.End()

	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "category name required", http.StatusBadRequest)
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	category, err := h.service.CreateCategory(ctx, identity, req.Name)
	if err != nil {
		writeError(w, err, "create category")
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, category)
}

func (h *Handler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.categories.delete")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	if err := h.service.DeleteCategory(ctx, identity, id); err != nil {
		writeError(w, err, "delete category")
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (h *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.exercises.list")
	defer span.End()

	includeHidden := r.URL.Query().Get("include_hidden") == "true"

	identity, _ := auth.IdentityFromContext(ctx)
	exercises, err := h.service.ListExercises(ctx, identity, includeHidden)
	if err != nil {
		writeError(w, err, "list exercises")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, exercises)
}

func (h *Handler) HandleCreateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.exercises.create")
	defer span.End()

	req, ok := h.decodeExerciseRequest(w, r)
	if !ok {
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	ex, err := h.service.CreateExercise(ctx, identity, req)
	if err != nil {
		writeError(w, err, "create exercise")
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, ex)
}

func (h *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.exercises.update")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeExerciseRequest(w, r)
	if !ok {
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	ex, err := h.service.UpdateExercise(ctx, identity, id, req)
	if err != nil {
		writeError(w, err, "update exercise")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, ex)
}

func (h *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.exercises.delete")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	if err := h.service.DeleteExercise(ctx, identity, id); err != nil {
		writeError(w, err, "delete exercise")
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (h *Handler) HandleUpdateAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.exercises.assignments")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req AssignmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid user ids", http.StatusBadRequest)
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	if err := h.service.UpdateAssignments(ctx, identity, id, req.UserIDs); err != nil {
		writeError(w, err, "update assignments")
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (h *Handler) HandleSetPreference(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.exercises.preference")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req PreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	if err := h.service.SetPreference(ctx, identity, id, req.IsHidden); err != nil {
		writeError(w, err, "set preference")
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (h *Handler) decodeExerciseRequest(w http.ResponseWriter, r *http.Request) (ExerciseRequest, bool) {
	var req ExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		log.Tracef("invalid exercise request: %s", err)
		http.Error(w, "invalid exercise: "+err.Error(), http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if err := uuid.Validate(id); err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrAdminOnly):
		http.Error(w, "admin only", http.StatusForbidden)
	case errors.Is(err, ErrExerciseNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrAssigneeNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrCategoryExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "failed to "+op, http.StatusInternalServerError)
	}
}
