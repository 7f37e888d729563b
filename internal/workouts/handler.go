package workouts

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	CreateLog(ctx context.Context, identity auth.Identity, req LogRequest) (*Log, error)
	UpdateLog(ctx context.Context, identity auth.Identity, logID string, sets []Set) (*Log, error)
	DeleteLog(ctx context.Context, identity auth.Identity, logID string) error
	ListLogs(ctx context.Context, identity auth.Identity, exerciseID string) ([]Log, error)
	Records(ctx context.Context, identity auth.Identity) ([]ExerciseRecord, error)
	CreateCardio(ctx context.Context, identity auth.Identity, req CardioRequest) (*CardioLog, error)
	UpdateCardio(ctx context.Context, identity auth.Identity, cardioID string, update CardioUpdate) (*CardioLog, error)
	DeleteCardio(ctx context.Context, identity auth.Identity, cardioID string) error
	ListCardio(ctx context.Context, identity auth.Identity, exerciseID string) ([]CardioLog, error)
}

type Handler struct {
	service  workoutsService
	validate *validator.Validate
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	exerciseID, ok := exerciseIDParam(w, r)
	if !ok {
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	logs, err := h.service.ListLogs(ctx, identity, exerciseID)
	if err != nil {
		writeError(w, err, "list workout logs")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, logs)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	var req LogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "valid exercise id required", http.StatusBadRequest)
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	created, err := h.service.CreateLog(ctx, identity, req)
	if err != nil {
		writeError(w, err, "create workout log")
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	updated, err := h.service.UpdateLog(ctx, identity, id, req.Sets)
	if err != nil {
		writeError(w, err, "update workout log")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	if err := h.service.DeleteLog(ctx, identity, id); err != nil {
		writeError(w, err, "delete workout log")
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (h *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.records")
	defer span.End()

	identity, _ := auth.IdentityFromContext(ctx)
	records, err := h.service.Records(ctx, identity)
	if err != nil {
		writeError(w, err, "get records")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) HandleListCardio(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.cardio.list")
	defer span.End()

	exerciseID, ok := exerciseIDParam(w, r)
	if !ok {
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	logs, err := h.service.ListCardio(ctx, identity, exerciseID)
	if err != nil {
		writeError(w, err, "list cardio logs")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, logs)
}

func (h *Handler) HandleCreateCardio(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.cardio.create")
	defer span.End()

	var req CardioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "valid exercise id required", http.StatusBadRequest)
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	created, err := h.service.CreateCardio(ctx, identity, req)
	if err != nil {
		writeError(w, err, "create cardio log")
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) HandleUpdateCardio(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.cardio.update")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var update CardioUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	updated, err := h.service.UpdateCardio(ctx, identity, id, update)
	if err != nil {
		writeError(w, err, "update cardio log")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleDeleteCardio(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.cardio.delete")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	identity, _ := auth.IdentityFromContext(ctx)
	if err := h.service.DeleteCardio(ctx, identity, id); err != nil {
		writeError(w, err, "delete cardio log")
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

// HandleCardioFields tells the client which cardio fields to show for an exercise name.
func (h *Handler) HandleCardioFields(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.cardio.fields")
	defer span.End()

	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, FieldsFor(name))
}

func exerciseIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	exerciseID := r.URL.Query().Get("exercise_id")
	if exerciseID == "" {
		return "", true
	}
	if err := uuid.Validate(exerciseID); err != nil {
		http.Error(w, ErrInvalidExerciseID.Error(), http.StatusBadRequest)
		return "", false
	}
	return exerciseID, true
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
	case errors.Is(err, ErrNotAuthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrInvalidSet), errors.Is(err, ErrInvalidCardio), errors.Is(err, ErrWrongExerciseType):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrExerciseNotFound),
		errors.Is(err, ErrLogNotFound),
		errors.Is(err, ErrCardioNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "failed to "+op, http.StatusInternalServerError)
	}
}
