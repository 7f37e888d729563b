package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profiles_test

type profilesRepo interface {
	Get(ctx context.Context, id string) (*Profile, error)
	UpdateName(ctx context.Context, id string, name string) error
	List(ctx context.Context) ([]Profile, error)
}

type Handler struct {
	repo     profilesRepo
	validate *validator.Validate
}

func NewHandler(repo profilesRepo) *Handler {
	return &Handler{
		repo:     repo,
		validate: validator.New(),
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.get")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Error(w, auth.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	profile, err := h.repo.Get(ctx, identity.UserID)
	if errors.Is(err, ErrProfileNotFound) {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get profile [%s]: %s", identity.UserID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.update")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Error(w, auth.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "name too long", http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateName(ctx, identity.UserID, req.Name); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("update profile [%s]: %s", identity.UserID, err)
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	profile, err := h.repo.Get(ctx, identity.UserID)
	if err != nil {
		log.Errorf("get updated profile [%s]: %s", identity.UserID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, profile)
}

// HandleList lists all profiles for admins; everybody else gets an empty list.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.list")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Error(w, auth.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	if !identity.IsAdmin {
		pkg.WriteJSON(w, http.StatusOK, []Profile{})
		return
	}

	profiles, err := h.repo.List(ctx)
	if err != nil {
		log.Errorf("list profiles: %s", err)
		http.Error(w, "failed to list profiles", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, profiles)
}
