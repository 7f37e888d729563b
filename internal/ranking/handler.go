package ranking

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=ranking_test

type rankingService interface {
	Dashboard(ctx context.Context, identity auth.Identity) (*Dashboard, error)
	WeightProgression(ctx context.Context, identity auth.Identity, userID, exerciseID string) ([]WeightPoint, error)
}

type Handler struct {
	service rankingService
}

func NewHandler(service rankingService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ranking.dashboard")
	defer span.End()

	identity, _ := auth.IdentityFromContext(ctx)
	dashboard, err := h.service.Dashboard(ctx, identity)
	if err != nil {
		writeError(w, err, "get dashboard")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, dashboard)
}

func (h *Handler) HandleWeightProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ranking.weight_progression")
	defer span.End()

	exerciseID := mux.Vars(r)["exerciseId"]
	if err := uuid.Validate(exerciseID); err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID != "" {
		if err := uuid.Validate(userID); err != nil {
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}
	}

	identity, _ := auth.IdentityFromContext(ctx)
	points, err := h.service.WeightProgression(ctx, identity, userID, exerciseID)
	if err != nil {
		writeError(w, err, "get weight progression")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, points)
}

func writeError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrNotAuthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "failed to "+op, http.StatusInternalServerError)
	}
}
