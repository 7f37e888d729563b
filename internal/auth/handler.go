package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth

const TokenHeader = "X-GYM-TOKEN"

type authService interface {
	Register(ctx context.Context, reg Registration) (*Account, error)
	Login(ctx context.Context, creds Credentials, createdAt time.Time) (*Session, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

type RegisterResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type Handler struct {
	service        authService
	cookies        *CookieStore
	validate       *validator.Validate
	metricsManager *metrics.Manager
}

func NewHandler(service authService, cookies *CookieStore, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		cookies:        cookies,
		validate:       validator.New(),
		metricsManager: metricsManager,
	}
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	var reg Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(reg); err != nil {
		log.Tracef("register, invalid request: %s", err)
		http.Error(w, "email and password (min 8 chars) required", http.StatusBadRequest)
		return
	}

	account, err := h.service.Register(ctx, reg)
	if errors.Is(err, ErrEmailTaken) {
		http.Error(w, "email already registered", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("register [%s]: %s", reg.Email, err)
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, RegisterResponse{
		UserID: account.ID,
		Email:  account.Email,
	})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(creds); err != nil {
		http.Error(w, "email and password required", http.StatusBadRequest)
		return
	}

	session, err := h.service.Login(ctx, creds, time.Now())
	if errors.Is(err, ErrWrongCredentials) {
		h.metricsManager.CounterLogins.WithLabelValues("wrong_credentials").Inc()
		http.Error(w, "wrong email or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.metricsManager.CounterLogins.WithLabelValues("error").Inc()
		log.Errorf("login [%s]: %s", creds.Email, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	h.metricsManager.CounterLogins.WithLabelValues("ok").Inc()

	if err := h.cookies.SaveToken(w, r, session.Token); err != nil {
		// header token still works, just log it
		log.Errorf("login, save session cookie: %s", err)
	}

	pkg.WriteJSON(w, http.StatusOK, LoginResponse{
		Token:  session.Token,
		UserID: session.UserID,
	})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := r.Header.Get(TokenHeader)
	if token == "" {
		token = h.cookies.Token(r)
	}
	if token == "" {
		http.Error(w, ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	if _, err := h.service.Logout(ctx, token); err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	if err := h.cookies.Clear(w, r); err != nil {
		log.Errorf("logout, clear session cookie: %s", err)
	}

	pkg.WriteTextResponseOK(w, "logged out")
}
