package misc

import (
	"net/http"

	"github.com/2beens/gymtracker/internal/middleware"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type accountHandler interface {
	HandleRegister(w http.ResponseWriter, r *http.Request)
	HandleLogin(w http.ResponseWriter, r *http.Request)
	HandleLogout(w http.ResponseWriter, r *http.Request)
}

type Handler struct {
	versionInfo string
	accounts    accountHandler
}

func NewHandler(versionInfo string, accounts accountHandler) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		accounts:    accounts,
	}
}

type RoutesParams struct {
	RateLimiter     middleware.RequestRateLimiter
	LoginAllowedMin int
	AllowedOrigins  []string
	MetricsManager  *metrics.Manager
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router, params RoutesParams) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/myip", handler.handleGetMyIp).Methods("GET").Name("myip")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")

	accountsSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	accountsSubrouter.
		HandleFunc("/register", handler.accounts.HandleRegister).
		Methods("POST", "OPTIONS").Name("register")
	accountsSubrouter.
		HandleFunc("/login", handler.accounts.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	accountsSubrouter.
		HandleFunc("/logout", handler.accounts.HandleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	// register and login are open to anyone, so they share a per-IP budget
	accountsSubrouter.Use(middleware.RateLimit(
		params.RateLimiter, "login", params.LoginAllowedMin, params.MetricsManager,
	))
	accountsSubrouter.Use(middleware.Cors(params.AllowedOrigins))
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetMyIp(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.myip")
	defer span.End()

	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		log.Errorf("get my ip: %s", err)
		http.Error(w, "failed to read ip", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, ip)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
