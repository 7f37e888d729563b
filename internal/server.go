package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/catalog"
	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/mcp"
	"github.com/2beens/gymtracker/internal/middleware"
	"github.com/2beens/gymtracker/internal/misc"
	"github.com/2beens/gymtracker/internal/profiles"
	"github.com/2beens/gymtracker/internal/ranking"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/workouts"
)

const (
	sessionsCleanupInterval = 8 * time.Hour
	maxRequestBodyBytes     = 1 << 20
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mcpSecret         string // shared secret for MCP clients
	sessionSecret     []byte // signs the session cookie
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
	RedisPassword           string
	SessionSecret           string
	MCPSecret               string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	if params.SessionSecret == "" {
		return nil, errors.New("session secret not set")
	}

	dbParams := db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	}

	if params.Config.AutoMigrate {
		if err := migrateUp(dbParams); err != nil {
			return nil, err
		}
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	sessionTTL := params.Config.SessionTTL.Duration
	authService := auth.NewAuthService(profiles.NewRepo(dbPool), sessionTTL, rdb)
	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymtracker-backend", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:        params.Config,
		dbPool:        dbPool,
		mcpSecret:     params.MCPSecret,
		sessionSecret: []byte(params.SessionSecret),
		versionInfo:   params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(sessionTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func migrateUp(params db.NewDBPoolParams) error {
	migrator, err := db.NewMigrator(params)
	if err != nil {
		return fmt.Errorf("new migrator: %w", err)
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Warnf("close migrator: %s", err)
		}
	}()

	if err := migrator.Up(); err != nil {
		return err
	}
	if version, dirty, err := migrator.Version(); err == nil {
		log.Infof("db schema at version %d (dirty: %t)", version, dirty)
	}
	return nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	cookies, err := auth.NewCookieStore(s.sessionSecret, s.config.SessionTTL.Duration, s.config.SecureCookies)
	if err != nil {
		return nil, fmt.Errorf("cookie store: %w", err)
	}
	profilesRepo := profiles.NewRepo(s.dbPool)

	authHandler := auth.NewHandler(s.authService, cookies, s.metricsManager)
	miscHandler := misc.NewHandler(s.versionInfo, authHandler)
	miscHandler.SetupRoutes(r, misc.RoutesParams{
		RateLimiter:     redis_rate.NewLimiter(s.redisClient),
		LoginAllowedMin: s.config.LoginRateLimitAllowedPerMin,
		AllowedOrigins:  s.config.AllowedOrigins,
		MetricsManager:  s.metricsManager,
	})

	profilesHandler := profiles.NewHandler(profilesRepo)
	r.HandleFunc("/profile", profilesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", profilesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")
	r.HandleFunc("/users", profilesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-users")

	catalogService := catalog.NewService(catalog.NewRepo(s.dbPool), profilesRepo)
	catalogHandler := catalog.NewHandler(catalogService)
	r.HandleFunc("/categories", catalogHandler.HandleListCategories).Methods("GET", "OPTIONS").Name("list-categories")
	r.HandleFunc("/categories", catalogHandler.HandleCreateCategory).Methods("POST", "OPTIONS").Name("new-category")
	r.HandleFunc("/categories/{id}", catalogHandler.HandleDeleteCategory).Methods("DELETE", "OPTIONS").Name("delete-category")
	r.HandleFunc("/exercises", catalogHandler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises", catalogHandler.HandleCreateExercise).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/{id}", catalogHandler.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", catalogHandler.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	r.HandleFunc("/exercises/{id}/assignments", catalogHandler.HandleUpdateAssignments).Methods("PUT", "OPTIONS").Name("update-assignments")
	r.HandleFunc("/exercises/{id}/preference", catalogHandler.HandleSetPreference).Methods("PUT", "OPTIONS").Name("set-preference")

	rankingRepo := ranking.NewRepo(s.dbPool)
	rankingCache := ranking.NewCache(
		s.config.RankingCacheSizeBytes,
		s.config.RankingCacheTTL.Duration,
		s.metricsManager,
	)
	rankingService := ranking.NewService(rankingRepo, rankingCache)

	workoutsHandler := workouts.NewHandler(workouts.NewService(
		workouts.NewRepo(s.dbPool),
		catalogService,
		rankingCache,
		s.metricsManager,
	))
	r.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts", workoutsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts/records", workoutsHandler.HandleRecords).Methods("GET", "OPTIONS").Name("workout-records")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/cardio", workoutsHandler.HandleListCardio).Methods("GET", "OPTIONS").Name("list-cardio")
	r.HandleFunc("/cardio", workoutsHandler.HandleCreateCardio).Methods("POST", "OPTIONS").Name("new-cardio")
	r.HandleFunc("/cardio/fields", workoutsHandler.HandleCardioFields).Methods("GET", "OPTIONS").Name("cardio-fields")
	r.HandleFunc("/cardio/{id}", workoutsHandler.HandleUpdateCardio).Methods("PUT", "OPTIONS").Name("update-cardio")
	r.HandleFunc("/cardio/{id}", workoutsHandler.HandleDeleteCardio).Methods("DELETE", "OPTIONS").Name("delete-cardio")

	rankingHandler := ranking.NewHandler(rankingService)
	r.HandleFunc("/dashboard", rankingHandler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	r.HandleFunc("/dashboard/progression/{exerciseId}", rankingHandler.HandleWeightProgression).Methods("GET", "OPTIONS").Name("weight-progression")

	mcpServer := mcp.NewServer(mcp.NewContextService(
		mcp.NewPoolSchemaRepo(s.dbPool),
		profilesRepo,
		rankingService,
		rankingRepo,
	))
	r.PathPrefix("/mcp").Handler(mcp.NewHTTPHandler(mcpServer)).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.mcpSecret,
		s.loginChecker,
		profilesRepo,
		cookies,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest(maxRequestBodyBytes))

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{Registry: s.promRegistry}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, the handlers still need redis and the db
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
