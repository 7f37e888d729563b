package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PanicRecovery turns a handler panic into a 500, and marks the request span failed.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// client went away, let net/http handle it quietly
					panic(rec)
				}

				log.Errorf("http: panic serving %s %s: %v\n%s", req.Method, req.URL.Path, rec, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}

				span := trace.SpanFromContext(req.Context())
				span.RecordError(fmt.Errorf("panic: %v", rec))
				span.SetStatus(codes.Error, "panic")

				http.Error(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
