package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

const MCPSecretHeader = "X-MCP-Secret"

type loginChecker interface {
	CurrentSession(ctx context.Context, token string) (*auth.Session, error)
}

type accountFinder interface {
	AccountByID(ctx context.Context, id string) (*auth.Account, error)
}

type cookieTokenReader interface {
	Token(r *http.Request) string
}

type AuthMiddlewareHandler struct {
	mcpSecret     string
	loginChecker  loginChecker
	accountFinder accountFinder
	cookies       cookieTokenReader
	allowedPaths  map[string]bool
}

func NewAuthMiddlewareHandler(
	mcpSecret string,
	loginChecker loginChecker,
	accountFinder accountFinder,
	cookies cookieTokenReader,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		mcpSecret:     mcpSecret,
		loginChecker:  loginChecker,
		accountFinder: accountFinder,
		cookies:       cookies,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,

			// login-logout:
			"/a/register": true,
			"/a/login":    true,
			"/a/logout":   true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			// MCP clients authenticate with a shared secret, not a user session
			if strings.HasPrefix(r.URL.Path, "/mcp") {
				if h.mcpSecret == "" || r.Header.Get(MCPSecretHeader) != h.mcpSecret {
					log.Tracef("[mcp] [auth middleware] unauthorized => %s", r.URL.Path)
					http.Error(w, auth.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
					span.SetStatus(codes.Error, "mcp-secret-mismatch")
					return
				}
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get(auth.TokenHeader)
			if token == "" && h.cookies != nil {
				token = h.cookies.Token(r)
			}
			if token == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, auth.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			session, err := h.loginChecker.CurrentSession(ctx, token)
			if errors.Is(err, auth.ErrNotAuthenticated) {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, auth.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				return
			}
			if err != nil {
				log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
				http.Error(w, "session check failed", http.StatusInternalServerError)
				span.SetStatus(codes.Error, "check-logged-err")
				span.RecordError(err)
				return
			}

			account, err := h.accountFinder.AccountByID(ctx, session.UserID)
			if errors.Is(err, auth.ErrAccountNotFound) {
				// profile removed while the session was still alive
				http.Error(w, auth.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
				span.SetStatus(codes.Error, "account-gone")
				return
			}
			if err != nil {
				log.Errorf("[failed account lookup] => %s: %s", r.URL.Path, err)
				http.Error(w, "session check failed", http.StatusInternalServerError)
				span.SetStatus(codes.Error, "account-lookup-err")
				span.RecordError(err)
				return
			}

			span.SetAttributes(
				attribute.String("user.id", account.ID),
				attribute.Bool("user.admin", account.IsAdmin),
			)
			span.SetStatus(codes.Ok, "ok")

			ctx = auth.WithIdentity(ctx, auth.Identity{
				UserID:  account.ID,
				IsAdmin: account.IsAdmin,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
