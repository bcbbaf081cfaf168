package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/creativespark/creativespark/internal/auth"
	"github.com/creativespark/creativespark/internal/cache"
	"github.com/creativespark/creativespark/internal/model"
	"github.com/creativespark/creativespark/internal/repository"
)

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger *slog.Logger
	Tokens *auth.TokenIssuer
	Store  repository.AccountStore
	Cache  *cache.Cache
}

// Auth returns a middleware that authenticates API requests.
// It extracts the bearer session token from the Authorization header,
// verifies it, and injects the session context into the request.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_token"),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w)
				return
			}

			accountID, err := cfg.Tokens.Verify(token)
			if err != nil {
				// Expired and invalid tokens get the same response
				// to avoid leaking token state.
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "invalid_token"),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w)
				return
			}

			// Check cache first; the key is a token hash, never the token.
			cacheKey := auth.QuickHash(token)
			var session *model.Session
			if cfg.Cache != nil {
				session, _ = cfg.Cache.GetSession(r.Context(), cacheKey)
			}

			if session == nil || session.AccountID != accountID {
				// Cache miss - load the account behind the session.
				account, err := cfg.Store.GetAccountByID(r.Context(), accountID)
				if err != nil {
					cfg.Logger.Warn("authentication failed",
						slog.String("reason", "unknown_account"),
						slog.String("ip", r.RemoteAddr),
						slog.String("endpoint", r.Method+" "+r.URL.Path),
						slog.String("request_id", GetRequestID(r.Context())),
					)
					writeAuthError(w)
					return
				}

				session = &model.Session{
					AccountID: account.ID,
					Email:     account.Email,
					Role:      account.Role,
				}
				if cfg.Cache != nil {
					_ = cfg.Cache.SetSession(r.Context(), cacheKey, session)
				}
			}

			cfg.Logger.Debug("authentication successful",
				slog.String("account_id", session.AccountID),
				slog.String("endpoint", r.Method+" "+r.URL.Path),
				slog.String("request_id", GetRequestID(r.Context())),
			)

			ctx := auth.ContextWithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken extracts the session token from the Authorization header.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// writeAuthError writes a 401 Unauthorized response in the same flat
// envelope the handlers use. One message for all auth failures to
// prevent enumeration.
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Invalid or missing session token","code":"UNAUTHORIZED"}`))
}
