package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/creativespark/creativespark/internal/auth"
	"github.com/creativespark/creativespark/internal/cache"
	"github.com/creativespark/creativespark/internal/handler/dto"
	"github.com/creativespark/creativespark/internal/service"
)

// AuthHandler handles HTTP requests for registration, login and sessions.
type AuthHandler struct {
	svc    *service.AccountService
	cache  *cache.Cache
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AccountService, sessionCache *cache.Cache, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		cache:  sessionCache,
		logger: logger,
	}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	account, token, err := h.svc.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Company:  req.Company,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("account_registered",
		"account_id", account.ID,
	)

	writeJSON(w, http.StatusCreated, dto.AuthResponse{
		Account: dto.ToAccountResponse(account),
		Token:   token,
	})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	account, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("login_succeeded",
		"account_id", account.ID,
	)

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		Account: dto.ToAccountResponse(account),
		Token:   token,
	})
}

// Logout handles POST /api/v1/auth/logout.
// Sessions are stateless; logout drops the cached session context so a
// discarded token stops resolving early. The token itself stays valid
// until expiry (accepted limitation).
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if h.cache != nil {
		header := r.Header.Get("Authorization")
		if token := strings.TrimPrefix(header, "Bearer "); token != header {
			_ = h.cache.DeleteSession(r.Context(), auth.QuickHash(token))
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "logged out",
	})
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or missing session token")
		return
	}

	account, err := h.svc.CurrentAccount(r.Context(), session.AccountID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAccountResponse(account))
}
