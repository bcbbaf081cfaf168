package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creativespark/creativespark/internal/auth"
	"github.com/creativespark/creativespark/internal/handler/dto"
	"github.com/creativespark/creativespark/internal/service"
)

// IdeaHandler handles HTTP requests for idea operations.
// Every route requires an authenticated session; the owner is always
// taken from the session, never from the request body.
type IdeaHandler struct {
	svc    *service.IdeaService
	logger *slog.Logger
}

// NewIdeaHandler creates a new IdeaHandler.
func NewIdeaHandler(svc *service.IdeaService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{
		svc:    svc,
		logger: logger,
	}
}

// Generate handles POST /api/v1/ideas/generate.
func (h *IdeaHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.AccountIDFromContext(r.Context())
	if ownerID == "" {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or missing session token")
		return
	}

	var req dto.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	out, err := h.svc.GenerateAndPersist(r.Context(), ownerID, service.GenerateInput{
		ContentType:    req.ContentType,
		Industry:       req.Industry,
		Tone:           req.Tone,
		Keywords:       req.Keywords,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("ideas_generated",
		"account_id", ownerID,
		"content_type", req.ContentType,
		"persisted", len(out.Ideas),
		"failed", len(out.Failures),
	)

	ideas := make([]dto.IdeaResponse, len(out.Ideas))
	for i, idea := range out.Ideas {
		ideas[i] = dto.ToIdeaResponse(idea)
	}
	writeJSON(w, http.StatusOK, dto.GenerateResponse{
		Data:     ideas,
		Failures: out.Failures,
	})
}

// List handles GET /api/v1/ideas.
// An optional ?q= parameter switches to weighted relevance search.
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.AccountIDFromContext(r.Context())
	if ownerID == "" {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or missing session token")
		return
	}

	ideas, err := h.svc.Search(r.Context(), ownerID, r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToIdeaListResponse(ideas))
}

// Get handles GET /api/v1/ideas/{id}.
func (h *IdeaHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.AccountIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	idea, err := h.svc.Get(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToIdeaResponse(idea))
}

// Update handles PATCH /api/v1/ideas/{id}.
func (h *IdeaHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.AccountIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req dto.UpdateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	idea, err := h.svc.UpdateFields(r.Context(), ownerID, id, service.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Industry:    req.Industry,
		Tone:        req.Tone,
		Keywords:    req.Keywords,
		Tags:        req.Tags,
		Status:      req.Status,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("idea_updated",
		"account_id", ownerID,
		"idea_id", idea.ID,
		"status", string(idea.Status),
	)

	writeJSON(w, http.StatusOK, dto.ToIdeaResponse(idea))
}

// Delete handles DELETE /api/v1/ideas/{id}.
func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.AccountIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), ownerID, id); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("idea_deleted",
		"account_id", ownerID,
		"idea_id", id,
	)

	w.WriteHeader(http.StatusNoContent)
}

// Share handles POST /api/v1/ideas/{id}/share.
func (h *IdeaHandler) Share(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.AccountIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req dto.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	ack, err := h.svc.Share(r.Context(), ownerID, id, req.Email)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("idea_shared",
		"account_id", ownerID,
		"idea_id", id,
	)

	writeJSON(w, http.StatusOK, ack)
}
