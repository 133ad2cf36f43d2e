package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/factline/credo/internal/api/middleware"
	"github.com/factline/credo/internal/domain"
	"github.com/factline/credo/internal/engine"
	"github.com/factline/credo/internal/service"
	"github.com/go-chi/chi/v5"
)

type ClaimsHandler struct {
	svc *service.ClaimService
}

func NewClaimsHandler(svc *service.ClaimService) *ClaimsHandler {
	return &ClaimsHandler{svc: svc}
}

type scoreClaimRequest struct {
	Text       string            `json:"text"`
	SourceURL  *string           `json:"source_url,omitempty"`
	RAGContext *string           `json:"rag_context,omitempty"`
	WebContext *string           `json:"web_context,omitempty"`
	Votes      *domain.VoteTally `json:"votes,omitempty"`
}

func (h *ClaimsHandler) Score(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req scoreClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.svc.Score(r.Context(), tenant.ID, domain.ClaimInput{
		Text:       req.Text,
		SourceURL:  req.SourceURL,
		RAGContext: req.RAGContext,
		WebContext: req.WebContext,
		Votes:      req.Votes,
	})
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrClaimTextTooShort),
			errors.Is(err, engine.ErrClaimTextTooLong),
			errors.Is(err, engine.ErrNegativeVoteCount):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to score claim")
		}
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *ClaimsHandler) GetByHash(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	claim, err := h.svc.GetByHash(r.Context(), tenant.ID, chi.URLParam(r, "hash"))
	if err != nil {
		if errors.Is(err, service.ErrClaimNotFound) {
			writeError(w, http.StatusNotFound, "claim not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch claim")
		return
	}

	writeJSON(w, http.StatusOK, claim)
}

func (h *ClaimsHandler) Feed(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 100 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	claims, err := h.svc.Feed(r.Context(), tenant.ID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch feed")
		return
	}
	if claims == nil {
		claims = []domain.ClaimRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"claims": claims, "count": len(claims)})
}
