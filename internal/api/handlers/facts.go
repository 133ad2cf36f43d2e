package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/factline/credo/internal/api/middleware"
	"github.com/factline/credo/internal/domain"
	"github.com/factline/credo/internal/service"
)

type FactsHandler struct {
	svc *service.FactService
}

func NewFactsHandler(svc *service.FactService) *FactsHandler {
	return &FactsHandler{svc: svc}
}

type createFactRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	SourceURL string `json:"source_url,omitempty"`
	Category  string `json:"category,omitempty"`
}

func (h *FactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createFactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fact := &domain.Fact{
		TenantID:  tenant.ID,
		Title:     req.Title,
		Content:   req.Content,
		SourceURL: req.SourceURL,
		Category:  req.Category,
	}

	if err := h.svc.Ingest(r.Context(), fact); err != nil {
		switch {
		case errors.Is(err, service.ErrFactTitleEmpty),
			errors.Is(err, service.ErrFactContentEmpty):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create fact")
		}
		return
	}

	writeJSON(w, http.StatusCreated, fact)
}

func (h *FactsHandler) Search(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}

	topK := 0
	if s := r.URL.Query().Get("top_k"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 50 {
			writeError(w, http.StatusBadRequest, "top_k must be between 1 and 50")
			return
		}
		topK = n
	}

	facts, err := h.svc.Search(r.Context(), tenant.ID, query, topK)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to search facts")
		return
	}
	if facts == nil {
		facts = []domain.FactWithScore{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"facts": facts, "count": len(facts)})
}
