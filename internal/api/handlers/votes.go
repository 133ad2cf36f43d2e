package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/factline/credo/internal/api/middleware"
	"github.com/factline/credo/internal/domain"
	"github.com/factline/credo/internal/service"
	"github.com/go-chi/chi/v5"
)

type VotesHandler struct {
	svc *service.VoteService
}

func NewVotesHandler(svc *service.VoteService) *VotesHandler {
	return &VotesHandler{svc: svc}
}

type castVoteRequest struct {
	VoterID   string `json:"voter_id"`
	VoterRole string `json:"voter_role,omitempty"`
	Vote      bool   `json:"vote"`
}

func (h *VotesHandler) Cast(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vote := &domain.Vote{
		TenantID:  tenant.ID,
		ClaimHash: chi.URLParam(r, "hash"),
		VoterID:   req.VoterID,
		VoterRole: domain.VoterRole(req.VoterRole),
		Vote:      req.Vote,
	}

	if err := h.svc.Cast(r.Context(), vote); err != nil {
		switch {
		case errors.Is(err, service.ErrVoteClaimHashMissing),
			errors.Is(err, service.ErrVoterIDMissing),
			errors.Is(err, service.ErrInvalidVoterRole):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to cast vote")
		}
		return
	}

	writeJSON(w, http.StatusCreated, vote)
}

func (h *VotesHandler) Tally(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tally, err := h.svc.Tally(r.Context(), tenant.ID, chi.URLParam(r, "hash"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to tally votes")
		return
	}

	writeJSON(w, http.StatusOK, tally)
}
