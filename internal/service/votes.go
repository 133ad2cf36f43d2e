package service

import (
	"context"
	"errors"
	"strings"

	"github.com/factline/credo/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrVoteClaimHashMissing = errors.New("claim_hash is required")
	ErrVoterIDMissing       = errors.New("voter_id is required")
	ErrInvalidVoterRole     = errors.New("invalid voter_role")
)

type VoteService struct {
	voteStore domain.VoteStore
}

func NewVoteService(vs domain.VoteStore) *VoteService {
	return &VoteService{voteStore: vs}
}

func (s *VoteService) Cast(ctx context.Context, v *domain.Vote) error {
	if strings.TrimSpace(v.ClaimHash) == "" {
		return ErrVoteClaimHashMissing
	}
	if strings.TrimSpace(v.VoterID) == "" {
		return ErrVoterIDMissing
	}
	if v.VoterRole == "" {
		v.VoterRole = domain.RoleUser
	}
	if !domain.ValidVoterRole(string(v.VoterRole)) {
		return ErrInvalidVoterRole
	}

	return s.voteStore.Cast(ctx, v)
}

func (s *VoteService) Tally(ctx context.Context, tenantID uuid.UUID, claimHash string) (*domain.VoteTally, error) {
	return s.voteStore.Tally(ctx, tenantID, claimHash)
}
