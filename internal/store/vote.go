package store

import (
	"context"

	"github.com/factline/credo/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VoteStore struct {
	db *pgxpool.Pool
}

func NewVoteStore(db *pgxpool.Pool) *VoteStore {
	return &VoteStore{db: db}
}

// Cast records a voter's position. One row per voter per claim; voting
// again replaces the previous position and role.
func (s *VoteStore) Cast(ctx context.Context, v *domain.Vote) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO votes (tenant_id, claim_hash, voter_id, voter_role, vote)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (tenant_id, claim_hash, voter_id)
		 DO UPDATE SET voter_role = EXCLUDED.voter_role, vote = EXCLUDED.vote, updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		v.TenantID, v.ClaimHash, v.VoterID, v.VoterRole, v.Vote,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
}

// Tally counts the current votes by role and direction. A claim nobody has
// voted on tallies to zeroes.
func (s *VoteStore) Tally(ctx context.Context, tenantID uuid.UUID, claimHash string) (*domain.VoteTally, error) {
	t := &domain.VoteTally{}
	err := s.db.QueryRow(ctx,
		`SELECT
		   COUNT(*) FILTER (WHERE voter_role = 'user' AND vote),
		   COUNT(*) FILTER (WHERE voter_role = 'user' AND NOT vote),
		   COUNT(*) FILTER (WHERE voter_role = 'validator' AND vote),
		   COUNT(*) FILTER (WHERE voter_role = 'validator' AND NOT vote)
		 FROM votes WHERE tenant_id = $1 AND claim_hash = $2`,
		tenantID, claimHash,
	).Scan(&t.UserVotes.True, &t.UserVotes.False, &t.ValidatorVotes.True, &t.ValidatorVotes.False)
	if err != nil {
		return nil, err
	}
	return t, nil
}
