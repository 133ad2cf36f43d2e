package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClaimInput is the unit of work for one scoring call. Optional fields use
// pointers so that "absent" and "empty string" stay distinguishable; absence
// is always valid and degrades the corresponding layer to its neutral score.
// Immutable once constructed, lifetime is a single call.
type ClaimInput struct {
	Text       string
	SourceURL  *string
	RAGContext *string
	WebContext *string
	Votes      *VoteTally
}

// VoteCount holds the true/false counts from one voter class.
type VoteCount struct {
	True  int `json:"true"`
	False int `json:"false"`
}

// VoteTally is the community vote state for a claim as supplied by the
// ledger collaborator. A nil tally means zero votes.
type VoteTally struct {
	UserVotes      VoteCount `json:"user_votes"`
	ValidatorVotes VoteCount `json:"validator_votes"`
}

// Total returns the raw (unweighted) number of votes cast.
func (t *VoteTally) Total() int {
	if t == nil {
		return 0
	}
	return t.UserVotes.True + t.UserVotes.False + t.ValidatorVotes.True + t.ValidatorVotes.False
}

// Negative reports whether any count is below zero. Negative counts are a
// caller-side validation error, never scored.
func (t *VoteTally) Negative() bool {
	if t == nil {
		return false
	}
	return t.UserVotes.True < 0 || t.UserVotes.False < 0 ||
		t.ValidatorVotes.True < 0 || t.ValidatorVotes.False < 0
}

// ClaimRecord is a scored claim as persisted: the raw text plus the report
// produced for it, keyed by the normalized claim hash.
type ClaimRecord struct {
	ID        uuid.UUID   `json:"id"`
	TenantID  uuid.UUID   `json:"tenant_id,omitempty"`
	ClaimHash string      `json:"claim_hash"`
	Text      string      `json:"text"`
	Report    ScoreReport `json:"report"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
