package domain

import (
	"time"

	"github.com/google/uuid"
)

// VoterRole distinguishes ordinary users from validators. Validator votes
// carry 3x weight in the community layer.
type VoterRole string

const (
	RoleUser      VoterRole = "user"
	RoleValidator VoterRole = "validator"
)

func ValidVoterRole(r string) bool {
	switch VoterRole(r) {
	case RoleUser, RoleValidator:
		return true
	}
	return false
}

// Vote is one voter's current position on a claim. One vote per voter per
// claim; re-casting replaces the previous value.
type Vote struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id,omitempty"`
	ClaimHash string    `json:"claim_hash"`
	VoterID   string    `json:"voter_id"`
	VoterRole VoterRole `json:"voter_role"`
	Vote      bool      `json:"vote"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
