package domain

import (
	"context"

	"github.com/google/uuid"
)

// ClaimStore persists scored claims keyed by tenant and claim hash.
type ClaimStore interface {
	Upsert(ctx context.Context, c *ClaimRecord) error
	GetByHash(ctx context.Context, tenantID uuid.UUID, claimHash string) (*ClaimRecord, error)
	ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]ClaimRecord, error)
}

// FactStore is the verified-fact retrieval database.
type FactStore interface {
	Create(ctx context.Context, f *Fact) error
	SearchByEmbedding(ctx context.Context, tenantID uuid.UUID, embedding []float32, topK int) ([]FactWithScore, error)
	SearchByKeywords(ctx context.Context, tenantID uuid.UUID, query string, topK int) ([]FactWithScore, error)
}

// VoteStore records community votes and answers tallies. A claim with no
// votes tallies to all zeroes, not an error.
type VoteStore interface {
	Cast(ctx context.Context, v *Vote) error
	Tally(ctx context.Context, tenantID uuid.UUID, claimHash string) (*VoteTally, error)
}

// TenantStore manages API tenants.
type TenantStore interface {
	Create(ctx context.Context, t *Tenant) error
	GetByAPIKeyHash(ctx context.Context, apiKeyHash string) (*Tenant, error)
}

// EmbeddingClient produces embeddings for fact indexing and retrieval.
// Provider and Model identify where a vector came from, recorded alongside
// it for provenance.
type EmbeddingClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Provider() string
	Model() string
}

// ReportCache is an optional read-through cache for score reports. Get
// returns (nil, nil) on a miss.
type ReportCache interface {
	Get(ctx context.Context, tenantID uuid.UUID, claimHash string) (*ScoreReport, error)
	Set(ctx context.Context, tenantID uuid.UUID, report *ScoreReport) error
}
