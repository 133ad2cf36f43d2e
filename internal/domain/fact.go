package domain

import (
	"time"

	"github.com/google/uuid"
)

// Fact is a verified record in the retrieval database. Matching claims
// against stored facts is what produces the rag context handed to the
// scoring engine.
type Fact struct {
	ID                uuid.UUID `json:"id"`
	TenantID          uuid.UUID `json:"tenant_id,omitempty"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	SourceURL         string    `json:"source_url,omitempty"`
	Category          string    `json:"category,omitempty"`
	Embedding         []float32 `json:"-"`
	EmbeddingProvider string    `json:"embedding_provider,omitempty"`
	EmbeddingModel    string    `json:"embedding_model,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// FactWithScore pairs a fact with its retrieval similarity.
type FactWithScore struct {
	Fact
	Score float32 `json:"score"`
}
