package service

import (
	"context"
	"errors"
	"strings"

	"github.com/factline/credo/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrFactTitleEmpty   = errors.New("fact title is required")
	ErrFactContentEmpty = errors.New("fact content is required")
)

const defaultRetrievalTopK = 3

// FactService maintains the verified-fact database the rag layer matches
// claims against.
type FactService struct {
	factStore       domain.FactStore
	embeddingClient domain.EmbeddingClient
	logger          *zap.Logger
}

func NewFactService(fs domain.FactStore, ec domain.EmbeddingClient, logger *zap.Logger) *FactService {
	return &FactService{
		factStore:       fs,
		embeddingClient: ec,
		logger:          logger,
	}
}

func (s *FactService) Ingest(ctx context.Context, f *domain.Fact) error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrFactTitleEmpty
	}
	if strings.TrimSpace(f.Content) == "" {
		return ErrFactContentEmpty
	}

	if s.embeddingClient != nil {
		emb, err := s.embeddingClient.Embed(ctx, f.Title+" "+f.Content)
		if err != nil {
			s.logger.Warn("fact embedding failed, storing without vector", zap.Error(err))
		} else {
			f.Embedding = emb
			f.EmbeddingProvider = s.embeddingClient.Provider()
			f.EmbeddingModel = s.embeddingClient.Model()
		}
	}

	return s.factStore.Create(ctx, f)
}

// Search retrieves the facts most similar to the query: vector similarity
// when an embedding provider is configured, lexical match otherwise.
func (s *FactService) Search(ctx context.Context, tenantID uuid.UUID, query string, topK int) ([]domain.FactWithScore, error) {
	if topK <= 0 {
		topK = defaultRetrievalTopK
	}

	if s.embeddingClient != nil {
		emb, err := s.embeddingClient.Embed(ctx, query)
		if err != nil {
			s.logger.Warn("query embedding failed, falling back to keywords", zap.Error(err))
		} else {
			return s.factStore.SearchByEmbedding(ctx, tenantID, emb, topK)
		}
	}

	return s.factStore.SearchByKeywords(ctx, tenantID, query, topK)
}

// ContextFor joins the top matching facts into the rag context blob the
// scoring engine compares the claim against. Empty string when nothing
// matches.
func (s *FactService) ContextFor(ctx context.Context, tenantID uuid.UUID, claimText string) (string, error) {
	facts, err := s.Search(ctx, tenantID, claimText, defaultRetrievalTopK)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(facts))
	for _, f := range facts {
		parts = append(parts, f.Title+". "+f.Content)
	}
	return strings.Join(parts, "\n"), nil
}
