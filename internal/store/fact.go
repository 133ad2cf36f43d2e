package store

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/factline/credo/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"
)

type FactStore struct {
	db *pgxpool.Pool
}

func NewFactStore(db *pgxpool.Pool) *FactStore {
	return &FactStore{db: db}
}

func (s *FactStore) Create(ctx context.Context, f *domain.Fact) error {
	// Embedding provenance is set by the service that produced the vector;
	// a row without a vector stays unlabeled.
	var embedding *pgvector.Vector
	if len(f.Embedding) > 0 {
		v := pgvector.NewVector(f.Embedding)
		embedding = &v
	}

	return s.db.QueryRow(ctx,
		`INSERT INTO facts (tenant_id, title, content, source_url, category, embedding, embedding_provider, embedding_model)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		f.TenantID, f.Title, f.Content, f.SourceURL, f.Category, embedding, f.EmbeddingProvider, f.EmbeddingModel,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (s *FactStore) SearchByEmbedding(ctx context.Context, tenantID uuid.UUID, embedding []float32, topK int) ([]domain.FactWithScore, error) {
	if topK <= 0 {
		topK = 5
	}

	vec := pgvector.NewVector(embedding)
	rows, err := s.db.Query(ctx,
		`SELECT id, tenant_id, title, content, source_url, category, embedding_provider, embedding_model, created_at, updated_at,
		        1 - (embedding <=> $2) AS score
		 FROM facts
		 WHERE tenant_id = $1 AND embedding IS NOT NULL
		 ORDER BY embedding <=> $2
		 LIMIT $3`,
		tenantID, vec, topK,
	)
	if err != nil {
		return nil, fmt.Errorf("embedding search: %w", err)
	}
	defer rows.Close()

	return scanFacts(rows)
}

// SearchByKeywords is the fallback when no embedding provider is configured.
// Any query token of three runes or more appearing in the title or content
// qualifies a fact; relevance is judged downstream by the scoring engine's
// token overlap, so this layer optimizes for recall.
func (s *FactStore) SearchByKeywords(ctx context.Context, tenantID uuid.UUID, query string, topK int) ([]domain.FactWithScore, error) {
	if topK <= 0 {
		topK = 5
	}

	tokens := keywordTokens(query)
	if len(tokens) == 0 {
		return nil, nil
	}

	args := []any{tenantID}
	matches := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		p := len(args) + 1
		matches = append(matches, fmt.Sprintf("title ILIKE $%d OR content ILIKE $%d", p, p))
		args = append(args, "%"+tok+"%")
	}

	limitParam := len(args) + 1
	args = append(args, topK)

	q := fmt.Sprintf(
		`SELECT id, tenant_id, title, content, source_url, category, embedding_provider, embedding_model, created_at, updated_at,
		        0.0 AS score
		 FROM facts
		 WHERE tenant_id = $1 AND (%s)
		 ORDER BY updated_at DESC
		 LIMIT $%d`,
		strings.Join(matches, " OR "),
		limitParam,
	)

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}
	defer rows.Close()

	return scanFacts(rows)
}

const minKeywordLength = 3

// keywordTokens splits a query into distinct lowercase search tokens,
// dropping stopword-sized fragments. Punctuation and currency symbols are
// separators, so a figure like ₹6000 searches as 6000. Tokens contain only
// letters and digits, which keeps them safe inside ILIKE patterns.
func keywordTokens(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(fields))
	var tokens []string
	for _, tok := range fields {
		if len([]rune(tok)) < minKeywordLength {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}

func scanFacts(rows pgx.Rows) ([]domain.FactWithScore, error) {
	var facts []domain.FactWithScore
	for rows.Next() {
		var f domain.FactWithScore
		if err := rows.Scan(&f.ID, &f.TenantID, &f.Title, &f.Content, &f.SourceURL, &f.Category,
			&f.EmbeddingProvider, &f.EmbeddingModel, &f.CreatedAt, &f.UpdatedAt, &f.Score); err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}
	return facts, rows.Err()
}
