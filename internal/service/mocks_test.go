package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/factline/credo/internal/domain"
	"github.com/factline/credo/internal/store"
	"github.com/google/uuid"
)

// mockClaimStore implements domain.ClaimStore for testing.
type mockClaimStore struct {
	records map[string]*domain.ClaimRecord
	upserts int
}

func newMockClaimStore() *mockClaimStore {
	return &mockClaimStore{records: make(map[string]*domain.ClaimRecord)}
}

func claimKey(tenantID uuid.UUID, claimHash string) string {
	return tenantID.String() + ":" + claimHash
}

func (m *mockClaimStore) Upsert(ctx context.Context, c *domain.ClaimRecord) error {
	m.upserts++
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	m.records[claimKey(c.TenantID, c.ClaimHash)] = &cp
	return nil
}

func (m *mockClaimStore) GetByHash(ctx context.Context, tenantID uuid.UUID, claimHash string) (*domain.ClaimRecord, error) {
	c, ok := m.records[claimKey(tenantID, claimHash)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (m *mockClaimStore) ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.ClaimRecord, error) {
	var out []domain.ClaimRecord
	for _, c := range m.records {
		if c.TenantID == tenantID {
			out = append(out, *c)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// mockVoteStore implements domain.VoteStore for testing.
type mockVoteStore struct {
	votes   map[string]*domain.Vote
	tallies map[string]*domain.VoteTally
	err     error
}

func newMockVoteStore() *mockVoteStore {
	return &mockVoteStore{
		votes:   make(map[string]*domain.Vote),
		tallies: make(map[string]*domain.VoteTally),
	}
}

func (m *mockVoteStore) Cast(ctx context.Context, v *domain.Vote) error {
	if m.err != nil {
		return m.err
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	m.votes[claimKey(v.TenantID, v.ClaimHash)+":"+v.VoterID] = v
	return nil
}

func (m *mockVoteStore) Tally(ctx context.Context, tenantID uuid.UUID, claimHash string) (*domain.VoteTally, error) {
	if m.err != nil {
		return nil, m.err
	}
	if t, ok := m.tallies[claimKey(tenantID, claimHash)]; ok {
		return t, nil
	}
	return &domain.VoteTally{}, nil
}

// mockFactStore implements domain.FactStore for testing.
type mockFactStore struct {
	facts []domain.Fact
}

func (m *mockFactStore) Create(ctx context.Context, f *domain.Fact) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	m.facts = append(m.facts, *f)
	return nil
}

func (m *mockFactStore) SearchByEmbedding(ctx context.Context, tenantID uuid.UUID, embedding []float32, topK int) ([]domain.FactWithScore, error) {
	var out []domain.FactWithScore
	for _, f := range m.facts {
		if f.TenantID != tenantID || len(f.Embedding) == 0 {
			continue
		}
		out = append(out, domain.FactWithScore{Fact: f, Score: 0.9})
		if len(out) >= topK {
			break
		}
	}
	return out, nil
}

// SearchByKeywords mirrors the store's semantics: any query token of three
// runes or more appearing in the title or content qualifies a fact.
func (m *mockFactStore) SearchByKeywords(ctx context.Context, tenantID uuid.UUID, query string, topK int) ([]domain.FactWithScore, error) {
	tokens := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var out []domain.FactWithScore
	for _, f := range m.facts {
		if f.TenantID != tenantID {
			continue
		}
		text := strings.ToLower(f.Title + " " + f.Content)
		matched := false
		for _, tok := range tokens {
			if len([]rune(tok)) >= 3 && strings.Contains(text, tok) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		out = append(out, domain.FactWithScore{Fact: f})
		if len(out) >= topK {
			break
		}
	}
	return out, nil
}

// mockReportCache implements domain.ReportCache for testing.
type mockReportCache struct {
	reports map[string]*domain.ScoreReport
	sets    int
	err     error
}

func newMockReportCache() *mockReportCache {
	return &mockReportCache{reports: make(map[string]*domain.ScoreReport)}
}

func (m *mockReportCache) Get(ctx context.Context, tenantID uuid.UUID, claimHash string) (*domain.ScoreReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.reports[claimKey(tenantID, claimHash)], nil
}

func (m *mockReportCache) Set(ctx context.Context, tenantID uuid.UUID, report *domain.ScoreReport) error {
	if m.err != nil {
		return m.err
	}
	m.sets++
	m.reports[claimKey(tenantID, report.ClaimHash)] = report
	return nil
}

// mockEmbeddingClient returns a fixed vector, or an error when set.
type mockEmbeddingClient struct {
	err error
}

func (m *mockEmbeddingClient) Provider() string { return "mock" }

func (m *mockEmbeddingClient) Model() string { return "test-small" }

func (m *mockEmbeddingClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

// mockRetriever returns a fixed context blob, or an error when set.
type mockRetriever struct {
	blob string
	err  error
}

func (m *mockRetriever) ContextFor(ctx context.Context, tenantID uuid.UUID, claimText string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.blob, nil
}

var errStoreDown = errors.New("store down")
