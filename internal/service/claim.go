package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/factline/credo/internal/domain"
	"github.com/factline/credo/internal/engine"
	"github.com/factline/credo/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrClaimNotFound = errors.New("claim not found")

// ContextRetriever supplies rag context for a claim when the caller did not
// provide any. FactService implements it.
type ContextRetriever interface {
	ContextFor(ctx context.Context, tenantID uuid.UUID, claimText string) (string, error)
}

type ClaimService struct {
	engine     *engine.Engine
	claimStore domain.ClaimStore
	voteStore  domain.VoteStore
	retriever  ContextRetriever
	cache      domain.ReportCache
	logger     *zap.Logger
	now        func() time.Time
}

func NewClaimService(e *engine.Engine, cs domain.ClaimStore, vs domain.VoteStore, logger *zap.Logger) *ClaimService {
	return &ClaimService{
		engine:     e,
		claimStore: cs,
		voteStore:  vs,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SetRetriever wires the fact retrieval collaborator. Without one, claims
// score with whatever context the caller supplied.
func (s *ClaimService) SetRetriever(r ContextRetriever) {
	s.retriever = r
}

// SetCache wires the report cache. A nil cache disables caching.
func (s *ClaimService) SetCache(c domain.ReportCache) {
	s.cache = c
}

// Score runs the full pipeline for one claim: cache lookup, context
// retrieval, vote tally, engine scoring, persistence, cache write. Retrieval,
// tally and cache failures degrade with a warning; the claim still scores on
// whatever inputs remain.
func (s *ClaimService) Score(ctx context.Context, tenantID uuid.UUID, in domain.ClaimInput) (*domain.ScoreReport, error) {
	if err := engine.Validate(in); err != nil {
		return nil, err
	}
	claimHash := engine.HashClaim(strings.TrimSpace(in.Text))

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, tenantID, claimHash)
		if err != nil {
			s.logger.Warn("report cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	if in.RAGContext == nil && s.retriever != nil {
		blob, err := s.retriever.ContextFor(ctx, tenantID, in.Text)
		if err != nil {
			s.logger.Warn("context retrieval failed", zap.Error(err))
		} else if blob != "" {
			in.RAGContext = &blob
		}
	}

	if in.Votes == nil && s.voteStore != nil {
		tally, err := s.voteStore.Tally(ctx, tenantID, claimHash)
		if err != nil {
			s.logger.Warn("vote tally failed", zap.Error(err))
		} else {
			in.Votes = tally
		}
	}

	report, err := s.engine.Score(in, s.now())
	if err != nil {
		return nil, err
	}

	record := &domain.ClaimRecord{
		TenantID:  tenantID,
		ClaimHash: report.ClaimHash,
		Text:      report.Claim,
		Report:    *report,
	}
	if err := s.claimStore.Upsert(ctx, record); err != nil {
		return nil, err
	}

	if s.cache != nil {
		// The cache TTL bounds how long a report can outlive new votes or
		// facts for the same claim.
		if err := s.cache.Set(ctx, tenantID, report); err != nil {
			s.logger.Warn("report cache write failed", zap.Error(err))
		}
	}

	return report, nil
}

func (s *ClaimService) GetByHash(ctx context.Context, tenantID uuid.UUID, claimHash string) (*domain.ClaimRecord, error) {
	c, err := s.claimStore.GetByHash(ctx, tenantID, claimHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *ClaimService) Feed(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.ClaimRecord, error) {
	return s.claimStore.ListRecent(ctx, tenantID, limit)
}
