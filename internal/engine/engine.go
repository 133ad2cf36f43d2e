// Package engine implements the rule-based claim credibility scorer: six
// independent signal layers aggregated by a fixed weight vector, an ordered
// verdict decision table, and a deterministic explanation template. A call
// is pure computation over its inputs; identical input and an identical
// "now" always produce an identical report apart from timing metadata.
package engine

import (
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/factline/credo/internal/domain"
)

const (
	MinClaimLength = 5
	MaxClaimLength = 10_000
)

var (
	ErrClaimTextTooShort = errors.New("claim text too short")
	ErrClaimTextTooLong  = errors.New("claim text too long")
	ErrNegativeVoteCount = errors.New("vote counts must be non-negative")
)

type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Validate applies the input contract: trimmed text length bounds and
// non-negative vote counts. All other conditions degrade inside the layers
// instead of erroring.
func Validate(in domain.ClaimInput) error {
	n := len([]rune(strings.TrimSpace(in.Text)))
	if n < MinClaimLength {
		return ErrClaimTextTooShort
	}
	if n > MaxClaimLength {
		return ErrClaimTextTooLong
	}
	if in.Votes.Negative() {
		return ErrNegativeVoteCount
	}
	return nil
}

// Score runs the six layers, aggregates, classifies and explains. The layers
// have no data dependency on each other and run concurrently; results land
// in fixed slots so flag order stays deterministic regardless of completion
// order. now feeds only the temporal layer and the report timestamp.
func (e *Engine) Score(in domain.ClaimInput, now time.Time) (*domain.ScoreReport, error) {
	start := time.Now()

	if err := Validate(in); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(in.Text)

	var (
		src, ling, num, rag, temp, comm domain.LayerResult
		sources                         []domain.SourceRef
	)
	var wg sync.WaitGroup
	wg.Add(6)
	go func() { defer wg.Done(); src, sources = scoreSource(in) }()
	go func() { defer wg.Done(); ling = scoreLinguistic(in) }()
	go func() { defer wg.Done(); num = scoreNumerical(in) }()
	go func() { defer wg.Done(); rag = scoreRAGMatch(in) }()
	go func() { defer wg.Done(); temp = scoreTemporal(in, now) }()
	go func() { defer wg.Done(); comm = scoreCommunity(in) }()
	wg.Wait()

	final := Composite(LayerScores{
		Source:     src.Score,
		Linguistic: ling.Score,
		Numerical:  num.Score,
		RAGMatch:   rag.Score,
		Temporal:   temp.Score,
		Community:  comm.Score,
	})
	confidence := Confidence(strongEvidenceCount(sources, rag, comm))

	flags := mergeFlags(src, ling, num, rag, temp, comm)
	verdict, risk := Classify(final, flags, sources)
	primary := primarySignal(src, ling, rag, num, temp, comm)

	if sources == nil {
		sources = []domain.SourceRef{}
	}

	report := &domain.ScoreReport{
		Claim:           text,
		ClaimHash:       HashClaim(text),
		SourceScore:     round3(src.Score),
		LinguisticScore: round3(ling.Score),
		NumericalScore:  round3(num.Score),
		RAGMatchScore:   round3(rag.Score),
		TemporalScore:   round3(temp.Score),
		CommunityScore:  round3(comm.Score),
		FinalScore:      round3(final),
		Confidence:      round3(confidence),
		Verdict:         verdict,
		RiskLevel:       risk,
		Flags:           flags,
		SourcesFound:    sources,
		Explanation:     Explain(verdict, final, confidence, primary, flags),
		Timestamp:       now,
	}
	report.ProcessingMs = time.Since(start).Milliseconds()
	return report, nil
}

// strongEvidenceCount counts the layers that produced actual corroborating
// evidence: a recognized source, a database match, a community quorum.
func strongEvidenceCount(sources []domain.SourceRef, rag, comm domain.LayerResult) int {
	n := 0
	for _, ref := range sources {
		if ref.Tier != domain.TierUnknown {
			n++
			break
		}
	}
	if !hasFlag(rag.Flags, domain.FlagNoDatabaseMatch) {
		n++
	}
	if !hasFlag(comm.Flags, domain.FlagInsufficientVotes) {
		n++
	}
	return n
}

// mergeFlags unions layer flags in fixed layer order, first occurrence wins,
// duplicates collapsed by exact rendered string.
func mergeFlags(layers ...domain.LayerResult) []domain.Flag {
	seen := make(map[string]struct{})
	merged := []domain.Flag{}
	for _, lr := range layers {
		for _, f := range lr.Flags {
			key := f.String()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, f)
		}
	}
	return merged
}

// Reported scores carry three decimals; classification always happens on the
// exact values before rounding.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
