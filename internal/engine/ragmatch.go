package engine

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/factline/credo/internal/domain"
)

const (
	RAGScoreNoMatch = 0.30
	RAGScoreCeiling = 0.95
	// Token-overlap ratio at which the match counts as strong.
	RAGStrongMatchThreshold = 0.6
	// Slope mapping overlap onto the score range above the no-match floor.
	ragOverlapGain = 0.92

	PenaltyFraudIndicator = 0.40
)

// scoreRAGMatch compares the claim against retrieved context by lexical token
// overlap. No context, or zero overlap, degrades to the no-match floor; a
// fraud marker in the matched record pushes the score down hard.
func scoreRAGMatch(in domain.ClaimInput) domain.LayerResult {
	ctx := joinedContext(in)
	if strings.TrimSpace(ctx) == "" {
		return domain.LayerResult{
			Score: RAGScoreNoMatch,
			Flags: []domain.Flag{{Kind: domain.FlagNoDatabaseMatch}},
		}
	}

	overlap := tokenOverlap(in.Text, ctx)
	if overlap == 0 {
		return domain.LayerResult{
			Score: RAGScoreNoMatch,
			Flags: []domain.Flag{{Kind: domain.FlagNoDatabaseMatch}},
		}
	}

	score := math.Min(RAGScoreCeiling, RAGScoreNoMatch+ragOverlapGain*overlap)
	var flags []domain.Flag

	if fraudIndicatorPattern.MatchString(strings.ToLower(ctx)) {
		score = math.Max(0, score-PenaltyFraudIndicator)
		flags = append(flags, domain.Flag{Kind: domain.FlagDatabaseFraud})
	}

	if overlap >= RAGStrongMatchThreshold {
		flags = append(flags, domain.Flag{
			Kind:  domain.FlagStrongDatabaseMatch,
			Value: fmt.Sprintf("%.0f%%", overlap*100),
		})
	}

	return domain.LayerResult{Score: score, Flags: flags}
}

func joinedContext(in domain.ClaimInput) string {
	var parts []string
	if in.RAGContext != nil {
		parts = append(parts, *in.RAGContext)
	}
	if in.WebContext != nil {
		parts = append(parts, *in.WebContext)
	}
	return strings.Join(parts, " ")
}

// tokenOverlap returns the fraction of distinct claim tokens that also occur
// in the context.
func tokenOverlap(claim, ctx string) float64 {
	claimTokens := tokenize(claim)
	if len(claimTokens) == 0 {
		return 0
	}
	ctxTokens := tokenize(ctx)

	matched := 0
	for t := range claimTokens {
		if _, ok := ctxTokens[t]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(claimTokens))
}

func tokenize(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}
