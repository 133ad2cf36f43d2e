package engine

import (
	"fmt"
	"strings"

	"github.com/factline/credo/internal/domain"
)

// Verdict lines are a downstream parsing contract, as are the " | " segment
// separator and the "; " flag separator below.
var verdictLines = map[domain.Verdict]string{
	domain.VerdictTrue:       "✅ Claim appears credible",
	domain.VerdictFalse:      "❌ Claim likely false or misleading",
	domain.VerdictUncertain:  "⚠️ Insufficient evidence to verify",
	domain.VerdictUnverified: "🔍 Claim could not be verified against known sources",
	domain.VerdictBreaking:   "⏳ Breaking news, verification pending",
}

// Explain assembles the fixed-format summary: verdict line, credibility and
// confidence percentages, the primary signal, then all remaining flags.
func Explain(verdict domain.Verdict, finalScore, confidence float64, primary *domain.Flag, flags []domain.Flag) string {
	parts := []string{
		verdictLines[verdict],
		fmt.Sprintf("Credibility Score: %.0f%% | Confidence: %.0f%%", finalScore*100, confidence*100),
	}

	if primary != nil {
		parts = append(parts, "Primary signal: "+primary.String())

		var rest []string
		skipped := false
		for _, f := range flags {
			if !skipped && f.String() == primary.String() {
				skipped = true
				continue
			}
			rest = append(rest, f.String())
		}
		if len(rest) > 0 {
			parts = append(parts, "Signals: "+strings.Join(rest, "; "))
		}
	}

	return strings.Join(parts, " | ")
}

// primarySignal picks the strongest signal: the first flag emitted by the
// highest-weighted layer that emitted any, weight ties broken by emission
// order (linguistic before rag_match, temporal before community).
func primarySignal(src, ling, rag, num, temp, comm domain.LayerResult) *domain.Flag {
	for _, lr := range []domain.LayerResult{src, ling, rag, num, temp, comm} {
		if len(lr.Flags) > 0 {
			f := lr.Flags[0]
			return &f
		}
	}
	return nil
}
