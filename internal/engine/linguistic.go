package engine

import (
	"strings"
	"unicode"

	"github.com/factline/credo/internal/domain"
)

const (
	LinguisticBaseline = 0.7

	PenaltyClickbait = 0.20
	PenaltyUrgency   = 0.15
	PenaltyScheme    = 0.20

	// ALL-CAPS ratio over letters above which text counts as shouting.
	capsRatioThreshold = 0.5
	// Exclamation marks at or above this count read as clickbait.
	exclamationThreshold = 3
)

// scoreLinguistic scans the claim for manipulation signals. Each detected
// category costs a fixed penalty off the neutral baseline, floored at zero,
// and emits exactly one flag.
func scoreLinguistic(in domain.ClaimInput) domain.LayerResult {
	score := LinguisticBaseline
	var flags []domain.Flag
	text := strings.ToLower(in.Text)

	if anyMatch(clickbaitPatterns, text) || excessiveExclamation(in.Text) || excessiveCaps(in.Text) {
		score -= PenaltyClickbait
		flags = append(flags, domain.Flag{Kind: domain.FlagClickbaitLanguage})
	}

	if anyMatch(urgencyPatterns, text) {
		score -= PenaltyUrgency
		flags = append(flags, domain.Flag{Kind: domain.FlagUrgencyManipulation})
	}

	// Scheme buzzwords alone are legitimate news vocabulary; only the
	// combination with implausible-benefit phrasing is suspicious.
	if anyMatch(schemePatterns, text) && anyMatch(benefitPatterns, text) {
		score -= PenaltyScheme
		flags = append(flags, domain.Flag{Kind: domain.FlagSchemeImpersonation})
	}

	if score < 0 {
		score = 0
	}
	return domain.LayerResult{Score: score, Flags: flags}
}

func excessiveExclamation(text string) bool {
	return strings.Count(text, "!") >= exclamationThreshold
}

func excessiveCaps(text string) bool {
	var upper, letters int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if letters == 0 {
		return false
	}
	return float64(upper)/float64(letters) > capsRatioThreshold
}
