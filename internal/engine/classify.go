package engine

import "github.com/factline/credo/internal/domain"

// Verdict thresholds. Ties resolve to the lower-confidence branch: a score
// of exactly 0.72 is TRUE, exactly 0.40 is UNCERTAIN rather than FALSE.
const (
	VerdictTrueThreshold = 0.72
	UncertainMediumFloor = 0.55
	VerdictFalseCeiling  = 0.40
	// Below this floor other signals are decisively negative and the
	// breaking-news override no longer applies.
	BreakingOverrideFloor = 0.40
)

// Classify maps the composite score plus the temporal/source override
// conditions onto a verdict and risk level. The rules are evaluated once,
// in fixed priority order; no state survives the call.
func Classify(finalScore float64, flags []domain.Flag, sources []domain.SourceRef) (domain.Verdict, domain.RiskLevel) {
	if hasFlag(flags, domain.FlagBreakingUnverified) && finalScore >= BreakingOverrideFloor {
		return domain.VerdictBreaking, domain.RiskMedium
	}

	// UNVERIFIED is for absent evidence, not negative evidence: once the
	// score is decisively low the FALSE branch below takes precedence.
	if len(sources) == 0 && hasFlag(flags, domain.FlagNoDatabaseMatch) && finalScore >= VerdictFalseCeiling {
		return domain.VerdictUnverified, domain.RiskHigh
	}

	switch {
	case finalScore >= VerdictTrueThreshold:
		return domain.VerdictTrue, domain.RiskLow
	case finalScore < VerdictFalseCeiling:
		return domain.VerdictFalse, domain.RiskCritical
	case finalScore >= UncertainMediumFloor:
		return domain.VerdictUncertain, domain.RiskMedium
	default:
		return domain.VerdictUncertain, domain.RiskHigh
	}
}

func hasFlag(flags []domain.Flag, kind string) bool {
	for _, f := range flags {
		if f.Kind == kind {
			return true
		}
	}
	return false
}
