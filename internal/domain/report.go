package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Verdict is the closed classification of a claim.
type Verdict string

const (
	VerdictTrue       Verdict = "TRUE"
	VerdictFalse      Verdict = "FALSE"
	VerdictUncertain  Verdict = "UNCERTAIN"
	VerdictUnverified Verdict = "UNVERIFIED"
	VerdictBreaking   Verdict = "BREAKING"
)

func ValidVerdict(v string) bool {
	switch Verdict(v) {
	case VerdictTrue, VerdictFalse, VerdictUncertain, VerdictUnverified, VerdictBreaking:
		return true
	}
	return false
}

// RiskLevel is the closed severity classification derived from the score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

func ValidRiskLevel(r string) bool {
	switch RiskLevel(r) {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// Flag names one detected signal or anomaly. Kind is a stable identifier
// from a fixed per-layer vocabulary; Value carries an optional interpolated
// detail (an offending amount, a matched year). Logic compares on Kind, the
// rendered "kind:value" form exists only at the serialization boundary.
type Flag struct {
	Kind  string
	Value string
}

// Flag kinds emitted by the signal layers.
const (
	FlagGovernmentSource    = "government_source_detected"
	FlagUnverifiedSource    = "unverified_source"
	FlagClickbaitLanguage   = "clickbait_language"
	FlagUrgencyManipulation = "urgency_manipulation"
	FlagSchemeImpersonation = "scheme_impersonation_suspected"
	FlagImplausibleAmount   = "implausible_amount"
	FlagLargeTransferClaim  = "large_transfer_claim"
	FlagUniversalBenefit    = "universal_benefit_claim"
	FlagExtremePercentage   = "extreme_percentage"
	FlagStrongDatabaseMatch = "strong_database_match"
	FlagNoDatabaseMatch     = "no_database_match"
	FlagDatabaseFraud       = "database_fraud_indicator"
	FlagBreakingUnverified  = "breaking_news_unverified"
	FlagRecycledNews        = "potentially_recycled_news"
	FlagInsufficientVotes   = "insufficient_community_votes"
	FlagConsensusTrue       = "community_consensus_true"
	FlagConsensusFalse      = "community_consensus_false"
)

// String renders the stable wire form of the flag.
func (f Flag) String() string {
	if f.Value == "" {
		return f.Kind
	}
	return f.Kind + ":" + f.Value
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, value, _ := strings.Cut(s, ":")
	f.Kind = kind
	f.Value = value
	return nil
}

// SourceTier classifies a discovered source domain. Tiers 1 and 2 come from
// the static allowlists, tier 3 marks a trusted domain corroborated only via
// web context; zero means the domain was present but not recognized and
// serializes as the literal string "unknown".
type SourceTier int

const (
	TierUnknown    SourceTier = 0
	TierOfficial   SourceTier = 1
	TierMainstream SourceTier = 2
	TierWebMention SourceTier = 3
)

func (t SourceTier) MarshalJSON() ([]byte, error) {
	if t == TierUnknown {
		return json.Marshal("unknown")
	}
	return json.Marshal(int(t))
}

func (t *SourceTier) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n < int(TierOfficial) || n > int(TierWebMention) {
			return fmt.Errorf("invalid source tier %d", n)
		}
		*t = SourceTier(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s != "unknown" {
		return fmt.Errorf("invalid source tier %q", s)
	}
	*t = TierUnknown
	return nil
}

// SourceRef is a domain discovered by the source layer with its resolved tier.
type SourceRef struct {
	Domain string     `json:"domain"`
	Tier   SourceTier `json:"tier"`
}

// LayerResult is the output of a single signal layer: a credibility score in
// [0,1] (higher = more credible, for every layer) plus zero or more flags in
// detection order. Produced fresh per scoring call, never mutated afterwards.
type LayerResult struct {
	Score float64
	Flags []Flag
}

// ScoreReport is the immutable aggregate result of one scoring call. Field
// names and the [0,1] score scale are a wire contract consumed downstream.
type ScoreReport struct {
	Claim     string `json:"claim"`
	ClaimHash string `json:"claim_hash"`

	SourceScore     float64 `json:"source_score"`
	LinguisticScore float64 `json:"linguistic_score"`
	NumericalScore  float64 `json:"numerical_score"`
	RAGMatchScore   float64 `json:"rag_match_score"`
	TemporalScore   float64 `json:"temporal_score"`
	CommunityScore  float64 `json:"community_score"`

	FinalScore float64 `json:"final_score"`
	Confidence float64 `json:"confidence"`

	Verdict   Verdict   `json:"verdict"`
	RiskLevel RiskLevel `json:"risk_level"`

	Flags        []Flag      `json:"flags"`
	SourcesFound []SourceRef `json:"sources_found"`
	Explanation  string      `json:"explanation"`

	Timestamp    time.Time `json:"timestamp"`
	ProcessingMs int64     `json:"processing_ms"`
}

// HasFlag reports whether the deduplicated flag union contains the kind.
func (r *ScoreReport) HasFlag(kind string) bool {
	for _, f := range r.Flags {
		if f.Kind == kind {
			return true
		}
	}
	return false
}
