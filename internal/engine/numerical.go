package engine

import (
	"strconv"
	"strings"

	"github.com/factline/credo/internal/domain"
)

const (
	NumericalBaseline = 0.7

	// Any single-claim benefit at or above this is implausible for a
	// direct transfer.
	ImplausibleAmountCeiling = 50_000
	// Large but not implausible transfers still get a mild penalty.
	LargeTransferFloor = 10_000
	// Percentages above this read as fabricated statistics.
	ExtremePercentageFloor = 90

	PenaltyImplausibleAmount = 0.35
	PenaltyLargeTransfer     = 0.15
	PenaltyUniversalBenefit  = 0.20
	PenaltyExtremePercentage = 0.10
)

// scoreNumerical extracts monetary and percentage figures from the claim and
// penalizes implausible amounts, universal-eligibility benefit claims, and
// extreme percentages. The offending value is interpolated into the flag.
func scoreNumerical(in domain.ClaimInput) domain.LayerResult {
	score := NumericalBaseline
	var flags []domain.Flag
	text := strings.ToLower(in.Text)

	amounts := extractAmounts(text)
	for _, amt := range amounts {
		switch {
		case amt >= ImplausibleAmountCeiling:
			score -= PenaltyImplausibleAmount
			flags = append(flags, domain.Flag{Kind: domain.FlagImplausibleAmount, Value: formatRupees(amt)})
		case amt >= LargeTransferFloor:
			score -= PenaltyLargeTransfer
			flags = append(flags, domain.Flag{Kind: domain.FlagLargeTransferClaim, Value: formatRupees(amt)})
		}
	}

	if len(amounts) > 0 && anyMatch(universalPatterns, text) {
		score -= PenaltyUniversalBenefit
		flags = append(flags, domain.Flag{Kind: domain.FlagUniversalBenefit})
	}

	for _, m := range percentPattern.FindAllStringSubmatch(text, -1) {
		pct, err := strconv.Atoi(m[1])
		if err != nil || pct <= ExtremePercentageFloor {
			continue
		}
		score -= PenaltyExtremePercentage
		flags = append(flags, domain.Flag{Kind: domain.FlagExtremePercentage, Value: m[1] + "%"})
	}

	if score < 0 {
		score = 0
	}
	return domain.LayerResult{Score: score, Flags: flags}
}

func extractAmounts(text string) []int64 {
	var amounts []int64
	for _, m := range rupeeAmountPattern.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(m[1], ",", "")
		amt, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		switch {
		case strings.HasPrefix(m[2], "lakh"):
			amt *= 100_000
		case strings.HasPrefix(m[2], "crore"):
			amt *= 10_000_000
		}
		amounts = append(amounts, amt)
	}
	return amounts
}

// formatRupees renders an amount the way flags carry it, e.g. ₹50,000.
func formatRupees(amt int64) string {
	digits := strconv.FormatInt(amt, 10)
	var b strings.Builder
	b.WriteString("₹")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
