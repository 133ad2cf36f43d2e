package engine

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/factline/credo/internal/domain"
)

const (
	TemporalNeutral  = 0.6
	TemporalBreaking = 0.3

	PenaltyRecycledNews = 0.15
	// Years more than this far behind "now" mark recycled content.
	recycledYearLag = 2
)

// scoreTemporal detects breaking-news framing without any resolvable date,
// and recycled content carrying dates far in the past relative to now. The
// caller supplies now so repeated scoring stays deterministic.
func scoreTemporal(in domain.ClaimInput, now time.Time) domain.LayerResult {
	text := strings.ToLower(in.Text)

	years := extractYears(text)
	if in.WebContext != nil {
		years = append(years, extractYears(strings.ToLower(*in.WebContext))...)
	}

	if anyMatch(breakingPatterns, text) && len(years) == 0 {
		return domain.LayerResult{
			Score: TemporalBreaking,
			Flags: []domain.Flag{{Kind: domain.FlagBreakingUnverified}},
		}
	}

	score := TemporalNeutral
	var flags []domain.Flag
	for _, yr := range uniqueSorted(years) {
		if yr >= now.Year()-recycledYearLag {
			continue
		}
		score -= PenaltyRecycledNews
		flags = append(flags, domain.Flag{
			Kind:  domain.FlagRecycledNews,
			Value: strconv.Itoa(yr),
		})
	}

	if score < 0 {
		score = 0
	}
	return domain.LayerResult{Score: score, Flags: flags}
}

func extractYears(text string) []int {
	var years []int
	for _, m := range yearPattern.FindAllStringSubmatch(text, -1) {
		if yr, err := strconv.Atoi(m[1]); err == nil {
			years = append(years, yr)
		}
	}
	return years
}

func uniqueSorted(years []int) []int {
	seen := make(map[int]struct{}, len(years))
	var out []int
	for _, yr := range years {
		if _, ok := seen[yr]; ok {
			continue
		}
		seen[yr] = struct{}{}
		out = append(out, yr)
	}
	sort.Ints(out)
	return out
}
