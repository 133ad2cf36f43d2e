package engine

import (
	"strings"

	"github.com/factline/credo/internal/domain"
)

const (
	SourceScoreTier1   = 0.92
	SourceScoreTier2   = 0.72
	SourceScoreUnknown = 0.35

	// Score floor applied when a trusted domain is only corroborated by
	// web context rather than cited directly.
	SourceScoreWebMention = 0.78
)

// scoreSource classifies the claim's source URL against the static domain
// tiers and scans web context for corroborating mentions of trusted outlets.
// No URL, or an unrecognized domain, scores low with an unverified_source
// flag rather than erroring.
func scoreSource(in domain.ClaimInput) (domain.LayerResult, []domain.SourceRef) {
	score := SourceScoreUnknown
	var flags []domain.Flag
	var refs []domain.SourceRef

	host := ""
	if in.SourceURL != nil {
		host = extractDomain(*in.SourceURL)
	}

	switch {
	case host == "":
		flags = append(flags, domain.Flag{Kind: domain.FlagUnverifiedSource})
	case isTier1(host):
		score = SourceScoreTier1
		refs = append(refs, domain.SourceRef{Domain: host, Tier: domain.TierOfficial})
		flags = append(flags, domain.Flag{Kind: domain.FlagGovernmentSource})
	case isTier2(host):
		score = SourceScoreTier2
		refs = append(refs, domain.SourceRef{Domain: host, Tier: domain.TierMainstream})
	default:
		refs = append(refs, domain.SourceRef{Domain: host, Tier: domain.TierUnknown})
		flags = append(flags, domain.Flag{Kind: domain.FlagUnverifiedSource})
	}

	if in.WebContext != nil {
		webCtx := strings.ToLower(*in.WebContext)
		// Fixed list order keeps refs deterministic.
		for _, d := range tier1DomainList {
			if !strings.Contains(webCtx, d) || d == host {
				continue
			}
			if score < SourceScoreWebMention {
				score = SourceScoreWebMention
			}
			refs = append(refs, domain.SourceRef{Domain: d, Tier: domain.TierWebMention})
		}
	}

	return domain.LayerResult{Score: score, Flags: flags}, refs
}

func isTier1(host string) bool {
	if _, ok := tier1Domains[host]; ok {
		return true
	}
	for _, suffix := range govDomainSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}

func isTier2(host string) bool {
	_, ok := tier2Domains[host]
	return ok
}

// extractDomain pulls a bare hostname out of a URL-ish string: scheme and
// www. prefix stripped, path/query/port cut off.
func extractDomain(url string) string {
	host := strings.ToLower(strings.TrimSpace(url))
	for _, scheme := range []string{"https://", "http://"} {
		host = strings.TrimPrefix(host, scheme)
	}
	host = strings.TrimPrefix(host, "www.")
	for _, sep := range []string{"/", "?", "#", ":"} {
		if i := strings.Index(host, sep); i >= 0 {
			host = host[:i]
		}
	}
	return host
}
