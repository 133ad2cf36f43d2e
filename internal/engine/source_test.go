package engine

import (
	"testing"

	"github.com/factline/credo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSourceTiers(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantScore float64
		wantTier  domain.SourceTier
		wantFlag  string
	}{
		{
			name:      "tier 1 allowlisted government portal",
			url:       "https://pib.gov.in/PressRelease.aspx?id=42",
			wantScore: SourceScoreTier1,
			wantTier:  domain.TierOfficial,
			wantFlag:  domain.FlagGovernmentSource,
		},
		{
			name:      "tier 1 wire service",
			url:       "https://www.reuters.com/world/india/story",
			wantScore: SourceScoreTier1,
			wantTier:  domain.TierOfficial,
			wantFlag:  domain.FlagGovernmentSource,
		},
		{
			name:      "government suffix not on the allowlist",
			url:       "https://karnataka.gov.in/notification",
			wantScore: SourceScoreTier1,
			wantTier:  domain.TierOfficial,
			wantFlag:  domain.FlagGovernmentSource,
		},
		{
			name:      "tier 2 broadcaster",
			url:       "https://www.ndtv.com/india-news/story",
			wantScore: SourceScoreTier2,
			wantTier:  domain.TierMainstream,
		},
		{
			name:      "unrecognized domain",
			url:       "http://daily-truth-news.example.com/post/99",
			wantScore: SourceScoreUnknown,
			wantTier:  domain.TierUnknown,
			wantFlag:  domain.FlagUnverifiedSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, refs := scoreSource(domain.ClaimInput{
				Text:      "Some claim text",
				SourceURL: &tt.url,
			})

			assert.InDelta(t, tt.wantScore, result.Score, 0.001)
			require.Len(t, refs, 1)
			assert.Equal(t, tt.wantTier, refs[0].Tier)
			if tt.wantFlag != "" {
				require.NotEmpty(t, result.Flags)
				assert.Equal(t, tt.wantFlag, result.Flags[0].Kind)
			} else {
				assert.Empty(t, result.Flags)
			}
		})
	}
}

func TestScoreSourceNoURL(t *testing.T) {
	result, refs := scoreSource(domain.ClaimInput{Text: "Some claim text"})

	assert.InDelta(t, SourceScoreUnknown, result.Score, 0.001)
	assert.Empty(t, refs)
	require.Len(t, result.Flags, 1)
	assert.Equal(t, domain.FlagUnverifiedSource, result.Flags[0].Kind)
}

func TestScoreSourceEmptyStringURLIsNoSource(t *testing.T) {
	// An empty string is distinguishable from absence at the input layer
	// but degrades the same way.
	result, refs := scoreSource(domain.ClaimInput{Text: "Some claim text", SourceURL: strptr("")})

	assert.InDelta(t, SourceScoreUnknown, result.Score, 0.001)
	assert.Empty(t, refs)
}

func TestScoreSourceWebContextCorroboration(t *testing.T) {
	web := "Coverage confirmed by reuters.com and apnews.com earlier today."
	result, refs := scoreSource(domain.ClaimInput{Text: "Some claim text", WebContext: &web})

	assert.InDelta(t, SourceScoreWebMention, result.Score, 0.001)
	require.Len(t, refs, 2)
	// Mention order follows the fixed tier list, not discovery order.
	assert.Equal(t, "reuters.com", refs[0].Domain)
	assert.Equal(t, domain.TierWebMention, refs[0].Tier)
	assert.Equal(t, "apnews.com", refs[1].Domain)
}

func TestScoreSourceWebContextNeverLowersDirectSource(t *testing.T) {
	url := "https://pib.gov.in/release"
	web := "Also mentioned on thehindu.com."
	result, refs := scoreSource(domain.ClaimInput{Text: "Some claim text", SourceURL: &url, WebContext: &web})

	assert.InDelta(t, SourceScoreTier1, result.Score, 0.001)
	require.Len(t, refs, 2)
	assert.Equal(t, domain.TierOfficial, refs[0].Tier)
	assert.Equal(t, domain.TierWebMention, refs[1].Tier)
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.TheHindu.com/news/article", "thehindu.com"},
		{"http://pib.gov.in", "pib.gov.in"},
		{"ndtv.com/video?id=1", "ndtv.com"},
		{"https://example.com:8080/path", "example.com"},
		{"  https://bbc.com/#fragment ", "bbc.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractDomain(tt.url), tt.url)
	}
}
