package engine

import (
	"testing"

	"github.com/factline/credo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreLinguisticCleanText(t *testing.T) {
	result := scoreLinguistic(domain.ClaimInput{
		Text: "The central bank kept the repo rate unchanged on Friday",
	})

	assert.InDelta(t, LinguisticBaseline, result.Score, 0.001)
	assert.Empty(t, result.Flags)
}

func TestScoreLinguisticCategories(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantScore float64
		wantFlags []string
	}{
		{
			name:      "clickbait keywords",
			text:      "Shocking viral video they don't want you to see",
			wantScore: LinguisticBaseline - PenaltyClickbait,
			wantFlags: []string{domain.FlagClickbaitLanguage},
		},
		{
			name:      "excessive exclamation counts as clickbait",
			text:      "Win a new phone today!!! Really!!!",
			wantScore: LinguisticBaseline - PenaltyClickbait,
			wantFlags: []string{domain.FlagClickbaitLanguage},
		},
		{
			name:      "all caps counts as clickbait",
			text:      "GOVERNMENT ANNOUNCES NEW RULES FOR EVERYONE",
			wantScore: LinguisticBaseline - PenaltyClickbait,
			wantFlags: []string{domain.FlagClickbaitLanguage},
		},
		{
			name:      "urgency phrasing",
			text:      "Act now and share immediately with your family",
			wantScore: LinguisticBaseline - PenaltyUrgency,
			wantFlags: []string{domain.FlagUrgencyManipulation},
		},
		{
			name:      "scheme impersonation needs buzzword plus benefit",
			text:      "Sarkar is giving free ration to registered households",
			wantScore: LinguisticBaseline - PenaltyScheme,
			wantFlags: []string{domain.FlagSchemeImpersonation},
		},
		{
			name:      "scheme buzzword alone stays clean",
			text:      "PM Kisan Yojana enrollment window closed in March",
			wantScore: LinguisticBaseline,
			wantFlags: nil,
		},
		{
			name:      "all three categories stack",
			text:      "Guaranteed! Act now: Pradhan Mantri is offering free money",
			wantScore: LinguisticBaseline - PenaltyClickbait - PenaltyUrgency - PenaltyScheme,
			wantFlags: []string{domain.FlagClickbaitLanguage, domain.FlagUrgencyManipulation, domain.FlagSchemeImpersonation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scoreLinguistic(domain.ClaimInput{Text: tt.text})

			assert.InDelta(t, tt.wantScore, result.Score, 0.001)
			require.Len(t, result.Flags, len(tt.wantFlags))
			for i, kind := range tt.wantFlags {
				assert.Equal(t, kind, result.Flags[i].Kind)
			}
		})
	}
}

func TestScoreLinguisticFloorsAtZero(t *testing.T) {
	// Every category at once cannot drive the score negative even if the
	// penalties ever exceed the baseline.
	result := scoreLinguistic(domain.ClaimInput{
		Text: "SHOCKING!!! ACT NOW!!! SARKAR IS GIVING FREE MONEY, CLAIM NOW!!!",
	})
	assert.GreaterOrEqual(t, result.Score, 0.0)
}

func TestExcessiveCaps(t *testing.T) {
	assert.True(t, excessiveCaps("BIG NEWS TODAY"))
	assert.False(t, excessiveCaps("Big News Today"))
	assert.False(t, excessiveCaps("1234 5678 !!"))
}
