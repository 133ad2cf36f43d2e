package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/factline/credo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

var testNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.ClaimInput
		wantErr error
	}{
		{
			name:    "valid",
			input:   domain.ClaimInput{Text: "Test claim to verify"},
			wantErr: nil,
		},
		{
			name:    "too short after trimming",
			input:   domain.ClaimInput{Text: "  hi  "},
			wantErr: ErrClaimTextTooShort,
		},
		{
			name:    "empty",
			input:   domain.ClaimInput{Text: ""},
			wantErr: ErrClaimTextTooShort,
		},
		{
			name:    "too long",
			input:   domain.ClaimInput{Text: strings.Repeat("a", MaxClaimLength+1)},
			wantErr: ErrClaimTextTooLong,
		},
		{
			name: "negative votes",
			input: domain.ClaimInput{
				Text:  "Test claim to verify",
				Votes: &domain.VoteTally{UserVotes: domain.VoteCount{True: -1}},
			},
			wantErr: ErrNegativeVoteCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestScoreNoContextGraceful(t *testing.T) {
	e := New()

	report, err := e.Score(domain.ClaimInput{Text: "Test claim to verify"}, testNow)
	require.NoError(t, err)

	assert.InDelta(t, 0.35, report.SourceScore, 0.001)
	assert.InDelta(t, 0.30, report.RAGMatchScore, 0.001)
	assert.InDelta(t, 0.5, report.CommunityScore, 0.001)
	assert.Equal(t, domain.VerdictUnverified, report.Verdict)
	assert.Equal(t, domain.RiskHigh, report.RiskLevel)
	assert.Empty(t, report.SourcesFound)
	assert.True(t, report.HasFlag(domain.FlagUnverifiedSource))
	assert.True(t, report.HasFlag(domain.FlagNoDatabaseMatch))
	assert.True(t, report.HasFlag(domain.FlagInsufficientVotes))
	assert.GreaterOrEqual(t, report.FinalScore, 0.0)
	assert.LessOrEqual(t, report.FinalScore, 1.0)
	assert.GreaterOrEqual(t, report.Confidence, ConfidenceFloor)
	assert.NotEmpty(t, report.Explanation)
	assert.NotEmpty(t, report.ClaimHash)
}

func TestScoreGovernmentSchemeCredible(t *testing.T) {
	e := New()

	in := domain.ClaimInput{
		Text:       "PM Kisan Yojana provides ₹6000 annually to farmers",
		SourceURL:  strptr("https://pib.gov.in/PressRelease.aspx?id=1234"),
		RAGContext: strptr("PM Kisan Yojana provides ₹6000 annually to eligible farmers in three installments of ₹2000."),
	}

	report, err := e.Score(in, testNow)
	require.NoError(t, err)

	assert.InDelta(t, 0.92, report.SourceScore, 0.001)
	assert.GreaterOrEqual(t, report.RAGMatchScore, 0.85)
	assert.GreaterOrEqual(t, report.FinalScore, 0.72)
	assert.Equal(t, domain.VerdictTrue, report.Verdict)
	assert.Equal(t, domain.RiskLow, report.RiskLevel)
	assert.True(t, report.HasFlag(domain.FlagGovernmentSource))
	require.NotEmpty(t, report.SourcesFound)
	assert.Equal(t, "pib.gov.in", report.SourcesFound[0].Domain)
	assert.Equal(t, domain.TierOfficial, report.SourcesFound[0].Tier)
}

func TestScoreBreakingImplausibleScheme(t *testing.T) {
	e := New()

	in := domain.ClaimInput{
		Text: "Breaking: New government scheme offering ₹50000 to all citizens",
	}

	report, err := e.Score(in, testNow)
	require.NoError(t, err)

	assert.True(t, report.HasFlag(domain.FlagImplausibleAmount))
	assert.True(t, report.HasFlag(domain.FlagClickbaitLanguage))
	assert.True(t, report.HasFlag(domain.FlagBreakingUnverified))
	assert.NotEmpty(t, report.Flags)

	// Negative signals push the composite below the breaking override
	// floor, so the claim classifies as FALSE rather than BREAKING.
	assert.Equal(t, domain.VerdictFalse, report.Verdict)
	assert.Equal(t, domain.RiskCritical, report.RiskLevel)

	found := false
	for _, f := range report.Flags {
		if f.Kind == domain.FlagImplausibleAmount {
			assert.Equal(t, "₹50,000", f.Value)
			found = true
		}
	}
	assert.True(t, found)
}

func TestScoreDeterministic(t *testing.T) {
	e := New()

	in := domain.ClaimInput{
		Text:       "Breaking: Government is giving free money to every citizen in 2019",
		SourceURL:  strptr("https://some-blog.example.com/post"),
		WebContext: strptr("Fact check: this scheme was debunked as a hoax by pib.gov.in"),
		Votes: &domain.VoteTally{
			UserVotes:      domain.VoteCount{True: 3, False: 4},
			ValidatorVotes: domain.VoteCount{True: 0, False: 1},
		},
	}

	first, err := e.Score(in, testNow)
	require.NoError(t, err)
	second, err := e.Score(in, testNow)
	require.NoError(t, err)

	first.ProcessingMs = 0
	second.ProcessingMs = 0
	assert.Equal(t, first, second)
}

func TestScoreBoundsAlwaysHold(t *testing.T) {
	e := New()

	inputs := []domain.ClaimInput{
		{Text: "!!!! ????"},
		{Text: "SHOCKING!!! FREE MONEY ₹9,00,000 for every citizen, act now!!!"},
		{Text: "The monsoon arrived on schedule this year"},
		{Text: strings.Repeat("crore ₹99999 ", 500)},
	}

	for _, in := range inputs {
		report, err := e.Score(in, testNow)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, report.FinalScore, 0.0)
		assert.LessOrEqual(t, report.FinalScore, 1.0)
		assert.GreaterOrEqual(t, report.Confidence, 0.0)
		assert.LessOrEqual(t, report.Confidence, 1.0)
	}
}

func TestMergeFlagsDeduplicates(t *testing.T) {
	a := domain.LayerResult{Flags: []domain.Flag{
		{Kind: domain.FlagNoDatabaseMatch},
		{Kind: domain.FlagImplausibleAmount, Value: "₹50,000"},
	}}
	b := domain.LayerResult{Flags: []domain.Flag{
		{Kind: domain.FlagNoDatabaseMatch},
		{Kind: domain.FlagImplausibleAmount, Value: "₹75,000"},
	}}

	merged := mergeFlags(a, b)

	require.Len(t, merged, 3)
	assert.Equal(t, "no_database_match", merged[0].String())
	assert.Equal(t, "implausible_amount:₹50,000", merged[1].String())
	assert.Equal(t, "implausible_amount:₹75,000", merged[2].String())
}
