package engine

import "github.com/factline/credo/internal/domain"

const (
	CommunityNeutral = 0.5

	// Minimum total votes before the layer produces a non-neutral score.
	MinCommunityVotes = 5
	// Validator votes count this many times a user vote.
	ValidatorVoteWeight = 3

	ConsensusTrueThreshold  = 0.65
	ConsensusFalseThreshold = 0.35
)

// scoreCommunity converts the vote tally into a score. Below the minimum
// vote count the layer stays neutral regardless of the ratio; at or above
// it, validator votes weigh 3x and the score is the weighted true fraction.
func scoreCommunity(in domain.ClaimInput) domain.LayerResult {
	votes := in.Votes
	if votes.Total() < MinCommunityVotes {
		return domain.LayerResult{
			Score: CommunityNeutral,
			Flags: []domain.Flag{{Kind: domain.FlagInsufficientVotes}},
		}
	}

	weightedTrue := float64(votes.UserVotes.True + ValidatorVoteWeight*votes.ValidatorVotes.True)
	weightedFalse := float64(votes.UserVotes.False + ValidatorVoteWeight*votes.ValidatorVotes.False)
	score := weightedTrue / (weightedTrue + weightedFalse)

	var flags []domain.Flag
	switch {
	case score >= ConsensusTrueThreshold:
		flags = append(flags, domain.Flag{Kind: domain.FlagConsensusTrue})
	case score <= ConsensusFalseThreshold:
		flags = append(flags, domain.Flag{Kind: domain.FlagConsensusFalse})
	}

	return domain.LayerResult{Score: score, Flags: flags}
}
