package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightSumIsExactlyOne(t *testing.T) {
	assert.InDelta(t, 1.0, WeightSum(), 1e-9)
}

func TestCompositeWeightedSum(t *testing.T) {
	tests := []struct {
		name   string
		scores LayerScores
		want   float64
	}{
		{
			name:   "all zero",
			scores: LayerScores{},
			want:   0.0,
		},
		{
			name:   "all one",
			scores: LayerScores{Source: 1, Linguistic: 1, Numerical: 1, RAGMatch: 1, Temporal: 1, Community: 1},
			want:   1.0,
		},
		{
			name:   "known mixed vector",
			scores: LayerScores{Source: 0.92, Linguistic: 0.7, Numerical: 0.7, RAGMatch: 0.95, Temporal: 0.6, Community: 0.5},
			want:   0.92*0.25 + 0.7*0.20 + 0.7*0.15 + 0.95*0.20 + 0.6*0.10 + 0.5*0.10,
		},
		{
			name:   "single layer isolates its weight",
			scores: LayerScores{RAGMatch: 1},
			want:   WeightRAGMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Composite(tt.scores), 1e-9)
		})
	}
}

func TestCompositeStaysInUnitInterval(t *testing.T) {
	for s := 0.0; s <= 1.0; s += 0.1 {
		got := Composite(LayerScores{Source: s, Linguistic: s, Numerical: s, RAGMatch: s, Temporal: s, Community: s})
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0+1e-9)
	}
}

func TestConfidenceMonotonicAndBounded(t *testing.T) {
	prev := 0.0
	for strong := 0; strong <= 3; strong++ {
		c := Confidence(strong)
		assert.GreaterOrEqual(t, c, ConfidenceFloor)
		assert.LessOrEqual(t, c, 1.0)
		assert.Greater(t, c, prev, "confidence must increase with evidence")
		prev = c
	}
}

func TestConfidenceKnownValues(t *testing.T) {
	// sigmoid(-1.2), sigmoid(-0.1), sigmoid(1.0), sigmoid(2.1)
	assert.InDelta(t, 0.2315, Confidence(0), 0.001)
	assert.InDelta(t, 0.4750, Confidence(1), 0.001)
	assert.InDelta(t, 0.7311, Confidence(2), 0.001)
	assert.InDelta(t, 0.8909, Confidence(3), 0.001)
}
