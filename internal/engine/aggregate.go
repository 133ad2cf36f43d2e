package engine

import "math"

// Layer weights for the composite score. They sum to exactly 1.00; a layer
// that degraded to its neutral default still contributes at full weight, so
// missing evidence lowers confidence rather than the score.
const (
	WeightSource     = 0.25
	WeightLinguistic = 0.20
	WeightNumerical  = 0.15
	WeightRAGMatch   = 0.20
	WeightTemporal   = 0.10
	WeightCommunity  = 0.10
)

const (
	// Logistic calibration for confidence over the count of
	// strong-evidence layers (0..3).
	ConfidenceGain = 1.1
	ConfidenceBias = -1.2
	// Full uncertainty is still reported as a number, never zero.
	ConfidenceFloor = 0.1
)

// LayerScores is the fixed-size record of the six layer outputs.
type LayerScores struct {
	Source     float64
	Linguistic float64
	Numerical  float64
	RAGMatch   float64
	Temporal   float64
	Community  float64
}

// WeightSum exists so the sums-to-one invariant stays checkable in tests.
func WeightSum() float64 {
	return WeightSource + WeightLinguistic + WeightNumerical + WeightRAGMatch + WeightTemporal + WeightCommunity
}

// Composite computes the weighted final score.
func Composite(s LayerScores) float64 {
	return s.Source*WeightSource +
		s.Linguistic*WeightLinguistic +
		s.Numerical*WeightNumerical +
		s.RAGMatch*WeightRAGMatch +
		s.Temporal*WeightTemporal +
		s.Community*WeightCommunity
}

// Confidence maps the number of strong-evidence layers (source resolved,
// database matched, community quorum reached) onto [ConfidenceFloor, 1]
// through a saturating logistic transform. It measures evidentiary strength,
// not credibility direction.
func Confidence(strongLayers int) float64 {
	c := Sigmoid(ConfidenceGain*float64(strongLayers) + ConfidenceBias)
	if c < ConfidenceFloor {
		return ConfidenceFloor
	}
	if c > 1 {
		return 1
	}
	return c
}

func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
