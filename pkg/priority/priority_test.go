package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromClassifierConfidence(t *testing.T) {
	cases := []struct {
		name       string
		confidence float64
		want       ClassifierOutcome
	}{
		{"high", 0.9, ClassifierOutcome{Medium, 70, false, "high", true}},
		{"exactly high boundary", 0.5, ClassifierOutcome{Medium, 70, false, "high", true}},
		{"edge case", 0.3, ClassifierOutcome{Low, 55, false, "edge_case", true}},
		{"exactly edge boundary", 0.25, ClassifierOutcome{Low, 55, false, "edge_case", true}},
		{"irrelevant", 0.1, ClassifierOutcome{None, 20, true, "low", false}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FromClassifierConfidence(tc.confidence))
		})
	}
}

func TestScoreToPriority(t *testing.T) {
	assert.Equal(t, High, ScoreToPriority(95))
	assert.Equal(t, Medium, ScoreToPriority(70))
	assert.Equal(t, Low, ScoreToPriority(40))
	assert.Equal(t, None, ScoreToPriority(39))
}

func TestFromLLMPriority(t *testing.T) {
	p, score := FromLLMPriority("high")
	assert.Equal(t, High, p)
	assert.Equal(t, 95, score)

	p, score = FromLLMPriority("unknown")
	assert.Equal(t, None, p)
	assert.Equal(t, 10, score)
}
