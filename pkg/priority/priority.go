// Package priority implements the pure scoring rules that translate
// classifier confidence and LLM analysis output into an item's priority,
// score, and retry-priority routing.
package priority

const (
	// ConfidenceHigh is the classifier confidence at or above which an item
	// is likely relevant and is queued for LLM confirmation at elevated
	// priority.
	ConfidenceHigh = 0.5
	// ConfidenceEdge is the lower bound of the edge-case band: the
	// classifier is unsure, so the LLM decides.
	ConfidenceEdge = 0.25
)

// Priority mirrors the item.priority enum.
type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
	None   Priority = "none"
)

// ClassifierOutcome is the result of routing a classifier confidence score
// into the item's priority fields.
type ClassifierOutcome struct {
	Priority        Priority
	Score           int
	SkipLLM         bool
	RetryPriority   string
	NeedsLLMProcess bool
}

// FromClassifierConfidence routes a classifier confidence: confidence >=
// ConfidenceHigh is likely relevant (MEDIUM/70, LLM confirms), confidence in
// [ConfidenceEdge, ConfidenceHigh) is an edge case (LOW/55, LLM decides),
// and anything below is treated as certainly irrelevant (NONE/20, LLM
// skipped entirely).
func FromClassifierConfidence(confidence float64) ClassifierOutcome {
	switch {
	case confidence >= ConfidenceHigh:
		return ClassifierOutcome{Priority: Medium, Score: 70, SkipLLM: false, RetryPriority: "high", NeedsLLMProcess: true}
	case confidence >= ConfidenceEdge:
		return ClassifierOutcome{Priority: Low, Score: 55, SkipLLM: false, RetryPriority: "edge_case", NeedsLLMProcess: true}
	default:
		return ClassifierOutcome{Priority: None, Score: 20, SkipLLM: true, RetryPriority: "low", NeedsLLMProcess: false}
	}
}

// FromLLMPriority maps the LLM's high/medium/low/null priority verdict onto
// a numeric score band, used when the LLM analysis overrides the
// classifier's provisional priority.
func FromLLMPriority(llmPriority string) (Priority, int) {
	switch llmPriority {
	case "high":
		return High, 95
	case "medium":
		return Medium, 75
	case "low":
		return Low, 45
	default:
		return None, 10
	}
}

// ScoreToPriority bands a 0-100 score into a Priority: >=90 high, >=70
// medium, >=40 low, else none.
func ScoreToPriority(score int) Priority {
	switch {
	case score >= 90:
		return High
	case score >= 70:
		return Medium
	case score >= 40:
		return Low
	default:
		return None
	}
}
