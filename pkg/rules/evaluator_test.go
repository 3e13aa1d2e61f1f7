package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate_KeywordAndRegex(t *testing.T) {
	allRules := []Rule{
		{ID: 1, Type: Keyword, Pattern: "Kita", PriorityBoost: 10, TargetPriority: "medium"},
		{ID: 2, Type: Regex, Pattern: `\d+ Stellen`, PriorityBoost: 30, TargetPriority: "high"},
		{ID: 3, Type: Semantic, Pattern: "Betrifft das Menschen mit Behinderung?"},
	}

	res, err := Evaluate(allRules, "100 Stellen gestrichen", "Die Kita schließt wegen Sparzwang.")
	require.NoError(t, err)
	require.Len(t, res.Matches, 2)
	require.Equal(t, 40, res.TotalBoost)
	require.Equal(t, "high", res.TargetPriority)
	require.Len(t, res.PendingSemantic, 1)
}

func TestEvaluate_InvalidRegex(t *testing.T) {
	allRules := []Rule{{ID: 1, Type: Regex, Pattern: "(unclosed"}}
	_, err := Evaluate(allRules, "title", "content")
	require.Error(t, err)
}

func TestApplySemanticMatch(t *testing.T) {
	res := &Result{}
	rule := Rule{ID: 9, PriorityBoost: 25, TargetPriority: "high", Pattern: "Frage?"}

	ApplySemanticMatch(res, rule, false)
	require.Empty(t, res.Matches)

	ApplySemanticMatch(res, rule, true)
	require.Len(t, res.Matches, 1)
	require.Equal(t, 25, res.TotalBoost)
	require.Equal(t, "high", res.TargetPriority)
}
