package llmprovider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysisResponse_DirectJSON(t *testing.T) {
	text := `{"summary":"Kurze Zusammenfassung","relevant":true,"relevance_score":0.8,"priority":"high","assigned_aks":["AK1","AK3"],"tags":["haushalt"],"reasoning":"weil"}`
	a := ParseAnalysisResponse(text)
	require.True(t, a.Relevant)
	assert.Equal(t, "high", a.Priority)
	assert.Equal(t, []string{"AK1", "AK3"}, a.AssignedAKs)
	assert.Equal(t, 0.8, a.RelevanceScore)
}

func TestParseAnalysisResponse_MarkdownFenced(t *testing.T) {
	text := "```json\n{\"summary\":\"x\",\"relevant\":false,\"priority\":null,\"assigned_aks\":[]}\n```"
	a := ParseAnalysisResponse(text)
	assert.False(t, a.Relevant)
	assert.Equal(t, "x", a.Summary)
}

func TestParseAnalysisResponse_EmbeddedInProse(t *testing.T) {
	text := `Hier ist meine Analyse: {"summary":"embedded","relevant":true,"assigned_aks":["AK2"]} Danke.`
	a := ParseAnalysisResponse(text)
	assert.Equal(t, "embedded", a.Summary)
	assert.Equal(t, []string{"AK2"}, a.AssignedAKs)
}

func TestParseAnalysisResponse_TruncatedJSONExtractsSummary(t *testing.T) {
	text := `{"summary": "Dies ist eine unvollständige Antwort ohne schlie`
	a := ParseAnalysisResponse(text)
	assert.Contains(t, a.Summary, "unvollst")
	assert.False(t, a.Relevant)
}

func TestParseAnalysisResponse_Unparseable(t *testing.T) {
	a := ParseAnalysisResponse("not json at all, sorry")
	assert.Equal(t, "", a.Summary)
	assert.Equal(t, "low", a.Priority)
	assert.Equal(t, []string{}, a.AssignedAKs)
}

func TestParseAnalysisResponse_SingularAssignedAK(t *testing.T) {
	text := `{"summary":"x","relevant":true,"assigned_ak":"AK4"}`
	a := ParseAnalysisResponse(text)
	assert.Equal(t, []string{"AK4"}, a.AssignedAKs)
}

func TestParseYesNo(t *testing.T) {
	assert.True(t, ParseYesNo("JA"))
	assert.True(t, ParseYesNo("ja, das betrifft die Liga"))
	assert.True(t, ParseYesNo("```\nJa\n```"))
	assert.False(t, ParseYesNo("NEIN"))
	assert.False(t, ParseYesNo("unklar"))
	assert.False(t, ParseYesNo(""))
}
