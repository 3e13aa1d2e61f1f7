package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordScore_NoMatches(t *testing.T) {
	score, matches := KeywordScore("Lokales Sportfest", "Der FC Musterstadt gewann knapp.")
	assert.Equal(t, 50, score)
	assert.Empty(t, matches)
}

func TestKeywordScore_HighCategoryMatch(t *testing.T) {
	score, matches := KeywordScore("Haushaltssperre beschlossen", "Die Stadt verhängt eine Haushaltssperre.")
	assert.Equal(t, 90, score)
	assert.Len(t, matches, 1)
	assert.Equal(t, "high", matches[0].Category)
}

func TestKeywordScore_CapsAtHundred(t *testing.T) {
	title := "Kürzung Streichung Schließung Abbau Insolvenz"
	score, _ := KeywordScore(title, "")
	assert.Equal(t, 100, score)
}
