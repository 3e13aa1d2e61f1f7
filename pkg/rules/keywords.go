// Package rules implements keyword-based priority scoring and the
// keyword/regex/semantic rule engine layered on top of it.
package rules

import "strings"

// keywordCategory is one weighted bucket of trigger keywords.
type keywordCategory struct {
	weight   int
	keywords []string
}

// priorityKeywords is the fixed base vocabulary. It is deliberately not
// configurable through the Rule table, which instead layers additional
// keyword/regex/semantic rules on top via Evaluator.
var priorityKeywords = map[string]keywordCategory{
	"high": {
		weight: 40,
		keywords: []string{
			"kürzung", "streichung", "haushaltssperre", "finanzierungslücke",
			"kahlschlag", "förderentzug", "nothaushalt", "haushaltskrise",
			"schließung", "abbau", "existenzbedrohend", "insolvenz",
			"personalreduzierung", "stellenabbau", "einschnitte",
		},
	},
	"medium": {
		weight: 20,
		keywords: []string{
			"gesetzesänderung", "novelle", "anhörung", "regierungsentwurf",
			"bundesratsentscheidung", "gesetzgebung", "reform",
		},
	},
	"low": {
		weight: 10,
		keywords: []string{
			"pflegenotstand", "kitaplätze", "migrationsberatung", "fachkräftemangel",
			"sozialfinanzierung", "eingliederungshilfe", "kinderbetreuung",
		},
	},
}

// KeywordMatch records one matched trigger keyword for diagnostics/logging.
type KeywordMatch struct {
	Category string
	Keyword  string
}

// KeywordScore computes the base-50 score for title+content, adding each
// matched category's weight and capping the result at 100.
func KeywordScore(title, content string) (int, []KeywordMatch) {
	text := strings.ToLower(title + " " + content)
	score := 50
	var matches []KeywordMatch

	for category, cfg := range priorityKeywords {
		for _, kw := range cfg.keywords {
			if strings.Contains(text, kw) {
				score += cfg.weight
				matches = append(matches, KeywordMatch{Category: category, Keyword: kw})
			}
		}
	}

	if score > 100 {
		score = 100
	}
	return score, matches
}
