// Package duplicate implements the pure candidate-selection rules behind
// the two duplicate-detection mechanisms: URL equality and embedding
// near-duplicate lookup, plus the forest-invariant enforcement that
// guarantees similar_to_id never points forward or cycles.
package duplicate

import (
	"sort"
	"strings"
)

// DefaultBoilerplatePrefixes are phrases/tokens stripped from the start of a
// title or content block before it is sent to the embedding classifier for
// near-duplicate lookup, so that two articles that differ only in their
// outlet's boilerplate framing are still recognized as the same story.
// Operators extend this list via configuration.
var DefaultBoilerplatePrefixes = []string{
	"BREAKING:",
	"EXKLUSIV:",
	"UPDATE:",
	"LIVE:",
	"Pressemitteilung:",
}

// StripBoilerplate removes any configured prefix (case-insensitive, and any
// immediately following separator) from the start of text, and collapses
// repeated whitespace. It is applied to both title and content before an
// embedding lookup, never before storage.
func StripBoilerplate(text string, prefixes []string) string {
	trimmed := strings.TrimSpace(text)
	for _, p := range prefixes {
		if len(trimmed) >= len(p) && strings.EqualFold(trimmed[:len(p)], p) {
			trimmed = strings.TrimSpace(trimmed[len(p):])
			trimmed = strings.TrimPrefix(trimmed, ":")
			trimmed = strings.TrimSpace(trimmed)
			break
		}
	}
	return strings.Join(strings.Fields(trimmed), " ")
}

// Candidate is one near-duplicate hit as returned by the vector store's
// find-similar endpoint, after the id has been parsed out of its string
// form.
type Candidate struct {
	ID    int
	Score float64
}

// SelectPrimary picks the oldest (smallest-id) candidate strictly below
// selfID, enforcing the forest invariant (similar_to_id < self.id) at the
// point of selection rather than trusting the vector store's ordering.
// Candidates with id >= selfID are discarded; linking forward would
// create a cycle risk. Returns ok=false if no eligible candidate exists.
func SelectPrimary(candidates []Candidate, selfID int) (Candidate, bool) {
	var eligible []Candidate
	for _, c := range candidates {
		if c.ID < selfID {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return Candidate{}, false
	}
	sort.Slice(eligible, func(i, j int) bool { return eligible[i].ID < eligible[j].ID })
	return eligible[0], true
}

// URLMatch finds the oldest item with an identical URL, fetched through a
// different channel than the item being checked. candidates is expected to
// already be filtered to (url equality, different channel) by the caller's
// store query; this just re-applies the forest invariant and picks the
// smallest id.
func URLMatch(candidateIDs []int, selfID int) (int, bool) {
	best := -1
	for _, id := range candidateIDs {
		if id >= selfID {
			continue
		}
		if best == -1 || id < best {
			best = id
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
