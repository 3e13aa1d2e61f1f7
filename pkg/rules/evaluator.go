package rules

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// SemanticResolver answers a semantic rule's yes/no question about an item,
// typically by a short LLM call serialized through the shared provider
// handle.
type SemanticResolver func(ctx context.Context, question, title, content string) (bool, error)

// Type mirrors the rule.rule_type enum.
type Type string

const (
	Keyword  Type = "keyword"
	Regex    Type = "regex"
	Semantic Type = "semantic"
)

// Rule is the evaluator's view of a persisted rule row.
type Rule struct {
	ID             int
	Name           string
	Type           Type
	Pattern        string
	PriorityBoost  int
	TargetPriority string
}

// Match describes one rule that fired against an item.
type Match struct {
	RuleID  int
	Details map[string]interface{}
}

// Result is the outcome of evaluating every configured rule against one
// item's text.
type Result struct {
	Matches         []Match
	TotalBoost      int
	TargetPriority  string // highest-priority_boost match's target_priority, if any
	PendingSemantic []Rule // semantic rules that require an LLM call to resolve
}

// Evaluate runs every keyword and regex rule against title+content
// synchronously, and returns any semantic rules unresolved (the caller —
// typically the ingestion pipeline — resolves those via an LLM yes/no
// check and folds the result back in with ApplySemanticMatch).
func Evaluate(allRules []Rule, title, content string) (Result, error) {
	text := strings.ToLower(title + " " + content)
	var res Result
	bestBoost := -1

	for _, r := range allRules {
		switch r.Type {
		case Keyword:
			if strings.Contains(text, strings.ToLower(r.Pattern)) {
				res.Matches = append(res.Matches, Match{RuleID: r.ID, Details: map[string]interface{}{"keyword": r.Pattern}})
				res.TotalBoost += r.PriorityBoost
				if r.PriorityBoost > bestBoost && r.TargetPriority != "" {
					bestBoost = r.PriorityBoost
					res.TargetPriority = r.TargetPriority
				}
			}
		case Regex:
			re, err := regexp.Compile(r.Pattern)
			if err != nil {
				return Result{}, fmt.Errorf("rule %d: invalid regex %q: %w", r.ID, r.Pattern, err)
			}
			if loc := re.FindStringIndex(text); loc != nil {
				res.Matches = append(res.Matches, Match{RuleID: r.ID, Details: map[string]interface{}{"span": loc}})
				res.TotalBoost += r.PriorityBoost
				if r.PriorityBoost > bestBoost && r.TargetPriority != "" {
					bestBoost = r.PriorityBoost
					res.TargetPriority = r.TargetPriority
				}
			}
		case Semantic:
			res.PendingSemantic = append(res.PendingSemantic, r)
		}
	}

	if res.TotalBoost > 100 {
		res.TotalBoost = 100
	}
	return res, nil
}

// ApplySemanticMatch folds in the LLM's yes/no verdict for one semantic
// rule, mutating res in place the same way a keyword/regex match would
// have been recorded inline.
func ApplySemanticMatch(res *Result, r Rule, matched bool) {
	if !matched {
		return
	}
	res.Matches = append(res.Matches, Match{RuleID: r.ID, Details: map[string]interface{}{"semantic_question": r.Pattern}})
	res.TotalBoost += r.PriorityBoost
	if res.TotalBoost > 100 {
		res.TotalBoost = 100
	}
	if r.TargetPriority != "" {
		res.TargetPriority = r.TargetPriority
	}
}
