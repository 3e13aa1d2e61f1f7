package store

import (
	"context"
	"fmt"

	"github.com/liga-hessen/news-aggregator/ent"
	"github.com/liga-hessen/news-aggregator/ent/rule"
	"github.com/liga-hessen/news-aggregator/pkg/rules"
)

// Rules loads the persisted rule set the ingestion pipeline evaluates
// against every incoming item.
type Rules struct {
	client *ent.Client
}

// NewRules constructs a Rules repository.
func NewRules(client *ent.Client) *Rules {
	return &Rules{client: client}
}

// LoadEnabled returns every enabled rule ordered by its configured
// evaluation order, translated into the evaluator's plain Rule shape.
func (r *Rules) LoadEnabled(ctx context.Context) ([]rules.Rule, error) {
	rows, err := r.client.Rule.Query().
		Where(rule.EnabledEQ(true)).
		Order(ent.Asc(rule.FieldOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading enabled rules: %w", err)
	}

	out := make([]rules.Rule, 0, len(rows))
	for _, row := range rows {
		var targetPriority string
		if row.TargetPriority != nil {
			targetPriority = string(*row.TargetPriority)
		}
		out = append(out, rules.Rule{
			ID:             row.ID,
			Name:           row.Name,
			Type:           rules.Type(row.RuleType),
			Pattern:        row.Pattern,
			PriorityBoost:  row.PriorityBoost,
			TargetPriority: targetPriority,
		})
	}
	return out, nil
}
