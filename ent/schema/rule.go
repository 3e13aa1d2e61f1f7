package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Rule holds the schema definition for a filtering/priority rule.
type Rule struct {
	ent.Schema
}

// Fields of the Rule.
func (Rule) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.String("name").
			MaxLen(255),
		field.Text("description").
			Optional().
			Nillable(),
		field.Enum("rule_type").
			Values("keyword", "regex", "semantic"),
		field.Text("pattern").
			Comment("Keyword, regex pattern, or semantic description depending on rule_type"),
		field.Int("priority_boost").
			Default(0).
			Comment("Additive score adjustment, clamped to [0,100] after application"),
		field.Enum("target_priority").
			Values("high", "medium", "low", "none").
			Optional().
			Nillable(),
		field.Bool("enabled").
			Default(true),
		field.Int("order").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Rule.
func (Rule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("matches", ItemRuleMatch.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Rule.
func (Rule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled", "order"),
	}
}
