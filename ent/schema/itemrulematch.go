package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemRuleMatch holds the schema definition for the Item<->Rule junction.
type ItemRuleMatch struct {
	ent.Schema
}

// Fields of the ItemRuleMatch.
func (ItemRuleMatch) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.Int("item_id"),
		field.Int("rule_id"),
		field.Time("matched_at").
			Default(time.Now).
			Immutable(),
		field.JSON("match_details", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the ItemRuleMatch.
func (ItemRuleMatch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("item", Item.Type).
			Ref("rule_matches").
			Unique().
			Required().
			Field("item_id"),
		edge.From("rule", Rule.Type).
			Ref("matches").
			Unique().
			Required().
			Field("rule_id"),
	}
}

// Indexes of the ItemRuleMatch.
func (ItemRuleMatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("rule_id"),
	}
}
