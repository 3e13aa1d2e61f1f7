package store

import (
	"context"
	"fmt"

	"github.com/liga-hessen/news-aggregator/ent"
)

// Events appends audit-trail rows for user/system actions on an item
// (read, star, archive, manual priority override).
type Events struct {
	client *ent.Client
}

// NewEvents constructs an Events repository.
func NewEvents(client *ent.Client) *Events {
	return &Events{client: client}
}

// Record appends an ItemEvent row. data may be nil.
func (e *Events) Record(ctx context.Context, itemID int, eventType string, data map[string]interface{}) error {
	create := e.client.ItemEvent.Create().
		SetItemID(itemID).
		SetEventType(eventType)
	if data != nil {
		create = create.SetData(data)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("recording item event %q for item %d: %w", eventType, itemID, err)
	}
	return nil
}
