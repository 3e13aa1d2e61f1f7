package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/liga-hessen/news-aggregator/ent"
	"github.com/liga-hessen/news-aggregator/ent/setting"
)

// Settings provides typed get/set access to the runtime settings table,
// which overrides environment-derived configuration at call sites that
// check it (e.g. the LLM-enabled toggle).
type Settings struct {
	client *ent.Client
}

// NewSettings constructs a Settings repository.
func NewSettings(client *ent.Client) *Settings {
	return &Settings{client: client}
}

// Get decodes the JSON-encoded value for key into out. Returns false if the
// key does not exist.
func (s *Settings) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	row, err := s.client.Setting.Query().
		Where(setting.KeyEQ(key)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("fetching setting %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(row.Value), out); err != nil {
		return false, fmt.Errorf("decoding setting %q: %w", key, err)
	}
	return true, nil
}

// GetBoolOr returns the boolean setting value for key, or the given default
// when unset. This is how components read the LLM-enabled runtime override.
func (s *Settings) GetBoolOr(ctx context.Context, key string, def bool) bool {
	var v bool
	ok, err := s.Get(ctx, key, &v)
	if err != nil || !ok {
		return def
	}
	return v
}

// Set upserts a JSON-encoded setting value.
func (s *Settings) Set(ctx context.Context, key string, value interface{}, description string) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding setting %q: %w", key, err)
	}

	err = s.client.Setting.Create().
		SetKey(key).
		SetValue(string(encoded)).
		SetNillableDescription(nonEmptyPtr(description)).
		OnConflictColumns(setting.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upserting setting %q: %w", key, err)
	}
	return nil
}

func nonEmptyPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
