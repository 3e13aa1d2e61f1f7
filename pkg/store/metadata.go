// Package store provides item-store repositories over the generated Ent
// client: typed accessors for Items, ItemEvents, ItemProcessingLogs,
// Settings, and the worker command channel tables.
package store

import "time"

// PreFilter is the classifier's namespaced metadata block. Only the
// pipeline's synchronous classify call and the classifier worker write
// these keys.
type PreFilter struct {
	RelevanceConfidence float64   `json:"relevance_confidence"`
	PrioritySuggestion  string    `json:"priority_suggestion,omitempty"`
	PriorityConfidence  float64   `json:"priority_confidence,omitempty"`
	AKSuggestion        string    `json:"ak_suggestion,omitempty"`
	AKConfidence        float64   `json:"ak_confidence,omitempty"`
	ClassifiedAt        time.Time `json:"classified_at"`
}

// LLMAnalysis is the LLM worker's namespaced metadata block. Only the LLM
// worker writes these keys.
type LLMAnalysis struct {
	Relevant           bool      `json:"relevant"`
	PrioritySuggestion string    `json:"priority_suggestion,omitempty"`
	AssignedAKs        []string  `json:"assigned_aks,omitempty"`
	RelevanceScore     float64   `json:"relevance_score,omitempty"`
	Tags               []string  `json:"tags,omitempty"`
	ProcessedAt        time.Time `json:"processed_at"`
	ModelName          string    `json:"model_name,omitempty"`
	Source             string    `json:"source,omitempty"` // always "llm_worker"
}

// ItemMetadata is the typed shape of the items.metadata jsonb column. Each
// processing stage only ever writes to its own namespaced field, so the
// classifier and LLM worker never collide.
type ItemMetadata struct {
	PreFilter         *PreFilter   `json:"pre_filter,omitempty"`
	RetryPriority     string       `json:"retry_priority,omitempty"` // high/edge_case/low
	VectorDBIndexed   bool         `json:"vectordb_indexed,omitempty"`
	VectorDBIndexedAt *time.Time   `json:"vectordb_indexed_at,omitempty"`
	DuplicateChecked  bool         `json:"duplicate_checked,omitempty"`
	DuplicateMethod   string       `json:"duplicate_method,omitempty"` // "url_match"; empty for embedding hits
	DuplicateScore    float64      `json:"duplicate_score,omitempty"`  // cosine score on an embedding hit
	LLMAnalysis       *LLMAnalysis `json:"llm_analysis,omitempty"`

	// Extensions is an escape hatch for forward-compatible keys neither
	// worker currently understands but must round-trip unchanged.
	Extensions map[string]interface{} `json:"-"`
}

// ToMap flattens ItemMetadata into the map[string]interface{} shape Ent's
// JSON field expects, merging back any unrecognized extension keys.
func (m ItemMetadata) ToMap() map[string]interface{} {
	out := map[string]interface{}{}
	for k, v := range m.Extensions {
		out[k] = v
	}
	if m.PreFilter != nil {
		out["pre_filter"] = m.PreFilter
	}
	if m.RetryPriority != "" {
		out["retry_priority"] = m.RetryPriority
	}
	if m.VectorDBIndexed {
		out["vectordb_indexed"] = true
	}
	if m.VectorDBIndexedAt != nil {
		out["vectordb_indexed_at"] = m.VectorDBIndexedAt.Format(time.RFC3339)
	}
	if m.DuplicateChecked {
		out["duplicate_checked"] = true
	}
	if m.DuplicateMethod != "" {
		out["duplicate_method"] = m.DuplicateMethod
	}
	if m.DuplicateScore != 0 {
		out["duplicate_score"] = m.DuplicateScore
	}
	if m.LLMAnalysis != nil {
		out["llm_analysis"] = m.LLMAnalysis
	}
	return out
}

// MetadataFromMap decodes the raw jsonb map stored on an Item into the typed
// ItemMetadata shape. Unrecognized keys are preserved in Extensions so a
// round-trip through Go never drops fields written by another component.
func MetadataFromMap(raw map[string]interface{}) ItemMetadata {
	m := ItemMetadata{Extensions: map[string]interface{}{}}
	for k, v := range raw {
		switch k {
		case "pre_filter":
			if pf, ok := decodePreFilter(v); ok {
				m.PreFilter = pf
			}
		case "retry_priority":
			if s, ok := v.(string); ok {
				m.RetryPriority = s
			}
		case "vectordb_indexed":
			if b, ok := v.(bool); ok {
				m.VectorDBIndexed = b
			}
		case "vectordb_indexed_at":
			if t, ok := decodeTime(v); ok {
				m.VectorDBIndexedAt = &t
			}
		case "duplicate_checked":
			if b, ok := v.(bool); ok {
				m.DuplicateChecked = b
			}
		case "duplicate_method":
			if s, ok := v.(string); ok {
				m.DuplicateMethod = s
			}
		case "duplicate_score":
			if f, ok := v.(float64); ok {
				m.DuplicateScore = f
			}
		case "llm_analysis":
			if a, ok := decodeLLMAnalysis(v); ok {
				m.LLMAnalysis = a
			}
		default:
			m.Extensions[k] = v
		}
	}
	return m
}

func decodeTime(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func decodePreFilter(v interface{}) (*PreFilter, bool) {
	if pf, ok := v.(*PreFilter); ok {
		return pf, true
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, false
	}
	pf := &PreFilter{}
	if c, ok := obj["relevance_confidence"].(float64); ok {
		pf.RelevanceConfidence = c
	}
	if p, ok := obj["priority_suggestion"].(string); ok {
		pf.PrioritySuggestion = p
	}
	if c, ok := obj["priority_confidence"].(float64); ok {
		pf.PriorityConfidence = c
	}
	if a, ok := obj["ak_suggestion"].(string); ok {
		pf.AKSuggestion = a
	}
	if c, ok := obj["ak_confidence"].(float64); ok {
		pf.AKConfidence = c
	}
	if t, ok := decodeTime(obj["classified_at"]); ok {
		pf.ClassifiedAt = t
	}
	return pf, true
}

func decodeLLMAnalysis(v interface{}) (*LLMAnalysis, bool) {
	if a, ok := v.(*LLMAnalysis); ok {
		return a, true
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, false
	}
	a := &LLMAnalysis{}
	if r, ok := obj["relevant"].(bool); ok {
		a.Relevant = r
	}
	if p, ok := obj["priority_suggestion"].(string); ok {
		a.PrioritySuggestion = p
	}
	if c, ok := obj["relevance_score"].(float64); ok {
		a.RelevanceScore = c
	}
	if t, ok := decodeTime(obj["processed_at"]); ok {
		a.ProcessedAt = t
	}
	if mn, ok := obj["model_name"].(string); ok {
		a.ModelName = mn
	}
	if src, ok := obj["source"].(string); ok {
		a.Source = src
	}
	if aks, ok := obj["assigned_aks"].([]interface{}); ok {
		for _, ak := range aks {
			if s, ok := ak.(string); ok {
				a.AssignedAKs = append(a.AssignedAKs, s)
			}
		}
	}
	if tags, ok := obj["tags"].([]interface{}); ok {
		for _, tg := range tags {
			if s, ok := tg.(string); ok {
				a.Tags = append(a.Tags, s)
			}
		}
	}
	return a, true
}
