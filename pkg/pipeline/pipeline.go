// Package pipeline implements the synchronous ingestion path: hashing,
// content-level dedupe, keyword scoring, the synchronous classifier call,
// persistence, vector indexing, and duplicate lookup.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/liga-hessen/news-aggregator/pkg/classifier"
	"github.com/liga-hessen/news-aggregator/pkg/connector"
	"github.com/liga-hessen/news-aggregator/pkg/duplicate"
	"github.com/liga-hessen/news-aggregator/pkg/priority"
	"github.com/liga-hessen/news-aggregator/pkg/rules"
	"github.com/liga-hessen/news-aggregator/pkg/store"
)

// FreshQueue receives the id of every item that is not certainly-irrelevant
// right after it is persisted, so the LLM worker can process it ahead of its
// DB-polled backlog. Satisfied by llmworker.Queue.
type FreshQueue interface {
	Push(itemID int)
}

// Pipeline turns RawItems fetched by a connector into persisted Items,
// running keyword scoring, the synchronous classifier call, and duplicate
// detection inline.
type Pipeline struct {
	items      *store.Items
	events     *store.Events
	logs       *store.ProcessingLogs
	classifier *classifier.Client
	fresh      FreshQueue
	rules      []rules.Rule
	semantic   rules.SemanticResolver
	threshold  float64
}

// New constructs a Pipeline. ruleSet may be empty; semantic may be nil, in
// which case semantic rules never fire; duplicateThreshold is the
// cosine-similarity cutoff passed to the classifier's find-duplicates call.
func New(items *store.Items, events *store.Events, logs *store.ProcessingLogs, cls *classifier.Client, fresh FreshQueue, ruleSet []rules.Rule, semantic rules.SemanticResolver, duplicateThreshold float64) *Pipeline {
	return &Pipeline{
		items:      items,
		events:     events,
		logs:       logs,
		classifier: cls,
		fresh:      fresh,
		rules:      ruleSet,
		semantic:   semantic,
		threshold:  duplicateThreshold,
	}
}

// ChannelRef is the minimal channel identity the pipeline needs.
type ChannelRef struct {
	ID int
}

// Ingest runs the per-item intake pipeline over raw (dedupe, rules,
// classifier, duplicate lookup, persist, fresh-queue push), returning the
// count of newly inserted items. Per-item failures are logged and skipped;
// they never abort the batch.
func (p *Pipeline) Ingest(ctx context.Context, channel ChannelRef, raw []connector.RawItem) (int, error) {
	inserted := 0
	for _, ri := range raw {
		ok, err := p.ingestOne(ctx, channel, ri)
		if err != nil {
			slog.Error("ingesting item failed", "channel_id", channel.ID, "external_id", ri.ExternalID, "error", err)
			continue
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

func (p *Pipeline) ingestOne(ctx context.Context, channel ChannelRef, ri connector.RawItem) (bool, error) {
	runID := uuid.NewString()
	hash := contentHash(ri.Title, ri.Content)

	// Step 2: intake-level dedupe by (channel_id, external_id) or content
	// hash within the channel.
	if existing, err := p.items.FindByExternalID(ctx, channel.ID, ri.ExternalID); err != nil {
		return false, fmt.Errorf("checking external id: %w", err)
	} else if existing != nil {
		p.logStep(ctx, runID, "fetch", 0, nil, false, true, "duplicate external_id within channel")
		return false, nil
	}
	if existing, err := p.items.FindByContentHash(ctx, channel.ID, hash); err != nil {
		return false, fmt.Errorf("checking content hash: %w", err)
	} else if existing != nil {
		p.logStep(ctx, runID, "fetch", 0, nil, false, true, "duplicate content_hash within channel")
		return false, nil
	}

	publishedAt := time.Now()
	if ri.PublishedAt != nil {
		publishedAt = *ri.PublishedAt
	}

	// Step 3: keyword-score rules derive a tentative priority.
	keywordScore, _ := rules.KeywordScore(ri.Title, ri.Content)
	ruleResult, err := rules.Evaluate(p.rules, ri.Title, ri.Content)
	if err != nil {
		return false, fmt.Errorf("evaluating rules: %w", err)
	}
	for _, sr := range ruleResult.PendingSemantic {
		if p.semantic == nil {
			break
		}
		matched, semErr := p.semantic(ctx, sr.Pattern, ri.Title, ri.Content)
		if semErr != nil {
			slog.Warn("semantic rule check failed", "rule_id", sr.ID, "error", semErr)
			continue
		}
		rules.ApplySemanticMatch(&ruleResult, sr, matched)
	}
	ruleScore := keywordScore + ruleResult.TotalBoost
	if ruleScore > 100 {
		ruleScore = 100
	}
	finalPriority := priority.ScoreToPriority(ruleScore)
	if ruleResult.TargetPriority != "" {
		finalPriority = priority.Priority(ruleResult.TargetPriority)
	}
	finalScore := ruleScore
	needsLLM := true

	p.logStep(ctx, runID, "rule_match", 1, map[string]interface{}{
		"rule_matches":  ruleResult.Matches,
		"total_boost":   ruleResult.TotalBoost,
		"keyword_score": keywordScore,
	}, true, false, "")

	meta := store.ItemMetadata{Extensions: map[string]interface{}{}}
	classified := false

	// Step 4: synchronous classifier call, if reachable.
	if p.classifier != nil && p.classifier.IsAvailable(ctx) {
		result, classifyErr := p.classifier.Classify(ctx, classifier.ClassifyRequest{
			Title:   ri.Title,
			Content: ri.Content,
			Source:  strconv.Itoa(channel.ID),
		})
		if classifyErr != nil {
			slog.Warn("classifier call failed, deferring to classifier worker", "error", classifyErr)
		} else {
			classified = true
			meta.PreFilter = &store.PreFilter{
				RelevanceConfidence: result.RelevanceConfidence,
				PrioritySuggestion:  result.Priority,
				PriorityConfidence:  result.PriorityConfidence,
				AKSuggestion:        result.AK,
				AKConfidence:        result.AKConfidence,
				ClassifiedAt:        time.Now(),
			}

			// The confidence thresholds alone decide the initial priority;
			// keyword boosts only matter while no classifier verdict exists.
			outcome := priority.FromClassifierConfidence(result.RelevanceConfidence)
			finalScore = outcome.Score
			finalPriority = outcome.Priority
			needsLLM = outcome.NeedsLLMProcess
			meta.RetryPriority = outcome.RetryPriority

			p.logStep(ctx, runID, "pre_filter", 2, map[string]interface{}{
				"relevance_confidence": result.RelevanceConfidence,
				"ak_suggestion":        result.AK,
			}, true, false, "")
		}
	}
	// Step 5: if the classifier was unreachable, meta.PreFilter stays nil
	// and needsLLM stays true — the classifier worker catches up later.

	it, err := p.items.CreateFromRaw(ctx, store.NewItemInput{
		ChannelID:     channel.ID,
		ExternalID:    ri.ExternalID,
		Title:         ri.Title,
		Content:       ri.Content,
		URL:           ri.URL,
		Author:        ri.Author,
		PublishedAt:   publishedAt,
		ContentHash:   hash,
		Priority:      string(finalPriority),
		PriorityScore: finalScore,
		NeedsLLM:      needsLLM,
		Metadata:      meta,
	})
	if err != nil {
		return false, fmt.Errorf("persisting item: %w", err)
	}

	if classified {
		// Index under the real item id; re-adding an already-present id is
		// a no-op on the service side.
		if _, indexErr := p.classifier.IndexBatch(ctx, []classifier.IndexDoc{{ID: strconv.Itoa(it.ID), Title: ri.Title, Content: ri.Content}}); indexErr != nil {
			slog.Warn("vector index call failed", "item_id", it.ID, "error", indexErr)
		} else {
			meta.VectorDBIndexed = true
			now := time.Now()
			meta.VectorDBIndexedAt = &now
		}

		dupID, method, score, found := p.findDuplicate(ctx, ri, channel, it.ID)
		meta.DuplicateChecked = true
		if metaErr := p.items.SetMetadata(ctx, it.ID, meta); metaErr != nil {
			slog.Warn("stamping intake metadata failed", "item_id", it.ID, "error", metaErr)
		}
		if found {
			if linkErr := p.items.LinkDuplicate(ctx, it.ID, dupID, method, score); linkErr != nil {
				slog.Warn("linking duplicate failed", "item_id", it.ID, "similar_to_id", dupID, "error", linkErr)
			} else {
				p.logStep(ctx, runID, "duplicate_check", 3, map[string]interface{}{"similar_to_id": dupID, "method": method}, true, false, "")
			}
		}
	}

	if evErr := p.events.Record(ctx, it.ID, "fetch", map[string]interface{}{"channel_id": channel.ID}); evErr != nil {
		slog.Warn("recording fetch event failed", "item_id", it.ID, "error", evErr)
	}

	// Step 7: push to the LLM worker's fresh queue unless certainly irrelevant.
	if finalPriority != priority.None && p.fresh != nil {
		p.fresh.Push(it.ID)
	}

	return true, nil
}

// findDuplicate runs the URL-equality check first, falling back to the
// classifier's embedding near-duplicate lookup. Only candidates with an id
// strictly below selfID are eligible, keeping the duplicate forest free of
// forward links.
func (p *Pipeline) findDuplicate(ctx context.Context, ri connector.RawItem, channel ChannelRef, selfID int) (id int, method string, score float64, found bool) {
	if ri.URL != "" {
		if existing, err := p.items.FindByURLAcrossChannels(ctx, ri.URL, channel.ID); err == nil && existing != nil && existing.ID < selfID {
			return existing.ID, "url_match", 0, true
		}
	}

	if p.classifier == nil {
		return 0, "", 0, false
	}

	strippedTitle := duplicate.StripBoilerplate(ri.Title, duplicate.DefaultBoilerplatePrefixes)
	strippedContent := duplicate.StripBoilerplate(ri.Content, duplicate.DefaultBoilerplatePrefixes)
	candidates, err := p.classifier.FindDuplicates(ctx, strippedTitle, strippedContent, p.threshold)
	if err != nil || len(candidates) == 0 {
		return 0, "", 0, false
	}

	var parsed []duplicate.Candidate
	for _, c := range candidates {
		n, convErr := strconv.Atoi(c.ID)
		if convErr != nil {
			continue
		}
		parsed = append(parsed, duplicate.Candidate{ID: n, Score: c.Score})
	}
	best, ok := duplicate.SelectPrimary(parsed, selfID)
	if !ok {
		return 0, "", 0, false
	}
	return best.ID, "", best.Score, true
}

func (p *Pipeline) logStep(ctx context.Context, runID string, stepType string, order int, details map[string]interface{}, success, skipped bool, skipReason string) {
	if p.logs == nil {
		return
	}
	now := time.Now()
	if err := p.logs.Append(ctx, store.StepInput{
		ProcessingRunID: runID,
		StepType:        stepType,
		StepOrder:       order,
		StartedAt:       now,
		CompletedAt:     &now,
		Success:         success,
		Skipped:         skipped,
		SkipReason:      skipReason,
		Details:         details,
	}); err != nil {
		slog.Warn("appending processing log failed", "step", stepType, "run_id", runID, "error", err)
	}
}

// contentHash computes a stable SHA-256 digest over normalized title and
// content, used for exact intake-level dedupe within a channel.
func contentHash(title, content string) string {
	normalized := strings.ToLower(strings.TrimSpace(title)) + "\x00" + strings.ToLower(strings.TrimSpace(content))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
