package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/liga-hessen/news-aggregator/ent"
	"github.com/liga-hessen/news-aggregator/ent/item"
)

// metadataHasKey is a jsonb predicate for the presence of a top-level
// metadata key, served by the GIN index on items.metadata.
func metadataHasKey(key string) func(*sql.Selector) {
	return func(s *sql.Selector) {
		s.Where(sqljson.HasKey(item.FieldMetadata, sqljson.Path(key)))
	}
}

func metadataLacksKey(key string) func(*sql.Selector) {
	return func(s *sql.Selector) {
		s.Where(sql.Not(sqljson.HasKey(item.FieldMetadata, sqljson.Path(key))))
	}
}

// Items wraps item-repository operations over the generated Ent client.
type Items struct {
	client *ent.Client
}

// NewItems constructs an Items repository.
func NewItems(client *ent.Client) *Items {
	return &Items{client: client}
}

// FindByContentHash returns an existing item with the given content hash
// within the same channel, used for exact-duplicate detection on ingest.
func (i *Items) FindByContentHash(ctx context.Context, channelID int, hash string) (*ent.Item, error) {
	it, err := i.client.Item.Query().
		Where(item.ChannelIDEQ(channelID), item.ContentHashEQ(hash)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying by content hash: %w", err)
	}
	return it, nil
}

// FindByURLAcrossChannels looks up an item with an identical URL fetched
// through a different channel than sourceChannelID, the first duplicate
// check tried before falling back to embedding similarity.
func (i *Items) FindByURLAcrossChannels(ctx context.Context, url string, sourceChannelID int) (*ent.Item, error) {
	it, err := i.client.Item.Query().
		Where(item.URLEQ(url), item.ChannelIDNEQ(sourceChannelID)).
		Order(ent.Asc(item.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying by url: %w", err)
	}
	return it, nil
}

// FindByExternalID returns an existing item sharing (channel_id,
// external_id), the first duplicate check tried on ingest.
func (i *Items) FindByExternalID(ctx context.Context, channelID int, externalID string) (*ent.Item, error) {
	it, err := i.client.Item.Query().
		Where(item.ChannelIDEQ(channelID), item.ExternalIDEQ(externalID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying by external id: %w", err)
	}
	return it, nil
}

// NewItemInput is the set of fields the ingestion pipeline supplies when
// persisting a freshly fetched item.
type NewItemInput struct {
	ChannelID     int
	ExternalID    string
	Title         string
	Content       string
	URL           string
	Author        string
	PublishedAt   time.Time
	ContentHash   string
	Priority      string
	PriorityScore int
	NeedsLLM      bool
	Metadata      ItemMetadata
}

// CreateFromRaw persists a new item from the ingestion pipeline in a
// single insert.
func (i *Items) CreateFromRaw(ctx context.Context, in NewItemInput) (*ent.Item, error) {
	create := i.client.Item.Create().
		SetChannelID(in.ChannelID).
		SetExternalID(in.ExternalID).
		SetTitle(in.Title).
		SetContent(in.Content).
		SetURL(in.URL).
		SetPublishedAt(in.PublishedAt).
		SetContentHash(in.ContentHash).
		SetPriority(item.Priority(in.Priority)).
		SetPriorityScore(in.PriorityScore).
		SetNeedsLlmProcessing(in.NeedsLLM).
		SetMetadata(in.Metadata.ToMap())
	if in.Author != "" {
		create = create.SetAuthor(in.Author)
	}

	it, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	return it, nil
}

// Get fetches an item by id.
func (i *Items) Get(ctx context.Context, id int) (*ent.Item, error) {
	it, err := i.client.Item.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching item %d: %w", id, err)
	}
	return it, nil
}

// SetMetadata persists the namespaced metadata blob for an item.
func (i *Items) SetMetadata(ctx context.Context, id int, meta ItemMetadata) error {
	return i.client.Item.UpdateOneID(id).
		SetMetadata(meta.ToMap()).
		Exec(ctx)
}

// LinkDuplicate points an item at the oldest (smallest id) item it
// duplicates, enforcing the forest invariant: similar_to_id must always
// reference a strictly smaller id than the item itself. method is
// "url_match" for URL-equality hits and empty for embedding hits, which
// record their cosine score instead.
func (i *Items) LinkDuplicate(ctx context.Context, id, similarToID int, method string, score float64) error {
	if similarToID >= id {
		return fmt.Errorf("duplicate forest invariant violated: item %d cannot point to %d", id, similarToID)
	}
	it, err := i.client.Item.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching item %d: %w", id, err)
	}
	meta := MetadataFromMap(it.Metadata)
	meta.DuplicateChecked = true
	meta.DuplicateMethod = method
	meta.DuplicateScore = score
	return i.client.Item.UpdateOneID(id).
		SetSimilarToID(similarToID).
		SetMetadata(meta.ToMap()).
		Exec(ctx)
}

// MarkDuplicateChecked stamps duplicate_checked on an item that was examined
// for duplicates but had no eligible match, preserving any other namespaced
// metadata already present.
func (i *Items) MarkDuplicateChecked(ctx context.Context, id int) error {
	it, err := i.client.Item.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching item %d: %w", id, err)
	}
	meta := MetadataFromMap(it.Metadata)
	meta.DuplicateChecked = true
	return i.client.Item.UpdateOneID(id).
		SetMetadata(meta.ToMap()).
		Exec(ctx)
}

// BulkUpdatePriority sets priority and score on many items in one
// statement. Admin-triggered re-analysis marks the items for LLM
// reprocessing at the same time.
func (i *Items) BulkUpdatePriority(ctx context.Context, ids []int, priority string, score int, needsLLM bool) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := i.client.Item.Update().
		Where(item.IDIn(ids...)).
		SetPriority(item.Priority(priority)).
		SetPriorityScore(score).
		SetNeedsLlmProcessing(needsLLM).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk updating priority: %w", err)
	}
	return n, nil
}

// SetPriority applies a (possibly monotonically-adjusted) priority and
// score, and clears needs_llm_processing when the caller indicates the item
// has been fully processed.
func (i *Items) SetPriority(ctx context.Context, id int, priority string, score int, needsLLM bool) error {
	return i.client.Item.UpdateOneID(id).
		SetPriority(item.Priority(priority)).
		SetPriorityScore(score).
		SetNeedsLlmProcessing(needsLLM).
		Exec(ctx)
}

// LLMAnalysisResult is the set of item fields the LLM worker writes back
// after a successful analysis call.
type LLMAnalysisResult struct {
	Summary          string
	DetailedAnalysis string
	Priority         string
	PriorityScore    int
	AssignedAKs      []string
	Metadata         ItemMetadata
}

// ApplyLLMAnalysis persists the LLM worker's per-item result in a single
// update: summary/detailed_analysis, the derived priority/score, the
// assigned working groups (falling back to the classifier's suggestion is
// the caller's responsibility before this call), the llm_analysis metadata
// block, and needs_llm_processing cleared.
func (i *Items) ApplyLLMAnalysis(ctx context.Context, id int, r LLMAnalysisResult) error {
	update := i.client.Item.UpdateOneID(id).
		SetPriority(item.Priority(r.Priority)).
		SetPriorityScore(r.PriorityScore).
		SetAssignedAks(r.AssignedAKs).
		SetNeedsLlmProcessing(false).
		SetMetadata(r.Metadata.ToMap())
	if r.Summary != "" {
		update = update.SetSummary(r.Summary)
	}
	if r.DetailedAnalysis != "" {
		update = update.SetDetailedAnalysis(r.DetailedAnalysis)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("applying llm analysis to item %d: %w", id, err)
	}
	return nil
}

// ClassifierUnclassified returns items awaiting classification: those with
// no pre_filter metadata yet, oldest-fetched first.
func (i *Items) ClassifierUnclassified(ctx context.Context, limit int) ([]*ent.Item, error) {
	items, err := i.client.Item.Query().
		Where(item.DeletedAtIsNil()).
		Where(metadataLacksKey("pre_filter")).
		Order(ent.Asc(item.FieldFetchedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying unclassified items: %w", err)
	}
	return items, nil
}

// ClassifierUnindexed returns classified items not yet flagged
// vectordb_indexed, oldest-fetched first.
func (i *Items) ClassifierUnindexed(ctx context.Context, limit int) ([]*ent.Item, error) {
	items, err := i.client.Item.Query().
		Where(item.DeletedAtIsNil()).
		Where(metadataHasKey("pre_filter")).
		Where(metadataLacksKey("vectordb_indexed")).
		Order(ent.Asc(item.FieldFetchedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying unindexed items: %w", err)
	}
	return items, nil
}

// ClassifierUncheckedDuplicates returns items with no similar_to_id and no
// duplicate_checked flag, newest-fetched first, optionally bounded to items
// fetched within the last cutoffDays (0 = no limit).
func (i *Items) ClassifierUncheckedDuplicates(ctx context.Context, limit, cutoffDays int) ([]*ent.Item, error) {
	query := i.client.Item.Query().
		Where(item.DeletedAtIsNil(), item.SimilarToIDIsNil()).
		Where(metadataLacksKey("duplicate_checked")).
		Order(ent.Desc(item.FieldFetchedAt))

	if cutoffDays > 0 {
		query = query.Where(item.FetchedAtGTE(time.Now().AddDate(0, 0, -cutoffDays)))
	}

	items, err := query.Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying unchecked duplicates: %w", err)
	}
	return items, nil
}

// AllIDsWithDeletedAtNil returns the ids of every non-deleted item, used for
// the classifier worker's daily vector-store reconciliation pass.
func (i *Items) AllIDsWithDeletedAtNil(ctx context.Context) ([]int, error) {
	ids, err := i.client.Item.Query().
		Where(item.DeletedAtIsNil()).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing item ids: %w", err)
	}
	return ids, nil
}

// FindURLMatchCandidates returns the ids of every item sharing url across a
// different channel than excludeChannelID (used by the duplicate-recheck
// pass; the forest-invariant minimum-id selection happens in
// pkg/duplicate.URLMatch).
func (i *Items) FindURLMatchCandidates(ctx context.Context, url string, excludeChannelID int) ([]int, error) {
	ids, err := i.client.Item.Query().
		Where(item.URLEQ(url), item.ChannelIDNEQ(excludeChannelID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying url match candidates: %w", err)
	}
	return ids, nil
}

// ExistingIDs filters candidateIDs down to those still present in the
// store, used to clear stale similar_to_id pointers discovered when the
// vector store returns a candidate the relational store no longer has.
func (i *Items) ExistingIDs(ctx context.Context, candidateIDs []int) (map[int]bool, error) {
	if len(candidateIDs) == 0 {
		return map[int]bool{}, nil
	}
	found, err := i.client.Item.Query().
		Where(item.IDIn(candidateIDs...)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking existing ids: %w", err)
	}
	set := make(map[int]bool, len(found))
	for _, id := range found {
		set[id] = true
	}
	return set, nil
}

// llmBacklogEligible matches items that have been classified (pre_filter
// present) and either still need LLM processing with a non-"low" retry
// priority, or — the relaxed branch — are relevance-bearing but still lack
// a working-group assignment.
func llmBacklogEligible(s *sql.Selector) {
	s.Where(sql.P(func(b *sql.Builder) {
		b.WriteString("((needs_llm_processing AND COALESCE(metadata->>'retry_priority', '') <> 'low')" +
			" OR (priority <> 'none' AND jsonb_array_length(assigned_aks) = 0))")
	}))
}

// LLMBacklog returns the LLM worker's pending items, ordered by the derived
// key (retry_priority rank: high, edge_case, low, unset; then fetched_at
// desc). Both the eligibility filter and the ordering run in SQL over the
// whole eligible set, so an old high-priority item can never fall outside a
// recency window.
func (i *Items) LLMBacklog(ctx context.Context, limit int) ([]*ent.Item, error) {
	items, err := i.client.Item.Query().
		Where(item.DeletedAtIsNil()).
		Where(metadataHasKey("pre_filter")).
		Where(llmBacklogEligible).
		Order(func(s *sql.Selector) {
			s.OrderExpr(sql.Expr("CASE metadata->>'retry_priority'" +
				" WHEN 'high' THEN 1 WHEN 'edge_case' THEN 2 WHEN 'low' THEN 3 ELSE 4 END"))
			s.OrderBy(sql.Desc(s.C(item.FieldFetchedAt)))
		}).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying llm backlog: %w", err)
	}
	return items, nil
}
