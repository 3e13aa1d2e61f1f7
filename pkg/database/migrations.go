package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSupportingIndexes creates PostgreSQL-specific indexes Ent's schema
// DSL cannot express: a GIN index over the items.metadata jsonb column (used
// by the classifier/LLM worker backlog queries to filter on pre_filter,
// retry_priority, and llm_analysis.assigned_aks without a sequential scan),
// and a trigram index supporting fuzzy title search.
func CreateSupportingIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pg_trgm`); err != nil {
		return fmt.Errorf("failed to enable pg_trgm: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_items_metadata_gin
		ON items USING gin(metadata jsonb_path_ops)`); err != nil {
		return fmt.Errorf("failed to create items metadata GIN index: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_items_title_trgm
		ON items USING gin(title gin_trgm_ops)`); err != nil {
		return fmt.Errorf("failed to create items title trigram index: %w", err)
	}

	return nil
}
