package lifecycle

import (
	"context"
)

// SchemaManager creates store tables.
// Existing tables are left untouched, so it is safe to run many times.
type SchemaManager interface {
	// Create creates missing tables using GORM AutoMigrate.
	Create(ctx context.Context) error
}
