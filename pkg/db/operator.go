package db

import (
	"context"

	"github.com/gnames/opendata/pkg/config"
	"gorm.io/gorm"
)

// Operator defines the interface for basic store management operations.
// It owns the connection lifecycle and exposes *gorm.DB to the high-level
// components (SchemaManager, Loader, Reporter) that run their queries
// through GORM.
type Operator interface {
	// Connect opens a connection to the store described by the config.
	// The driver is selected by DatabaseConfig.Driver.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases the connection.
	Close() error

	// DB returns the GORM handle, or nil if not connected.
	DB() *gorm.DB

	// HasTables checks if all opendata tables exist.
	HasTables(ctx context.Context) (bool, error)
}
