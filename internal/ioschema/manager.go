// Package ioschema implements SchemaManager interface for store schema
// management. This is an impure I/O package that wraps GORM AutoMigrate.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/opendata/pkg/db"
	"github.com/gnames/opendata/pkg/lifecycle"
	"github.com/gnames/opendata/pkg/schema"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates missing tables. Existing tables and their rows are
// kept.
func (m *manager) Create(ctx context.Context) error {
	gormDB := m.operator.DB()
	if gormDB == nil {
		return NotConnectedError()
	}

	ok, err := m.operator.HasTables(ctx)
	if err != nil {
		return err
	}
	if ok {
		slog.Debug("All tables exist, skipping schema creation")
		return nil
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}
	slog.Info("Created store schema")
	return nil
}
