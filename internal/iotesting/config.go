// Package iotesting provides shared test utilities for opendata tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gnames/opendata/internal/iodb"
	"github.com/gnames/opendata/internal/ioschema"
	"github.com/gnames/opendata/pkg/config"
	"github.com/gnames/opendata/pkg/db"
)

const (
	// TestDatabaseName is the PostgreSQL database used by integration
	// tests. It keeps tests away from production data.
	TestDatabaseName = "opendata_test"
)

// GetTestConfig returns a configuration for PostgreSQL integration tests.
// Connection settings come from OPENDATA_DATABASE_* variables when set,
// the database name is always TestDatabaseName.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	cfg := config.New()
	var opts []config.Option
	if s := os.Getenv("OPENDATA_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("OPENDATA_DATABASE_PORT"); s != "" {
		if i, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(i))
		}
	}
	if s := os.Getenv("OPENDATA_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("OPENDATA_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	opts = append(opts,
		config.OptDatabaseDriver("postgres"),
		config.OptDatabaseDatabase(TestDatabaseName),
	)
	cfg.Update(opts)
	return cfg
}

// GetTestDatabaseConfig returns only the database part of
// GetTestConfig.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SQLiteConfig returns a configuration with an in-memory SQLite store
// and datasets in dataDir.
func SQLiteConfig(dataDir string) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePath(":memory:"),
		config.OptDataDir(dataDir),
		config.OptDatabaseBatchSize(2),
		config.OptJobsNumber(2),
	})
	return cfg
}

// NewTestOperator returns an operator connected to a fresh in-memory
// SQLite store with all tables created. The connection is closed when
// the test finishes.
func NewTestOperator(t *testing.T) db.Operator {
	t.Helper()

	ctx := context.Background()
	cfg := SQLiteConfig(t.TempDir())
	op := iodb.NewOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { op.Close() })

	if err := ioschema.NewManager(op).Create(ctx); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return op
}

// WriteDataset writes files relative to dir. Keys are relative paths,
// missing subdirectories are created.
//
// Usage:
//
//	dir := t.TempDir()
//	iotesting.WriteDataset(t, dir, map[string]string{
//	    "provinces.yml":         iotesting.ProvincesYAML,
//	    "formations/udla.yml":   iotesting.FormationUDLAYAML,
//	})
func WriteDataset(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		err := os.MkdirAll(filepath.Dir(path), 0755)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
		}
		err = os.WriteFile(path, []byte(content), 0644)
		if err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
}
