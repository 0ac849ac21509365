package db_test

import (
	"testing"

	"github.com/gnames/opendata/internal/iodb"
	"github.com/gnames/opendata/pkg/db"
)

// TestOperatorImplementsInterface verifies that iodb operators
// implement the db.Operator interface at compile time.
func TestOperatorImplementsInterface(t *testing.T) {
	var _ db.Operator = iodb.NewOperator()
}
