package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/opendata/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectionError_Structure verifies error structure.
func TestConnectionError_Structure(t *testing.T) {
	originalErr := errors.New("connection refused")

	err := ConnectionError("localhost", 5432, "test", "postgres",
		originalErr)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Len(t, gnErr.Vars, 4)
	assert.ErrorIs(t, gnErr.Err, originalErr)
	assert.Contains(t, gnErr.Err.Error(), "localhost:5432/test")
}

func TestSQLiteOpenError_Structure(t *testing.T) {
	originalErr := errors.New("unable to open database file")

	err := SQLiteOpenError("/nope/opendata.sqlite", originalErr)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.Equal(t, []any{"/nope/opendata.sqlite"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestUnknownDriverError_Structure(t *testing.T) {
	err := UnknownDriverError("mysql")

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBUnknownDriverError, gnErr.Code)
	assert.Equal(t, []any{"mysql"}, gnErr.Vars)
}

// TestNotConnectedError_Structure verifies error structure.
func TestNotConnectedError_Structure(t *testing.T) {
	err := NotConnectedError()

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Nil(t, gnErr.Vars)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		path string
		res  string
	}{
		{":memory:", "file::memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"/tmp/a.sqlite", "/tmp/a.sqlite?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"file:a.db?mode=rwc", "file:a.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, sqliteDSN(v.path), v.path)
	}
}
