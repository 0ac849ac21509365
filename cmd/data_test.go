package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/opendata/internal/iotesting"
	"github.com/gnames/opendata/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSQLite points configuration at a temporary home and a SQLite file,
// and writes fixture datasets. It returns the data directory.
func setupSQLite(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENDATA_DATABASE_DRIVER", "sqlite")
	t.Setenv("OPENDATA_DATABASE_PATH",
		filepath.Join(t.TempDir(), "opendata.sqlite"))

	dataDir := t.TempDir()
	iotesting.WriteDataset(t, dataDir, iotesting.Dataset())
	return dataDir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestData_LoadDisplayDelete(t *testing.T) {
	dataDir := setupSQLite(t)

	_, err := run(t, "--data", "load", "--data-dir", dataDir, "-j", "2")
	require.NoError(t, err)

	out, err := run(t, "--data", "display")
	require.NoError(t, err)
	assert.Equal(t, `Total provinces 2
Total universities 2
Total faculties 2
Total courses 3
`, out)

	out, err = run(t, "--data", "delete")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleting 2 provinces...")
	assert.Contains(t, out, "Total courses after delete 0")

	out, err = run(t, "--data", "display")
	require.NoError(t, err)
	assert.Equal(t, `Total provinces 0
Total universities 0
Total faculties 0
Total courses 0
`, out)
}

func TestData_NoAction(t *testing.T) {
	setupSQLite(t)

	out, err := run(t)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestData_UnknownAction(t *testing.T) {
	setupSQLite(t)

	tests := []struct {
		msg    string
		action string
	}{
		{msg: "no such action", action: "purge"},
		{msg: "uppercase", action: "LOAD"},
		{msg: "capitalized", action: "Display"},
		{msg: "padded", action: " delete"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			_, err := run(t, "--data", tt.action)
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, errcode.CLIUnknownActionError, gnErr.Code)
			assert.Equal(t, tt.action, gnErr.Vars[0])
		})
	}
}

func TestData_MissingDataDir(t *testing.T) {
	setupSQLite(t)

	_, err := run(t, "--data", "load",
		"--data-dir", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DataDirError, gnErr.Code)
}

func TestData_MissingDatasetFile(t *testing.T) {
	setupSQLite(t)
	dataDir := t.TempDir()
	files := iotesting.Dataset()
	delete(files, "universities.yml")
	iotesting.WriteDataset(t, dataDir, files)

	_, err := run(t, "--data", "load", "--data-dir", dataDir)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DatasetFileNotFoundError, gnErr.Code)
}
