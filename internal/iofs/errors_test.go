package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/opendata/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name  string
		err   error
		code  gn.ErrorCode
		path  string
		inErr string
	}{
		{
			name:  "create dir",
			err:   CreateDirError("/test/dir", cause),
			code:  errcode.CreateDirError,
			path:  "/test/dir",
			inErr: "cannot create directory",
		},
		{
			name:  "copy file",
			err:   CopyFileError("/test/config.yaml", cause),
			code:  errcode.CopyFileError,
			path:  "/test/config.yaml",
			inErr: "cannot copy file",
		},
		{
			name:  "read file",
			err:   ReadFileError("/test/config.yaml", cause),
			code:  errcode.ReadFileError,
			path:  "/test/config.yaml",
			inErr: "cannot read /test/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "<em>%s</em>")
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, tt.path, gnErr.Vars[0])

			assert.ErrorIs(t, gnErr.Err, cause)
			assert.Contains(t, gnErr.Err.Error(), tt.inErr)
			// caller context from runtime.Caller
			assert.Contains(t, gnErr.Err.Error(), "from ")
		})
	}
}
