package ioschema_test

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/opendata/internal/iodb"
	"github.com/gnames/opendata/internal/ioschema"
	"github.com/gnames/opendata/pkg/config"
	"github.com/gnames/opendata/pkg/errcode"
	"github.com/gnames/opendata/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_NotConnected(t *testing.T) {
	mgr := ioschema.NewManager(iodb.NewOperator())
	err := mgr.Create(context.Background())
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	op := iodb.NewOperator()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePath(":memory:"),
	})
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	ok, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Create(ctx))

	ok, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// existing rows survive a second run
	require.NoError(t, op.DB().Create(&schema.Province{Name: "Centre"}).Error)
	require.NoError(t, mgr.Create(ctx))

	var n int64
	require.NoError(t, op.DB().Model(&schema.Province{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
