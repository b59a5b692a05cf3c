package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_PoolStats(t *testing.T) {
	tdb := NewTestDBManager(t)

	stats := tdb.Manager.PoolStats()

	require.NotNil(t, stats)
	assert.Equal(t, 1, stats["max_open"])
	assert.Contains(t, stats, "wait_count")
}

func TestManager_PoolStatsBeforeConnect(t *testing.T) {
	m := NewManager(&Config{Driver: DriverSQLite, Path: ":memory:"}, nil, nil)

	assert.Nil(t, m.PoolStats())
	assert.Error(t, m.Ping(context.Background()))
}
