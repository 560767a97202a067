package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/pkg/database"
	testdb "github.com/opencoord/hive/test/database"
)

func TestHealthReportsPoolPressure(t *testing.T) {
	client := testdb.NewTestClient(t)

	status, err := database.Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.ResponseTime, int64(0))
	assert.Greater(t, status.OpenConnections, 0)
}

func TestHealthUnhealthyOnClosedPool(t *testing.T) {
	client := testdb.NewTestClient(t)
	db := client.DB()
	require.NoError(t, db.Close())

	status, err := database.Health(context.Background(), db)
	require.Error(t, err)
	assert.Equal(t, "unhealthy", status.Status)
}
