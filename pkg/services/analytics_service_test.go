package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	"github.com/opencoord/hive/pkg/services"
	testdb "github.com/opencoord/hive/test/database"
)

func newAnalyticsFixture(t *testing.T) (*services.AnalyticsService, *logstore.Store, context.Context) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	svc := services.NewAnalyticsService(client.Client, store, slog.Default())
	return svc, store, context.Background()
}

func TestRegressionsDetectScoreDrop(t *testing.T) {
	svc, _, ctx := newAnalyticsFixture(t)

	require.NoError(t, svc.RecordEvalRun(ctx, "code-review", 0.872))
	require.NoError(t, svc.RecordEvalRun(ctx, "code-review", 0.679))

	regs, err := svc.Regressions(ctx, "code-review")
	require.NoError(t, err)
	require.Len(t, regs, 1)
	r := regs[0]
	assert.Equal(t, "code-review", r.EvalName)
	assert.InDelta(t, 0.872, r.Previous, 1e-9)
	assert.InDelta(t, 0.679, r.Current, 1e-9)
	assert.InDelta(t, 0.193, r.Delta, 1e-9)
	assert.InDelta(t, -22.13, r.DeltaPercent, 0.01)
}

func TestRegressionsIgnoreImprovements(t *testing.T) {
	svc, _, ctx := newAnalyticsFixture(t)

	require.NoError(t, svc.RecordEvalRun(ctx, "triage", 0.5))
	require.NoError(t, svc.RecordEvalRun(ctx, "triage", 0.7))
	require.NoError(t, svc.RecordEvalRun(ctx, "triage", 0.7))

	regs, err := svc.Regressions(ctx, "triage")
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestRegressionsComparePerEval(t *testing.T) {
	svc, _, ctx := newAnalyticsFixture(t)

	require.NoError(t, svc.RecordEvalRun(ctx, "a", 0.9))
	require.NoError(t, svc.RecordEvalRun(ctx, "b", 0.4))
	// The drop is against a's own predecessor, not b's interleaved score.
	require.NoError(t, svc.RecordEvalRun(ctx, "a", 0.8))

	regs, err := svc.Regressions(ctx, "")
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "a", regs[0].EvalName)
	assert.InDelta(t, 0.9, regs[0].Previous, 1e-9)
}

func TestLatencyPercentiles(t *testing.T) {
	svc, store, ctx := newAnalyticsFixture(t)

	for _, d := range []int64{100, 200, 300, 400} {
		_, err := store.Append(ctx, "proj", models.EventSubtaskOutcome, map[string]interface{}{
			"bead_id": "proj-1", "success": true, "duration_ms": d,
		})
		require.NoError(t, err)
	}

	stats, err := svc.Latency(ctx, "proj")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Count)
	assert.InDelta(t, 250.0, stats.AvgMs, 1e-9)
	assert.Equal(t, int64(200), stats.P50Ms)
	assert.Equal(t, int64(300), stats.P90Ms)
}

func TestErrorsCountFailures(t *testing.T) {
	svc, store, ctx := newAnalyticsFixture(t)

	for _, ok := range []bool{true, true, false, true} {
		_, err := store.Append(ctx, "proj", models.EventSubtaskOutcome, map[string]interface{}{
			"bead_id": "proj-1", "success": ok, "duration_ms": int64(10),
		})
		require.NoError(t, err)
	}
	_, err := store.Append(ctx, "proj", models.EventCoordinatorViolation, map[string]interface{}{
		"tool": "edit_file", "reason": "implementation attempted",
	})
	require.NoError(t, err)

	stats, err := svc.Errors(ctx, "proj")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.SubtaskTotal)
	assert.Equal(t, 1, stats.SubtaskFailed)
	assert.InDelta(t, 0.25, stats.FailureRate, 1e-9)
	assert.Equal(t, 1, stats.Violations)
}

func TestContentionRanksBusiestPaths(t *testing.T) {
	svc, store, ctx := newAnalyticsFixture(t)

	for _, p := range []string{"a.go", "b.go", "a.go"} {
		_, err := store.Append(ctx, "proj", models.EventFileConflict, map[string]interface{}{
			"agent": "x", "path": p, "holder": "y", "resolution": "wait",
		})
		require.NoError(t, err)
	}

	entries, err := svc.Contention(ctx, "proj")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.go", entries[0].Path)
	assert.Equal(t, 2, entries[0].Conflicts)
}
