package swarm_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	"github.com/opencoord/hive/pkg/swarm"
	testdb "github.com/opencoord/hive/test/database"
)

func newReviewFixture(t *testing.T) (*swarm.ReviewTracker, *logstore.Store, context.Context) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	return swarm.NewReviewTracker(store, slog.Default()), store, context.Background()
}

func TestReviewRetryLoopExhaustsAfterThreeAttempts(t *testing.T) {
	tracker, _, ctx := newReviewFixture(t)

	first, err := tracker.SubmitReview(ctx, "proj", "proj-1.1", swarm.ReviewNeedsChanges, []string{"missing tests"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Attempt)
	assert.Equal(t, 2, first.RemainingAttempts)
	assert.False(t, first.TaskFailed)
	require.NotNil(t, first.RetryContext)
	assert.Equal(t, "spawn_retry", first.RetryContext.NextAction)
	assert.Equal(t, []string{"missing tests"}, first.RetryContext.Issues)

	second, err := tracker.SubmitReview(ctx, "proj", "proj-1.1", swarm.ReviewNeedsChanges, []string{"still failing"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Attempt)
	assert.Equal(t, 1, second.RemainingAttempts)
	require.NotNil(t, second.RetryContext)

	third, err := tracker.SubmitReview(ctx, "proj", "proj-1.1", swarm.ReviewNeedsChanges, []string{"wrong approach"})
	require.NoError(t, err)
	assert.Equal(t, 3, third.Attempt)
	assert.Equal(t, 0, third.RemainingAttempts)
	assert.True(t, third.TaskFailed)
	assert.Nil(t, third.RetryContext, "an exhausted task gets no retry context")

	_, err = tracker.SubmitReview(ctx, "proj", "proj-1.1", swarm.ReviewNeedsChanges, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestReviewAttemptsSurviveRestart(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	ctx := context.Background()
	dir := t.TempDir()

	tracker := swarm.NewPersistentReviewTracker(store, dir, slog.Default())
	_, err := tracker.SubmitReview(ctx, "proj", "proj-9.1", swarm.ReviewNeedsChanges, []string{"one"})
	require.NoError(t, err)
	_, err = tracker.SubmitReview(ctx, "proj", "proj-9.1", swarm.ReviewNeedsChanges, []string{"two"})
	require.NoError(t, err)

	// A fresh process picks up the attempt budget where the old one left it.
	restarted := swarm.NewPersistentReviewTracker(store, dir, slog.Default())
	st := restarted.Status("proj-9.1")
	assert.Equal(t, 2, st.AttemptCount)
	assert.Equal(t, 1, st.RemainingAttempts)

	third, err := restarted.SubmitReview(ctx, "proj", "proj-9.1", swarm.ReviewNeedsChanges, []string{"three"})
	require.NoError(t, err)
	assert.True(t, third.TaskFailed)
}

func TestReviewApprovalResetsAttempts(t *testing.T) {
	tracker, _, ctx := newReviewFixture(t)

	_, err := tracker.SubmitReview(ctx, "proj", "proj-2.1", swarm.ReviewNeedsChanges, []string{"nit"})
	require.NoError(t, err)
	assert.False(t, tracker.IsApproved("proj-2.1"))

	outcome, err := tracker.SubmitReview(ctx, "proj", "proj-2.1", swarm.ReviewApproved, nil)
	require.NoError(t, err)
	assert.True(t, outcome.Approved)
	assert.True(t, tracker.IsApproved("proj-2.1"))

	st := tracker.Status("proj-2.1")
	assert.Equal(t, 0, st.AttemptCount)
	assert.Equal(t, swarm.MaxAttempts, st.RemainingAttempts)
}

func TestReviewFeedbackIsDurable(t *testing.T) {
	tracker, store, ctx := newReviewFixture(t)

	_, err := tracker.SubmitReview(ctx, "proj", "proj-3.1", swarm.ReviewNeedsChanges, []string{"rename the type"})
	require.NoError(t, err)
	_, err = tracker.SubmitReview(ctx, "proj", "proj-3.1", swarm.ReviewApproved, nil)
	require.NoError(t, err)

	events, err := store.ReadByType(ctx, "proj", 0, []string{models.EventReviewFeedback})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "needs_changes", events[0].Data["status"])
	assert.Equal(t, "approved", events[1].Data["status"])
}

func TestReviewRejectsUnknownStatus(t *testing.T) {
	tracker, _, ctx := newReviewFixture(t)

	_, err := tracker.SubmitReview(ctx, "proj", "proj-4.1", "maybe", nil)
	require.Error(t, err)

	_, err = tracker.SubmitReview(ctx, "proj", "", swarm.ReviewApproved, nil)
	require.Error(t, err)
}

func TestReviewStatusDefaultsForUnknownTask(t *testing.T) {
	tracker, _, _ := newReviewFixture(t)

	st := tracker.Status("never-seen")
	assert.False(t, st.Reviewed)
	assert.Equal(t, swarm.MaxAttempts, st.RemainingAttempts)
	assert.False(t, tracker.IsApproved("never-seen"))
}
