package services_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	"github.com/opencoord/hive/pkg/services"
	testdb "github.com/opencoord/hive/test/database"
)

func newBeadFixture(t *testing.T) (*services.BeadService, *logstore.Store, context.Context) {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	svc := services.NewBeadService(client.Client, store, slog.Default())
	return svc, store, context.Background()
}

func TestCreateAssignsHierarchicalIDs(t *testing.T) {
	svc, _, ctx := newBeadFixture(t)

	root, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "root task", Priority: 2,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(root.ID, "proj-"))
	assert.Len(t, strings.TrimPrefix(root.ID, "proj-"), 8)

	child1, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "first subtask", Priority: 2, ParentID: root.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, root.ID+".1", child1.ID)

	child2, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "second subtask", Priority: 2, ParentID: root.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, root.ID+".2", child2.ID)

	grandchild, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "nested", Priority: 2, ParentID: child1.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, root.ID+".1.1", grandchild.ID)
}

func TestCreateValidatesInput(t *testing.T) {
	svc, _, ctx := newBeadFixture(t)

	_, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: strings.Repeat("x", 501), Priority: 2,
	})
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))

	_, err = svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "ok", Priority: 5,
	})
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))

	_, err = svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "ok", Priority: 2, Type: "saga",
	})
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
}

func TestCloseBlockedByOpenChildren(t *testing.T) {
	svc, _, ctx := newBeadFixture(t)

	root, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "parent", Priority: 2,
	})
	require.NoError(t, err)
	child, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "child", Priority: 2, ParentID: root.ID,
	})
	require.NoError(t, err)

	err = svc.Close(ctx, "proj", root.ID, "done")
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))

	require.NoError(t, svc.Close(ctx, "proj", child.ID, "done"))
	require.NoError(t, svc.Close(ctx, "proj", root.ID, "done"))

	got, err := svc.Get(ctx, "proj", root.ID)
	require.NoError(t, err)
	assert.Equal(t, "closed", string(got.Status))
}

func TestCloseTombstonedChildrenDoNotBlock(t *testing.T) {
	svc, _, ctx := newBeadFixture(t)

	root, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "parent", Priority: 2,
	})
	require.NoError(t, err)
	child, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "abandoned", Priority: 2, ParentID: root.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "proj", child.ID, "obsolete"))
	require.NoError(t, svc.Close(ctx, "proj", root.ID, "done"))
}

func TestSetStatusRejectsClosed(t *testing.T) {
	svc, _, ctx := newBeadFixture(t)

	b, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "task", Priority: 2,
	})
	require.NoError(t, err)

	err = svc.SetStatus(ctx, "proj", b.ID, "closed")
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))

	require.NoError(t, svc.SetStatus(ctx, "proj", b.ID, "blocked"))
	got, err := svc.Get(ctx, "proj", b.ID)
	require.NoError(t, err)
	assert.Equal(t, "blocked", string(got.Status))
}

func TestEpicClosureEligibilityEmittedOncePerEpisode(t *testing.T) {
	svc, store, ctx := newBeadFixture(t)

	epic, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "big feature", Priority: 1, Type: "epic",
	})
	require.NoError(t, err)
	c1, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "part one", Priority: 2, ParentID: epic.ID,
	})
	require.NoError(t, err)
	c2, err := svc.Create(ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Title: "part two", Priority: 2, ParentID: epic.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, "proj", c1.ID, "done"))
	events, err := store.ReadByType(ctx, "proj", 0, []string{models.EventCellEpicClosureEligible})
	require.NoError(t, err)
	assert.Empty(t, events, "eligibility waits for the last child")

	require.NoError(t, svc.Close(ctx, "proj", c2.ID, "done"))
	events, err = store.ReadByType(ctx, "proj", 0, []string{models.EventCellEpicClosureEligible})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, epic.ID, events[0].Data["epic_id"])

	// Reopen resets the episode; a later re-close emits again.
	require.NoError(t, svc.Reopen(ctx, "proj", c2.ID))
	require.NoError(t, svc.Close(ctx, "proj", c2.ID, "done again"))
	events, err = store.ReadByType(ctx, "proj", 0, []string{models.EventCellEpicClosureEligible})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestDependencyBlockingCache(t *testing.T) {
	svc, _, ctx := newBeadFixture(t)

	a, err := svc.Create(ctx, models.CreateBeadRequest{ProjectKey: "proj", Title: "a", Priority: 2})
	require.NoError(t, err)
	b, err := svc.Create(ctx, models.CreateBeadRequest{ProjectKey: "proj", Title: "b", Priority: 2})
	require.NoError(t, err)

	require.NoError(t, svc.AddDependency(ctx, "proj", a.ID, b.ID, "blocks"))

	err = svc.AddDependency(ctx, "proj", a.ID, a.ID, "blocks")
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))

	require.NoError(t, svc.RemoveDependency(ctx, "proj", a.ID, b.ID, "blocks"))
}

func TestTreeNestsChildren(t *testing.T) {
	svc, _, ctx := newBeadFixture(t)

	root, err := svc.Create(ctx, models.CreateBeadRequest{ProjectKey: "proj", Title: "root", Priority: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.CreateBeadRequest{ProjectKey: "proj", Title: "leaf", Priority: 2, ParentID: root.ID})
	require.NoError(t, err)

	roots, err := svc.Tree(ctx, "proj")
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, root.ID+".1", roots[0].Children[0].ID)
}
