package api_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoord/hive/pkg/api"
	"github.com/opencoord/hive/pkg/config"
	"github.com/opencoord/hive/pkg/events"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	"github.com/opencoord/hive/pkg/services"
	testdb "github.com/opencoord/hive/test/database"
)

type apiFixture struct {
	router http.Handler
	beads  *services.BeadService
	ctx    context.Context
}

func newAPIFixture(t *testing.T) *apiFixture {
	client := testdb.NewTestClient(t)
	store := logstore.New(client.DB())
	beads := services.NewBeadService(client.Client, store, slog.Default())
	cursors := services.NewCursorService(client.Client, slog.Default())
	manager := events.NewConnectionManager(store, time.Second)
	server := api.NewServer(config.Config{DefaultProject: "proj"}, client, store, manager, beads, cursors, slog.Default())
	return &apiFixture{
		router: server.Router(),
		beads:  beads,
		ctx:    context.Background(),
	}
}

func (f *apiFixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// The cells payload must decode with the exact shape the CLI reads.
func TestCellsResponseDecodesForCLI(t *testing.T) {
	f := newAPIFixture(t)

	root, err := f.beads.Create(f.ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Type: "epic", Title: "migration", Priority: 1,
	})
	require.NoError(t, err)
	_, err = f.beads.Create(f.ctx, models.CreateBeadRequest{
		ProjectKey: "proj", Type: "task", Title: "schema step", Priority: 2, ParentID: root.ID,
	})
	require.NoError(t, err)

	w := f.do(t, http.MethodGet, "/cells?project=proj", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body models.CellsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "proj", body.ProjectKey)
	require.Len(t, body.Cells, 1)
	assert.Equal(t, root.ID, body.Cells[0].ID)
	require.Len(t, body.Cells[0].Children, 1)
	assert.Equal(t, "schema step", body.Cells[0].Children[0].Title)
}

func TestCellsResponseEmptyProject(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/cells?project=empty", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body models.CellsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "empty", body.ProjectKey)
	assert.NotNil(t, body.Cells)
	assert.Empty(t, body.Cells)
}

func TestCursorEndpointsRoundTrip(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/cursors/reader-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPut, "/cursors/reader-1", `{"position":42,"checkpoint":"seq-42"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var cur struct {
		StreamName string `json:"stream_name"`
		Position   int64  `json:"position"`
		Checkpoint string `json:"checkpoint"`
	}
	w = f.do(t, http.MethodGet, "/cursors/reader-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&cur))
	assert.Equal(t, "reader-1", cur.StreamName)
	assert.EqualValues(t, 42, cur.Position)
	assert.Equal(t, "seq-42", cur.Checkpoint)

	// Positions are forward-only; a stale save does not rewind.
	w = f.do(t, http.MethodPut, "/cursors/reader-1", `{"position":7}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(t, http.MethodGet, "/cursors/reader-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&cur))
	assert.EqualValues(t, 42, cur.Position)
}
