package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDispatchesByJobType(t *testing.T) {
	reg := NewRegistry()
	reg.Register("rebuild", func(ctx context.Context, job *Job) (json.RawMessage, error) {
		var payload struct {
			Project string `json:"project"`
		}
		require.NoError(t, json.Unmarshal(job.Payload, &payload))
		return json.RawMessage(`{"rebuilt":"` + payload.Project + `"}`), nil
	})

	out, err := reg.Execute(context.Background(), &Job{
		Type:    "rebuild",
		Payload: json.RawMessage(`{"project":"proj"}`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rebuilt":"proj"}`, string(out))
}

func TestRegistryRejectsUnknownJobType(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Execute(context.Background(), &Job{Type: "vacuum"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vacuum")
}

func TestExecutorFuncAdapts(t *testing.T) {
	var called bool
	var exec Executor = ExecutorFunc(func(ctx context.Context, job *Job) (json.RawMessage, error) {
		called = true
		return nil, nil
	})

	_, err := exec.Execute(context.Background(), &Job{Type: "noop"})
	require.NoError(t, err)
	assert.True(t, called)
}
