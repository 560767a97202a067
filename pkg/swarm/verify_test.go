package swarm

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifier(t *testing.T) *CommandVerifier {
	return NewCommandVerifier(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestVerifySkipsWithoutTypeConfiguration(t *testing.T) {
	v := newVerifier(t)

	result, err := v.Verify(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	require.Len(t, result.Steps, 1)
	step := result.Steps[0]
	assert.Equal(t, "typecheck", step.Name)
	assert.True(t, step.Skipped)
	assert.True(t, step.Passed)
	assert.Empty(t, result.Blockers)
}

func TestVerifySkipsFilesWithoutTests(t *testing.T) {
	v := newVerifier(t)
	require.NoError(t, os.WriteFile(filepath.Join(v.Root, "orphan.go"), []byte("package main\n"), 0o644))

	result, err := v.Verify(context.Background(), []string{"orphan.go"})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	require.Len(t, result.Steps, 2)
	assert.True(t, result.Steps[1].Skipped)
	assert.Contains(t, result.Steps[1].SkipReason, "orphan.go")
}

func TestDiscoverTestMapsCounterparts(t *testing.T) {
	v := newVerifier(t)
	require.NoError(t, os.MkdirAll(filepath.Join(v.Root, "pkg/util"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(v.Root, "pkg/util/io.go"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(v.Root, "pkg/util/io_test.go"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(v.Root, "app.ts"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(v.Root, "app.spec.ts"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(v.Root, "tool.py"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(v.Root, "test_tool.py"), nil, 0o644))

	target, runner := v.discoverTest("pkg/util/io.go")
	assert.Equal(t, "./pkg/util", target)
	assert.Equal(t, []string{"go", "test"}, runner)

	target, runner = v.discoverTest("app.ts")
	assert.Equal(t, "app.spec.ts", target)
	assert.Equal(t, []string{"npx", "vitest", "run"}, runner)

	target, runner = v.discoverTest("tool.py")
	assert.Equal(t, "test_tool.py", target)
	assert.Equal(t, []string{"pytest", "-q"}, runner)

	target, _ = v.discoverTest("README.md")
	assert.Empty(t, target)
}

func TestRunStepSkipsMissingTool(t *testing.T) {
	v := newVerifier(t)

	step := v.runStep(context.Background(), "typecheck", "definitely-not-a-real-binary-xyz")
	assert.True(t, step.Passed)
	assert.True(t, step.Skipped)
	assert.Contains(t, step.SkipReason, "not available")
}

func TestRunStepReportsFailureAsBlocker(t *testing.T) {
	v := newVerifier(t)

	step := v.runStep(context.Background(), "typecheck", "sh", "-c", "echo boom >&2; exit 3")
	assert.False(t, step.Passed)
	assert.False(t, step.Skipped)
	assert.Equal(t, 3, step.ExitCode)
	assert.Contains(t, step.Output, "boom")
}

func TestTruncateOutputCapsSize(t *testing.T) {
	long := make([]byte, 10000)
	for i := range long {
		long[i] = 'a'
	}
	out := truncateOutput(string(long))
	assert.Less(t, len(out), 5000)
	assert.Contains(t, out, "(truncated)")
}
